package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/blobarena/internal/protocol"
)

func TestIsAdmission(t *testing.T) {
	assert.True(t, protocol.IsAdmission("NONE:alice:INIT"))
	assert.False(t, protocol.IsAdmission("f47ac10b-58cc-4372-a567-0e02b2c3d479:alice:UP"))
	assert.False(t, protocol.IsAdmission("garbage"))
}

func TestDecodeAdmissionInit(t *testing.T) {
	req, err := protocol.DecodeAdmission("NONE:alice:INIT")
	require.NoError(t, err)
	assert.Equal(t, protocol.AdmissionRequest{Name: "alice"}, req)
}

func TestDecodeAdmissionCode(t *testing.T) {
	req, err := protocol.DecodeAdmission("NONE:eve:CODE:hunter2")
	require.NoError(t, err)
	assert.Equal(t, protocol.AdmissionRequest{Name: "eve", Code: "hunter2", HasCode: true}, req)
}

func TestDecodeAdmissionMalformed(t *testing.T) {
	_, err := protocol.DecodeAdmission("NONE:alice")
	require.Error(t, err)

	_, err = protocol.DecodeAdmission("NONE:alice:WHATEVER")
	require.Error(t, err)
}

func TestEncodeAdmissionRoundTrip(t *testing.T) {
	encoded := protocol.EncodeAdmission("bob", "", false)
	req, err := protocol.DecodeAdmission(encoded)
	require.NoError(t, err)
	assert.Equal(t, "bob", req.Name)
	assert.False(t, req.HasCode)

	encoded = protocol.EncodeAdmission("carol", "hunter2", true)
	req, err = protocol.DecodeAdmission(encoded)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", req.Code)
	assert.True(t, req.HasCode)
}
