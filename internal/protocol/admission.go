package protocol

import "strings"

// AdmissionRequest is a decoded "NONE:<name>:INIT" or "NONE:<name>:CODE:<code>"
// datagram (§4.1 Admission). HasCode distinguishes a bare INIT from a
// CODE form carrying an empty value.
type AdmissionRequest struct {
	Name    string
	Code    string
	HasCode bool
}

// IsAdmission reports whether a datagram's identifier field names an
// admission request: the literal "NONE", or empty (§4.1: "whose identifier
// field equals \"NONE\" or is empty").
func IsAdmission(payload string) bool {
	id, _, ok := strings.Cut(payload, ":")
	if !ok {
		return false
	}
	return id == "NONE" || id == ""
}

// DecodeAdmission parses a whole admission datagram, skipping its identifier
// field and reading the rest as "<name>:INIT" or "<name>:CODE:<code>".
func DecodeAdmission(payload string) (AdmissionRequest, error) {
	_, rest, ok := strings.Cut(payload, ":")
	if !ok {
		return AdmissionRequest{}, malformed(payload, "missing identifier separator")
	}

	name, command, ok := strings.Cut(rest, ":")
	if !ok {
		return AdmissionRequest{}, malformed(payload, "missing command separator")
	}

	if command == "INIT" {
		return AdmissionRequest{Name: name}, nil
	}

	codeLabel, code, ok := strings.Cut(command, ":")
	if !ok || codeLabel != "CODE" {
		return AdmissionRequest{}, malformed(payload, "unrecognized admission command")
	}
	return AdmissionRequest{Name: name, Code: code, HasCode: true}, nil
}

// EncodeAdmission renders an admission request the way a Client would send
// it. Used by test harnesses and any future client-side tooling.
func EncodeAdmission(name, code string, hasCode bool) string {
	if !hasCode {
		return "NONE:" + name + ":INIT"
	}
	return "NONE:" + name + ":CODE:" + code
}

// Error replies a Client can receive in answer to an admission request
// (§6).
const (
	ErrCodeRequired = "ERROR:CODE_REQUIRED"
	ErrWrongCode    = "ERROR:WRONG_CODE"
	ErrServerFull   = "ERROR:SERVER_FULL"
)

// Ping is the sole payload of a liveness probe sent by the Game Server to
// an idle Client (§6).
const Ping = "PING"
