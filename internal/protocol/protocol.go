// Package protocol encodes and decodes the Game Server and Discovery
// Service wire formats: delimiter-separated ASCII datagrams, never binary
// framing (§6). Every Decode function returns a descriptive error instead of
// panicking on malformed input; callers are expected to drop the datagram
// and log it.
package protocol

import "fmt"

// ErrMalformed wraps every decode failure so callers can distinguish a
// protocol violation from a transport error with errors.As.
type ErrMalformed struct {
	Payload string
	Reason  string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed datagram %q: %s", e.Payload, e.Reason)
}

func malformed(payload, reason string) error {
	return &ErrMalformed{Payload: payload, Reason: reason}
}
