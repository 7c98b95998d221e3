package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// RegisterRequest is a decoded "REGISTER:<name>,<port>,<cur>,<max>,<w>,<h>,<hasPass>,<code>"
// datagram (§4.2).
type RegisterRequest struct {
	Name    string
	Port    int
	Current int
	Max     int
	Width   int
	Height  int
	HasPass bool
	Code    string
}

// DirectoryEntry is one row of a QUERY reply (§4.2): identical fields to
// RegisterRequest plus the address the Discovery Service observed the
// REGISTER datagram arrive from.
type DirectoryEntry struct {
	Name    string
	Address string
	Port    int
	Current int
	Max     int
	Width   int
	Height  int
	HasPass bool
	Code    string
}

const (
	Query = "QUERY"
	OK    = "OK"
)

// DecodeRegister parses the payload following "REGISTER:".
func DecodeRegister(fields string) (RegisterRequest, error) {
	parts := strings.Split(fields, ",")
	if len(parts) != 8 {
		return RegisterRequest{}, malformed(fields, fmt.Sprintf("want 8 fields, got %d", len(parts)))
	}

	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return RegisterRequest{}, malformed(fields, "bad port")
	}
	cur, err := strconv.Atoi(parts[2])
	if err != nil {
		return RegisterRequest{}, malformed(fields, "bad current player count")
	}
	max, err := strconv.Atoi(parts[3])
	if err != nil {
		return RegisterRequest{}, malformed(fields, "bad max player count")
	}
	w, err := strconv.Atoi(parts[4])
	if err != nil {
		return RegisterRequest{}, malformed(fields, "bad width")
	}
	h, err := strconv.Atoi(parts[5])
	if err != nil {
		return RegisterRequest{}, malformed(fields, "bad height")
	}

	return RegisterRequest{
		Name:    parts[0],
		Port:    port,
		Current: cur,
		Max:     max,
		Width:   w,
		Height:  h,
		HasPass: parts[6] == "1",
		Code:    parts[7],
	}, nil
}

// EncodeRegister renders a REGISTER datagram the way a Game Server sends it
// (§4.1 "Discovery re-register").
func EncodeRegister(name string, port, cur, max, w, h int, hasPass bool, code string) string {
	pass := "0"
	if hasPass {
		pass = "1"
	}
	return fmt.Sprintf("REGISTER:%s,%d,%d,%d,%d,%d,%s,%s", name, port, cur, max, w, h, pass, code)
}

// DecodeHeartbeat parses the payload following "HEARTBEAT:", which is the
// directory key verbatim (§4.2).
func DecodeHeartbeat(key string) string { return key }

// EncodeHeartbeat renders a HEARTBEAT datagram the way a Game Server sends
// it, keyed identically to how the Discovery Service indexes REGISTER
// entries ("<ip>:<port>").
func EncodeHeartbeat(key string) string { return "HEARTBEAT:" + key }

// EncodeServers renders a QUERY reply: "SERVERS:<e1>;<e2>;...", empty list
// renders as "SERVERS:" (§4.2, §6).
func EncodeServers(entries []DirectoryEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		pass := "0"
		if e.HasPass {
			pass = "1"
		}
		parts[i] = fmt.Sprintf("%s,%s,%d,%d,%d,%d,%d,%s,%s",
			e.Name, e.Address, e.Port, e.Current, e.Max, e.Width, e.Height, pass, e.Code)
	}
	return "SERVERS:" + strings.Join(parts, ";")
}

// DecodeServers parses a QUERY reply back into DirectoryEntry values. Used
// by test harnesses and any future client-side tooling.
func DecodeServers(payload string) ([]DirectoryEntry, error) {
	list, ok := strings.CutPrefix(payload, "SERVERS:")
	if !ok {
		return nil, malformed(payload, "missing SERVERS: prefix")
	}
	if list == "" {
		return nil, nil
	}

	raw := strings.Split(list, ";")
	entries := make([]DirectoryEntry, 0, len(raw))
	for _, e := range raw {
		parts := strings.Split(e, ",")
		if len(parts) != 9 {
			return nil, malformed(e, fmt.Sprintf("want 9 fields, got %d", len(parts)))
		}
		port, err1 := strconv.Atoi(parts[2])
		cur, err2 := strconv.Atoi(parts[3])
		max, err3 := strconv.Atoi(parts[4])
		w, err4 := strconv.Atoi(parts[5])
		h, err5 := strconv.Atoi(parts[6])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			return nil, malformed(e, "bad numeric field")
		}
		entries = append(entries, DirectoryEntry{
			Name:    parts[0],
			Address: parts[1],
			Port:    port,
			Current: cur,
			Max:     max,
			Width:   w,
			Height:  h,
			HasPass: parts[7] == "1",
			Code:    parts[8],
		})
	}
	return entries, nil
}
