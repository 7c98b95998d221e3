package protocol

import (
	"fmt"
	"strings"

	"github.com/udisondev/blobarena/internal/sim"
)

// EncodeJoin renders the full join snapshot (§6):
// "UUID:<uuid>|MAP:<w>,<h>|POS:<x>,<y>|SIZE:<s>|COLOR:<r>,<g>,<b>|PLAYERS:<roster>|FOOD:<food>"
func EncodeJoin(snap sim.JoinSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "UUID:%s", snap.PlayerID)
	fmt.Fprintf(&b, "|MAP:%d,%d", snap.MapW, snap.MapH)
	fmt.Fprintf(&b, "|POS:%.2f,%.2f", snap.X, snap.Y)
	fmt.Fprintf(&b, "|SIZE:%.2f", snap.Size)
	fmt.Fprintf(&b, "|COLOR:%d,%d,%d", snap.Color.R, snap.Color.G, snap.Color.B)
	fmt.Fprintf(&b, "|PLAYERS:%s", encodeRoster(snap.Roster))
	fmt.Fprintf(&b, "|FOOD:%s", encodeFood(snap.Food))
	return b.String()
}

// EncodeDelta renders the per-input delta snapshot (§6):
// "POS:<x>,<y>|SIZE:<s>|PLAYERS:<roster>|FOOD:<food>"
func EncodeDelta(snap sim.DeltaSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "POS:%.2f,%.2f", snap.X, snap.Y)
	fmt.Fprintf(&b, "|SIZE:%.2f", snap.Size)
	fmt.Fprintf(&b, "|PLAYERS:%s", encodeRoster(snap.Roster))
	fmt.Fprintf(&b, "|FOOD:%s", encodeFood(snap.Food))
	return b.String()
}

// encodeRoster renders "uuid,name,x,y,size,r,g,b;..." (§6 Roster entry).
func encodeRoster(entries []sim.RosterEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s,%s,%.2f,%.2f,%.2f,%d,%d,%d",
			e.PlayerID, e.Name, e.X, e.Y, e.Size, e.Color.R, e.Color.G, e.Color.B)
	}
	return strings.Join(parts, ";")
}

// encodeFood renders "id,x,y,r,g,b;..." (§6 Food entry).
func encodeFood(entries []sim.FoodEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%d,%.2f,%.2f,%d,%d,%d",
			e.ID, e.X, e.Y, e.Color.R, e.Color.G, e.Color.B)
	}
	return strings.Join(parts, ";")
}
