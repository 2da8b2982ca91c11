// Package core defines core data structures with zero external dependencies.
package core

import (
	"net/netip"
	"time"
)

// Packet is the unit of decision for error models. It carries identity and
// size only; payload bytes never pass through this package and are never
// modified by any decision.
type Packet struct {
	UID       uint64     // Stable unique identifier, monotone within a source
	Length    uint32     // Payload length in bytes
	Timestamp time.Time  // Capture or generation timestamp
	SrcIP     netip.Addr // Optional network context, used only for log fields
	DstIP     netip.Addr
}

// Bits returns the packet length in bits.
func (p *Packet) Bits() uint64 {
	return uint64(p.Length) * 8
}
