package errmodel

import (
	"slices"

	"firestige.xyz/erratic/internal/core"
)

// ListErrorModel corrupts exactly the packets whose UIDs were configured.
// The targets form a set: duplicates collapse and no ordering is implied.
// UIDs may arrive in any order across decisions — a live simulation emits
// them monotonically, but the model does not rely on that.
//
// A caveat when picking multiple UIDs from a pre-recorded trace: erroring
// packet k upstream can change which UIDs are generated afterwards (a
// corrupted packet may trigger retransmission or renumbering elsewhere in
// the stack), so later entries in the trace are not guaranteed to hit the
// same logical packets once the list is applied live. Expect some trial
// and error when targeting more than one packet.
type ListErrorModel struct {
	Engine
	targets map[uint64]struct{}
}

// NewListErrorModel returns a list model with an empty target set.
func NewListErrorModel() *ListErrorModel {
	m := &ListErrorModel{targets: make(map[uint64]struct{})}
	m.Engine = newEngine(m)
	return m
}

// SetList replaces the target set in full; nothing from the previous set
// survives.
func (m *ListErrorModel) SetList(uids []uint64) {
	m.targets = make(map[uint64]struct{}, len(uids))
	for _, uid := range uids {
		m.targets[uid] = struct{}{}
	}
}

// List returns the target set as a sorted copy. Mutating the returned slice
// does not affect the model.
func (m *ListErrorModel) List() []uint64 {
	out := make([]uint64, 0, len(m.targets))
	for uid := range m.targets {
		out = append(out, uid)
	}
	slices.Sort(out)
	return out
}

func (m *ListErrorModel) corrupt(p *core.Packet) bool {
	_, ok := m.targets[p.UID]
	return ok
}

// reset clears the target set. Unlike RateErrorModel, this model's entire
// decision state is the list, so Reset empties it.
func (m *ListErrorModel) reset() {
	m.targets = make(map[uint64]struct{})
}
