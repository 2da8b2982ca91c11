package errmodel

import "firestige.xyz/erratic/internal/core"

// CompositeErrorModel chains child models: a packet is corrupt as soon as
// any child reports it corrupt. Children are consulted in insertion order
// and evaluation short-circuits, so draw-consuming children after the first
// trigger are not consulted for that packet. Disabled children vote false
// through their own gates; disabling the composite silences the whole
// chain.
type CompositeErrorModel struct {
	Engine
	models []ErrorModel
}

// NewCompositeErrorModel returns a composite over the given children.
func NewCompositeErrorModel(models ...ErrorModel) *CompositeErrorModel {
	m := &CompositeErrorModel{models: models}
	m.Engine = newEngine(m)
	return m
}

// Add appends a child model to the end of the chain.
func (m *CompositeErrorModel) Add(child ErrorModel) {
	m.models = append(m.models, child)
}

// Models returns a copy of the child list.
func (m *CompositeErrorModel) Models() []ErrorModel {
	out := make([]ErrorModel, len(m.models))
	copy(out, m.models)
	return out
}

func (m *CompositeErrorModel) corrupt(p *core.Packet) bool {
	for _, child := range m.models {
		if child.IsCorrupt(p) {
			return true
		}
	}
	return false
}

// reset cascades to every child. Child enabled flags are untouched, same as
// the composite's own.
func (m *CompositeErrorModel) reset() {
	for _, child := range m.models {
		child.Reset()
	}
}
