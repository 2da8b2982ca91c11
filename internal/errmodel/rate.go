package errmodel

import "firestige.xyz/erratic/internal/core"

// RateErrorModel corrupts packets probabilistically according to a rate and
// a unit. The rate is a per-trial probability and is never rescaled by the
// unit: choosing a finer unit raises the number of trials, not the meaning
// of the rate. Trials run in position order from the start of the packet
// and stop at the first trigger, so the number of draws consumed before a
// decision is observable under a seeded source and stays reproducible.
//
// Rates outside [0,1] are absorbed rather than rejected: a rate at or above
// 1 corrupts every packet with at least one trial, a rate at or below 0
// corrupts nothing.
type RateErrorModel struct {
	Engine
	unit ErrorUnit
	rate float64
	src  UniformSource
}

// NewRateErrorModel returns a rate model with byte unit, rate 0 and a
// default seeded uniform source.
func NewRateErrorModel() *RateErrorModel {
	m := &RateErrorModel{
		unit: UnitByte,
		src:  NewDefaultSource(defaultSeed),
	}
	m.Engine = newEngine(m)
	return m
}

// Unit returns the trial granularity.
func (m *RateErrorModel) Unit() ErrorUnit {
	return m.unit
}

// SetUnit sets the trial granularity.
func (m *RateErrorModel) SetUnit(u ErrorUnit) {
	m.unit = u
}

// Rate returns the per-trial corruption probability.
func (m *RateErrorModel) Rate() float64 {
	return m.rate
}

// SetRate sets the per-trial corruption probability. Any value is accepted;
// see the type comment for how out-of-range values behave.
func (m *RateErrorModel) SetRate(rate float64) {
	m.rate = rate
}

// SetRandomSource replaces the uniform source. The replacement takes effect
// on the next decision.
func (m *RateErrorModel) SetRandomSource(src UniformSource) {
	m.src = src
}

func (m *RateErrorModel) corrupt(p *core.Packet) bool {
	switch m.unit {
	case UnitPacket:
		return m.src.Float64() < m.rate
	case UnitByte:
		return m.corruptN(uint64(p.Length))
	case UnitBit:
		return m.corruptN(p.Bits())
	default:
		return false
	}
}

// corruptN runs up to n independent trials in position order, returning on
// the first variate below the rate. Trial order must stay sequential from
// position 0: draw consumption is part of the observable behavior.
func (m *RateErrorModel) corruptN(n uint64) bool {
	for i := uint64(0); i < n; i++ {
		if m.src.Float64() < m.rate {
			return true
		}
	}
	return false
}

// reset is intentionally a no-op: the model keeps no memory of past
// decisions, so there is nothing to clear. The source's sequence state is
// owned by the source, not the model.
func (m *RateErrorModel) reset() {}
