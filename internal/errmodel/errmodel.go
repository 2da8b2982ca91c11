// Package errmodel implements pluggable packet error-decision models.
//
// An error model flags packets as lost/errored or not. The main method is
// IsCorrupt, which reports whether the packet is to be corrupted according
// to the underlying model. Depending on the caller, the packet may then be
// dropped, tagged, or otherwise flagged — the model itself never touches
// packet data. Models can carry state (resettable by Reset) and can be
// enabled and disabled at any time.
//
// Typical usage inside a channel or device model:
//
//	m := errmodel.NewRateErrorModel()
//	m.SetRate(0.001)
//	...
//	if m.IsCorrupt(pkt) {
//	    dropTrace(pkt)
//	} else {
//	    forward(pkt)
//	}
//
// Models are not safe for concurrent use. The intended owner is a single
// channel/device model invoking decisions synchronously, one packet at a
// time; callers that need concurrency must serialize access themselves.
package errmodel

import "firestige.xyz/erratic/internal/core"

// ErrorModel decides, per packet, whether the packet is to be treated as
// corrupted by the caller.
type ErrorModel interface {
	// IsCorrupt reports whether p should be considered errored. A disabled
	// model returns false without consulting its decision logic, so no
	// random draws or other side effects occur while disabled.
	IsCorrupt(p *core.Packet) bool
	// Reset clears any decision state. The enabled flag is not decision
	// state and survives a Reset.
	Reset()
	// Enable turns the model on. Idempotent.
	Enable()
	// Disable turns the model off. Idempotent.
	Disable()
	// IsEnabled reports whether the model is on.
	IsEnabled() bool
}

// decider is the hook concrete models implement. Engine owns the enable
// gate, so a decider never sees a packet while the model is disabled.
type decider interface {
	corrupt(p *core.Packet) bool
	reset()
}

// Engine carries the enable gate shared by every model in this package.
// Concrete models embed it and register themselves as the decision hook,
// so the gate cannot be bypassed or forgotten by a model implementation.
type Engine struct {
	enabled bool
	hook    decider
}

func newEngine(hook decider) Engine {
	return Engine{enabled: true, hook: hook}
}

// IsCorrupt applies the enable gate and delegates to the model's decision
// hook.
func (e *Engine) IsCorrupt(p *core.Packet) bool {
	if !e.enabled {
		return false
	}
	return e.hook.corrupt(p)
}

// Reset clears the model's decision state, leaving the enabled flag as is.
func (e *Engine) Reset() {
	e.hook.reset()
}

// Enable turns the model on.
func (e *Engine) Enable() {
	e.enabled = true
}

// Disable turns the model off.
func (e *Engine) Disable() {
	e.enabled = false
}

// IsEnabled reports whether the model is on.
func (e *Engine) IsEnabled() bool {
	return e.enabled
}

// Default returns a preconfigured model for ad hoc use when no specific
// model is required: a rate model at byte granularity with rate 0, which
// corrupts nothing until configured.
func Default() ErrorModel {
	return NewRateErrorModel()
}
