package errmodel_test

import (
	"testing"

	"firestige.xyz/erratic/internal/core"
	"firestige.xyz/erratic/internal/errmodel"
)

// fixedSource always returns the same variate.
type fixedSource struct {
	v float64
}

func (s fixedSource) Float64() float64 { return s.v }

// seqSource replays a scripted sequence of variates, cycling at the end.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// countingSource counts draws taken from the wrapped source.
type countingSource struct {
	src   errmodel.UniformSource
	draws int
}

func (s *countingSource) Float64() float64 {
	s.draws++
	return s.src.Float64()
}

func pkt(uid uint64, length uint32) *core.Packet {
	return &core.Packet{UID: uid, Length: length}
}

func TestDisabledModelNeverCorrupts(t *testing.T) {
	rate := errmodel.NewRateErrorModel()
	rate.SetRate(1.0)
	rate.SetUnit(errmodel.UnitPacket)

	list := errmodel.NewListErrorModel()
	list.SetList([]uint64{7})

	models := map[string]errmodel.ErrorModel{
		"rate": rate,
		"list": list,
	}
	for name, m := range models {
		m.Disable()
		if m.IsCorrupt(pkt(7, 100)) {
			t.Errorf("%s: disabled model must return false", name)
		}
		if m.IsEnabled() {
			t.Errorf("%s: IsEnabled should report false after Disable", name)
		}
	}
}

func TestDisabledModelConsumesNoDraws(t *testing.T) {
	src := &countingSource{src: fixedSource{v: 0.0}}
	m := errmodel.NewRateErrorModel()
	m.SetRate(1.0)
	m.SetRandomSource(src)
	m.Disable()

	m.IsCorrupt(pkt(1, 100))
	if src.draws != 0 {
		t.Errorf("disabled model consumed %d draws, want 0", src.draws)
	}
}

func TestEnableDisableIdempotent(t *testing.T) {
	m := errmodel.Default()
	m.Disable()
	m.Disable()
	if m.IsEnabled() {
		t.Error("expected disabled after double Disable")
	}
	m.Enable()
	m.Enable()
	if !m.IsEnabled() {
		t.Error("expected enabled after double Enable")
	}
}

func TestResetPreservesEnabledFlag(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.Disable()
	m.Reset()
	if m.IsEnabled() {
		t.Error("Reset must not re-enable a disabled model")
	}

	m.Enable()
	m.Reset()
	if !m.IsEnabled() {
		t.Error("Reset must not disable an enabled model")
	}
}

func TestDefaultModelIsInertUntilConfigured(t *testing.T) {
	m := errmodel.Default()
	if !m.IsEnabled() {
		t.Error("default model should start enabled")
	}
	for i := 0; i < 100; i++ {
		if m.IsCorrupt(pkt(uint64(i), 1500)) {
			t.Fatal("default model (rate 0) must never corrupt")
		}
	}
}
