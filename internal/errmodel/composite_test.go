package errmodel_test

import (
	"testing"

	"firestige.xyz/erratic/internal/errmodel"
)

func TestCompositeAnyChildCorrupts(t *testing.T) {
	never := errmodel.NewRateErrorModel() // rate 0
	listed := errmodel.NewListErrorModel()
	listed.SetList([]uint64{5})

	m := errmodel.NewCompositeErrorModel(never, listed)
	if !m.IsCorrupt(pkt(5, 100)) {
		t.Error("expected corruption from list child")
	}
	if m.IsCorrupt(pkt(6, 100)) {
		t.Error("no child targets uid 6")
	}
}

func TestCompositeShortCircuits(t *testing.T) {
	first := errmodel.NewListErrorModel()
	first.SetList([]uint64{5})

	src := &countingSource{src: fixedSource{v: 0.9}}
	second := errmodel.NewRateErrorModel()
	second.SetUnit(errmodel.UnitPacket)
	second.SetRate(0.5)
	second.SetRandomSource(src)

	m := errmodel.NewCompositeErrorModel(first, second)
	m.IsCorrupt(pkt(5, 100))
	if src.draws != 0 {
		t.Errorf("second child drew %d variates after first triggered, want 0", src.draws)
	}
}

func TestCompositeGateSilencesChildren(t *testing.T) {
	listed := errmodel.NewListErrorModel()
	listed.SetList([]uint64{5})

	m := errmodel.NewCompositeErrorModel(listed)
	m.Disable()
	if m.IsCorrupt(pkt(5, 100)) {
		t.Error("disabled composite must return false regardless of children")
	}
}

func TestCompositeDisabledChildVotesFalse(t *testing.T) {
	listed := errmodel.NewListErrorModel()
	listed.SetList([]uint64{5})
	listed.Disable()

	m := errmodel.NewCompositeErrorModel(listed)
	if m.IsCorrupt(pkt(5, 100)) {
		t.Error("disabled child must not corrupt through the composite")
	}
}

func TestCompositeResetCascades(t *testing.T) {
	listed := errmodel.NewListErrorModel()
	listed.SetList([]uint64{5})

	m := errmodel.NewCompositeErrorModel(listed)
	m.Reset()
	if listed.IsCorrupt(pkt(5, 100)) {
		t.Error("composite Reset must clear the child list model")
	}
}

func TestCompositeAddAndModelsCopy(t *testing.T) {
	m := errmodel.NewCompositeErrorModel()
	m.Add(errmodel.NewRateErrorModel())
	m.Add(errmodel.NewListErrorModel())

	got := m.Models()
	if len(got) != 2 {
		t.Fatalf("Models() len = %d, want 2", len(got))
	}
	got[0] = nil
	if m.Models()[0] == nil {
		t.Error("mutating the returned slice must not affect the composite")
	}
}
