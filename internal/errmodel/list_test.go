package errmodel_test

import (
	"slices"
	"testing"

	"firestige.xyz/erratic/internal/errmodel"
)

func TestListMembershipDecision(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.SetList([]uint64{5, 9})

	if !m.IsCorrupt(pkt(5, 100)) {
		t.Error("uid 5 is listed, expected corrupt")
	}
	if !m.IsCorrupt(pkt(9, 100)) {
		t.Error("uid 9 is listed, expected corrupt")
	}
	if m.IsCorrupt(pkt(7, 100)) {
		t.Error("uid 7 is not listed, expected clean")
	}
}

func TestListEmptyNeverCorrupts(t *testing.T) {
	m := errmodel.NewListErrorModel()
	for i := 0; i < 100; i++ {
		if m.IsCorrupt(pkt(uint64(i), 100)) {
			t.Fatal("empty list must never corrupt")
		}
	}
}

func TestListToleratesArbitraryUIDOrder(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.SetList([]uint64{100, 3, 50})

	// UIDs arrive out of order across calls; membership alone decides.
	for _, uid := range []uint64{50, 3, 100, 3, 50} {
		if !m.IsCorrupt(pkt(uid, 100)) {
			t.Errorf("uid %d listed but reported clean", uid)
		}
	}
}

func TestListSetReplacesWholesale(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.SetList([]uint64{1, 2, 3})
	m.SetList([]uint64{4})

	if m.IsCorrupt(pkt(1, 100)) {
		t.Error("uid 1 from the discarded list must not corrupt")
	}
	if !m.IsCorrupt(pkt(4, 100)) {
		t.Error("uid 4 from the new list must corrupt")
	}
}

func TestListDuplicatesCollapse(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.SetList([]uint64{9, 9, 9, 5})

	got := m.List()
	want := []uint64{5, 9}
	if !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestListReturnsIndependentCopy(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.SetList([]uint64{5, 9})

	got := m.List()
	for i := range got {
		got[i] = 12345
	}

	if !m.IsCorrupt(pkt(5, 100)) || !m.IsCorrupt(pkt(9, 100)) {
		t.Error("mutating the returned list must not affect the model")
	}
	if m.IsCorrupt(pkt(12345, 100)) {
		t.Error("mutating the returned list must not add targets")
	}
}

func TestListResetClearsTargets(t *testing.T) {
	m := errmodel.NewListErrorModel()
	m.SetList([]uint64{5, 9})
	m.Reset()

	if m.IsCorrupt(pkt(5, 100)) || m.IsCorrupt(pkt(9, 100)) {
		t.Error("previously listed uids must be clean after Reset")
	}
	if got := m.List(); len(got) != 0 {
		t.Errorf("List() after Reset = %v, want empty", got)
	}
}
