package errmodel_test

import (
	"errors"
	"testing"

	"firestige.xyz/erratic/internal/core"
	"firestige.xyz/erratic/internal/errmodel"
)

func TestUnitString(t *testing.T) {
	cases := map[errmodel.ErrorUnit]string{
		errmodel.UnitBit:    "bit",
		errmodel.UnitByte:   "byte",
		errmodel.UnitPacket: "packet",
	}
	for u, want := range cases {
		if got := u.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", u, got, want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	cases := map[string]errmodel.ErrorUnit{
		"bit":    errmodel.UnitBit,
		"byte":   errmodel.UnitByte,
		"BYTE":   errmodel.UnitByte,
		"packet": errmodel.UnitPacket,
		"pkt":    errmodel.UnitPacket,
	}
	for s, want := range cases {
		got, err := errmodel.ParseUnit(s)
		if err != nil {
			t.Errorf("ParseUnit(%q) error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseUnit(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseUnitUnknown(t *testing.T) {
	_, err := errmodel.ParseUnit("nibble")
	if !errors.Is(err, core.ErrConfigInvalid) {
		t.Errorf("ParseUnit unknown token: err = %v, want ErrConfigInvalid", err)
	}
}
