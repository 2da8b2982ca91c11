package errmodel

import (
	"fmt"
	"strings"

	"firestige.xyz/erratic/internal/core"
)

// ErrorUnit selects the granularity at which RateErrorModel performs
// independent corruption trials.
type ErrorUnit int

const (
	// UnitBit runs one trial per payload bit.
	UnitBit ErrorUnit = iota
	// UnitByte runs one trial per payload byte.
	UnitByte
	// UnitPacket runs a single trial per packet, regardless of length.
	UnitPacket
)

func (u ErrorUnit) String() string {
	switch u {
	case UnitBit:
		return "bit"
	case UnitByte:
		return "byte"
	case UnitPacket:
		return "packet"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseUnit maps a configuration token to an ErrorUnit.
func ParseUnit(s string) (ErrorUnit, error) {
	switch strings.ToLower(s) {
	case "bit":
		return UnitBit, nil
	case "byte":
		return UnitByte, nil
	case "packet", "pkt":
		return UnitPacket, nil
	default:
		return UnitByte, fmt.Errorf("%w: error unit %q (must be bit/byte/packet)", core.ErrConfigInvalid, s)
	}
}
