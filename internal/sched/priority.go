package sched

import (
	"fmt"
	"strconv"
	"strings"
)

// Default weights for the standard tiers.
const (
	weightLow    uint32 = 10
	weightNormal uint32 = 50
	weightHigh   uint32 = 100
)

type tierClass uint8

const (
	classLow tierClass = iota
	classNormal
	classHigh
	classCustom
)

// Priority identifies a scheduling tier. The zero value is Low.
//
// Equality and ordering are defined on the resolved weight, not on the
// variant: Custom(100) is the same tier as High. Because of that,
// Priority values must be compared with Equal or Compare, never with ==.
type Priority struct {
	class  tierClass
	custom uint32
}

// The standard tiers.
var (
	Low    = Priority{class: classLow}
	Normal = Priority{class: classNormal}
	High   = Priority{class: classHigh}
)

// Custom returns a tier with an explicit weight.
func Custom(weight uint32) Priority {
	return Priority{class: classCustom, custom: weight}
}

// Weight resolves the intrinsic weight of the tier. It is a pure
// function of the variant; configured weight-table overrides never
// change this value.
func (p Priority) Weight() uint32 {
	switch p.class {
	case classLow:
		return weightLow
	case classNormal:
		return weightNormal
	case classHigh:
		return weightHigh
	default:
		return p.custom
	}
}

// Equal reports whether two priorities name the same tier.
func (p Priority) Equal(o Priority) bool {
	return p.Weight() == o.Weight()
}

// Compare orders priorities by resolved weight. It returns -1, 0 or 1.
func (p Priority) Compare(o Priority) int {
	switch {
	case p.Weight() < o.Weight():
		return -1
	case p.Weight() > o.Weight():
		return 1
	default:
		return 0
	}
}

var strTierMap = map[tierClass]string{
	classLow:    "low",
	classNormal: "normal",
	classHigh:   "high",
}

var tierStrMap = map[string]Priority{
	"low":    Low,
	"normal": Normal,
	"high":   High,
}

func (p Priority) String() string {
	if s, ok := strTierMap[p.class]; ok {
		return s
	}
	return fmt.Sprintf("custom(%d)", p.custom)
}

// ParsePriority converts a tier name to a Priority. The standard names
// "low", "normal" and "high" map to their tiers; a bare integer maps to
// a custom tier with that weight.
func ParsePriority(s string) (Priority, error) {
	if p, ok := tierStrMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	w, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return Priority{}, fmt.Errorf("unknown priority %q", s)
	}
	return Custom(uint32(w)), nil
}
