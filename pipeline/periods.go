package pipeline

import (
	"maps"
	"slices"

	"github.com/jetsetilly/apuconv/hardware/apu"
)

// PeriodSet is the set of distinct pulse wavelengths seen in a trace. the
// zero value is ready to use
type PeriodSet struct {
	seen map[apu.Wavelength]struct{}
}

// Insert adds the wavelength to the set. returns true if the wavelength was
// not already in the set
func (ps *PeriodSet) Insert(w apu.Wavelength) bool {
	if ps.seen == nil {
		ps.seen = make(map[apu.Wavelength]struct{})
	}
	if _, ok := ps.seen[w]; ok {
		return false
	}
	ps.seen[w] = struct{}{}
	return true
}

// Contains returns true if the wavelength is in the set
func (ps *PeriodSet) Contains(w apu.Wavelength) bool {
	_, ok := ps.seen[w]
	return ok
}

func (ps *PeriodSet) Len() int {
	return len(ps.seen)
}

// Sorted returns the wavelengths in the set in ascending order
func (ps *PeriodSet) Sorted() []apu.Wavelength {
	return slices.Sorted(maps.Keys(ps.seen))
}
