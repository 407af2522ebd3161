package tlb

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm/tlb/internal"
)

// A Builder can build TLBs
type Builder struct {
	numEntries int
}

// MakeBuilder returns a Builder
func MakeBuilder() Builder {
	return Builder{
		numEntries: 16,
	}
}

// WithNumEntries sets the number of entries in the TLB.
func (b Builder) WithNumEntries(n int) Builder {
	b.numEntries = n
	return b
}

// Build creates a new TLB
func (b Builder) Build(name string) *Comp {
	if b.numEntries <= 0 {
		panic("a TLB must have at least one entry")
	}

	tlb := &Comp{
		name:       name,
		numEntries: b.numEntries,
	}
	tlb.set = internal.NewSet(b.numEntries)

	return tlb
}
