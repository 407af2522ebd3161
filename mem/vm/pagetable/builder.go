// Package pagetable provides page tables with FIFO and LRU replacement.
package pagetable

import (
	"fmt"

	"github.com/Victorgalves/VirtualMemory/mem/vm"
)

// A Table is a page table that knows its replacement policy.
type Table interface {
	vm.PageTable

	Policy() Policy
}

// A Builder can build page tables.
type Builder struct {
	capacity int
	policy   Policy
}

// MakeBuilder returns a Builder with 128 frames and FIFO replacement.
func MakeBuilder() Builder {
	return Builder{
		capacity: 128,
		policy:   PolicyFIFO,
	}
}

// WithCapacity sets the number of frames.
func (b Builder) WithCapacity(n int) Builder {
	b.capacity = n
	return b
}

// WithPolicy sets the replacement policy.
func (b Builder) WithPolicy(p Policy) Builder {
	b.policy = p
	return b
}

// Build creates a new page table.
func (b Builder) Build() Table {
	if b.capacity <= 0 {
		panic("a page table must have at least one frame")
	}

	switch b.policy {
	case PolicyFIFO:
		return newFIFOTable(b.capacity)
	case PolicyLRU:
		return newLRUTable(b.capacity)
	default:
		panic(fmt.Sprintf("unsupported policy %s", b.policy))
	}
}
