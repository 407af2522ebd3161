package mmu

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/mem/vm/pagetable"
	"github.com/Victorgalves/VirtualMemory/mem/vm/tlb"
)

// A Builder can build MMU component
type Builder struct {
	log2PageSize uint64
	addressWidth uint64
	tlb          vm.TLB
	pageTable    vm.PageTable
	hitPolicy    HitPolicy
	shootdown    bool
}

// MakeBuilder creates a new builder
func MakeBuilder() Builder {
	return Builder{
		log2PageSize: vm.DefaultLog2PageSize,
		addressWidth: vm.DefaultAddressWidth,
		hitPolicy:    HitPolicyAuto,
		shootdown:    true,
	}
}

// WithLog2PageSize sets the page size that the mmu support.
func (b Builder) WithLog2PageSize(log2PageSize uint64) Builder {
	b.log2PageSize = log2PageSize
	return b
}

// WithAddressWidth sets the number of bits of a virtual address.
func (b Builder) WithAddressWidth(bits uint64) Builder {
	b.addressWidth = bits
	return b
}

// WithTLB sets the TLB that the MMU uses. If not set, a 16-entry TLB is
// created.
func (b Builder) WithTLB(t vm.TLB) Builder {
	b.tlb = t
	return b
}

// WithPageTable sets the page table that the MMU uses. If not set, a 128-frame
// FIFO page table is created.
func (b Builder) WithPageTable(pageTable vm.PageTable) Builder {
	b.pageTable = pageTable
	return b
}

// WithHitPolicy sets how TLB hits are handled.
func (b Builder) WithHitPolicy(p HitPolicy) Builder {
	b.hitPolicy = p
	return b
}

// WithTLBShootdown sets whether the TLB entry of an evicted page is
// invalidated. Without shootdown, the TLB may keep serving the frame of a page
// that is no longer resident.
func (b Builder) WithTLBShootdown(enabled bool) Builder {
	b.shootdown = enabled
	return b
}

// Build returns a newly created MMU component
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		name:       name,
		decomposer: vm.NewAddressDecomposer(b.log2PageSize, b.addressWidth),
		tlb:        b.tlb,
		pageTable:  b.pageTable,
		shootdown:  b.shootdown,
	}

	if c.tlb == nil {
		c.tlb = tlb.MakeBuilder().Build(name + ".TLB")
	}

	if c.pageTable == nil {
		c.pageTable = pagetable.MakeBuilder().Build()
	}

	c.hitPolicy = b.resolveHitPolicy(c.pageTable)

	return c
}

type policyReporter interface {
	Policy() pagetable.Policy
}

func (b Builder) resolveHitPolicy(pt vm.PageTable) HitPolicy {
	if b.hitPolicy != HitPolicyAuto {
		return b.hitPolicy
	}

	if r, ok := pt.(policyReporter); ok && r.Policy() == pagetable.PolicyLRU {
		return HitPolicyWalkAlways
	}

	return HitPolicyTLBFirst
}
