package mmu

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/sim/hooking"
)

// Hook positions triggered by the MMU. The item of the hook context is given
// in parentheses.
var (
	// HookPosTLBHit marks that the TLB held the page (vm.PageKey).
	HookPosTLBHit = &hooking.HookPos{Name: "TLBHit"}

	// HookPosTLBMiss marks that the TLB did not hold the page (vm.PageKey).
	HookPosTLBMiss = &hooking.HookPos{Name: "TLBMiss"}

	// HookPosPageFault marks that a page has been faulted in (vm.Page).
	HookPosPageFault = &hooking.HookPos{Name: "PageFault"}

	// HookPosPageEvict marks that a page has left the page table (vm.Page).
	HookPosPageEvict = &hooking.HookPos{Name: "PageEvict"}

	// HookPosTranslated marks the end of a translation (vm.Translation).
	HookPosTranslated = &hooking.HookPos{Name: "Translated"}
)

// Comp is the default mmu implementation. It translates virtual addresses
// through a TLB backed by a page table.
type Comp struct {
	hooking.HookableBase

	name string

	decomposer vm.AddressDecomposer
	tlb        vm.TLB
	pageTable  vm.PageTable

	hitPolicy HitPolicy
	shootdown bool

	stats Stats
}

// Name returns the name of the MMU.
func (c *Comp) Name() string {
	return c.name
}

// HitPolicy returns how TLB hits are handled.
func (c *Comp) HitPolicy() HitPolicy {
	return c.hitPolicy
}

// Decomposer returns the address decomposer used by the MMU.
func (c *Comp) Decomposer() vm.AddressDecomposer {
	return c.decomposer
}

// TLB returns the TLB of the MMU.
func (c *Comp) TLB() vm.TLB {
	return c.tlb
}

// PageTable returns the page table of the MMU.
func (c *Comp) PageTable() vm.PageTable {
	return c.pageTable
}

// Stats returns a copy of the counters.
func (c *Comp) Stats() Stats {
	return c.stats
}

// Translate resolves the frame that holds the virtual address and computes the
// physical address. It never fails: if the page table is full, a page is
// evicted to make room.
func (c *Comp) Translate(vAddr uint64) vm.Translation {
	vpn, offset := c.decomposer.Decompose(vAddr)

	t := vm.Translation{
		VAddr:  vAddr,
		VPN:    vpn,
		Offset: offset,
	}

	switch c.hitPolicy {
	case HitPolicyWalkAlways:
		c.translateWalkAlways(&t)
	default:
		c.translateTLBFirst(&t)
	}

	t.PAddr = c.decomposer.PhysicalAddress(t.Frame, offset)
	t.TLBSlot = c.tlb.SlotOf(vpn)

	c.stats.Translated++
	if t.TLBHit {
		c.stats.TLBHits++
	}

	if t.PageFault {
		c.stats.PageFaults++
	}

	c.invokeHook(HookPosTranslated, t)

	return t
}

// translateTLBFirst does not consult the page table when the TLB hits.
func (c *Comp) translateTLBFirst(t *vm.Translation) {
	frame, found := c.tlb.Lookup(t.VPN)
	if found {
		t.TLBHit = true
		t.Frame = frame
		c.invokeHook(HookPosTLBHit, t.VPN)

		return
	}

	c.invokeHook(HookPosTLBMiss, t.VPN)

	t.Frame, t.PageFault = c.walkPageTable(t)
	c.tlb.Upsert(t.VPN, t.Frame)
}

// translateWalkAlways probes the page table on every access, so that hits in
// the TLB still count as page table accesses. The TLB entry is refreshed with
// the frame found in the page table.
func (c *Comp) translateWalkAlways(t *vm.Translation) {
	_, inTLB := c.tlb.Lookup(t.VPN)

	t.Frame, t.PageFault = c.walkPageTable(t)
	t.TLBHit = inTLB && !t.PageFault

	if t.TLBHit {
		c.invokeHook(HookPosTLBHit, t.VPN)
	} else {
		c.invokeHook(HookPosTLBMiss, t.VPN)
	}

	c.tlb.Upsert(t.VPN, t.Frame)
}

func (c *Comp) walkPageTable(t *vm.Translation) (frame int, fault bool) {
	c.stats.PageTableWalks++

	page, found := c.pageTable.Find(t.VPN)
	if found {
		c.stats.PageTableHits++
		return page.Frame, false
	}

	page = vm.Page{
		VPN:    t.VPN,
		VAddr:  t.VAddr,
		Offset: t.Offset,
	}

	frame, evicted, wasEvicted := c.pageTable.FaultIn(page)
	if wasEvicted {
		c.evict(evicted)
	}

	page.Frame = frame
	c.invokeHook(HookPosPageFault, page)

	return frame, true
}

func (c *Comp) evict(page vm.Page) {
	c.stats.Evictions++

	if c.shootdown && c.tlb.Invalidate(page.VPN) {
		c.stats.Shootdowns++
	}

	c.invokeHook(HookPosPageEvict, page)
}

func (c *Comp) invokeHook(pos *hooking.HookPos, item interface{}) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   item,
	})
}
