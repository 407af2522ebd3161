package tlb

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/mem/vm/tlb/internal"
)

// Comp is a fully-associative cache (TLB) that maintains page-to-frame
// mappings. Entries are replaced in FIFO order.
type Comp struct {
	name       string
	numEntries int

	set internal.Set
}

// A Mapping is a page-to-frame mapping currently held by the TLB.
type Mapping struct {
	Slot  int
	VPN   vm.PageKey
	Frame int
}

// Name returns the name of the TLB.
func (c *Comp) Name() string {
	return c.name
}

// Capacity returns the number of entries the TLB can hold.
func (c *Comp) Capacity() int {
	return c.numEntries
}

// Len returns the number of valid entries.
func (c *Comp) Len() int {
	return c.set.Len()
}

// Lookup returns the frame cached for the page.
func (c *Comp) Lookup(vpn vm.PageKey) (frame int, found bool) {
	_, frame, found = c.set.Lookup(vpn)
	return frame, found
}

// Upsert caches a mapping. An existing entry for the page is overwritten in
// place and keeps its age. Otherwise the oldest entry is evicted if the TLB is
// full.
func (c *Comp) Upsert(vpn vm.PageKey, frame int) {
	wayID, _, found := c.set.Lookup(vpn)
	if found {
		c.set.Update(wayID, frame)
		return
	}

	if c.set.IsFull() {
		_, ok := c.set.Evict()
		if !ok {
			panic("failed to evict")
		}
	}

	c.set.Insert(vpn, frame)
}

// Invalidate removes the mapping of the page, if any. It returns whether an
// entry was removed.
func (c *Comp) Invalidate(vpn vm.PageKey) bool {
	wayID, _, found := c.set.Lookup(vpn)
	if !found {
		return false
	}

	c.set.Invalidate(wayID)

	return true
}

// SlotOf returns the slot holding the page, or -1 if the page is not cached.
func (c *Comp) SlotOf(vpn vm.PageKey) int {
	wayID, _, found := c.set.Lookup(vpn)
	if !found {
		return -1
	}

	return wayID
}

// Entries returns the valid entries ordered by slot.
func (c *Comp) Entries() []Mapping {
	setEntries := c.set.Entries()

	entries := make([]Mapping, 0, len(setEntries))
	for _, e := range setEntries {
		entries = append(entries, Mapping{
			Slot:  e.WayID,
			VPN:   e.VPN,
			Frame: e.Frame,
		})
	}

	return entries
}

// Flush sets all the entries in the TLB to be invalid.
func (c *Comp) Flush() {
	c.set.Reset()
}
