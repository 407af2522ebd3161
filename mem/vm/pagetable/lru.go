package pagetable

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm"
)

// lruTable fills frames densely and, once full, replaces the page that was
// accessed the longest time ago. The new page takes over the victim's frame.
//
// Every access to the table, hit or fault, advances a logical clock. Pages
// with equal timestamps are ordered by when they were inserted.
type lruTable struct {
	capacity int

	pages      []vm.Page
	lastAccess []uint64
	insertedAt []uint64
	index      map[vm.PageKey]int

	clock       uint64
	insertCount uint64
	numFaults   uint64
}

func newLRUTable(capacity int) *lruTable {
	return &lruTable{
		capacity:   capacity,
		pages:      make([]vm.Page, 0, capacity),
		lastAccess: make([]uint64, 0, capacity),
		insertedAt: make([]uint64, 0, capacity),
		index:      make(map[vm.PageKey]int, capacity),
	}
}

func (t *lruTable) Policy() Policy {
	return PolicyLRU
}

func (t *lruTable) Find(vpn vm.PageKey) (vm.Page, bool) {
	frame, found := t.index[vpn]
	if !found {
		return vm.Page{}, false
	}

	t.visit(frame)

	return t.pages[frame], true
}

func (t *lruTable) FaultIn(page vm.Page) (
	frame int,
	evicted vm.Page,
	wasEvicted bool,
) {
	if _, found := t.index[page.VPN]; found {
		panic("page exist")
	}

	t.numFaults++

	if len(t.pages) < t.capacity {
		frame = len(t.pages)
		t.pages = append(t.pages, vm.Page{})
		t.lastAccess = append(t.lastAccess, 0)
		t.insertedAt = append(t.insertedAt, 0)
	} else {
		frame = t.findVictim()
		evicted = t.pages[frame]
		wasEvicted = true
		delete(t.index, evicted.VPN)
	}

	page.Frame = frame
	t.pages[frame] = page
	t.index[page.VPN] = frame

	t.insertCount++
	t.insertedAt[frame] = t.insertCount
	t.visit(frame)

	return frame, evicted, wasEvicted
}

func (t *lruTable) visit(frame int) {
	t.lastAccess[frame] = t.clock
	t.clock++
}

// findVictim returns the frame of the least recently used page.
func (t *lruTable) findVictim() int {
	victim := 0
	for frame := 1; frame < len(t.pages); frame++ {
		if t.lessRecent(frame, victim) {
			victim = frame
		}
	}

	return victim
}

func (t *lruTable) lessRecent(a, b int) bool {
	if t.lastAccess[a] != t.lastAccess[b] {
		return t.lastAccess[a] < t.lastAccess[b]
	}

	return t.insertedAt[a] < t.insertedAt[b]
}

func (t *lruTable) Pages() []vm.Page {
	pages := make([]vm.Page, len(t.pages))
	copy(pages, t.pages)

	return pages
}

func (t *lruTable) Len() int {
	return len(t.pages)
}

func (t *lruTable) Capacity() int {
	return t.capacity
}

func (t *lruTable) NumFaults() uint64 {
	return t.numFaults
}
