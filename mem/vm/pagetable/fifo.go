package pagetable

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm"
)

// fifoTable keeps the pages in a circular buffer. The slot a page lands in is
// its frame. When the buffer is full, the page at the front, which is the
// oldest one by insertion, is replaced.
type fifoTable struct {
	slots    []vm.Page
	occupied []bool
	index    map[vm.PageKey]int

	front int
	rear  int
	count int

	numFaults uint64
}

func newFIFOTable(capacity int) *fifoTable {
	return &fifoTable{
		slots:    make([]vm.Page, capacity),
		occupied: make([]bool, capacity),
		index:    make(map[vm.PageKey]int, capacity),
		rear:     -1,
	}
}

func (t *fifoTable) Policy() Policy {
	return PolicyFIFO
}

func (t *fifoTable) Find(vpn vm.PageKey) (vm.Page, bool) {
	frame, found := t.index[vpn]
	if !found {
		return vm.Page{}, false
	}

	return t.slots[frame], true
}

func (t *fifoTable) FaultIn(page vm.Page) (
	frame int,
	evicted vm.Page,
	wasEvicted bool,
) {
	t.pageMustNotExist(page.VPN)
	t.numFaults++

	if t.isFull() {
		evicted = t.deleteFront()
		wasEvicted = true
	}

	t.rear = (t.rear + 1) % len(t.slots)
	frame = t.rear

	page.Frame = frame
	t.slots[frame] = page
	t.occupied[frame] = true
	t.index[page.VPN] = frame
	t.count++

	return frame, evicted, wasEvicted
}

func (t *fifoTable) deleteFront() vm.Page {
	page := t.slots[t.front]

	delete(t.index, page.VPN)
	t.occupied[t.front] = false
	t.front = (t.front + 1) % len(t.slots)
	t.count--

	return page
}

func (t *fifoTable) isFull() bool {
	return t.count == len(t.slots)
}

func (t *fifoTable) Pages() []vm.Page {
	pages := make([]vm.Page, 0, t.count)
	for i, p := range t.slots {
		if t.occupied[i] {
			pages = append(pages, p)
		}
	}

	return pages
}

func (t *fifoTable) Len() int {
	return t.count
}

func (t *fifoTable) Capacity() int {
	return len(t.slots)
}

func (t *fifoTable) NumFaults() uint64 {
	return t.numFaults
}

func (t *fifoTable) pageMustNotExist(vpn vm.PageKey) {
	if _, found := t.index[vpn]; found {
		panic("page exist")
	}
}
