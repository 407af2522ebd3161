// Package internal provides the definition required for defining TLB.
package internal

import (
	"github.com/Victorgalves/VirtualMemory/mem/vm"
)

// A Set holds a certain number of page-to-frame mappings. Entries leave the
// set in the order they were inserted.
type Set interface {
	Lookup(vpn vm.PageKey) (wayID int, frame int, found bool)
	Insert(vpn vm.PageKey, frame int) (wayID int)
	Update(wayID int, frame int)
	Evict() (wayID int, ok bool)
	Invalidate(wayID int)
	IsFull() bool
	Len() int
	Entries() []Entry
	Reset()
}

// An Entry is a valid mapping held by a way of the set.
type Entry struct {
	WayID int
	VPN   vm.PageKey
	Frame int
}

// NewSet creates a new TLB set.
func NewSet(numWays int) Set {
	if numWays <= 0 {
		panic("a set must have at least one way")
	}

	s := &SetImpl{}
	s.blocks = make([]*block, numWays)
	for i := range s.blocks {
		s.blocks[i] = &block{wayID: i}
	}

	return s
}

// block is the same as a way.
type block struct {
	wayID int
	vpn   vm.PageKey
	frame int
	valid bool

	insertedAt uint64
}

// SetImpl is the default Set. Lookups scan all the ways.
type SetImpl struct {
	blocks      []*block
	numValid    int
	insertCount uint64
}

// Lookup finds the way that holds the page.
func (s *SetImpl) Lookup(vpn vm.PageKey) (wayID int, frame int, found bool) {
	for _, b := range s.blocks {
		if b.valid && b.vpn == vpn {
			return b.wayID, b.frame, true
		}
	}

	return 0, 0, false
}

// Insert places a mapping into the lowest free way. The set must not be full.
func (s *SetImpl) Insert(vpn vm.PageKey, frame int) (wayID int) {
	for _, b := range s.blocks {
		if b.valid {
			continue
		}

		s.insertCount++
		b.vpn = vpn
		b.frame = frame
		b.valid = true
		b.insertedAt = s.insertCount
		s.numValid++

		return b.wayID
	}

	panic("inserting into a full set")
}

// Update overwrites the frame of a way without changing its age.
func (s *SetImpl) Update(wayID int, frame int) {
	b := s.blocks[wayID]
	if !b.valid {
		panic("updating an invalid way")
	}

	b.frame = frame
}

// Evict invalidates the way that was filled the longest time ago.
func (s *SetImpl) Evict() (wayID int, ok bool) {
	var oldest *block
	for _, b := range s.blocks {
		if !b.valid {
			continue
		}

		if oldest == nil || b.insertedAt < oldest.insertedAt {
			oldest = b
		}
	}

	if oldest == nil {
		return 0, false
	}

	s.Invalidate(oldest.wayID)

	return oldest.wayID, true
}

// Invalidate frees a way.
func (s *SetImpl) Invalidate(wayID int) {
	b := s.blocks[wayID]
	if !b.valid {
		return
	}

	b.valid = false
	s.numValid--
}

// IsFull tells if all the ways hold a mapping.
func (s *SetImpl) IsFull() bool {
	return s.numValid == len(s.blocks)
}

// Len returns the number of valid ways.
func (s *SetImpl) Len() int {
	return s.numValid
}

// Entries lists the valid ways in way order.
func (s *SetImpl) Entries() []Entry {
	entries := make([]Entry, 0, s.numValid)
	for _, b := range s.blocks {
		if b.valid {
			entries = append(entries, Entry{
				WayID: b.wayID,
				VPN:   b.vpn,
				Frame: b.frame,
			})
		}
	}

	return entries
}

// Reset invalidates all the ways.
func (s *SetImpl) Reset() {
	for _, b := range s.blocks {
		b.valid = false
	}

	s.numValid = 0
	s.insertCount = 0
}
