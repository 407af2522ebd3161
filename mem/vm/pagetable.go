package vm

// A PageKey is the page-number portion of a virtual address. Two keys refer to
// the same page if and only if their values are equal.
type PageKey uint64

// A Page is an entry in the page table, maintaining the information about how
// to translate a virtual address to a physical address.
type Page struct {
	VPN PageKey

	// VAddr is the address whose access faulted the page in. Offset is the
	// in-page part of that address. Both are kept for diagnostics only.
	VAddr  uint64
	Offset uint64

	// Frame is assigned by the page table. It is not derived from the VPN.
	Frame int
}

// A PageTable holds the resident pages of the simulated process.
type PageTable interface {
	// Find returns the resident page with the given key. Depending on the
	// replacement policy, a successful Find counts as an access.
	Find(vpn PageKey) (Page, bool)

	// FaultIn makes a page resident. It must only be called after Find
	// reported a miss. If the table is full, a victim is evicted first and
	// returned together with wasEvicted set.
	FaultIn(page Page) (frame int, evicted Page, wasEvicted bool)

	// Pages returns the resident pages ordered by frame.
	Pages() []Page

	// Len returns the number of resident pages.
	Len() int

	// Capacity returns the maximum number of resident pages.
	Capacity() int

	// NumFaults returns how many times FaultIn has been called.
	NumFaults() uint64
}

// A TLB caches recent page-number to frame mappings.
type TLB interface {
	Lookup(vpn PageKey) (frame int, found bool)
	Upsert(vpn PageKey, frame int)
	Invalidate(vpn PageKey) bool
	SlotOf(vpn PageKey) int
}
