// Package vm provides the models for address translations
package vm

// A Translation is the result of translating one virtual address.
type Translation struct {
	VAddr  uint64
	VPN    PageKey
	Offset uint64

	Frame int
	PAddr uint64

	// TLBHit reports that the TLB held the page before the access.
	TLBHit bool

	// PageFault reports that the page was not resident and had to be
	// faulted in.
	PageFault bool

	// TLBSlot is the TLB slot that holds the page after the access, or -1.
	TLBSlot int
}
