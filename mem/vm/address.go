package vm

import "fmt"

// Default geometry of the simulated address space: 32-bit addresses split into
// a 24-bit page number and an 8-bit offset.
const (
	DefaultLog2PageSize = 8
	DefaultAddressWidth = 32
)

// An AddressDecomposer splits virtual addresses into a page number and an
// in-page offset.
type AddressDecomposer struct {
	log2PageSize uint64
	addressWidth uint64
}

// NewAddressDecomposer creates an AddressDecomposer. The page size is
// 1<<log2PageSize bytes and addresses must fit in addressWidth bits.
func NewAddressDecomposer(log2PageSize, addressWidth uint64) AddressDecomposer {
	if addressWidth > 64 || log2PageSize >= addressWidth {
		panic(fmt.Sprintf("invalid address geometry: page 2^%d, width %d",
			log2PageSize, addressWidth))
	}

	return AddressDecomposer{
		log2PageSize: log2PageSize,
		addressWidth: addressWidth,
	}
}

// Log2PageSize returns the number of offset bits.
func (d AddressDecomposer) Log2PageSize() uint64 {
	return d.log2PageSize
}

// PageSize returns the size of a page (and a frame) in bytes.
func (d AddressDecomposer) PageSize() uint64 {
	return 1 << d.log2PageSize
}

// MaxAddress returns the largest address that can be decomposed.
func (d AddressDecomposer) MaxAddress() uint64 {
	if d.addressWidth == 64 {
		return ^uint64(0)
	}

	return 1<<d.addressWidth - 1
}

// Decompose returns the page number and the offset of a virtual address.
func (d AddressDecomposer) Decompose(vAddr uint64) (PageKey, uint64) {
	if vAddr > d.MaxAddress() {
		panic(fmt.Sprintf("address %d is wider than %d bits",
			vAddr, d.addressWidth))
	}

	offset := vAddr & (d.PageSize() - 1)
	vpn := PageKey(vAddr >> d.log2PageSize)

	return vpn, offset
}

// Compose is the inverse of Decompose.
func (d AddressDecomposer) Compose(vpn PageKey, offset uint64) uint64 {
	return uint64(vpn)<<d.log2PageSize | offset&(d.PageSize()-1)
}

// PhysicalAddress returns the address of offset within the given frame.
func (d AddressDecomposer) PhysicalAddress(frame int, offset uint64) uint64 {
	return uint64(frame)<<d.log2PageSize + offset
}
