// Package backingstore provides the read-only byte stores that hold the
// contents of the simulated address space.
package backingstore

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when reading beyond the end of a store.
var ErrOutOfRange = errors.New("address out of range")

// A Storage returns the signed byte stored at an address.
type Storage interface {
	ValueAt(addr uint64) (int8, error)
	Size() uint64
}

func outOfRange(addr, size uint64) error {
	return fmt.Errorf("%w: %d, store size %d", ErrOutOfRange, addr, size)
}
