package simulation

import (
	"errors"
	"fmt"
	"strings"
)

// StoreKey selects which address is used to read the backing store.
type StoreKey int

const (
	// StoreKeyVirtual reads the backing store at the virtual address.
	StoreKeyVirtual StoreKey = iota

	// StoreKeyPhysical reads the backing store at the physical address.
	StoreKeyPhysical
)

// ErrUnknownStoreKey is returned when a store key name is not recognized.
var ErrUnknownStoreKey = errors.New("unknown store key")

func (k StoreKey) String() string {
	switch k {
	case StoreKeyVirtual:
		return "virtual"
	case StoreKeyPhysical:
		return "physical"
	default:
		return fmt.Sprintf("StoreKey(%d)", int(k))
	}
}

// ParseStoreKey converts "virtual" or "physical" into a StoreKey.
func ParseStoreKey(name string) (StoreKey, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "virtual":
		return StoreKeyVirtual, nil
	case "physical":
		return StoreKeyPhysical, nil
	}

	return 0, fmt.Errorf("%w %q, expecting virtual or physical",
		ErrUnknownStoreKey, name)
}
