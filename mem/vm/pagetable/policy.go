package pagetable

import (
	"errors"
	"fmt"
	"strings"
)

// A Policy selects which resident page is replaced when the page table is
// full.
type Policy int

// The supported replacement policies.
const (
	PolicyFIFO Policy = iota
	PolicyLRU
)

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown replacement policy")

func (p Policy) String() string {
	switch p {
	case PolicyFIFO:
		return "fifo"
	case PolicyLRU:
		return "lru"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts "fifo" or "lru" into a Policy. Any other value is
// rejected.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return PolicyFIFO, nil
	case "lru":
		return PolicyLRU, nil
	}

	return 0, fmt.Errorf("%w %q, expecting fifo or lru", ErrUnknownPolicy, name)
}
