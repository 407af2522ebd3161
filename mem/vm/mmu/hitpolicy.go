package mmu

import (
	"errors"
	"fmt"
	"strings"
)

// A HitPolicy decides whether the page table is consulted when the TLB
// already holds the page.
type HitPolicy int

const (
	// HitPolicyAuto picks HitPolicyTLBFirst for FIFO page tables and
	// HitPolicyWalkAlways for LRU page tables.
	HitPolicyAuto HitPolicy = iota

	// HitPolicyTLBFirst returns the TLB frame on a hit without touching the
	// page table.
	HitPolicyTLBFirst

	// HitPolicyWalkAlways probes the page table on every access, refreshing
	// the recency of LRU pages even when the TLB hits.
	HitPolicyWalkAlways
)

// ErrUnknownHitPolicy is returned when a hit policy name is not recognized.
var ErrUnknownHitPolicy = errors.New("unknown hit policy")

func (p HitPolicy) String() string {
	switch p {
	case HitPolicyAuto:
		return "auto"
	case HitPolicyTLBFirst:
		return "tlb-first"
	case HitPolicyWalkAlways:
		return "walk-always"
	default:
		return fmt.Sprintf("HitPolicy(%d)", int(p))
	}
}

// ParseHitPolicy converts a name into a HitPolicy.
func ParseHitPolicy(name string) (HitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return HitPolicyAuto, nil
	case "tlb-first":
		return HitPolicyTLBFirst, nil
	case "walk-always":
		return HitPolicyWalkAlways, nil
	}

	return 0, fmt.Errorf("%w %q, expecting auto, tlb-first or walk-always",
		ErrUnknownHitPolicy, name)
}
