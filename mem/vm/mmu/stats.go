package mmu

// Stats are the counters accumulated by an MMU since it was built.
type Stats struct {
	Translated     uint64 `json:"translated"`
	PageFaults     uint64 `json:"page_faults"`
	TLBHits        uint64 `json:"tlb_hits"`
	PageTableWalks uint64 `json:"page_table_walks"`
	PageTableHits  uint64 `json:"page_table_hits"`
	Evictions      uint64 `json:"evictions"`
	Shootdowns     uint64 `json:"shootdowns"`
}

// PageFaultRate returns PageFaults / Translated, or 0 if nothing has been
// translated.
func (s Stats) PageFaultRate() float64 {
	return ratio(s.PageFaults, s.Translated)
}

// TLBHitRate returns TLBHits / Translated, or 0 if nothing has been
// translated.
func (s Stats) TLBHitRate() float64 {
	return ratio(s.TLBHits, s.Translated)
}

func ratio(n, total uint64) float64 {
	if total == 0 {
		return 0
	}

	return float64(n) / float64(total)
}
