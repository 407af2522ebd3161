package simulation

import (
	"context"
	"fmt"

	"github.com/Victorgalves/VirtualMemory/datarecording"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
)

const (
	configTable  = "run_config"
	summaryTable = "run_summary"
)

type configEntry struct {
	RunID      string
	Policy     string
	HitPolicy  string
	TLBEntries int
	Frames     int
	Shootdown  bool
	StoreKey   string
}

type summaryEntry struct {
	RunID          string
	Translated     uint64
	PageFaults     uint64
	PageFaultRate  float64
	TLBHits        uint64
	TLBHitRate     float64
	PageTableWalks uint64
	PageTableHits  uint64
	Evictions      uint64
	Shootdowns     uint64
}

func (s *Simulation) recordConfig(b Builder) {
	datarecording.EnsureTable(s.dataRecorder, configTable, configEntry{})
	datarecording.EnsureTable(s.dataRecorder, summaryTable, summaryEntry{})

	s.dataRecorder.InsertData(configTable, configEntry{
		RunID:      s.id,
		Policy:     b.policy.String(),
		HitPolicy:  s.mmu.HitPolicy().String(),
		TLBEntries: b.tlbEntries,
		Frames:     b.frames,
		Shootdown:  b.shootdown,
		StoreKey:   b.storeKey.String(),
	})
}

func (s *Simulation) recordSummary(stats mmu.Stats) {
	s.dataRecorder.InsertData(summaryTable, summaryEntry{
		RunID:          s.id,
		Translated:     stats.Translated,
		PageFaults:     stats.PageFaults,
		PageFaultRate:  stats.PageFaultRate(),
		TLBHits:        stats.TLBHits,
		TLBHitRate:     stats.TLBHitRate(),
		PageTableWalks: stats.PageTableWalks,
		PageTableHits:  stats.PageTableHits,
		Evictions:      stats.Evictions,
		Shootdowns:     stats.Shootdowns,
	})
	s.dataRecorder.Flush()
}

// A RunRecord is a run read back from a database written through
// WithDataRecorder.
type RunRecord struct {
	ID         string
	Policy     string
	HitPolicy  string
	TLBEntries int
	Frames     int
	Shootdown  bool
	StoreKey   string

	// Complete is false if the run did not reach the end of its trace. Stats
	// are zero in that case.
	Complete bool
	Stats    mmu.Stats
}

// LoadRuns reads every recorded run, in the order the runs were built.
func LoadRuns(ctx context.Context, r *datarecording.Reader) ([]RunRecord, error) {
	configs, _, err := datarecording.Query[configEntry](
		ctx, r, configTable, datarecording.QueryParams{OrderBy: "rowid"})
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}

	summaries, _, err := datarecording.Query[summaryEntry](
		ctx, r, summaryTable, datarecording.QueryParams{})
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}

	byID := make(map[string]summaryEntry, len(summaries))
	for _, s := range summaries {
		byID[s.RunID] = s
	}

	runs := make([]RunRecord, 0, len(configs))
	for _, c := range configs {
		run := RunRecord{
			ID:         c.RunID,
			Policy:     c.Policy,
			HitPolicy:  c.HitPolicy,
			TLBEntries: c.TLBEntries,
			Frames:     c.Frames,
			Shootdown:  c.Shootdown,
			StoreKey:   c.StoreKey,
		}

		if s, ok := byID[c.RunID]; ok {
			run.Complete = true
			run.Stats = mmu.Stats{
				Translated:     s.Translated,
				PageFaults:     s.PageFaults,
				TLBHits:        s.TLBHits,
				PageTableWalks: s.PageTableWalks,
				PageTableHits:  s.PageTableHits,
				Evictions:      s.Evictions,
				Shootdowns:     s.Shootdowns,
			}
		}

		runs = append(runs, run)
	}

	return runs, nil
}
