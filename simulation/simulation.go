// Package simulation runs an address trace through an MMU and reports every
// translation.
package simulation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Victorgalves/VirtualMemory/datarecording"
	"github.com/Victorgalves/VirtualMemory/mem/backingstore"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
	"github.com/Victorgalves/VirtualMemory/monitoring"
	"github.com/Victorgalves/VirtualMemory/report"
)

// A Source sends the addresses of a trace to out, in order, and closes out
// when done.
type Source interface {
	Produce(ctx context.Context, out chan<- uint64) error
}

// A Simulation translates a trace of virtual addresses.
type Simulation struct {
	id          string
	mmu         *mmu.Comp
	storage     backingstore.Storage
	storeKey    StoreKey
	reporter    *report.Writer
	channelSize int

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// MMU returns the MMU being simulated.
func (s *Simulation) MMU() *mmu.Comp {
	return s.mmu
}

// Run translates every address produced by src and writes the report. The
// summary is written only if the whole trace is translated. Addresses produced
// before a failure of src are still translated and reported.
func (s *Simulation) Run(ctx context.Context, src Source) (mmu.Stats, error) {
	g, produceCtx := errgroup.WithContext(ctx)
	addrs := make(chan uint64, s.channelSize)

	g.Go(func() error {
		return src.Produce(produceCtx, addrs)
	})

	g.Go(func() error {
		return s.consume(ctx, addrs)
	})

	err := g.Wait()
	if err == nil {
		err = s.finish()
	}

	flushErr := s.reporter.Flush()
	if err == nil && flushErr != nil {
		err = fmt.Errorf("write report: %w", flushErr)
	}

	return s.mmu.Stats(), err
}

// consume translates addresses until addrs is closed. Returning early cancels
// the producer.
func (s *Simulation) consume(ctx context.Context, addrs <-chan uint64) error {
	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("Translating "+s.id, 0)
		defer s.monitor.CompleteProgressBar(bar)
	}

	for addr := range addrs {
		err := s.step(ctx, addr)
		if err != nil {
			return err
		}

		if bar != nil {
			bar.IncrementFinished(1)
		}
	}

	return nil
}

func (s *Simulation) step(ctx context.Context, addr uint64) error {
	if s.monitor == nil {
		return s.translate(addr)
	}

	var err error

	doErr := s.monitor.Do(ctx, func() { err = s.translate(addr) })
	if doErr != nil {
		return doErr
	}

	return err
}

func (s *Simulation) translate(addr uint64) error {
	t := s.mmu.Translate(addr)

	storeAddr := t.VAddr
	if s.storeKey == StoreKeyPhysical {
		storeAddr = t.PAddr
	}

	value, err := s.storage.ValueAt(storeAddr)
	if err != nil {
		return fmt.Errorf("virtual address %d: %w", addr, err)
	}

	err = s.reporter.Write(report.Record{Translation: t, Value: value})
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func (s *Simulation) finish() error {
	stats := s.mmu.Stats()

	if s.dataRecorder != nil {
		s.recordSummary(stats)
	}

	err := s.reporter.WriteSummary(stats)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
