package simulation

import (
	"io"
	"log"

	"github.com/rs/xid"

	"github.com/Victorgalves/VirtualMemory/datarecording"
	"github.com/Victorgalves/VirtualMemory/mem/backingstore"
	"github.com/Victorgalves/VirtualMemory/mem/trace"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
	"github.com/Victorgalves/VirtualMemory/mem/vm/pagetable"
	"github.com/Victorgalves/VirtualMemory/mem/vm/tlb"
	"github.com/Victorgalves/VirtualMemory/monitoring"
	"github.com/Victorgalves/VirtualMemory/report"
	"github.com/Victorgalves/VirtualMemory/sim/hooking"
)

type monitoredStats struct {
	mmu.Stats
	Events map[string]uint64 `json:"events"`
}

// Builder can be used to build a simulation.
type Builder struct {
	policy      pagetable.Policy
	hitPolicy   mmu.HitPolicy
	tlbEntries  int
	frames      int
	shootdown   bool
	storeKey    StoreKey
	channelSize int

	storage      backingstore.Storage
	output       io.Writer
	traceLogger  *log.Logger
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// MakeBuilder creates a new builder with a 16-entry TLB and a 128-frame FIFO
// page table.
func MakeBuilder() Builder {
	return Builder{
		policy:      pagetable.PolicyFIFO,
		hitPolicy:   mmu.HitPolicyAuto,
		tlbEntries:  16,
		frames:      128,
		shootdown:   true,
		storeKey:    StoreKeyVirtual,
		channelSize: 64,
	}
}

// WithPolicy sets the page replacement policy.
func (b Builder) WithPolicy(p pagetable.Policy) Builder {
	b.policy = p
	return b
}

// WithHitPolicy sets how TLB hits are handled.
func (b Builder) WithHitPolicy(p mmu.HitPolicy) Builder {
	b.hitPolicy = p
	return b
}

// WithTLBEntries sets the number of TLB entries.
func (b Builder) WithTLBEntries(n int) Builder {
	b.tlbEntries = n
	return b
}

// WithFrames sets the number of physical frames.
func (b Builder) WithFrames(n int) Builder {
	b.frames = n
	return b
}

// WithTLBShootdown sets whether evicted pages are removed from the TLB.
func (b Builder) WithTLBShootdown(enabled bool) Builder {
	b.shootdown = enabled
	return b
}

// WithStoreKey sets which address is used to read the backing store.
func (b Builder) WithStoreKey(k StoreKey) Builder {
	b.storeKey = k
	return b
}

// WithChannelSize sets how many parsed addresses may wait for translation.
func (b Builder) WithChannelSize(n int) Builder {
	b.channelSize = n
	return b
}

// WithStorage sets the backing store. It is required.
func (b Builder) WithStorage(s backingstore.Storage) Builder {
	b.storage = s
	return b
}

// WithOutput sets where the report is written. If not set, the report is
// discarded.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.output = w
	return b
}

// WithTraceLogger attaches a tracer that logs every MMU event.
func (b Builder) WithTraceLogger(l *log.Logger) Builder {
	b.traceLogger = l
	return b
}

// WithDataRecorder records the configuration, the translations and the
// summary of the run.
func (b Builder) WithDataRecorder(r datarecording.DataRecorder) Builder {
	b.dataRecorder = r
	return b
}

// WithMonitor exposes the simulation through the monitor.
func (b Builder) WithMonitor(m *monitoring.Monitor) Builder {
	b.monitor = m
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.storage == nil {
		panic("backing store is not set")
	}

	if b.channelSize < 0 {
		panic("channel size cannot be negative")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:           xid.New().String(),
		storage:      b.storage,
		storeKey:     b.storeKey,
		channelSize:  b.channelSize,
		dataRecorder: b.dataRecorder,
		monitor:      b.monitor,
	}

	output := b.output
	if output == nil {
		output = io.Discard
	}

	s.reporter = report.NewWriter(output)

	t := tlb.MakeBuilder().WithNumEntries(b.tlbEntries).Build("MMU.TLB")
	s.mmu = mmu.MakeBuilder().
		WithTLB(t).
		WithPageTable(pagetable.MakeBuilder().
			WithCapacity(b.frames).
			WithPolicy(b.policy).
			Build()).
		WithHitPolicy(b.hitPolicy).
		WithTLBShootdown(b.shootdown).
		Build("MMU")

	if b.traceLogger != nil {
		s.mmu.AcceptHook(trace.NewLogTracer(b.traceLogger))
	}

	if b.dataRecorder != nil {
		s.mmu.AcceptHook(trace.NewDBTracer(b.dataRecorder, s.id))
		s.recordConfig(b)
	}

	if b.monitor != nil {
		events := hooking.NewPosCountTracer()
		s.mmu.AcceptHook(events)

		b.monitor.RegisterComponent(s.mmu)
		b.monitor.RegisterComponent(t)
		b.monitor.RegisterStats(func() any {
			return monitoredStats{
				Stats:  s.mmu.Stats(),
				Events: events.Counts(),
			}
		})
	}

	return s
}
