package trace

import (
	"github.com/Victorgalves/VirtualMemory/datarecording"
	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
	"github.com/Victorgalves/VirtualMemory/sim/hooking"
)

const (
	translationTable = "translations"
	pageFaultTable   = "page_faults"
	pageEvictTable   = "page_evictions"
)

// translationEntry represents a translated address in the database
type translationEntry struct {
	RunID     string
	Seq       uint64
	VAddr     uint64
	VPN       uint64
	Offset    uint64
	Frame     int
	PAddr     uint64
	TLBHit    bool
	PageFault bool
	TLBSlot   int
}

// pageEntry represents a page that is faulted in or evicted.
type pageEntry struct {
	RunID string
	Seq   uint64
	VPN   uint64
	VAddr uint64
	Frame int
}

// A DBTracer is a hook that records the translations and the page movements
// of an MMU into a database using the data recorder.
type DBTracer struct {
	runID        string
	dataRecorder datarecording.DataRecorder
	seq          uint64
}

// NewDBTracer creates a DBTracer and, if missing, the tables it writes to. Every row is
// tagged with runID.
func NewDBTracer(
	dataRecorder datarecording.DataRecorder,
	runID string,
) *DBTracer {
	t := &DBTracer{
		runID:        runID,
		dataRecorder: dataRecorder,
	}

	datarecording.EnsureTable(dataRecorder, translationTable, translationEntry{})
	datarecording.EnsureTable(dataRecorder, pageFaultTable, pageEntry{})
	datarecording.EnsureTable(dataRecorder, pageEvictTable, pageEntry{})

	return t
}

// Func records the event.
func (t *DBTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case mmu.HookPosPageFault:
		t.dataRecorder.InsertData(pageFaultTable, t.pageEntry(ctx.Item.(vm.Page)))
	case mmu.HookPosPageEvict:
		t.dataRecorder.InsertData(pageEvictTable, t.pageEntry(ctx.Item.(vm.Page)))
	case mmu.HookPosTranslated:
		t.recordTranslation(ctx.Item.(vm.Translation))
	}
}

func (t *DBTracer) pageEntry(page vm.Page) pageEntry {
	return pageEntry{
		RunID: t.runID,
		Seq:   t.seq,
		VPN:   uint64(page.VPN),
		VAddr: page.VAddr,
		Frame: page.Frame,
	}
}

func (t *DBTracer) recordTranslation(tr vm.Translation) {
	t.dataRecorder.InsertData(translationTable, translationEntry{
		RunID:     t.runID,
		Seq:       t.seq,
		VAddr:     tr.VAddr,
		VPN:       uint64(tr.VPN),
		Offset:    tr.Offset,
		Frame:     tr.Frame,
		PAddr:     tr.PAddr,
		TLBHit:    tr.TLBHit,
		PageFault: tr.PageFault,
		TLBSlot:   tr.TLBSlot,
	})

	t.seq++
}
