// Package trace provides hooks that trace the activity of an MMU.
package trace

import (
	"log"

	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
	"github.com/Victorgalves/VirtualMemory/sim/hooking"
)

type named interface {
	Name() string
}

func domainName(ctx hooking.HookCtx) string {
	if n, ok := ctx.Domain.(named); ok {
		return n.Name()
	}

	return "unknown"
}

// A LogTracer is a hook that writes one line per MMU event. Lines start with
// the index of the access being translated.
type LogTracer struct {
	logger *log.Logger
	seq    uint64
}

// NewLogTracer creates a new LogTracer.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// Func logs the event.
func (t *LogTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case mmu.HookPosTLBHit:
		t.logger.Printf("%d, %s, tlb-hit, page %d\n",
			t.seq, domainName(ctx), ctx.Item.(vm.PageKey))
	case mmu.HookPosTLBMiss:
		t.logger.Printf("%d, %s, tlb-miss, page %d\n",
			t.seq, domainName(ctx), ctx.Item.(vm.PageKey))
	case mmu.HookPosPageFault:
		page := ctx.Item.(vm.Page)
		t.logger.Printf("%d, %s, page-fault, page %d, frame %d, address %d\n",
			t.seq, domainName(ctx), page.VPN, page.Frame, page.VAddr)
	case mmu.HookPosPageEvict:
		page := ctx.Item.(vm.Page)
		t.logger.Printf("%d, %s, page-evict, page %d, frame %d\n",
			t.seq, domainName(ctx), page.VPN, page.Frame)
	case mmu.HookPosTranslated:
		t.seq++
	}
}
