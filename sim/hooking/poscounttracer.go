package hooking

import (
	"sync"
)

// PosCountTracer counts how many times each hook position is triggered.
type PosCountTracer struct {
	lock sync.Mutex

	posNames []string
	posCount map[string]uint64
}

// NewPosCountTracer creates a new PosCountTracer.
func NewPosCountTracer() *PosCountTracer {
	return &PosCountTracer{
		posCount: make(map[string]uint64),
	}
}

// Func counts the position of the hook context.
func (t *PosCountTracer) Func(ctx HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	name := ctx.Pos.Name
	if _, ok := t.posCount[name]; !ok {
		t.posNames = append(t.posNames, name)
	}

	t.posCount[name]++
}

// GetPosNames returns the names of the positions seen, in order of first
// occurrence.
func (t *PosCountTracer) GetPosNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	names := make([]string, len(t.posNames))
	copy(names, t.posNames)

	return names
}

// GetPosCount returns how many times the position was triggered.
func (t *PosCountTracer) GetPosCount(pos *HookPos) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.posCount[pos.Name]
}

// Counts returns a copy of all the counters, keyed by position name.
func (t *PosCountTracer) Counts() map[string]uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	counts := make(map[string]uint64, len(t.posCount))
	for k, v := range t.posCount {
		counts[k] = v
	}

	return counts
}
