// Package report writes the per-address translation log and its summary.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
)

// A Record is one translated address together with the value read from the
// backing store.
type Record struct {
	vm.Translation
	Value int8
}

// Writer formats records and the summary footer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer that writes to w. Output is buffered until Flush.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record line.
func (w *Writer) Write(r Record) error {
	_, err := fmt.Fprintf(w.w,
		"Virtual address: %d TLB: %d Physical address: %d Value: %d\n",
		r.VAddr, r.TLBSlot, r.PAddr, r.Value)

	return err
}

// WriteSummary emits the footer with the counters and rates of the run.
func (w *Writer) WriteSummary(s mmu.Stats) error {
	_, err := fmt.Fprintf(w.w,
		"Number of Translated Addresses = %d\n"+
			"Page Faults = %d\n"+
			"Page Fault Rate = %.3f\n"+
			"TLB Hits = %d\n"+
			"TLB Hit Rate = %.3f\n",
		s.Translated,
		s.PageFaults,
		s.PageFaultRate(),
		s.TLBHits,
		s.TLBHitRate())

	return err
}

// WriteHeading emits a line that introduces what follows, such as the summary
// of one of several runs.
func (w *Writer) WriteHeading(text string) error {
	_, err := fmt.Fprintln(w.w, text)

	return err
}

// Flush writes any buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
