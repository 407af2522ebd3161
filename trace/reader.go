// Package trace reads address traces, one decimal address per line.
package trace

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// MalformedPolicy decides what the reader does with a line that is not a
// valid address.
type MalformedPolicy int

const (
	// StopOnMalformed fails reading at the first malformed line.
	StopOnMalformed MalformedPolicy = iota

	// SkipMalformed logs and counts malformed lines and keeps reading.
	SkipMalformed
)

// A MalformedLineError reports a line that is not a valid address.
type MalformedLineError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("trace line %d: malformed address %q: %v",
		e.Line, e.Text, e.Err)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

// A Reader yields the addresses of a trace in order.
type Reader struct {
	scanner    *bufio.Scanner
	policy     MalformedPolicy
	maxAddress uint64
	logger     *log.Logger

	line    int
	skipped int
}

// ReaderBuilder builds Readers.
type ReaderBuilder struct {
	policy     MalformedPolicy
	maxAddress uint64
	logger     *log.Logger
}

// MakeReaderBuilder returns a builder that stops on malformed lines and
// accepts 32-bit addresses.
func MakeReaderBuilder() ReaderBuilder {
	return ReaderBuilder{
		policy:     StopOnMalformed,
		maxAddress: 1<<32 - 1,
	}
}

// WithPolicy sets the malformed-line policy.
func (b ReaderBuilder) WithPolicy(p MalformedPolicy) ReaderBuilder {
	b.policy = p
	return b
}

// WithMaxAddress sets the largest address accepted. Larger values are
// malformed.
func (b ReaderBuilder) WithMaxAddress(maxAddress uint64) ReaderBuilder {
	b.maxAddress = maxAddress
	return b
}

// WithLogger sets the logger that receives skipped lines.
func (b ReaderBuilder) WithLogger(l *log.Logger) ReaderBuilder {
	b.logger = l
	return b
}

// Build creates a Reader over r.
func (b ReaderBuilder) Build(r io.Reader) *Reader {
	return &Reader{
		scanner:    bufio.NewScanner(r),
		policy:     b.policy,
		maxAddress: b.maxAddress,
		logger:     b.logger,
	}
}

// Skipped returns the number of malformed lines skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Next returns the next address. It returns io.EOF when the trace ends.
func (r *Reader) Next() (uint64, error) {
	for r.scanner.Scan() {
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		addr, err := r.parse(text)
		if err == nil {
			return addr, nil
		}

		if r.policy == StopOnMalformed {
			return 0, err
		}

		r.skipped++
		if r.logger != nil {
			r.logger.Printf("skipping %v", err)
		}
	}

	if err := r.scanner.Err(); err != nil {
		return 0, fmt.Errorf("read trace: %w", err)
	}

	return 0, io.EOF
}

func (r *Reader) parse(text string) (uint64, error) {
	addr, err := strconv.ParseUint(text, 10, 64)
	if err == nil && addr > r.maxAddress {
		err = fmt.Errorf("larger than %d", r.maxAddress)
	}

	if err != nil {
		return 0, &MalformedLineError{Line: r.line, Text: text, Err: err}
	}

	return addr, nil
}

// Produce sends every address to out and closes it. It stops early when ctx
// is cancelled or the trace cannot be read.
func (r *Reader) Produce(ctx context.Context, out chan<- uint64) error {
	defer close(out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		addr, err := r.Next()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		select {
		case out <- addr:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
