package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/Victorgalves/VirtualMemory/datarecording"
	"github.com/Victorgalves/VirtualMemory/mem/backingstore"
	"github.com/Victorgalves/VirtualMemory/mem/vm"
	"github.com/Victorgalves/VirtualMemory/mem/vm/mmu"
	"github.com/Victorgalves/VirtualMemory/mem/vm/pagetable"
	"github.com/Victorgalves/VirtualMemory/monitoring"
	"github.com/Victorgalves/VirtualMemory/simulation"
	"github.com/Victorgalves/VirtualMemory/trace"
)

type runOptions struct {
	backingStore  string
	output        string
	tlbEntries    int
	frames        int
	hitPolicy     string
	noShootdown   bool
	storeKey      string
	skipMalformed bool
	traceLog      string
	sqlite        string
	monitor       bool
	monitorPort   int
	openBrowser   bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run <trace> <fifo|lru>",
	Short: "Translate the addresses of a trace file",
	Long: `Translate every address of the trace file, one decimal address per ` +
		`line, with the given page replacement policy. Each translation and ` +
		`a summary are written to the output file.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd.Flags())
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := runSimulation(cmd.Context(), runOpts, args[0], args[1])
		if err != nil {
			atexit.Fatalf("vmsim: %v\n", err)
		}
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.backingStore, "backing-store", "BACKING_STORE.bin",
		"binary file that holds the value of every virtual address")
	f.StringVar(&runOpts.output, "output", "correct.txt",
		"report file, - for standard output")
	f.IntVar(&runOpts.tlbEntries, "tlb-entries", 16, "number of TLB entries")
	f.IntVar(&runOpts.frames, "frames", 128, "number of physical frames")
	f.StringVar(&runOpts.hitPolicy, "hit-policy", "auto",
		"auto, tlb-first or walk-always")
	f.BoolVar(&runOpts.noShootdown, "no-shootdown", false,
		"keep the TLB entry of an evicted page")
	f.StringVar(&runOpts.storeKey, "store-key", "virtual",
		"address used to read the backing store, virtual or physical")
	f.BoolVar(&runOpts.skipMalformed, "skip-malformed", false,
		"skip malformed trace lines instead of stopping")
	f.StringVar(&runOpts.traceLog, "trace-log", "",
		"file that receives one line per TLB and page table event")
	f.StringVar(&runOpts.sqlite, "sqlite", "",
		"record the run into the given SQLite database (without extension)")
	f.BoolVar(&runOpts.monitor, "monitor", false,
		"serve the monitoring web page while running")
	f.IntVar(&runOpts.monitorPort, "monitor-port", 0,
		"port of the monitoring server, random if 0")
	f.BoolVar(&runOpts.openBrowser, "open-browser", false,
		"open the monitoring page in a browser")

	rootCmd.AddCommand(runCmd)
}

func runSimulation(
	ctx context.Context,
	opts runOptions,
	tracePath, policyName string,
) error {
	b, err := configure(opts, policyName)
	if err != nil {
		return err
	}

	traceFile, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	defer traceFile.Close()

	store, err := backingstore.OpenFile(opts.backingStore)
	if err != nil {
		return err
	}
	defer store.Close()

	b, cleanup, err := attachObservers(b.WithStorage(store), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	// Created last, so that a failed setup leaves an existing report intact.
	output, closeOutput, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOutput()

	b = b.WithOutput(output)

	readerBuilder := trace.MakeReaderBuilder().
		WithMaxAddress(vm.NewAddressDecomposer(
			vm.DefaultLog2PageSize, vm.DefaultAddressWidth).MaxAddress()).
		WithLogger(log.New(os.Stderr, "vmsim: ", 0))
	if opts.skipMalformed {
		readerBuilder = readerBuilder.WithPolicy(trace.SkipMalformed)
	}

	reader := readerBuilder.Build(traceFile)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sim := b.Build()

	stats, err := sim.Run(ctx, reader)
	if err != nil {
		return err
	}

	if reader.Skipped() > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d malformed lines\n", reader.Skipped())
	}

	fmt.Fprintf(os.Stderr, "Translated %d addresses with %s, report: %s\n",
		stats.Translated, sim.MMU().HitPolicy(), opts.output)

	return nil
}

func configure(opts runOptions, policyName string) (simulation.Builder, error) {
	policy, err := pagetable.ParsePolicy(policyName)
	if err != nil {
		return simulation.Builder{}, err
	}

	hitPolicy, err := mmu.ParseHitPolicy(opts.hitPolicy)
	if err != nil {
		return simulation.Builder{}, err
	}

	storeKey, err := simulation.ParseStoreKey(opts.storeKey)
	if err != nil {
		return simulation.Builder{}, err
	}

	if opts.tlbEntries <= 0 || opts.frames <= 0 {
		return simulation.Builder{}, fmt.Errorf(
			"tlb entries (%d) and frames (%d) must be positive",
			opts.tlbEntries, opts.frames)
	}

	return simulation.MakeBuilder().
		WithPolicy(policy).
		WithHitPolicy(hitPolicy).
		WithTLBEntries(opts.tlbEntries).
		WithFrames(opts.frames).
		WithTLBShootdown(!opts.noShootdown).
		WithStoreKey(storeKey), nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, func() { f.Close() }, nil
}

// attachObservers adds the trace log, the recorder and the monitor requested
// by opts. The returned function releases them.
func attachObservers(
	b simulation.Builder,
	opts runOptions,
) (simulation.Builder, func(), error) {
	var cleanups []func()

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if opts.traceLog != "" {
		f, err := os.Create(opts.traceLog)
		if err != nil {
			return b, cleanup, fmt.Errorf("create trace log: %w", err)
		}

		cleanups = append(cleanups, func() { f.Close() })
		b = b.WithTraceLogger(log.New(f, "", 0))
	}

	if opts.sqlite != "" {
		recorder, err := datarecording.New(opts.sqlite)
		if err != nil {
			cleanup()
			return b, func() {}, err
		}

		cleanups = append(cleanups, func() { recorder.Close() })
		b = b.WithDataRecorder(recorder)
	}

	if opts.monitor || opts.openBrowser {
		m := monitoring.NewMonitor().
			WithPortNumber(opts.monitorPort).
			WithOpenBrowser(opts.openBrowser)

		_, err := m.StartServer()
		if err != nil {
			cleanup()
			return b, func() {}, err
		}

		cleanups = append(cleanups, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			m.StopServer(ctx)
		})
		b = b.WithMonitor(m)
	}

	return b, cleanup, nil
}
