package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/Victorgalves/VirtualMemory/datarecording"
	"github.com/Victorgalves/VirtualMemory/report"
	"github.com/Victorgalves/VirtualMemory/simulation"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <database.sqlite3>",
	Short: "Print the summaries of the runs recorded with --sqlite",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printSummaries(cmd.Context(), cmd.OutOrStdout(), args[0])
		if err != nil {
			atexit.Fatalf("vmsim: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummaries(ctx context.Context, out io.Writer, path string) error {
	reader, err := datarecording.OpenReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	runs, err := simulation.LoadRuns(ctx, reader)
	if err != nil {
		return err
	}

	w := report.NewWriter(out)

	for _, run := range runs {
		err = writeRun(w, run)
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeRun(w *report.Writer, run simulation.RunRecord) error {
	shootdown := "on"
	if !run.Shootdown {
		shootdown = "off"
	}

	heading := fmt.Sprintf(
		"Run %s: %s, %s, %d TLB entries, %d frames, shootdown %s, %s store key",
		run.ID, run.Policy, run.HitPolicy, run.TLBEntries, run.Frames,
		shootdown, run.StoreKey)

	if !run.Complete {
		return w.WriteHeading(heading + ", incomplete")
	}

	err := w.WriteHeading(heading)
	if err != nil {
		return err
	}

	return w.WriteSummary(run.Stats)
}
