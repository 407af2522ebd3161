// Package cmd provides the command-line interface of vmsim.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tebeka/atexit"
)

const envPrefix = "VMSIM_"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vmsim",
	Short: "vmsim simulates virtual address translation.",
	Long: `vmsim translates a trace of virtual addresses through a TLB and a ` +
		`page table with FIFO or LRU replacement, and reports the physical ` +
		`address and the stored value of every access. Flag defaults can be ` +
		`set with VMSIM_* environment variables or a .env file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := loadDotEnv(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load .env: %v\n", err)
	}

	err = rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// loadDotEnv loads the environment variables in path. A missing file is not an
// error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// envName returns the environment variable that sets the default of a flag.
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyEnv sets every flag that is not given on the command line from its
// environment variable, if present.
func applyEnv(flags *pflag.FlagSet) error {
	var errs []error

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}

		value, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}

		err := flags.Set(f.Name, value)
		if err != nil {
			errs = append(errs,
				fmt.Errorf("%s=%q: %w", envName(f.Name), value, err))
		}
	})

	return errors.Join(errs...)
}
