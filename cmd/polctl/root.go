package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regpol/pkg/pol"
	"github.com/joshuapare/regpol/pkg/types"
)

var (
	// Global flags
	verbosity    int
	quiet        bool
	maxValueSize uint32
	fallbackName string
)

var rootCmd = &cobra.Command{
	Use:   "polctl",
	Short: "Decode Group Policy registry policy (.pol) files",
	Long: `polctl decodes registry policy files (Registry.pol, the "PReg" format
written by Group Policy tooling) and exports their entries as CSV, JSON,
aligned text, or .reg documents.

Decoding stops at the first malformed entry; every entry before it is still
written, and the error is reported on stderr with a non-zero exit status.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(verbosity, quiet)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().Uint32Var(&maxValueSize, "max-value-size", types.WindowsMaxValueSize10MB,
		"Largest declared value size accepted, in bytes")
	rootCmd.PersistentFlags().StringVar(&fallbackName, "fallback", pol.FallbackISO885915.String(),
		"Encoding tried for strings that are not UTF-16LE (iso-8859-15, windows-1252, none)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// decoderOptions builds pol options from the global flags.
func decoderOptions() ([]pol.Option, error) {
	fb, err := parseFallback(fallbackName)
	if err != nil {
		return nil, err
	}
	return []pol.Option{
		pol.WithLimits(types.Limits{MaxValueSize: maxValueSize}),
		pol.WithFallback(fb),
	}, nil
}

func parseFallback(name string) (pol.Fallback, error) {
	for _, fb := range []pol.Fallback{pol.FallbackISO885915, pol.FallbackWindows1252, pol.FallbackNone} {
		if name == fb.String() {
			return fb, nil
		}
	}
	return 0, fmt.Errorf("unknown fallback encoding %q", name)
}

// openSource opens path for decoding; "-" reads standard input.
func openSource(path string) (*pol.Decoder, func() error, error) {
	opts, err := decoderOptions()
	if err != nil {
		return nil, nil, err
	}
	if path == "-" {
		d, err := pol.NewDecoder(os.Stdin, opts...)
		if err != nil {
			return nil, nil, err
		}
		return d, func() error { return nil }, nil
	}
	f, err := pol.Open(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return f.Decoder, f.Close, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
