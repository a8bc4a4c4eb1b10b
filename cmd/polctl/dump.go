package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regpol/internal/export"
)

var (
	dumpFormat    string
	dumpNoHeader  bool
	dumpDecimal   bool
	dumpSeparator string
	dumpRoot      string
	dumpEncoding  string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", string(export.FormatCSV), "Output format (csv, json, jsonl, text, reg)")
	cmd.Flags().BoolVar(&dumpNoHeader, "no-header", false, "Omit the CSV header row and text column titles")
	cmd.Flags().BoolVar(&dumpDecimal, "decimal", false, "Render DWORD and QWORD values in decimal")
	cmd.Flags().
		StringVar(&dumpSeparator, "separator", export.DefaultMultiSeparator, "Separator for REG_MULTI_SZ items in csv and text output")
	cmd.Flags().StringVar(&dumpRoot, "root", "", "Root key prepended to paths in reg output (e.g. HKLM, HKCU)")
	cmd.Flags().StringVar(&dumpEncoding, "encoding", "utf-8", "Encoding of reg output (utf-8, utf-16le)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.pol>",
		Short: "Write every entry of a policy file",
		Long: `The dump command decodes a policy file and writes one row per entry.
Use "-" to read from standard input.

Example:
  polctl dump Registry.pol
  polctl dump Registry.pol --format json
  polctl dump Machine/Registry.pol --format reg --root HKLM > machine.reg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	path := args[0]

	format, err := export.ParseFormat(dumpFormat)
	if err != nil {
		return err
	}

	d, closeFn, err := openSource(path)
	if err != nil {
		return fmt.Errorf("failed to open policy file: %w", err)
	}
	defer closeFn()

	logger.Debug("header ok", "file", path, "version", d.Header().Version)

	w, err := export.NewWriter(os.Stdout, format, export.Options{
		Decimal:        dumpDecimal,
		MultiSeparator: dumpSeparator,
		NoHeader:       dumpNoHeader,
		RegRoot:        dumpRoot,
		RegEncoding:    dumpEncoding,
	})
	if err != nil {
		return err
	}

	for d.Next() {
		e := d.Entry()
		logger.Debug("entry", "key", e.Key, "name", e.ValueName, "type", e.Type.String(), "size", e.Size)
		if err := w.Write(e); err != nil {
			return fmt.Errorf("failed to write entry %d: %w", d.Count()-1, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := d.Err(); err != nil {
		logger.Error("decoding stopped", "file", path, "entries", d.Count(), "offset", d.Offset(), "err", err)
		return fmt.Errorf("decoding stopped after %d entries: %w", d.Count(), err)
	}
	logger.Info("decoded", "file", path, "entries", d.Count())
	return nil
}
