package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regpol/pkg/pol"
	"github.com/joshuapare/regpol/pkg/types"
)

var infoJSON bool

func init() {
	cmd := newInfoCmd()
	cmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.pol>",
		Short: "Display policy file summary",
		Long: `The info command decodes a policy file and summarizes it: header
version, entry count, distinct keys, value types, and policy directives.

Example:
  polctl info Registry.pol
  polctl info Registry.pol --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

type infoSummary struct {
	File       string         `json:"file"`
	Signature  string         `json:"signature"`
	Version    uint32         `json:"version"`
	Entries    int            `json:"entries"`
	Keys       int            `json:"keys"`
	Types      map[string]int `json:"types"`
	Directives map[string]int `json:"directives,omitempty"`
	Complete   bool           `json:"complete"`
	Error      string         `json:"error,omitempty"`
	Offset     int64          `json:"offset"`
}

func runInfo(args []string) error {
	path := args[0]

	d, closeFn, err := openSource(path)
	if err != nil {
		return fmt.Errorf("failed to open policy file: %w", err)
	}
	defer closeFn()

	hdr := d.Header()
	s := infoSummary{
		File:       path,
		Signature:  string(hdr.Signature[:]),
		Version:    hdr.Version,
		Types:      make(map[string]int),
		Directives: make(map[string]int),
	}

	keys := make(map[string]struct{})
	for d.Next() {
		e := d.Entry()
		keys[e.Key] = struct{}{}
		s.Types[e.Type.String()]++
		if dir, _ := e.Directive(); dir != pol.DirectiveNone {
			s.Directives[dir.String()]++
		}
	}
	s.Entries = d.Count()
	s.Keys = len(keys)
	s.Offset = d.Offset()
	decodeErr := d.Err()
	s.Complete = decodeErr == nil
	if decodeErr != nil {
		s.Error = decodeErr.Error()
		if kind, ok := types.KindOf(decodeErr); ok {
			logger.Error("decoding stopped", "file", path, "kind", kind.String(), "err", decodeErr)
		} else {
			logger.Error("decoding stopped", "file", path, "err", decodeErr)
		}
	}

	if infoJSON {
		if err := printJSON(s); err != nil {
			return err
		}
	} else {
		printSummary(s)
	}

	if decodeErr != nil {
		return fmt.Errorf("decoding stopped after %d entries: %w", s.Entries, decodeErr)
	}
	return nil
}

func printSummary(s infoSummary) {
	printInfo("\n%s %s\n", titleStyle.Render("Policy File:"), s.File)
	printInfo("  Signature: %s\n", s.Signature)
	printInfo("  Version:   %d\n", s.Version)
	printInfo("  Entries:   %d\n", s.Entries)
	printInfo("  Keys:      %d\n", s.Keys)
	printInfo("  Bytes:     %d\n", s.Offset)

	if len(s.Types) > 0 {
		printInfo("\n%s\n", sectionStyle.Render("Value Types:"))
		for _, name := range sortedKeys(s.Types) {
			printInfo("  %-30s %d\n", name, s.Types[name])
		}
	}
	if len(s.Directives) > 0 {
		printInfo("\n%s\n", sectionStyle.Render("Directives:"))
		for _, name := range sortedKeys(s.Directives) {
			printInfo("  %-30s %d\n", name, s.Directives[name])
		}
	}

	if s.Complete {
		printInfo("\nStatus: %s\n", okStyle.Render("complete"))
	} else {
		printInfo("\nStatus: %s\n", errStyle.Render(fmt.Sprintf("stopped at offset %d: %s", s.Offset, s.Error)))
	}
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
