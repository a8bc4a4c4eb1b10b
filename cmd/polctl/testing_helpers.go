package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/regpol/internal/export"
	"github.com/joshuapare/regpol/internal/testutil"
	"github.com/joshuapare/regpol/pkg/pol"
	"github.com/joshuapare/regpol/pkg/types"
)

// testPolicyPath writes a small machine policy file and returns its path.
func testPolicyPath(t *testing.T) string {
	t.Helper()
	return testutil.NewBuilder().
		Entry(`Software\Policies\Microsoft\Windows\WindowsUpdate\AU`, "NoAutoUpdate", types.REG_DWORD, testutil.DWordData(1)).
		Entry(`Software\Policies\Microsoft\Windows\WindowsUpdate`, "WUServer", types.REG_SZ, testutil.SZData("http://wsus.example.com")).
		Entry(`Software\Policies\Microsoft\Windows\WindowsUpdate`, "**del.TargetGroup", types.REG_SZ, testutil.SZData(" ")).
		Entry(`Software\Policies\Contoso`, "Servers", types.REG_MULTI_SZ, testutil.MultiSZData("a", "b")).
		WriteFile(t, "Registry.pol")
}

// resetFlags restores global flags to their defaults between tests.
func resetFlags() {
	verbosity = 0
	quiet = false
	maxValueSize = types.WindowsMaxValueSize10MB
	fallbackName = pol.FallbackISO885915.String()

	dumpFormat = string(export.FormatCSV)
	dumpNoHeader = false
	dumpDecimal = false
	dumpSeparator = export.DefaultMultiSeparator
	dumpRoot = ""
	dumpEncoding = "utf-8"

	infoJSON = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
