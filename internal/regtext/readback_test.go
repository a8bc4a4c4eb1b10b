package regtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// RegValue is a value line read back from an export.
type RegValue struct {
	Name string // "" for the default value @
	Data string // raw data text after '='
}

// RegKey is a key section read back from an export.
type RegKey struct {
	Path   string
	Values []*RegValue
}

// RegStats summarises a .reg document.
type RegStats struct {
	Header     string
	KeyCount   int
	ValueCount int
	Comments   []string
	Structure  []*RegKey
}

// parseRegFile reads a .reg document in UTF-8 or BOM-marked UTF-16.
func parseRegFile(r io.Reader) (*RegStats, error) {
	stats := &RegStats{}

	// BOMOverride switches to UTF-16 when a BOM is present; otherwise UTF-8 passes through.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))

	var currentKey *RegKey
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == "":
		case stats.Header == "":
			stats.Header = line
		case strings.HasPrefix(line, CommentPrefix):
			stats.Comments = append(stats.Comments, line)
		case strings.HasPrefix(line, KeyOpenBracket) && strings.HasSuffix(line, KeyCloseBracket):
			currentKey = &RegKey{Path: line[1 : len(line)-1]}
			stats.Structure = append(stats.Structure, currentKey)
			stats.KeyCount++
		case currentKey != nil:
			v := parseRegValue(line)
			if v == nil {
				return nil, fmt.Errorf("bad value line %q", line)
			}
			currentKey.Values = append(currentKey.Values, v)
			stats.ValueCount++
		default:
			return nil, fmt.Errorf("value outside key: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning .reg file: %w", err)
	}
	return stats, nil
}

func parseRegValue(line string) *RegValue {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return &RegValue{Data: strings.TrimPrefix(line, DefaultValuePrefix)}
	}
	if !strings.HasPrefix(line, Quote) {
		return nil
	}
	end := findClosingQuote(line)
	if end == -1 || end+1 >= len(line) || line[end+1] != '=' {
		return nil
	}
	name := strings.ReplaceAll(line[1:end], EscapedQuote, Quote)
	name = strings.ReplaceAll(name, EscapedBackslash, Backslash)
	return &RegValue{Name: name, Data: line[end+2:]}
}

// findClosingQuote finds the quote ending the value name, skipping quotes
// escaped by an odd number of backslashes.
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		n := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			n++
		}
		if n%2 == 0 {
			return i
		}
	}
	return -1
}
