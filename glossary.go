package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

var errUnsorted = errors.New("table entries not sorted")

type GlossaryEntry struct {
	Term string
	Char string
}

func (e GlossaryEntry) MarshalJSON() ([]byte, error) {
	return marshalLiteral([2]string{e.Term, e.Char})
}

func (e *GlossaryEntry) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) < 2 {
		return fmt.Errorf("glossary entry has %d fields, want 2", len(pair))
	}
	e.Term, e.Char = pair[0], pair[1]
	return nil
}

type GlossaryTable struct {
	Name    string          `json:"name"`
	Entries []GlossaryEntry `json:"data"`
}

func (t *GlossaryTable) Sort() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return t.Entries[i].Term < t.Entries[j].Term
	})
}

func checkSorted(t *GlossaryTable) error {
	for i := 1; i < len(t.Entries); i++ {
		if t.Entries[i].Term < t.Entries[i-1].Term {
			return errors.Wrapf(errUnsorted, "%q after %q at entry %d", t.Entries[i].Term, t.Entries[i-1].Term, i)
		}
	}
	return nil
}

func encodeTable(t *GlossaryTable) ([]byte, error) {
	if t.Entries == nil {
		t = &GlossaryTable{Name: t.Name, Entries: []GlossaryEntry{}}
	}
	return marshalLiteral(t, "  ")
}

// marshalLiteral encodes without escaping <, > and &.
func marshalLiteral(v interface{}, indent ...string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if len(indent) > 0 {
		enc.SetIndent("", indent[0])
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	out := unescapeLineSeparators(buf.Bytes())
	if len(indent) == 0 {
		out = bytes.TrimRight(out, "\n")
	}
	return out, nil
}

// unescapeLineSeparators undoes the \u2028 and \u2029 escapes encoding/json
// always applies, so every non-ASCII rune reaches the file literally. An
// escape preceded by an escaped backslash is data and is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' && string(data[i+2:i+5]) == "202" && (data[i+5] == '8' || data[i+5] == '9') {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		// Copy the escaped character with its backslash.
		out = append(out, data[i])
		if i+1 < len(data) {
			i++
			out = append(out, data[i])
		}
	}
	return out
}

func tablePath(dir string, index int) string {
	return filepath.Join(dir, tableBaseName(index)+".json")
}

func tableBaseName(index int) string {
	return fmt.Sprintf("TW_%02d", index)
}

func WriteTable(path string, t *GlossaryTable) error {
	data, err := encodeTable(t)
	if err != nil {
		return errors.Wrap(err, "encode table")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write table")
	}
	return nil
}

func LoadTable(path string) (*GlossaryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table GlossaryTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("table parse failed: %w", err)
	}
	return &table, nil
}
