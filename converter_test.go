package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParser struct {
	tables map[string]*GlossaryTable
	parsed []string
}

func (p *fakeParser) Parse(path string) (*GlossaryTable, error) {
	p.parsed = append(p.parsed, path)
	table, ok := p.tables[filepath.Base(path)]
	if !ok {
		return nil, errors.New("not a workbook")
	}
	return table, nil
}

func newTestConverter(t *testing.T, first, last int, names []string, parser SheetParser) (*Converter, *bytes.Buffer) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InputDir = "glossary"
	cfg.OutputDir = t.TempDir()
	cfg.ConfigDir = t.TempDir()
	cfg.FirstIndex = first
	cfg.LastIndex = last

	var logs bytes.Buffer
	c := NewConverter(cfg, slog.New(slog.NewTextHandler(&logs, nil)))
	c.lister = &staticLister{names: names}
	c.parser = parser
	return c, &logs
}

func TestConverterRun(t *testing.T) {
	parser := &fakeParser{tables: map[string]*GlossaryTable{
		"t-05.xlsx": {Name: "恆春阿美語", Entries: []GlossaryEntry{{"a", "一"}}},
		"t-06.xlsx": {Name: "賽考利克泰雅語", Entries: []GlossaryEntry{{"b", "二"}, {"c", "三"}}},
	}}
	names := []string{"t-03.xlsx", "t-05.xlsx", "t-06.xlsx"}
	c, logs := newTestConverter(t, 2, 5, names, parser)

	results := c.Run()
	require.Len(t, results, 4)

	// index 2 -> t-03.xlsx exists but does not parse
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.Equal(t, filepath.Join("glossary", "t-03.xlsx"), results[0].Source)
	// index 3 -> no t-04 file
	assert.Equal(t, StatusFailed, results[1].Status)
	assert.True(t, errors.Is(results[1].Err, errNoSource))
	// later indices still run
	assert.Equal(t, StatusWritten, results[2].Status)
	assert.Equal(t, 1, results[2].Entries)
	assert.Equal(t, StatusWritten, results[3].Status)
	assert.Equal(t, "賽考利克泰雅語", results[3].Name)

	table, err := LoadTable(tablePath(c.cfg.OutputDir, 5))
	require.NoError(t, err)
	assert.Equal(t, []GlossaryEntry{{"b", "二"}, {"c", "三"}}, table.Entries)

	stub, err := os.ReadFile(configStubPath(c.cfg.ConfigDir, 5))
	require.NoError(t, err)
	assert.Contains(t, string(stub), "LangCode=tay\n")
	assert.Contains(t, string(stub), "Label=賽考利克泰雅語\n")

	_, err = os.Stat(tablePath(c.cfg.OutputDir, 3))
	assert.True(t, os.IsNotExist(err))

	out := logs.String()
	assert.Equal(t, 2, strings.Count(out, "level=ERROR"))
	assert.Contains(t, out, "index=03")
	assert.Equal(t, 2, strings.Count(out, "level=INFO"))
}

func TestConverterSkipsIndexWithoutLanguage(t *testing.T) {
	parser := &fakeParser{tables: map[string]*GlossaryTable{
		"t-12.xlsx": {Name: "x"},
		"t-13.xlsx": {Name: "賽夏語", Entries: []GlossaryEntry{}},
	}}
	c, logs := newTestConverter(t, 11, 12, []string{"t-12.xlsx", "t-13.xlsx"}, parser)

	results := c.Run()
	require.Len(t, results, 2)
	assert.Equal(t, StatusSkipped, results[0].Status)
	assert.True(t, errors.Is(results[0].Err, errNoLanguage))
	assert.Equal(t, StatusWritten, results[1].Status)
	assert.Equal(t, []string{filepath.Join("glossary", "t-13.xlsx")}, parser.parsed)

	_, err := os.Stat(tablePath(c.cfg.OutputDir, 11))
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestConverterKeepsTableWhenStubFails(t *testing.T) {
	parser := &fakeParser{tables: map[string]*GlossaryTable{
		"t-01.xlsx": {Name: "南勢阿美語", Entries: []GlossaryEntry{{"a", "一"}}},
	}}
	c, _ := newTestConverter(t, 0, 0, []string{"t-01.xlsx"}, parser)
	c.cfg.ConfigDir = filepath.Join(c.cfg.ConfigDir, "missing")

	results := c.Run()
	require.Len(t, results, 1)
	assert.Equal(t, StatusFailed, results[0].Status)

	_, err := os.Stat(tablePath(c.cfg.OutputDir, 0))
	assert.NoError(t, err)
}

func TestConverterWriteFailureContinues(t *testing.T) {
	parser := &fakeParser{tables: map[string]*GlossaryTable{
		"t-01.xlsx": {Name: "a", Entries: []GlossaryEntry{{"a", "一"}}},
		"t-02.xlsx": {Name: "b", Entries: []GlossaryEntry{{"b", "二"}}},
	}}
	c, _ := newTestConverter(t, 0, 1, []string{"t-01.xlsx", "t-02.xlsx"}, parser)
	c.cfg.OutputDir = filepath.Join(c.cfg.OutputDir, "missing")

	results := c.Run()
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, StatusFailed, r.Status)
	}
	assert.Len(t, parser.parsed, 2)
}

func TestConverterWithWorkbooks(t *testing.T) {
	input := t.TempDir()
	writeWorkbook(t, filepath.Join(input, "glossary-06.xlsx"), "賽考利克泰雅語", [][2]string{
		{"字", "a/b/ c"},
		{"山", "無此詞彙XYZ"},
	})

	cfg := DefaultConfig()
	cfg.InputDir = input
	cfg.OutputDir = t.TempDir()
	cfg.ConfigDir = t.TempDir()
	cfg.FirstIndex, cfg.LastIndex = 4, 5
	c := NewConverter(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	results := c.Run()
	require.Len(t, results, 2)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.Equal(t, StatusWritten, results[1].Status)

	table, err := LoadTable(tablePath(cfg.OutputDir, 5))
	require.NoError(t, err)
	assert.Equal(t, "賽考利克泰雅語", table.Name)
	assert.Equal(t, []GlossaryEntry{{"a", "字"}, {"b", "字"}, {"c", "字"}}, table.Entries)
}

func TestConverterCleanCells(t *testing.T) {
	for _, clean := range []bool{false, true} {
		input := t.TempDir()
		writeWorkbook(t, filepath.Join(input, "詞表-01.xlsx"), "南勢阿美語", [][2]string{
			{"石", "fa<b>tu</b>"},
		})

		cfg := DefaultConfig()
		cfg.InputDir = input
		cfg.OutputDir = t.TempDir()
		cfg.ConfigDir = t.TempDir()
		cfg.FirstIndex, cfg.LastIndex = 0, 0
		cfg.CleanCells = clean
		results := NewConverter(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).Run()
		require.Len(t, results, 1)
		require.Equal(t, StatusWritten, results[0].Status)

		table, err := LoadTable(tablePath(cfg.OutputDir, 0))
		require.NoError(t, err)
		want := GlossaryEntry{"fa<b>tu</b>", "石"}
		if clean {
			want = GlossaryEntry{"fatu", "石"}
		}
		assert.Equal(t, []GlossaryEntry{want}, table.Entries)
	}
}
