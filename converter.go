package main

import (
	"log/slog"

	"github.com/pkg/errors"
)

var errNoLanguage = errors.New("no language metadata")

type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

type Result struct {
	Index   int
	Source  string
	Name    string
	Entries int
	Status  Status
	Err     error
}

type Converter struct {
	cfg     Config
	lister  Lister
	parser  SheetParser
	log     *slog.Logger
	metrics *convertMetrics
}

func NewConverter(cfg Config, log *slog.Logger) *Converter {
	parser := xlsxParser{}
	if cfg.CleanCells {
		parser.clean = cleanRowCells
	}
	return &Converter{
		cfg:     cfg,
		lister:  dirLister{},
		parser:  parser,
		log:     log,
		metrics: newConvertMetrics(),
	}
}

// Run converts every index in the configured range, one at a time. A failing
// index is logged and never stops the loop.
func (c *Converter) Run() []Result {
	results := make([]Result, 0, c.cfg.LastIndex-c.cfg.FirstIndex+1)
	for index := c.cfg.FirstIndex; index <= c.cfg.LastIndex; index++ {
		r := c.convertIndex(index)
		c.logResult(r)
		c.metrics.observe(r)
		results = append(results, r)
	}
	return results
}

func (c *Converter) convertIndex(index int) Result {
	r := Result{Index: index}
	lang, ok := LookupLanguage(index)
	if !ok {
		r.Status = StatusSkipped
		r.Err = errors.Wrapf(errNoLanguage, "index %s", languageKey(index))
		return r
	}

	source, err := ResolveSource(c.lister, c.cfg.InputDir, index)
	if err != nil {
		return r.fail(err)
	}
	r.Source = source

	table, err := c.parser.Parse(source)
	if err != nil {
		return r.fail(errors.Wrap(err, "parse"))
	}
	r.Name = table.Name
	r.Entries = len(table.Entries)

	path := tablePath(c.cfg.OutputDir, index)
	if err := WriteTable(path, table); err != nil {
		return r.fail(err)
	}
	if err := verifyTable(path, r.Entries); err != nil {
		return r.fail(err)
	}
	// The table stays on disk if the stub cannot be written.
	if err := WriteConfigStub(c.cfg.ConfigDir, index, lang, c.cfg.Branding); err != nil {
		return r.fail(err)
	}
	r.Status = StatusWritten
	return r
}

func (r Result) fail(err error) Result {
	r.Status = StatusFailed
	r.Err = err
	return r
}

func verifyTable(path string, want int) error {
	table, err := LoadTable(path)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	if len(table.Entries) != want {
		return errors.Errorf("verify: read back %d entries, wrote %d", len(table.Entries), want)
	}
	return errors.Wrap(checkSorted(table), "verify")
}

func (c *Converter) logResult(r Result) {
	key := languageKey(r.Index)
	switch r.Status {
	case StatusWritten:
		c.log.Info("table written", "index", key, "source", r.Source, "name", r.Name, "entries", r.Entries)
	case StatusSkipped:
		c.log.Warn("index skipped", "index", key, "err", r.Err)
	default:
		c.log.Error("processing failed", "index", key, "source", r.Source, "err", r.Err)
	}
}
