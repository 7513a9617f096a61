package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	reportMarkdownName = "REPORT.md"
	reportHTMLName     = "REPORT.html"
)

func buildReport(results []Result) string {
	var written, skipped, failed, entries int
	for _, r := range results {
		switch r.Status {
		case StatusWritten:
			written++
			entries += r.Entries
		case StatusSkipped:
			skipped++
		default:
			failed++
		}
	}

	var b strings.Builder
	b.WriteString("# Glossary conversion\n\n")
	fmt.Fprintf(&b, "%d written, %d skipped, %d failed, %d entries.\n\n", written, skipped, failed, entries)
	b.WriteString("| Table | Language | Source | Name | Entries | Status |\n")
	b.WriteString("|---|---|---|---|---:|---|\n")
	for _, r := range results {
		status := string(r.Status)
		if r.Err != nil {
			status += ": " + r.Err.Error()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
			tableBaseName(r.Index),
			reportCell(prettyLanguageLabel(r.Index)),
			reportCell(filepath.Base(r.Source)),
			reportCell(r.Name),
			r.Entries,
			reportCell(status))
	}
	return b.String()
}

func reportCell(value string) string {
	if value == "" || value == "." {
		return "-"
	}
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.ReplaceAll(value, "|", `\|`)
}

func renderReport(markdown string) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteReport(dir string, results []Result) error {
	markdown := buildReport(results)
	if err := os.WriteFile(filepath.Join(dir, reportMarkdownName), []byte(markdown), 0o644); err != nil {
		return errors.Wrap(err, "write report")
	}
	rendered, err := renderReport(markdown)
	if err != nil {
		return errors.Wrap(err, "render report")
	}
	if err := os.WriteFile(filepath.Join(dir, reportHTMLName), rendered, 0o644); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
