package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

const doneMessage = "Data processed and written to files"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("glossconv", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "glossconv.yaml", "YAML config file (optional)")
	inputDir := flags.StringP("input", "i", "", "Directory with the source spreadsheets")
	outputDir := flags.StringP("output", "o", "", "Directory for TW_NN.json tables")
	confDir := flags.String("conf-dir", "", "Directory for fox_TW_NN.conf stubs")
	reportDir := flags.String("report-dir", "", "Directory for REPORT.md and REPORT.html")
	lookup := flags.String("lookup", "", "Look up --prefix in a written table (TW_NN or a .json path) instead of converting")
	prefix := flags.String("prefix", "", "Transliteration prefix for --lookup")
	limit := flags.Int("limit", 20, "Maximum --lookup results, 0 for all")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *confDir != "" {
		cfg.ConfigDir = *confDir
	}
	if *reportDir != "" {
		cfg.ReportDir = *reportDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	if *lookup != "" {
		return runLookup(lookupPath(cfg.OutputDir, *lookup), *prefix, *limit, stdout, stderr)
	}

	log := slog.New(slog.NewTextHandler(stdout, nil))
	converter := NewConverter(cfg, log)
	results := converter.Run()

	if cfg.Report {
		if err := WriteReport(cfg.ReportDir, results); err != nil {
			log.Error("report failed", "err", err)
		}
	}
	if cfg.MetricsFile != "" {
		if err := converter.metrics.writeTextfile(cfg.MetricsFile); err != nil {
			log.Error("metrics failed", "path", cfg.MetricsFile, "err", err)
		}
	}

	fmt.Fprintln(stdout, doneMessage)
	return 0
}

func lookupPath(outputDir, table string) string {
	if strings.HasSuffix(table, ".json") {
		return table
	}
	if !strings.HasPrefix(table, "TW_") {
		table = "TW_" + table
	}
	return filepath.Join(outputDir, table+".json")
}

func runLookup(path, prefix string, limit int, stdout, stderr io.Writer) int {
	table, err := LoadTable(path)
	if err != nil {
		fmt.Fprintf(stderr, "lookup %s: %v\n", path, err)
		return 1
	}
	if err := checkSorted(table); err != nil {
		fmt.Fprintf(stderr, "lookup %s: %v\n", path, err)
		return 1
	}
	for _, entry := range Complete(table, prefix, limit) {
		fmt.Fprintf(stdout, "%s\t%s\n", entry.Term, entry.Char)
	}
	return 0
}
