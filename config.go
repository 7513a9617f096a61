package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	minIndex = 0
	maxIndex = 42
)

type Config struct {
	InputDir    string   `yaml:"input_dir"`
	OutputDir   string   `yaml:"output_dir"`
	ConfigDir   string   `yaml:"config_dir"`
	FirstIndex  int      `yaml:"first_index"`
	LastIndex   int      `yaml:"last_index"`
	Report      bool     `yaml:"report"`
	ReportDir   string   `yaml:"report_dir"`
	CleanCells  bool     `yaml:"clean_cells"`
	MetricsFile string   `yaml:"metrics_file"`
	Branding    Branding `yaml:"branding"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:   "glossary",
		OutputDir:  "../data",
		ConfigDir:  "../conf",
		FirstIndex: minIndex,
		LastIndex:  maxIndex,
		Report:     true,
		ReportDir:  ".",
		Branding: Branding{
			Product:   "McFoxIM",
			ProductZh: "小麥族語輸入法",
			Icon:      "fcitx-fox",
			Addon:     "fox",
		},
	}
}

// LoadConfig overlays the YAML file at path on the defaults. A missing file
// leaves the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config parse failed")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.InputDir == "":
		return errors.New("input_dir is empty")
	case c.OutputDir == "":
		return errors.New("output_dir is empty")
	case c.ConfigDir == "":
		return errors.New("config_dir is empty")
	case c.Report && c.ReportDir == "":
		return errors.New("report_dir is empty")
	case c.FirstIndex < minIndex || c.LastIndex > maxIndex:
		return errors.Errorf("index range %d..%d outside %d..%d", c.FirstIndex, c.LastIndex, minIndex, maxIndex)
	case c.FirstIndex > c.LastIndex:
		return errors.Errorf("first_index %d after last_index %d", c.FirstIndex, c.LastIndex)
	}
	return nil
}
