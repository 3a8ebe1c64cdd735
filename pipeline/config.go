package pipeline

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gocreditprep/clean"
	"github.com/sartorproj/gocreditprep/features"
	"github.com/sartorproj/gocreditprep/table"
)

// Config holds the configuration of both pipeline stages.
type Config struct {
	Clean   CleanConfig   `yaml:"clean"`
	Prepare PrepareConfig `yaml:"prepare"`

	MaxRetries      int               `yaml:"max_retries"`      // Attempts per column lookup (default: 3)
	FallbackColumns map[string]string `yaml:"fallback_columns"` // Name to try next when a column is missing
}

// CleanConfig configures the clean stage.
type CleanConfig struct {
	Input          string            `yaml:"input"`           // Raw CSV
	Output         string            `yaml:"output"`          // Clean CSV
	OutlierColumn  string            `yaml:"outlier_column"`  // Column filtered with the adjusted fence
	CategoryColumn string            `yaml:"category_column"` // Column whose categories are normalized
	Replacements   map[string]string `yaml:"replacements"`    // Category rewrites
}

// PrepareConfig configures the prepare stage.
type PrepareConfig struct {
	Input       string `yaml:"input"`        // Clean CSV
	TrainOutput string `yaml:"train_output"` // Train CSV
	TestOutput  string `yaml:"test_output"`  // Test CSV

	Target       string  `yaml:"target"`        // Binary class column (default: default_12m)
	Stratify     string  `yaml:"stratify"`      // Strata when balancing (default: sector_industrial)
	BalanceSeed  int64   `yaml:"balance_seed"`  // (default: 43)
	SplitSeed    int64   `yaml:"split_seed"`    // (default: 42)
	TestFraction float64 `yaml:"test_fraction"` // Share of rows in the test set (default: 0.03)

	Ratios   []features.Ratio          `yaml:"ratios"`
	Ordinal  *features.OrdinalEncoding `yaml:"ordinal"`  // Skipped when nil
	Features []string                  `yaml:"features"` // Empty keeps every column
}

// DefaultConfig returns the configuration of the SME credit dataset.
func DefaultConfig() *Config {
	zero := 0
	return &Config{
		Clean: CleanConfig{
			Input:          "data/raw/covalto_sme_credit_data.csv",
			Output:         "data/processed/covalto_sme_credit_data_clean.csv",
			OutlierColumn:  "ingresos_anuales_mxn",
			CategoryColumn: "sector_industrial",
			Replacements:   map[string]string{"retail": "Retail"},
		},
		Prepare: PrepareConfig{
			Input:        "data/processed/covalto_sme_credit_data_clean.csv",
			TrainOutput:  "data/processed/covalto_sme_credit_train.csv",
			TestOutput:   "data/processed/covalto_sme_credit_test.csv",
			Target:       "default_12m",
			Stratify:     "sector_industrial",
			BalanceSeed:  43,
			SplitSeed:    42,
			TestFraction: 0.03,
			Ratios: []features.Ratio{
				{
					Name:        "ratio_deuda_ingresos",
					Numerators:  []string{"deuda_total_mxn"},
					Denominator: "ingresos_anuales_mxn",
				},
				{
					Name:        "carga_total_ingresos",
					Numerators:  []string{"deuda_total_mxn", "monto_solicitado_mxn"},
					Denominator: "ingresos_anuales_mxn",
				},
			},
			Ordinal: &features.OrdinalEncoding{
				Column:    "calificacion_buro",
				Levels:    map[string]int{"A": 1, "B": 2, "C": 3, "D": 4},
				NullLevel: &zero,
			},
			Features: []string{
				"historial_pagos_atrasados",
				"calificacion_buro",
				"monto_solicitado_mxn",
				"ratio_deuda_ingresos",
				"carga_total_ingresos",
				"default_12m",
			},
		},
		MaxRetries: clean.DefaultMaxRetries,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys absent from the file
// keep their default; maps present in the file are merged into the default
// maps and lists replace the default lists. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig is LoadConfig for YAML already in memory.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return errors.Wrapf(table.ErrInvalidInput, format, args...)
	}

	switch {
	case c.MaxRetries < 0:
		return invalid("max_retries must not be negative, got %d", c.MaxRetries)
	case c.Clean.OutlierColumn == "":
		return invalid("clean.outlier_column is required")
	case c.Clean.CategoryColumn != "" && len(c.Clean.Replacements) == 0:
		return invalid("clean.replacements is required with clean.category_column")
	case c.Prepare.Target == "":
		return invalid("prepare.target is required")
	case c.Prepare.Stratify == "":
		return invalid("prepare.stratify is required")
	case !(c.Prepare.TestFraction > 0 && c.Prepare.TestFraction < 1):
		return invalid("prepare.test_fraction must be in (0, 1), got %g", c.Prepare.TestFraction)
	}
	if o := c.Prepare.Ordinal; o != nil {
		if o.Column == "" {
			return invalid("prepare.ordinal.column is required")
		}
		if len(o.Levels) == 0 {
			return invalid("prepare.ordinal.levels must not be empty")
		}
	}
	if len(c.Prepare.Features) > 0 {
		found := false
		for _, f := range c.Prepare.Features {
			if f == c.Prepare.Target {
				found = true
				break
			}
		}
		if !found {
			return invalid("prepare.features must include the target %q", c.Prepare.Target)
		}
	}
	return nil
}
