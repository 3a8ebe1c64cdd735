// Package pipeline runs the clean and prepare stages over CSV files.
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sartorproj/gocreditprep/clean"
	"github.com/sartorproj/gocreditprep/features"
	"github.com/sartorproj/gocreditprep/sampling"
	"github.com/sartorproj/gocreditprep/stats"
	"github.com/sartorproj/gocreditprep/table"
)

// Pipeline carries the configuration, logger and column resolver of one run.
type Pipeline struct {
	cfg    *Config
	csv    *table.CSVOptions
	log    *logrus.Entry
	runID  string
	prompt clean.Resolver
}

// CleanReport summarizes a clean stage.
type CleanReport struct {
	Rows           int
	Kept           int
	OutlierColumn  string
	CategoryColumn string
	Fence          stats.Fence
	Summary        stats.Summary
}

// PrepareReport summarizes a prepare stage.
type PrepareReport struct {
	Rows     int
	Balanced int
	Train    int
	Test     int
	Columns  []string
}

// New validates cfg and returns a pipeline logging to logger.
// A nil logger uses the logrus standard logger.
func New(cfg *Config, logger *logrus.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New().String()
	return &Pipeline{
		cfg:   cfg,
		csv:   table.DefaultCSVOptions(),
		log:   logger.WithField("run_id", id),
		runID: id,
	}, nil
}

// RunID identifies this pipeline in its log entries.
func (p *Pipeline) RunID() string {
	return p.runID
}

// WithPrompt sets a resolver consulted for missing columns that
// FallbackColumns cannot correct.
func (p *Pipeline) WithPrompt(r clean.Resolver) *Pipeline {
	p.prompt = r
	return p
}

func (p *Pipeline) retrier() clean.Retrier {
	return clean.Retrier{
		MaxRetries: p.cfg.MaxRetries,
		Resolve: func(missing *table.ColumnNotFoundError) (string, error) {
			p.log.WithFields(logrus.Fields{
				"column":  missing.Column,
				"attempt": missing.Attempts,
			}).Warn("column not found")

			if next, ok := p.cfg.FallbackColumns[missing.Column]; ok {
				p.log.WithField("column", next).Info("trying fallback column")
				return next, nil
			}
			if p.prompt != nil {
				return p.prompt(missing)
			}
			return "", errors.Errorf("no fallback for column %q", missing.Column)
		},
	}
}

// CleanTable removes outliers from the outlier column and normalizes the
// category column.
func (p *Pipeline) CleanTable(t *table.Table) (*table.Table, *CleanReport, error) {
	log := p.log.WithField("stage", "clean")
	r := p.retrier()

	res, err := r.FilterOutliers(t, p.cfg.Clean.OutlierColumn)
	if err != nil {
		return nil, nil, errors.Wrap(err, "remove outliers")
	}
	log.WithFields(logrus.Fields{
		"column":    res.Column,
		"q1":        res.Summary.Q1,
		"q3":        res.Summary.Q3,
		"medcouple": res.Summary.Medcouple,
		"fence":     res.Fence.String(),
		"dropped":   res.Dropped,
	}).Info("outliers removed")

	report := &CleanReport{
		Rows:          t.Len(),
		Kept:          res.Table.Len(),
		OutlierColumn: res.Column,
		Fence:         res.Fence,
		Summary:       res.Summary,
	}

	out := res.Table
	if p.cfg.Clean.CategoryColumn != "" {
		var used string
		out, used, err = r.StandardizeCategories(out, p.cfg.Clean.CategoryColumn, p.cfg.Clean.Replacements)
		if err != nil {
			return nil, nil, errors.Wrap(err, "standardize categories")
		}
		report.CategoryColumn = used
		log.WithField("column", used).Debug("categories standardized")
	}
	return out, report, nil
}

// PrepareTable derives features, balances the classes, selects the feature
// columns and splits the result into train and test tables.
func (p *Pipeline) PrepareTable(t *table.Table) (train, test *table.Table, report *PrepareReport, err error) {
	cfg := p.cfg.Prepare
	log := p.log.WithField("stage", "prepare")

	out, err := features.DeriveRatios(t, cfg.Ratios...)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "derive features")
	}
	if cfg.Ordinal != nil {
		if out, err = features.EncodeOrdinal(out, *cfg.Ordinal); err != nil {
			return nil, nil, nil, errors.Wrap(err, "encode ordinal")
		}
	}

	balanced, err := sampling.Balance(out, cfg.Target, cfg.Stratify, cfg.BalanceSeed)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "balance classes")
	}
	log.WithFields(logrus.Fields{
		"rows":     out.Len(),
		"balanced": balanced.Len(),
		"stratify": cfg.Stratify,
	}).Info("classes balanced")

	selected, err := features.SelectFeatures(balanced, cfg.Features)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "select features")
	}

	train, test, err = sampling.Split(selected, cfg.Target, cfg.TestFraction, cfg.SplitSeed)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "split")
	}
	log.WithFields(logrus.Fields{
		"train": train.Len(),
		"test":  test.Len(),
	}).Info("dataset split")

	return train, test, &PrepareReport{
		Rows:     t.Len(),
		Balanced: balanced.Len(),
		Train:    train.Len(),
		Test:     test.Len(),
		Columns:  train.Names(),
	}, nil
}

// Clean reads the raw CSV, cleans it and writes the clean CSV.
func (p *Pipeline) Clean() (*CleanReport, error) {
	start := time.Now()
	t, err := p.load(p.cfg.Clean.Input)
	if err != nil {
		return nil, err
	}
	out, report, err := p.CleanTable(t)
	if err != nil {
		return nil, err
	}
	if err := p.save(out, p.cfg.Clean.Output); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"stage":    "clean",
		"rows":     report.Rows,
		"kept":     report.Kept,
		"output":   p.cfg.Clean.Output,
		"duration": time.Since(start),
	}).Info("clean stage done")
	return report, nil
}

// Prepare reads the clean CSV and writes the train and test CSVs.
func (p *Pipeline) Prepare() (*PrepareReport, error) {
	start := time.Now()
	t, err := p.load(p.cfg.Prepare.Input)
	if err != nil {
		return nil, err
	}
	train, test, report, err := p.PrepareTable(t)
	if err != nil {
		return nil, err
	}
	if err := p.save(train, p.cfg.Prepare.TrainOutput); err != nil {
		return nil, err
	}
	if err := p.save(test, p.cfg.Prepare.TestOutput); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"stage":    "prepare",
		"train":    p.cfg.Prepare.TrainOutput,
		"test":     p.cfg.Prepare.TestOutput,
		"duration": time.Since(start),
	}).Info("prepare stage done")
	return report, nil
}

// Run runs Clean followed by Prepare.
func (p *Pipeline) Run() (*CleanReport, *PrepareReport, error) {
	cr, err := p.Clean()
	if err != nil {
		return nil, nil, err
	}
	pr, err := p.Prepare()
	if err != nil {
		return cr, nil, err
	}
	return cr, pr, nil
}

func (p *Pipeline) load(path string) (*table.Table, error) {
	if path == "" {
		return nil, errors.Wrap(table.ErrInvalidInput, "no input path configured")
	}
	t, err := table.LoadCSV(path, p.csv)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"path":    path,
		"rows":    t.Len(),
		"columns": len(t.Names()),
	}).Debug("loaded")
	return t, nil
}

func (p *Pipeline) save(t *table.Table, path string) error {
	if path == "" {
		return errors.Wrap(table.ErrInvalidInput, "no output path configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}
	if err := table.SaveCSV(t, path, p.csv); err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{"path": path, "rows": t.Len()}).Debug("saved")
	return nil
}
