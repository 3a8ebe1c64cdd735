package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gocreditprep/stats"
	"github.com/sartorproj/gocreditprep/table"
)

type stageOptions struct {
	interactive bool
}

func newCleanCommand(c *cli, global *globalOptions) *cobra.Command {
	var opts stageOptions

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove income outliers and normalize sectors in the raw CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(c, global, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Ask for the column name when a column is missing")
	return cmd
}

func runClean(c *cli, global *globalOptions, opts stageOptions) error {
	p, err := c.newPipeline(global, opts.interactive)
	if err != nil {
		return err
	}
	report, err := p.Clean()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "clean: kept %d of %d rows, %s fence %s\n",
		report.Kept, report.Rows, report.OutlierColumn, report.Fence)
	return nil
}

func newPrepareCommand(c *cli, global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Derive features, balance classes and write train and test CSVs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrepare(c, global)
		},
	}
}

func runPrepare(c *cli, global *globalOptions) error {
	p, err := c.newPipeline(global, false)
	if err != nil {
		return err
	}
	report, err := p.Prepare()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "prepare: %d rows balanced to %d, train %d, test %d\n",
		report.Rows, report.Balanced, report.Train, report.Test)
	return nil
}

func newRunCommand(c *cli, global *globalOptions) *cobra.Command {
	var opts stageOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run clean then prepare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(c, global, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Ask for the column name when a column is missing")
	return cmd
}

func runAll(c *cli, global *globalOptions, opts stageOptions) error {
	p, err := c.newPipeline(global, opts.interactive)
	if err != nil {
		return err
	}
	cr, pr, err := p.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "clean: kept %d of %d rows, %s fence %s\n",
		cr.Kept, cr.Rows, cr.OutlierColumn, cr.Fence)
	fmt.Fprintf(c.out, "prepare: %d rows balanced to %d, train %d, test %d\n",
		pr.Rows, pr.Balanced, pr.Train, pr.Test)
	return nil
}

type describeOptions struct {
	input    string
	decimals int
}

func newDescribeCommand(c *cli, global *globalOptions) *cobra.Command {
	var opts describeOptions

	cmd := &cobra.Command{
		Use:   "describe [OPTIONS] COLUMN",
		Short: "Summarize a numeric column and show its outlier fence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(c, global, opts, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "CSV file (defaults to the configured raw input)")
	flags.IntVar(&opts.decimals, "decimals", 2, "Decimals to print")
	return cmd
}

func runDescribe(c *cli, global *globalOptions, opts describeOptions, column string) error {
	input := opts.input
	if input == "" {
		cfg, err := c.loadConfig(global)
		if err != nil {
			return err
		}
		input = cfg.Clean.Input
	}

	t, err := table.LoadCSV(input, nil)
	if err != nil {
		return err
	}
	values, err := t.Floats(column)
	if err != nil {
		return err
	}
	d, err := stats.Describe(values)
	if err != nil {
		return errors.Wrapf(err, "column %q", column)
	}
	fmt.Fprintln(c.out, d.String(opts.decimals))
	return nil
}
