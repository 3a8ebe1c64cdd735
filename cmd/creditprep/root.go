package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gocreditprep/pipeline"
)

// cli holds the streams and logger shared by every command.
type cli struct {
	in     io.Reader
	out    io.Writer
	err    io.Writer
	logger *logrus.Logger
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	logger := logrus.New()
	logger.SetOutput(errOut)
	return &cli{in: in, out: out, err: errOut, logger: logger}
}

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCommand(c *cli) *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:           "creditprep [OPTIONS] COMMAND",
		Short:         "Prepare SME credit data for model training",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setupLogger(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetIn(c.in)
	cmd.SetOut(c.out)
	cmd.SetErr(c.err)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (defaults are used when empty)")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "info", `Logging level ("debug"|"info"|"warn"|"error")`)
	flags.StringVar(&opts.logFormat, "log-format", "text", `Log format ("text"|"json")`)

	cmd.AddCommand(
		newCleanCommand(c, &opts),
		newPrepareCommand(c, &opts),
		newRunCommand(c, &opts),
		newDescribeCommand(c, &opts),
	)
	return cmd
}

func (c *cli) setupLogger(opts globalOptions) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "log-level")
	}
	c.logger.SetLevel(level)

	switch opts.logFormat {
	case "text":
		c.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		c.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("log-format: unknown format %q", opts.logFormat)
	}
	return nil
}

func (c *cli) loadConfig(opts *globalOptions) (*pipeline.Config, error) {
	if opts.configPath == "" {
		return pipeline.DefaultConfig(), nil
	}
	return pipeline.LoadConfig(opts.configPath)
}

func (c *cli) newPipeline(opts *globalOptions, interactive bool) (*pipeline.Pipeline, error) {
	cfg, err := c.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	p, err := pipeline.New(cfg, c.logger)
	if err != nil {
		return nil, err
	}
	if interactive {
		p.WithPrompt(promptResolver(c.in, c.err))
	}
	return p, nil
}
