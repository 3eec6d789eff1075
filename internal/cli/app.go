// Package cli contains CLI command handlers.
package cli

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tarampampam/filemagic/internal/cli/formats"
	"github.com/tarampampam/filemagic/internal/cli/identify"
	"github.com/tarampampam/filemagic/internal/env"
	"github.com/tarampampam/filemagic/internal/logger"
	"github.com/tarampampam/filemagic/internal/picker"
	"github.com/tarampampam/filemagic/internal/ui"
	"github.com/tarampampam/filemagic/internal/version"
)

const (
	logLevelFlagName = "log-level"
	noColorFlagName  = "no-color"
	envFileFlagName  = "env-file"

	defaultLogLevel = logger.InfoLevel

	description = "Pass the file path as the only argument, or run without arguments to choose a file " +
		"interactively.\n\nA file named like a command (identify, id, formats, f) must be passed to the identify " +
		"command explicitly: filemagic identify <file>"
)

type options struct {
	stdOut      ui.Output
	stdErr      ui.Output
	selector    picker.Selector
	interactive func() bool
}

// Option allows to customize the application (useful for testing).
type Option func(*options)

// WithStdOut sets the reports output.
func WithStdOut(out ui.Output) Option { return func(o *options) { o.stdOut = out } }

// WithStdErr sets the diagnostic (logging) output.
func WithStdErr(out ui.Output) Option { return func(o *options) { o.stdErr = out } }

// WithSelector sets the interactive file selector.
func WithSelector(s picker.Selector) Option { return func(o *options) { o.selector = s } }

// WithInteractive overrides the terminal detection for the interactive file choosing.
func WithInteractive(fn func() bool) Option { return func(o *options) { o.interactive = fn } }

// NewApp creates new console application.
func NewApp(opts ...Option) *cli.App {
	var o = options{stdOut: ui.StdOut(), stdErr: ui.StdErr()}

	for _, opt := range opts {
		opt(&o)
	}

	// diagnostics go to stderr, so the stdout keeps the report only
	var log = logger.New(defaultLogLevel, logger.WithStdOut(o.stdErr), logger.WithStdErr(o.stdErr))

	var identifyOpts = []identify.Option{identify.WithOutput(o.stdOut)}

	if o.selector != nil {
		identifyOpts = append(identifyOpts, identify.WithSelector(o.selector))
	}

	if o.interactive != nil {
		identifyOpts = append(identifyOpts, identify.WithInteractive(o.interactive))
	}

	// application-level flags that are bound to the environment variables
	var envBound = map[string]string{
		logLevelFlagName:            env.LogLevel.String(),
		identify.PrefixSizeFlagName: env.PrefixSize.String(),
		identify.FormatFlagName:     env.OutputFormat.String(),
	}

	return &cli.App{
		Name:        "filemagic",
		Usage:       "Detect the file type by its magic bytes (the file extension is never trusted)",
		ArgsUsage:   "[<file>]",
		Description: description,
		Before: func(c *cli.Context) error {
			if path := c.String(envFileFlagName); path != "" {
				if err := godotenv.Load(path); err != nil {
					return errors.Wrapf(err, "unable to load the env file %q", path)
				}

				// application flags are parsed already, so the values from the file must be applied manually
				for name, envName := range envBound {
					if value, ok := os.LookupEnv(envName); ok && !c.IsSet(name) {
						if err := c.Set(name, value); err != nil {
							return errors.Wrapf(err, "wrong %s value", envName)
						}
					}
				}
			}

			if c.Bool(noColorFlagName) {
				ui.ColorsEnabled(false)
			} else {
				ui.ColorsEnabled(ui.ColorsEnabled()) // sync the styling library state
			}

			lvl, err := logger.ParseLevel([]byte(c.String(logLevelFlagName)))
			if err != nil {
				return err
			}

			log.SetLevel(lvl)

			return nil
		},
		Action: identify.NewAction(log, identifyOpts...),
		Commands: []*cli.Command{
			identify.NewCommand(log, identifyOpts...),
			formats.NewCommand(o.stdOut),
		},
		Flags: append([]cli.Flag{ // global flags
			&cli.StringFlag{
				Name:    logLevelFlagName,
				Value:   defaultLogLevel.String(),
				Usage:   "logging level (" + strings.Join(logger.AllLevelStrings(), "|") + ")",
				EnvVars: []string{env.LogLevel.String()},
			},
			&cli.BoolFlag{
				Name:  noColorFlagName,
				Usage: "disable colored output (the NO_COLOR environment variable is respected too)",
			},
			&cli.StringFlag{
				Name:    envFileFlagName,
				Usage:   "load environment variables from the dotenv file (existing variables are not overridden)",
				EnvVars: []string{env.EnvFile.String()},
			},
		}, identify.Flags()...),
		Version: version.Version(),
	}
}
