// Package identify contains CLI `identify` command implementation.
package identify

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tarampampam/filemagic/internal/env"
	"github.com/tarampampam/filemagic/internal/inspect"
	"github.com/tarampampam/filemagic/internal/logger"
	"github.com/tarampampam/filemagic/internal/matcher"
	"github.com/tarampampam/filemagic/internal/picker"
	"github.com/tarampampam/filemagic/internal/report"
	"github.com/tarampampam/filemagic/internal/ui"
)

const (
	PrefixSizeFlagName = "prefix-size"
	FormatFlagName     = "format"
	DirFlagName        = "dir"
	PatternFlagName    = "pattern"

	maxPrefixSize = 4096
)

// ErrNoFile is returned when the file is not specified and cannot be chosen interactively.
var ErrNoFile = errors.New("file is not specified (interactive choosing requires a terminal)")

type command struct {
	log         logger.Logger
	out         ui.Output
	selector    picker.Selector
	interactive func() bool
}

// Option allows to customize the command.
type Option func(*command)

// WithOutput sets the report destination.
func WithOutput(out ui.Output) Option { return func(c *command) { c.out = out } }

// WithSelector sets the file selector used when no file is specified.
func WithSelector(s picker.Selector) Option { return func(c *command) { c.selector = s } }

// WithInteractive sets the function that reports whether the file can be chosen interactively.
func WithInteractive(fn func() bool) Option { return func(c *command) { c.interactive = fn } }

func newCommand(log logger.Logger, opts ...Option) *command {
	var cmd = &command{
		log:      log,
		out:      ui.StdOut(),
		selector: picker.NewInteractive(),
		interactive: func() bool {
			return ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stdout)
		},
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// NewCommand creates `identify` command.
func NewCommand(log logger.Logger, opts ...Option) *cli.Command {
	return &cli.Command{
		Name:      "identify",
		ArgsUsage: "[<file>]",
		Aliases:   []string{"id"},
		Usage:     "Detect the file type by its content and show the file metadata",
		Action:    NewAction(log, opts...),
		Flags:     Flags(),
	}
}

// NewAction creates the command action (it can be used as the application default action too, in this case the
// Flags must be registered on the application level).
func NewAction(log logger.Logger, opts ...Option) cli.ActionFunc {
	return newCommand(log, opts...).Run
}

// Flags returns a fresh set of the command flags.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    PrefixSizeFlagName,
			Usage:   "amount of leading file bytes to read for the type detection",
			Value:   inspect.DefaultPrefixSize,
			EnvVars: []string{env.PrefixSize.String()},
		},
		&cli.StringFlag{
			Name:    FormatFlagName,
			Aliases: []string{"f"},
			Usage:   "output format (" + strings.Join(report.AllFormatStrings(), "|") + ")",
			Value:   report.TextFormat.String(),
			EnvVars: []string{env.OutputFormat.String()},
		},
		&cli.StringFlag{
			Name:  DirFlagName,
			Usage: "directory to choose the file from (when the file is not specified)",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  PatternFlagName,
			Usage: "glob pattern for the files to choose from, eg.: '*.{png,jpg}'",
		},
	}
}

// Run current command.
func (cmd *command) Run(c *cli.Context) error {
	var (
		prefixSize = c.Int(PrefixSizeFlagName)
		dir        = c.String(DirFlagName)
		pattern    = c.String(PatternFlagName)
		args       = c.Args().Slice()
	)

	cmd.log.Debug("Run args",
		"prefix-size="+strconv.Itoa(prefixSize),
		"format="+c.String(FormatFlagName),
		"dir="+dir,
		"pattern="+pattern,
		fmt.Sprintf("args=%q", args),
	)

	format, err := report.ParseFormat([]byte(c.String(FormatFlagName)))
	if err != nil {
		return err
	}

	var minimal = matcher.Default().Table().MinPrefixSize()

	if prefixSize < minimal || prefixSize > maxPrefixSize {
		return fmt.Errorf("prefix size must be between %d and %d bytes", minimal, maxPrefixSize)
	}

	var path string

	switch {
	case len(args) > 1:
		return errors.New("only one file can be identified at a time")

	case len(args) == 1:
		path = args[0]

	case cmd.interactive():
		if path, err = picker.Pick(c.Context, dir, pattern, cmd.selector); err != nil {
			return err
		}

		cmd.log.Info("File chosen", "path="+path)

	default:
		return ErrNoFile
	}

	rep, err := inspect.Inspect(path, inspect.WithPrefixSize(prefixSize))
	if err != nil {
		return err
	}

	if rep.Size < int64(minimal) {
		cmd.log.Warn("The file is too short, some signatures cannot be tested",
			"size="+strconv.FormatInt(rep.Size, 10),
			"required="+strconv.Itoa(minimal),
		)
	}

	if rep.Known {
		cmd.log.Debug("File type detected", "type="+rep.Type, "extension="+rep.Extension)
	} else {
		cmd.log.Debug("File type was not recognized", "path="+path)
	}

	return report.NewRenderer(format).Render(cmd.out, rep)
}
