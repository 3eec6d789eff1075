// Package logger contains functions for a working with application logging.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, v ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, v ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, v ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, v ...any)
}

type output struct {
	mu sync.Mutex
	to io.Writer
}

// LogOption is a function that can be used to modify a Log.
type LogOption func(*Log)

// WithStdOut sets the writer for standard output.
func WithStdOut(w io.Writer) LogOption { return func(l *Log) { l.stdOut.to = w } }

// WithStdErr sets the writer for standard error.
func WithStdErr(w io.Writer) LogOption { return func(l *Log) { l.errOut.to = w } }

// Log is a logger that logs messages at specified level.
type Log struct {
	stdOut, errOut output
	lvl            Level
}

var _ Logger = (*Log)(nil)

// New creates a new Logger with specified level.
func New(lvl Level, opts ...LogOption) *Log {
	var log = &Log{
		stdOut: output{to: os.Stdout},
		errOut: output{to: os.Stderr},
		lvl:    lvl,
	}

	for _, opt := range opts {
		opt(log)
	}

	return log
}

// NewNop creates a no-op Logger.
func NewNop() *Log {
	return &Log{
		stdOut: output{to: io.Discard},
		errOut: output{to: io.Discard},
		lvl:    noLevel,
	}
}

// SetLevel changes the logging level.
func (l *Log) SetLevel(lvl Level) { l.lvl = lvl }

// Level returns the current logging level.
func (l *Log) Level() Level { return l.lvl }

// levelStyle describes how the messages of a single level are rendered.
type levelStyle struct {
	label         string       // fixed-width level name
	marker, color *pterm.Style // label block and timestamp styles
	withCaller    bool         // append the caller file:line
}

var (
	styles = map[Level]levelStyle{ //nolint:gochecknoglobals
		DebugLevel: {
			label:      " debug ",
			marker:     pterm.NewStyle(pterm.BgMagenta, pterm.FgLightMagenta),
			color:      pterm.NewStyle(pterm.FgMagenta),
			withCaller: true,
		},
		InfoLevel: {
			label:  "  info ",
			marker: pterm.NewStyle(pterm.BgBlue, pterm.FgLightBlue),
			color:  pterm.NewStyle(pterm.FgBlue),
		},
		WarnLevel: {
			label:  "  warn ",
			marker: pterm.NewStyle(pterm.BgLightYellow, pterm.FgBlack),
			color:  pterm.NewStyle(pterm.FgLightYellow, pterm.Bold),
		},
		ErrorLevel: {
			label:  " error ",
			marker: pterm.NewStyle(pterm.BgLightRed, pterm.FgLightWhite),
			color:  pterm.NewStyle(pterm.FgLightRed, pterm.Bold),
		},
	}

	callerStyle = pterm.NewStyle(pterm.Underscore) //nolint:gochecknoglobals
	extraStyle  = pterm.NewStyle(pterm.FgWhite)    //nolint:gochecknoglobals
)

// Debug logs a message at DebugLevel.
func (l *Log) Debug(msg string, v ...any) { l.log(DebugLevel, msg, v) }

// Info logs a message at InfoLevel.
func (l *Log) Info(msg string, v ...any) { l.log(InfoLevel, msg, v) }

// Warn logs a message at WarnLevel.
func (l *Log) Warn(msg string, v ...any) { l.log(WarnLevel, msg, v) }

// Error logs a message at ErrorLevel.
func (l *Log) Error(msg string, v ...any) { l.log(ErrorLevel, msg, v) }

// log must be called directly from the exported methods only (the caller depth is fixed).
func (l *Log) log(lvl Level, msg string, extra []any) {
	if lvl < l.lvl {
		return
	}

	var (
		style = styles[lvl]
		out   = &l.stdOut
		buf   bytes.Buffer
	)

	if lvl >= ErrorLevel {
		out = &l.errOut
	}

	buf.WriteString(style.marker.Sprint(style.label))
	buf.WriteRune(' ')
	buf.WriteString(style.color.Sprint(time.Now().Format("15:04:05.000")))

	if style.withCaller {
		if _, file, line, ok := runtime.Caller(2); ok { //nolint:gomnd
			buf.WriteRune(' ')
			buf.WriteString(callerStyle.Sprintf("%s:%d", filepath.Base(file), line))
		}
	}

	buf.WriteRune(' ')
	buf.WriteString(msg)

	if len(extra) > 0 {
		var parts = make([]string, len(extra))

		for i := 0; i < len(extra); i++ {
			parts[i] = fmt.Sprint(extra[i])
		}

		buf.WriteRune(' ')
		buf.WriteString(extraStyle.Sprint("(" + strings.Join(parts, " ") + ")"))
	}

	buf.WriteRune('\n')

	out.mu.Lock()
	_, _ = buf.WriteTo(out.to)
	out.mu.Unlock()
}
