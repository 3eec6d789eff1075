package identify_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/tarampampam/filemagic/internal/cli/identify"
	"github.com/tarampampam/filemagic/internal/inspect"
	"github.com/tarampampam/filemagic/internal/logger"
	"github.com/tarampampam/filemagic/internal/picker"
	"github.com/tarampampam/filemagic/internal/ui"
)

func newApp(log logger.Logger, opts ...identify.Option) *cli.App {
	return &cli.App{Commands: []*cli.Command{identify.NewCommand(log, opts...)}}
}

func TestNewCommand(t *testing.T) {
	cmd := identify.NewCommand(logger.NewNop())

	assert.Equal(t, "identify", cmd.Name)
	assert.Equal(t, []string{"id"}, cmd.Aliases)
	assert.NotEmpty(t, cmd.Usage)
	assert.Len(t, cmd.Flags, len(identify.Flags()))
}

func TestFlags_AreFresh(t *testing.T) {
	a, b := identify.Flags(), identify.Flags()

	require.Len(t, a, len(b))

	for i := 0; i < len(a); i++ {
		assert.NotSame(t, a[i], b[i])
	}
}

func TestCommand_Run(t *testing.T) {
	ui.ColorsEnabled(false)

	var dir = t.TempDir()

	png := filepath.Join(dir, "picture")
	require.NoError(t, os.WriteFile(png, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, 0o600))

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte{}, 0o600))

	for name, tt := range map[string]struct {
		giveArgs      []string
		wantErrSubstr string
		wantOut       []string
	}{
		"text": {
			giveArgs: []string{png},
			wantOut:  []string{"File Name: " + png, "File type: PNG image", "File extension: .png", "File Size: 9.0 B (9 bytes)"},
		},
		"json": {
			giveArgs: []string{"--format", "json", png},
			wantOut:  []string{`"path": "` + png + `"`, `"size": 9`, `"size_human": "9.0 B"`},
		},
		"empty file": {
			giveArgs: []string{empty},
			wantOut:  []string{"File type: Unknown file type", "File extension: Unknown file extension", "File Size: 0B"},
		},
		"wrong format": {
			giveArgs:      []string{"--format", "yaml", png},
			wantErrSubstr: `unrecognized output format: "yaml"`,
		},
		"prefix too small": {
			giveArgs:      []string{"--prefix-size", "2", png},
			wantErrSubstr: "prefix size must be between 8 and 4096 bytes",
		},
		"prefix too large": {
			giveArgs:      []string{"--prefix-size", "4097", png},
			wantErrSubstr: "prefix size must be between 8 and 4096 bytes",
		},
		"directory": {
			giveArgs:      []string{dir},
			wantErrSubstr: "is a directory",
		},
		"too many args": {
			giveArgs:      []string{png, empty},
			wantErrSubstr: "only one file can be identified at a time",
		},
	} {
		tt := tt

		t.Run(name, func(t *testing.T) {
			var out = ui.BufOut()

			err := newApp(logger.NewNop(), identify.WithOutput(out)).
				Run(append([]string{"app", "identify"}, tt.giveArgs...))

			if tt.wantErrSubstr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrSubstr)
				assert.Zero(t, out.Len())

				return
			}

			require.NoError(t, err)

			for _, want := range tt.wantOut {
				assert.Contains(t, out.AsString(), want)
			}
		})
	}
}

func TestCommand_RunMissingFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "nope")

	err := newApp(logger.NewNop(), identify.WithOutput(ui.NoOut())).Run([]string{"app", "id", path})

	assert.ErrorIs(t, err, inspect.ErrNotFound)
}

func TestCommand_RunDebugLogging(t *testing.T) {
	ui.ColorsEnabled(false)

	var (
		logBuf = new(bytes.Buffer)
		log    = logger.New(logger.DebugLevel, logger.WithStdOut(logBuf), logger.WithStdErr(logBuf))
		path   = filepath.Join(t.TempDir(), "doc.txt")
	)

	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))
	require.NoError(t, newApp(log, identify.WithOutput(ui.NoOut())).Run([]string{"app", "id", path}))

	assert.Contains(t, logBuf.String(), "Run args")
	assert.Contains(t, logBuf.String(), "File type was not recognized")
}

func TestCommand_RunInteractive(t *testing.T) {
	ui.ColorsEnabled(false)

	var dir = t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.zip"), []byte("PK\x03\x04rest"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("text"), 0o600))

	var interactive = identify.WithInteractive(func() bool { return true })

	t.Run("chosen", func(t *testing.T) {
		var (
			out   = ui.BufOut()
			title string
		)

		selector := picker.SelectorFunc(func(tt string, options []string) (string, error) {
			title = tt
			assert.Equal(t, []string{"a.zip"}, options)

			return options[0], nil
		})

		require.NoError(t, newApp(logger.NewNop(), identify.WithOutput(out), identify.WithSelector(selector), interactive).
			Run([]string{"app", "identify", "--dir", dir, "--pattern", "*.zip"}))

		assert.NotEmpty(t, title)
		assert.Contains(t, out.AsString(), "File type: ZIP archive")
	})

	t.Run("selection failed", func(t *testing.T) {
		selector := picker.SelectorFunc(func(string, []string) (string, error) {
			return "", errors.New("interrupted")
		})

		err := newApp(logger.NewNop(), identify.WithOutput(ui.NoOut()), identify.WithSelector(selector), interactive).
			Run([]string{"app", "identify", "--dir", dir})

		assert.EqualError(t, err, "file selection failed: interrupted")
	})

	t.Run("nothing matches", func(t *testing.T) {
		selector := picker.SelectorFunc(func(string, []string) (string, error) {
			t.Error("must not be called")

			return "", nil
		})

		err := newApp(logger.NewNop(), identify.WithOutput(ui.NoOut()), identify.WithSelector(selector), interactive).
			Run([]string{"app", "identify", "--dir", dir, "--pattern", "*.pdf"})

		assert.ErrorIs(t, err, picker.ErrNoFiles)
	})

	t.Run("not interactive", func(t *testing.T) {
		err := newApp(logger.NewNop(), identify.WithOutput(ui.NoOut()), identify.WithInteractive(func() bool { return false })).
			Run([]string{"app", "identify", "--dir", dir})

		assert.ErrorIs(t, err, identify.ErrNoFile)
	})
}

func TestCommand_OutputEndsWithNewline(t *testing.T) {
	var (
		out  = ui.BufOut()
		path = filepath.Join(t.TempDir(), "f")
	)

	require.NoError(t, os.WriteFile(path, []byte("GIF87a"), 0o600))
	require.NoError(t, newApp(logger.NewNop(), identify.WithOutput(out)).Run([]string{"app", "identify", "-f", "json", path}))

	assert.True(t, strings.HasSuffix(out.AsString(), "}\n"))
}

func TestCommand_RunLogsEvents(t *testing.T) {
	ui.ColorsEnabled(false)

	var (
		logBuf = new(bytes.Buffer)
		log    = logger.New(logger.InfoLevel, logger.WithStdOut(logBuf), logger.WithStdErr(logBuf))
		dir    = t.TempDir()
	)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny"), []byte("GIF"), 0o600))

	selector := picker.SelectorFunc(func(_ string, options []string) (string, error) { return options[0], nil })

	require.NoError(t, newApp(log,
		identify.WithOutput(ui.NoOut()),
		identify.WithSelector(selector),
		identify.WithInteractive(func() bool { return true }),
	).Run([]string{"app", "identify", "--dir", dir}))

	assert.Contains(t, logBuf.String(), "File chosen (path="+filepath.Join(dir, "tiny")+")")
	assert.Contains(t, logBuf.String(), "The file is too short, some signatures cannot be tested (size=3 required=8)")
	assert.NotContains(t, logBuf.String(), "Run args") // debug is hidden on the info level
}
