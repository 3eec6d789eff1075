// Package picker allows to choose a file interactively.
package picker

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// ErrNoFiles is returned when there is nothing to choose from.
var ErrNoFiles = errors.New("no files to choose from")

// Selector asks the user to choose one of the options.
type Selector interface {
	Select(title string, options []string) (string, error)
}

// SelectorFunc is an adapter to allow the use of ordinary functions as a Selector.
type SelectorFunc func(title string, options []string) (string, error)

// Select calls f(title, options).
func (f SelectorFunc) Select(title string, options []string) (string, error) { return f(title, options) }

type interactive struct {
	maxHeight int
}

// NewInteractive creates a terminal selector (arrow keys + enter, type to filter).
func NewInteractive() Selector { return &interactive{maxHeight: 15} } //nolint:gomnd

func (s *interactive) Select(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(s.maxHeight).
		Show(title)
}

// Candidates returns names of the regular files located directly in the directory, sorted by name. When the pattern
// is not empty, only names matching the shell glob pattern (eg.: `*.png`, `report-?.{pdf,zip}`) are returned.
func Candidates(dir, pattern string) ([]string, error) {
	var match = func(string) bool { return true }

	if pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "wrong pattern %q", pattern)
		}

		match = g.Match
	}

	entries, err := os.ReadDir(dir) // sorted by filename
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read the directory %q", dir)
	}

	var names = make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.Type().IsRegular() || !match(entry.Name()) {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}

// Pick asks the user to choose a file from the directory and returns the path to the chosen one.
func Pick(ctx context.Context, dir, pattern string, s Selector) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	names, err := Candidates(dir, pattern)
	if err != nil {
		return "", err
	}

	if len(names) == 0 {
		return "", errors.Wrapf(ErrNoFiles, "directory %q", dir)
	}

	type result struct {
		name string
		err  error
	}

	var done = make(chan result, 1)

	go func() {
		name, selErr := s.Select("Choose a file to identify", names)
		done <- result{name: name, err: selErr}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()

	case res := <-done:
		if res.err != nil {
			return "", errors.Wrap(res.err, "file selection failed")
		}

		if res.name == "" {
			return "", errors.New("no file was chosen")
		}

		return filepath.Join(dir, res.name), nil
	}
}
