// Package inspect reads the file prefix and metadata and builds the file report.
package inspect

import (
	"time"

	"github.com/pkg/errors"

	"github.com/tarampampam/filemagic/internal/humanize"
	"github.com/tarampampam/filemagic/internal/matcher"
)

// Report is the inspection result.
type Report struct {
	Path      string    `json:"path"`
	Type      string    `json:"type"`
	Extension string    `json:"extension"`
	Known     bool      `json:"known"`
	Size      int64     `json:"size"`
	SizeHuman string    `json:"size_human"`
	Modified  time.Time `json:"modified"`
	Changed   time.Time `json:"changed"`
	Accessed  time.Time `json:"accessed"`
}

type options struct {
	prefixSize int
	matcher    *matcher.Matcher
}

// Option allows to customize the inspection.
type Option func(*options)

// WithPrefixSize sets the amount of leading bytes to read.
func WithPrefixSize(n int) Option { return func(o *options) { o.prefixSize = n } }

// WithMatcher sets the signatures matcher.
func WithMatcher(m *matcher.Matcher) Option { return func(o *options) { o.matcher = m } }

// Inspect detects the file type and collects its metadata.
func Inspect(path string, opts ...Option) (*Report, error) {
	var o = options{prefixSize: DefaultPrefixSize, matcher: matcher.Default()}

	for _, opt := range opts {
		opt(&o)
	}

	if minimal := o.matcher.Table().MinPrefixSize(); o.prefixSize < minimal {
		return nil, errors.Wrapf(ErrPrefixTooSmall, "%d bytes requested, at least %d required", o.prefixSize, minimal)
	}

	prefix, err := ReadPrefix(path, o.prefixSize)
	if err != nil {
		return nil, err
	}

	md, err := Stat(path)
	if err != nil {
		return nil, err
	}

	var typeName = o.matcher.ClassifyType(prefix)

	return &Report{
		Path:      path,
		Type:      typeName,
		Extension: o.matcher.ClassifyExtension(prefix),
		Known:     typeName != matcher.UnknownType,
		Size:      md.Size,
		SizeHuman: humanize.FormatSize(md.Size),
		Modified:  md.Modified,
		Changed:   md.Changed,
		Accessed:  md.Accessed,
	}, nil
}
