// Package matcher detects a file type by matching its leading bytes against the signatures table.
//
// Every function here is pure: no I/O, no state, safe for concurrent use.
package matcher

import (
	"bytes"

	"github.com/tarampampam/filemagic/internal/signature"
)

const (
	UnknownType      = "Unknown file type"      // reported when no signature matches
	UnknownExtension = "Unknown file extension" // reported when no signature matches
)

// Result is a lookup result. The zero value means "no match".
type Result struct {
	sig   *signature.Signature
	index int
}

// Found reports whether some signature matched.
func (r Result) Found() bool { return r.sig != nil }

// Signature returns the matched signature and true, or the zero value and false if nothing matched.
func (r Result) Signature() (signature.Signature, bool) {
	if r.sig == nil {
		return signature.Signature{}, false
	}

	return r.sig.Clone(), true
}

// Index returns the matched entry position in the table, or -1.
func (r Result) Index() int {
	if r.sig == nil {
		return -1
	}

	return r.index
}

// Name returns the matched type name or UnknownType.
func (r Result) Name() string {
	if r.sig == nil {
		return UnknownType
	}

	return r.sig.Name
}

// Extension returns the matched extension or UnknownExtension.
func (r Result) Extension() string {
	if r.sig == nil || r.sig.Extension == "" {
		return UnknownExtension
	}

	return r.sig.Extension
}

// Matcher looks up signatures in a table, in the table order.
type Matcher struct {
	table signature.Table
}

// New creates a matcher over a copy of the given table (later changes of the table do not affect the matcher).
func New(table signature.Table) *Matcher { return &Matcher{table: table.Clone()} }

// Default returns the matcher over the built-in signatures table.
func Default() *Matcher { return defaultMatcher }

var defaultMatcher = New(signature.Default()) //nolint:gochecknoglobals

// Table returns a copy of the table the matcher works with.
func (m *Matcher) Table() signature.Table { return m.table.Clone() }

// Lookup returns the first table entry whose magic bytes are found at its offset in the prefix. Entries that
// do not fit into the prefix are skipped, so any input (including nil) is acceptable.
func (m *Matcher) Lookup(prefix []byte) Result {
	for i := 0; i < len(m.table); i++ {
		if matches(m.table[i], prefix) {
			return Result{sig: &m.table[i], index: i}
		}
	}

	return Result{}
}

// ClassifyType returns the matched type name or UnknownType.
func (m *Matcher) ClassifyType(prefix []byte) string { return m.Lookup(prefix).Name() }

// ClassifyExtension returns the matched extension or UnknownExtension. It runs its own lookup.
func (m *Matcher) ClassifyExtension(prefix []byte) string { return m.Lookup(prefix).Extension() }

func matches(sig signature.Signature, prefix []byte) bool {
	if len(sig.Magic) == 0 || sig.Offset < 0 || sig.Offset > len(prefix) {
		return false
	}

	return bytes.HasPrefix(prefix[sig.Offset:], sig.Magic)
}

// ClassifyType classifies the prefix using the built-in table.
func ClassifyType(prefix []byte) string { return defaultMatcher.ClassifyType(prefix) }

// ClassifyExtension classifies the prefix using the built-in table.
func ClassifyExtension(prefix []byte) string { return defaultMatcher.ClassifyExtension(prefix) }
