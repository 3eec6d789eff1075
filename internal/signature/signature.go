// Package signature contains the ordered table of known file signatures (magic bytes).
package signature

import (
	"encoding/hex"
	"strings"
)

// Signature describes a single file type detection rule.
type Signature struct {
	Name      string // human-readable type label, eg.: `PNG image`
	Extension string // canonical extension without the leading dot, eg.: `png`
	Offset    int    // byte offset where Magic must start
	Magic     []byte // bytes to match exactly at Offset
}

// Hex returns the magic bytes as an upper-case, space separated hex string (eg.: `FF D8 FF`).
func (s Signature) Hex() string {
	var parts = make([]string, len(s.Magic))

	for i := 0; i < len(s.Magic); i++ {
		parts[i] = strings.ToUpper(hex.EncodeToString(s.Magic[i : i+1]))
	}

	return strings.Join(parts, " ")
}

// End returns the offset right after the last magic byte.
func (s Signature) End() int { return s.Offset + len(s.Magic) }

// Clone returns a copy of the signature that does not share the Magic bytes with the original.
func (s Signature) Clone() Signature {
	s.Magic = append([]byte(nil), s.Magic...)

	return s
}

// Table is an ordered signatures list. The order matters: the first matching entry wins, so a more specific
// signature must be placed before a shorter one that overlaps it at the same offset.
type Table []Signature

// MinPrefixSize returns the minimal prefix length (in bytes) required to test every table entry.
func (t Table) MinPrefixSize() (size int) {
	for i := 0; i < len(t); i++ {
		if end := t[i].End(); end > size {
			size = end
		}
	}

	return
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}

	var c = make(Table, len(t))

	for i := 0; i < len(t); i++ {
		c[i] = t[i].Clone()
	}

	return c
}

// table is initialized once and never modified.
var table = Table{ //nolint:gochecknoglobals
	{Name: "PNG image", Extension: "png", Offset: 0, Magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{Name: "ZIP archive", Extension: "zip", Offset: 0, Magic: []byte("PK\x03\x04")}, // local file header
	{Name: "PDF document", Extension: "pdf", Offset: 0, Magic: []byte("%PDF-")},
	{Name: "JPEG image", Extension: "jpg", Offset: 0, Magic: []byte{0xFF, 0xD8, 0xFF}},
	{Name: "GIF image", Extension: "gif", Offset: 0, Magic: []byte("GIF87a")},
	{Name: "GIF image", Extension: "gif", Offset: 0, Magic: []byte("GIF89a")},
}

// Default returns a copy of the built-in signatures table, so changes made by the caller never reach the
// package state.
func Default() Table { return table.Clone() }
