package report

import (
	"bytes"
	"fmt"
)

// A Format is a report output format.
type Format uint8

const (
	TextFormat Format = iota // useful for console output (for humans)
	JSONFormat               // useful for scripts (for robots)
)

// AllFormats returns all report formats.
func AllFormats() []Format { return []Format{TextFormat, JSONFormat} }

// AllFormatStrings returns all report formats as a strings slice.
func AllFormatStrings() []string {
	var (
		formats = AllFormats()
		result  = make([]string, len(formats))
	)

	for i := 0; i < len(formats); i++ {
		result[i] = formats[i].String()
	}

	return result
}

// String returns a lower-case ASCII representation of the format.
func (f Format) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}

	return fmt.Sprintf("format(%d)", f)
}

// ParseFormat parses a format (case is ignored) based on the ASCII representation of the format.
// If the provided ASCII representation is invalid an error is returned.
func ParseFormat(text []byte) (Format, error) {
	switch string(bytes.ToLower(text)) {
	case "text", "console", "": // make the zero value useful
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}

	return Format(0), fmt.Errorf("unrecognized output format: %q", text)
}
