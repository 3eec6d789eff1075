package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarampampam/filemagic/internal/report"
)

func TestAllFormats(t *testing.T) {
	require.EqualValues(t, []report.Format{report.TextFormat, report.JSONFormat}, report.AllFormats())
}

func TestAllFormatStrings(t *testing.T) {
	require.EqualValues(t, []string{"text", "json"}, report.AllFormatStrings())
}

func TestFormat_String(t *testing.T) {
	for name, tt := range map[string]struct {
		giveFormat report.Format
		wantString string
	}{
		"json":      {giveFormat: report.JSONFormat, wantString: "json"},
		"text":      {giveFormat: report.TextFormat, wantString: "text"},
		"<unknown>": {giveFormat: report.Format(255), wantString: "format(255)"},
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.wantString, tt.giveFormat.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	for name, tt := range map[string]struct {
		giveText   []byte
		wantFormat report.Format
		wantError  error
	}{
		"<empty value>": {giveText: []byte(""), wantFormat: report.TextFormat},
		"text":          {giveText: []byte("text"), wantFormat: report.TextFormat},
		"console":       {giveText: []byte("Console"), wantFormat: report.TextFormat},
		"json":          {giveText: []byte("JSON"), wantFormat: report.JSONFormat},
		"foobar":        {giveText: []byte("foobar"), wantError: errors.New("unrecognized output format: \"foobar\"")},
	} {
		t.Run(name, func(t *testing.T) {
			f, err := report.ParseFormat(tt.giveText)

			if tt.wantError == nil {
				require.NoError(t, err)
				require.Equal(t, tt.wantFormat, f)
			} else {
				require.EqualError(t, err, tt.wantError.Error())
			}
		})
	}
}
