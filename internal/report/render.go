// Package report renders the file inspection results.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pterm/pterm"

	"github.com/tarampampam/filemagic/internal/inspect"
)

// TimeLayout is used for the absolute timestamps in the text report.
const TimeLayout = "2006-01-02 15:04:05"

var (
	labelStyle   = pterm.NewStyle(pterm.Bold)                    //nolint:gochecknoglobals
	knownStyle   = pterm.NewStyle(pterm.FgLightGreen)            //nolint:gochecknoglobals
	unknownStyle = pterm.NewStyle(pterm.FgLightYellow)           //nolint:gochecknoglobals
	faintStyle   = pterm.NewStyle(pterm.FgGray)                  //nolint:gochecknoglobals
	pathStyle    = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold) //nolint:gochecknoglobals
)

// Renderer writes reports in the chosen format.
type Renderer struct {
	format Format
	now    func() time.Time
	json   jsoniter.API
}

// RendererOption allows to customize the Renderer.
type RendererOption func(*Renderer)

// WithClock sets the current time source (used for the relative timestamps).
func WithClock(now func() time.Time) RendererOption { return func(r *Renderer) { r.now = now } }

// NewRenderer creates a new report renderer.
func NewRenderer(f Format, opts ...RendererOption) *Renderer {
	var r = &Renderer{
		format: f,
		now:    time.Now,
		json:   jsoniter.ConfigCompatibleWithStandardLibrary,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes the report into the writer.
func (r *Renderer) Render(w io.Writer, rep *inspect.Report) error {
	switch r.format {
	case TextFormat:
		return r.text(w, rep)
	case JSONFormat:
		return r.jsonObject(w, rep)
	}

	return fmt.Errorf("unsupported output format: %s", r.format)
}

func (r *Renderer) jsonObject(w io.Writer, rep *inspect.Report) error {
	b, err := r.json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(b, '\n'))

	return err
}

func (r *Renderer) text(w io.Writer, rep *inspect.Report) error {
	var (
		buf       strings.Builder
		now       = r.now()
		typeStyle = knownStyle
		ext       = rep.Extension
	)

	if rep.Known {
		ext = "." + ext
	} else {
		typeStyle = unknownStyle
	}

	var line = func(label, value string) {
		buf.WriteString(labelStyle.Sprint(label + ":"))
		buf.WriteRune(' ')
		buf.WriteString(value)
		buf.WriteRune('\n')
	}

	var timestamp = func(t time.Time) string {
		return t.Format(TimeLayout) + " " + faintStyle.Sprint("("+humanize.RelTime(t, now, "ago", "from now")+")")
	}

	line("File Name", pathStyle.Sprint(rep.Path))
	line("File type", typeStyle.Sprint(rep.Type))
	line("File extension", typeStyle.Sprint(ext))
	line("File Size", rep.SizeHuman+" "+faintStyle.Sprint("("+humanize.Comma(rep.Size)+" bytes)"))
	line("Last Modified Time", timestamp(rep.Modified))
	line("Creation Time", timestamp(rep.Changed))
	line("Last Accessed Time", timestamp(rep.Accessed))

	_, err := io.WriteString(w, buf.String())

	return err
}
