package ui

import (
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/tarampampam/filemagic/internal/env"
)

const (
	colorsOff uint32 = iota
	colorsOn
)

var colorsEnabled = initColorsState() //nolint:gochecknoglobals // atomic usage only

// initColorsState returns initialization value for the colors enabled state.
func initColorsState() uint32 {
	if _, exists := env.ForceColors.Lookup(); exists {
		return colorsOn
	} else if _, exists = env.NoColors.Lookup(); exists { //nolint:gocritic // docs: <https://no-color.org/>
		return colorsOff
	} else if v, _ := env.Term.Lookup(); v == "dumb" {
		return colorsOff
	} else if !IsTerminal(os.Stdout) {
		return colorsOff
	}

	return colorsOn
}

// IsTerminal reports whether the file is a terminal (including cygwin/msys2 terminals).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorsEnabled returns true if colors are enabled. Also, you can set a new state (enable or disable colors), the
// styling library state follows it.
func ColorsEnabled(newState ...bool) bool {
	if len(newState) == 0 {
		return atomic.LoadUint32(&colorsEnabled) == colorsOn
	}

	var set uint32

	if newState[0] {
		set = colorsOn // enable colors
		pterm.EnableColor()
	} else {
		set = colorsOff // disable colors
		pterm.DisableColor()
	}

	atomic.StoreUint32(&colorsEnabled, set)

	return set == colorsOn
}
