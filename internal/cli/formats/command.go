// Package formats contains CLI `formats` command implementation.
package formats

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tarampampam/filemagic/internal/signature"
	"github.com/tarampampam/filemagic/internal/ui"
)

// NewCommand creates `formats` command.
func NewCommand(out ui.Output) *cli.Command {
	return &cli.Command{
		Name:    "formats",
		Aliases: []string{"f"},
		Usage:   "List supported file signatures (in the matching order)",
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %v", c.Args().Slice())
			}

			rendered, err := Table(signature.Default())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, rendered)

			return err
		},
	}
}

// Table renders the signatures table.
func Table(t signature.Table) (string, error) {
	var data = make(pterm.TableData, 0, len(t)+1)

	data = append(data, []string{"#", "NAME", "EXTENSION", "OFFSET", "MAGIC"})

	for i, sig := range t {
		data = append(data, []string{strconv.Itoa(i + 1), sig.Name, sig.Extension, strconv.Itoa(sig.Offset), sig.Hex()})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
