package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/facadegen/pkg/grammar"
)

// parseOpts holds options for the parse command.
type parseOpts struct {
	json  bool
	side  string
	order string
}

// parseCommand creates the parse command, which prints the canonical form
// of facade grammar text or of one side of a building JSON document.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{side: string(grammar.Front)}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse facade grammar and print its canonical form",
		Long: `Parse facade grammar text and print it in canonical form.

With --json the input is a building JSON document (ground floor first) and
the facades of the selected side are printed as grammar text, top floor first.`,
		Example: `  # Canonicalize a grammar file
  facadegen parse facade.txt

  # Read from stdin
  echo '[Door]1<Wall>' | facadegen parse

  # Convert the left side of a building JSON document
  facadegen parse --json --side left building.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := c.runParse(data, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "input is building JSON")
	cmd.Flags().StringVar(&opts.side, "side", opts.side, "side to print with --json (front, left, back, right)")
	cmd.Flags().StringVar(&opts.order, "order", "", "floor order of the input (default top-down for text, bottom-up for JSON)")

	return cmd
}

func (c *CLI) runParse(data []byte, opts parseOpts) (string, error) {
	order := grammar.OrderTopDown
	if opts.json {
		order = grammar.OrderBottomUp
	}
	if opts.order != "" {
		o, err := grammar.ParseOrder(opts.order)
		if err != nil {
			return "", err
		}
		order = o
	}

	if !opts.json {
		p, err := grammar.ParseWithOrder(string(data), order)
		if err != nil {
			return "", err
		}
		c.Logger.Debug("parsed grammar", "floors", len(p.Floors))
		return p.String(), nil
	}

	side, err := grammar.ParseSide(opts.side)
	if err != nil {
		return "", err
	}
	p, err := grammar.DecodeBuildingJSON(data, order)
	if err != nil {
		return "", err
	}
	c.Logger.Debug("decoded building JSON", "floors", len(p.Floors), "side", side)
	return sideText(p, side), nil
}

// sideText writes the facades of one side top floor first.
func sideText(p *grammar.Pattern, side grammar.Side) string {
	lines := make([]string, 0, len(p.Floors))
	for i := len(p.Floors) - 1; i >= 0; i-- {
		f, _ := p.Floors[i].Facade(side)
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}
