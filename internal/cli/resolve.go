package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
	"github.com/matzehuels/facadegen/pkg/resolve"
)

// resolveOpts holds options for the resolve command.
type resolveOpts struct {
	width       int
	moduleWidth int
	json        bool
}

// resolveCommand creates the resolve command, which fits one facade line to
// a width.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <grammar>",
		Short: "Fit a facade line to a width",
		Long: `Expand one line of facade grammar into the module sequence that fills
the given width. Module widths come from --module-width, then the catalog,
then the configured default.`,
		Example: `  facadegen resolve '[Door]<Wall>' --width 500
  facadegen resolve '<Window-Wall>' --width 1000 --catalog modules.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := c.widthSizer(opts.moduleWidth)
			if err != nil {
				return err
			}
			f, err := grammar.ParseFacade(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			modules, err := resolve.Facade(f, opts.width, sizes)
			if err != nil {
				return err
			}
			c.Logger.Debug("resolved facade", "width", opts.width, "modules", len(modules))
			return writeNames(cmd.OutOrStdout(), modules, opts.json)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "facade width")
	cmd.Flags().IntVar(&opts.moduleWidth, "module-width", 0, "uniform module width (overrides the catalog)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print modules as a JSON array")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

// stackOpts holds options for the stack command.
type stackOpts struct {
	height int
	floors map[string]int
	json   bool
}

// stackCommand creates the stack command, which fills a building height
// with floors.
func (c *CLI) stackCommand() *cobra.Command {
	var opts stackOpts

	cmd := &cobra.Command{
		Use:   "stack <expression>",
		Short: "Stack floors to a building height",
		Long: `Expand a stacking expression into floor names, ground floor first.
Floor heights come from --floor flags, or from the catalog's [floors] table.`,
		Example: `  facadegen stack '[Ground]<Floor1>[Roof]' --height 1550 \
      --floor Ground=450 --floor Floor1=300 --floor Roof=200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			heights, err := c.heightSizer(opts.floors)
			if err != nil {
				return err
			}
			floors, err := resolve.Stack(args[0], opts.height, heights)
			if err != nil {
				return err
			}
			c.Logger.Debug("stacked floors", "height", opts.height, "floors", len(floors))
			return writeNames(cmd.OutOrStdout(), floors, opts.json)
		},
	}

	cmd.Flags().IntVar(&opts.height, "height", 0, "building height")
	cmd.Flags().StringToIntVar(&opts.floors, "floor", nil, "floor height as name=height (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print floors as a JSON array")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

// widthSizer picks the module sizer for resolve.
func (c *CLI) widthSizer(moduleWidth int) (resolve.Sizer, error) {
	if moduleWidth > 0 {
		return resolve.Uniform(moduleWidth), nil
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat.Widths(), nil
	}
	return resolve.Uniform(c.moduleWidth()), nil
}

// heightSizer picks the floor sizer for stack.
func (c *CLI) heightSizer(floors map[string]int) (resolve.Sizer, error) {
	if len(floors) > 0 {
		return resolve.Table(floors), nil
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return nil, err
	}
	if cat == nil || len(cat.Floors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no floor heights: pass --floor name=height or a catalog with a [floors] table")
	}
	return cat.Heights(), nil
}

func writeNames(w io.Writer, names []string, asJSON bool) error {
	if asJSON {
		if names == nil {
			names = []string{}
		}
		return json.NewEncoder(w).Encode(names)
	}
	_, err := fmt.Fprintln(w, strings.Join(names, " "))
	return err
}
