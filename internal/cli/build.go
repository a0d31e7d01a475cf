package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	specio "github.com/matzehuels/facadegen/pkg/io"
	"github.com/matzehuels/facadegen/pkg/pipeline"
)

// buildOpts holds options for the build command.
type buildOpts struct {
	output  string
	noCache bool
	refresh bool
	table   bool
}

// buildCommand creates the build command, which turns a building spec file
// into a blueprint document.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <spec-file>",
		Short: "Build a blueprint from a building spec",
		Long: `Build the per-side module blueprint of a building spec (.toml or .json).

Missing floors are filled with the default module and missing sides are
copied from their opposite. Results are cached by spec content; use
--refresh to rebuild or --no-cache to bypass the cache entirely.`,
		Example: `  facadegen build house.toml -o house.json
  facadegen build house.toml --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the blueprint document to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "rebuild even when a cached blueprint exists")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the blueprint as a table instead of JSON")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, path string, opts buildOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	prog := newProgress(c.Logger)

	spec, err := specio.LoadSpec(path)
	if err != nil {
		return err
	}
	if spec.ModuleWidth == 0 {
		spec.ModuleWidth = c.Config.Grammar.ModuleWidth
	}
	if spec.DefaultModule == "" {
		spec.DefaultModule = c.Config.Grammar.DefaultModule
	}

	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Resolving blueprint...")
	spinner.Start()
	res, err := runner.Build(ctx, pipeline.Options{
		Spec:    spec,
		Catalog: cat,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()

	bp := res.Blueprint
	switch {
	case opts.table:
		fmt.Fprintln(cmd.OutOrStdout(), blueprintTable(bp))
	case opts.output != "":
		if err := specio.ExportBlueprintJSON(bp, opts.output); err != nil {
			return err
		}
		printSuccess("Blueprint written")
		printFile(opts.output)
	default:
		if err := specio.WriteBlueprintJSON(bp, cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	printStats(bp.Floors(), len(bp.Sides()), res.CacheHit)
	prog.done(fmt.Sprintf("Built %d sides", len(bp.Sides())))
	return nil
}

