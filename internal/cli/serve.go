package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/facadegen/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP API until
// the command context is cancelled.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()
			runner.MaxModules = c.Config.Server.MaxModules

			srv := server.New(runner, server.Options{
				ModuleWidth:   c.moduleWidth(),
				DefaultModule: c.Config.Grammar.DefaultModule,
				Catalog:       cat,
				MaxModules:    c.Config.Server.MaxModules,
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
