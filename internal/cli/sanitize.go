package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/facadegen/pkg/grammar/sanitize"
)

// sanitizeCommand creates the sanitize command.
func (c *CLI) sanitizeCommand() *cobra.Command {
	var sandbox bool

	cmd := &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Repair malformed facade text (lossy)",
		Long: `Repair free-form or generated facade text so the grammar parser accepts
it. Stray characters are dropped, open groups are closed and bare names are
wrapped in rigid groups. Nothing is reported; run validate afterwards.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := sanitize.FixFacadeExpression(string(data))
			if sandbox {
				out = sanitize.SanitizeRigidForSandbox(string(data))
			}
			if out == "" {
				c.Logger.Warn("nothing left after sanitizing")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sandbox, "sandbox", false, "write every rigid group with an explicit repeat")

	return cmd
}
