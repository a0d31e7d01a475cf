package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/facadegen/pkg/catalog"
	"github.com/matzehuels/facadegen/pkg/grammar"
	"github.com/matzehuels/facadegen/pkg/validate"
)

// errValidation is returned when validation reports an ERROR issue. The
// issues themselves have already been printed.
var errValidation = fmt.Errorf("validation failed")

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check facade grammar for errors and warnings",
		Long: `Check facade grammar text. Syntax problems are errors; a grammar with
no fill group and, when a catalog is loaded, modules the catalog does not
know are reported as warnings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}

			issues := runValidate(string(data), cat)
			if asJSON {
				if issues == nil {
					issues = []validate.Issue{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(issues); err != nil {
					return err
				}
			} else {
				for _, is := range issues {
					printIssue(is)
				}
				if len(issues) == 0 {
					printSuccess("No issues found")
				}
			}

			if validate.HasErrors(issues) {
				return errValidation
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print issues as JSON")

	return cmd
}

// runValidate runs the default rules, plus the catalog module check when
// the catalog lists modules and the text parses.
func runValidate(text string, cat *catalog.Catalog) []validate.Issue {
	issues := validate.Validate(text)
	if cat == nil || len(cat.Modules) == 0 || validate.HasErrors(issues) {
		return issues
	}
	p, err := grammar.Parse(text)
	if err != nil {
		return issues
	}
	return append(issues, validate.ValidatePattern(p, validate.KnownModules(cat.ModuleNames()))...)
}
