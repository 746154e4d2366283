package cli

import (
	"fmt"

	"himaya-assistant/internal/catalog"
	apperrors "himaya-assistant/internal/common/errors"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Scheme catalog maintenance",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a scheme catalog file before deploying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(args[0])
			if err != nil {
				if se, ok := apperrors.AsStandard(err); ok {
					if violations, ok := se.Metadata["violations"].([]string); ok {
						for _, v := range violations {
							fmt.Fprintln(cmd.ErrOrStderr(), styleFail.Render("  "+v))
						}
					}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render(fmt.Sprintf("catalog OK: %d schemes", c.Len())))
			return nil
		},
	}
}
