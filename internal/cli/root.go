// Package cli is the himaya-cli command tree. It drives the same catalog,
// classifier and evaluator as the HTTP server, without a user store.
package cli

import (
	"himaya-assistant/internal/catalog"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/common/observability"
	"himaya-assistant/internal/dialogue"
	"himaya-assistant/internal/eligibility"

	"github.com/spf13/cobra"
)

// App holds the components CLI commands run against.
type App struct {
	Catalog   *catalog.Catalog
	Evaluator *eligibility.Evaluator
	Generator *dialogue.Generator
}

// NewApp wires an App over c.
func NewApp(c *catalog.Catalog, log logger.Logger) *App {
	return &App{
		Catalog:   c,
		Evaluator: eligibility.NewEvaluator(c),
		Generator: dialogue.NewGenerator(c, log, observability.NewNoop()),
	}
}

// NewRootCmd creates the top-level "himaya" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "himaya",
		Short:         "Welfare scheme assistant for Uttarakhand",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassifyCmd(),
		newProcessCmd(app),
		newSchemesCmd(app),
		newEligibilityCmd(app),
		newCatalogCmd(),
	)

	return root
}
