package cli

import (
	"fmt"
	"io"

	"himaya-assistant/internal/catalog"
	"himaya-assistant/internal/i18n"

	"github.com/spf13/cobra"
)

func newSchemesCmd(app *App) *cobra.Command {
	var lang, category, search string

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List, filter or search the scheme catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang = i18n.LanguageOr(lang, i18n.DefaultLanguage)

			var views []catalog.View
			if search != "" {
				views = filterCategory(app.Catalog.Search(search, lang), category)
			} else {
				views = app.Catalog.List(lang, category)
			}
			printSchemes(cmd.OutOrStdout(), views, lang)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", i18n.DefaultLanguage, "Display language (en or hi)")
	cmd.Flags().StringVar(&category, "category", "", "Only schemes in this category")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text to search for")
	return cmd
}

func filterCategory(views []catalog.View, category string) []catalog.View {
	if category == "" {
		return views
	}
	out := make([]catalog.View, 0, len(views))
	for _, v := range views {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

func printSchemes(w io.Writer, views []catalog.View, lang string) {
	if len(views) == 0 {
		fmt.Fprintln(w, i18n.Response(i18n.KeySchemeNotFound, lang, nil))
		return
	}
	for _, v := range views {
		fmt.Fprintf(w, "%s  %s\n", styleHeader.Render(v.Name), styleDim.Render("["+v.ID+"]"))
		fmt.Fprintf(w, "    %s\n", v.ShortDescription)
	}
	fmt.Fprintf(w, "\n%d schemes\n", len(views))
}
