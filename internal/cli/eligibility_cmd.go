package cli

import (
	"fmt"
	"io"
	"strings"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/eligibility"
	"himaya-assistant/internal/i18n"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newEligibilityCmd(app *App) *cobra.Command {
	var (
		lang       string
		explain    bool
		age        int
		income     float64
		occupation string
		gender     string
		bpl        bool
		hasLand    bool
		landAcres  float64
		category   string
	)

	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Check which schemes a profile qualifies for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var p eligibility.Profile
			if changed(flags, "age") {
				p.Age = &age
			}
			if changed(flags, "income") {
				p.Income = &income
			}
			if changed(flags, "bpl") {
				p.BPL = &bpl
			}
			if changed(flags, "has-land") {
				p.HasLand = &hasLand
			}
			if changed(flags, "land-acres") {
				p.LandAcres = &landAcres
			}
			p.Occupation = occupation
			p.Gender = gender
			p.Category = category

			if p.IsEmpty() {
				return errors.NewProfileRequiredError(eligibility.RequiredFields)
			}

			lang = i18n.LanguageOr(lang, i18n.DefaultLanguage)
			w := cmd.OutOrStdout()
			if explain {
				printExplanations(w, app.Evaluator.Explain(p, lang))
				return nil
			}
			printResults(w, app.Evaluator.Evaluate(p, lang), lang)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&lang, "lang", i18n.DefaultLanguage, "Reply language (en or hi)")
	f.BoolVar(&explain, "explain", false, "Show the decision for every scheme")
	f.IntVar(&age, "age", 0, "Age in years")
	f.Float64Var(&income, "income", 0, "Annual household income in rupees")
	f.StringVar(&occupation, "occupation", "", "Occupation, e.g. farmer")
	f.StringVar(&gender, "gender", "", "Gender")
	f.BoolVar(&bpl, "bpl", false, "Below the poverty line")
	f.BoolVar(&hasLand, "has-land", false, "Owns agricultural land")
	f.Float64Var(&landAcres, "land-acres", 0, "Land holding in acres")
	f.StringVar(&category, "category", "", "Social category, e.g. sc or obc")
	return cmd
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

func printResults(w io.Writer, results []eligibility.Result, lang string) {
	if len(results) == 0 {
		fmt.Fprintln(w, i18n.Response(i18n.KeyNoEligibleSchemes, lang, nil))
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s %s  %s\n", styleOK.Render("✓"), r.Name, styleDim.Render("["+r.EligibilityStatus+"]"))
		if len(r.MissingInfo) > 0 {
			fmt.Fprintf(w, "    missing: %s\n", strings.Join(r.MissingInfo, ", "))
		}
	}
	fmt.Fprintf(w, "\n%d eligible schemes\n", len(results))
}

func printExplanations(w io.Writer, explanations []eligibility.Explanation) {
	for _, e := range explanations {
		mark := styleFail.Render("✗")
		if e.Decision.Eligible {
			mark = styleOK.Render("✓")
		}
		fmt.Fprintf(w, "%s %s\n", mark, e.Name)
		for _, reason := range e.Decision.Reasons {
			fmt.Fprintf(w, "    %s\n", reason)
		}
		if len(e.Decision.MissingInfo) > 0 {
			fmt.Fprintf(w, "    missing: %s\n", strings.Join(e.Decision.MissingInfo, ", "))
		}
	}
}
