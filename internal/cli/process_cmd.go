package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"himaya-assistant/internal/dialogue"
	"himaya-assistant/internal/i18n"

	"github.com/spf13/cobra"
)

func newProcessCmd(app *App) *cobra.Command {
	var lang, scheme string
	var dtmf bool

	cmd := &cobra.Command{
		Use:   "process <text>",
		Short: "Run one assistant turn and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := dialogue.Context{}
			if scheme != "" {
				conv[dialogue.ContextCurrentScheme] = scheme
			}
			return runProcess(cmd.Context(), cmd.OutOrStdout(), app, strings.Join(args, " "), lang, dtmf, conv)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", i18n.DefaultLanguage, "Reply language (en or hi)")
	cmd.Flags().BoolVar(&dtmf, "dtmf", false, "Treat the input as keypad digits")
	cmd.Flags().StringVar(&scheme, "scheme", "", "Scheme currently under discussion")
	return cmd
}

func runProcess(ctx context.Context, w io.Writer, app *App, input, lang string, dtmf bool, conv dialogue.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	lang = i18n.LanguageOr(lang, i18n.DefaultLanguage)

	var resp dialogue.Response
	if dtmf {
		resp = app.Generator.ProcessDTMF(ctx, input, lang, conv)
	} else {
		resp = app.Generator.Process(ctx, input, lang, conv)
	}

	fmt.Fprintln(w, styleHeader.Render(string(resp.Intent)))
	fmt.Fprintln(w, resp.Text)
	if len(resp.Actions) > 0 {
		fmt.Fprintln(w, styleDim.Render("next: "+strings.Join(resp.Actions, ", ")))
	}
	if resp.Language != "" {
		fmt.Fprintln(w, styleDim.Render("language: "+resp.Language))
	}
	if !resp.FollowUp {
		fmt.Fprintln(w, styleDim.Render("(conversation ended)"))
	}
	return nil
}
