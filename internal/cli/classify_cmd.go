package cli

import (
	"fmt"
	"io"
	"strings"

	"himaya-assistant/internal/intent"

	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Show the intent, matched pattern and entities of an utterance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runClassify(cmd.OutOrStdout(), strings.Join(args, " "))
			return nil
		},
	}
}

func runClassify(w io.Writer, text string) {
	m := intent.Find(text)
	e := intent.Extract(text, m.Intent)

	fmt.Fprintln(w, styleHeader.Render(string(m.Intent)))
	if m.Pattern != "" {
		fmt.Fprintf(w, "  pattern:  %s\n", m.Pattern)
	}
	if len(m.Captures) > 0 {
		fmt.Fprintf(w, "  captures: %q\n", m.Captures)
	}
	if e.SchemeName != "" {
		fmt.Fprintf(w, "  scheme:   %s\n", e.SchemeName)
	}
	if e.Category != "" {
		fmt.Fprintf(w, "  category: %s\n", e.Category)
	}
	if len(e.Numbers) > 0 {
		fmt.Fprintf(w, "  numbers:  %v\n", e.Numbers)
	}
	if e.Query != "" {
		fmt.Fprintf(w, "  query:    %s\n", e.Query)
	}
}
