package cupidconf

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/format.md
var formatDoc string

func newFormatCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "format",
		Short: MsgFormatShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(formatDoc, plain))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown without styling")
	return cmd
}

// renderMarkdown converts markdown to styled terminal output, falling
// back to the raw text when styling is off or rendering fails.
func renderMarkdown(content string, plain bool) string {
	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
