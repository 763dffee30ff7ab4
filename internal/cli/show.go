package cli

import (
	"fmt"
	"os"

	"github.com/augprompt-labs/augprompt/internal/confirm"
	"github.com/augprompt-labs/augprompt/internal/i18n"
	"github.com/augprompt-labs/augprompt/internal/ui"
	"github.com/spf13/cobra"
)

func runShow(cmd *cobra.Command, name string) error {
	data, err := settings.resolver.Source().Read(name)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Error("❌ "+settings.printer.Sprintf(i18n.MsgNotFound, name)))
		printSuggestions(cmd, settings.resolver.Source(), []string{name})
		return errReported
	}

	tty := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		tty = confirm.IsInteractive(f)
	}

	rendered, err := ui.RenderMarkdown(string(data), tty, ui.DefaultWordWrap)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
