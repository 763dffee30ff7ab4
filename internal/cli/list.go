package cli

import (
	"fmt"

	"github.com/augprompt-labs/augprompt/internal/i18n"
	"github.com/augprompt-labs/augprompt/internal/ui"
	"github.com/spf13/cobra"
)

func runList(cmd *cobra.Command) error {
	p := settings.printer

	prompts, err := settings.resolver.Source().List()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Error("❌ "+p.Sprintf(i18n.MsgListFailed)), err)
		return errReported
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Info("📋 "+p.Sprintf(i18n.MsgListHeader)))
	fmt.Fprintln(out)
	for i, pr := range prompts {
		fmt.Fprintf(out, "%d. %s - %s\n", i+1, ui.Name(pr.Name), pr.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Muted(p.Sprintf(i18n.MsgListTotal, len(prompts))))
	return nil
}
