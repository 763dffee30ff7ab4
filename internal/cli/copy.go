package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/augprompt-labs/augprompt/internal/confirm"
	"github.com/augprompt-labs/augprompt/internal/i18n"
	"github.com/augprompt-labs/augprompt/internal/installer"
	"github.com/augprompt-labs/augprompt/internal/prompt"
	"github.com/augprompt-labs/augprompt/internal/ui"
	"github.com/spf13/cobra"
)

func runCopy(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	p := settings.printer
	res := settings.resolver
	src := res.Source()

	inst := installer.New(src.Dir, res.TargetDir(),
		installer.WithSource(src),
		installer.WithConfirmer(newConfirmer(cmd)),
		installer.WithPrinter(p),
	)
	force := !interactiveFlag

	var report *installer.Report
	if len(onlyFlag) > 0 {
		fmt.Fprintln(out, ui.Info("🚀 "+p.Sprintf(i18n.MsgCopyingSelected, len(onlyFlag))))
		report = inst.CopySelected(onlyFlag, force)
	} else {
		fmt.Fprintln(out, ui.Info("🚀 "+p.Sprintf(i18n.MsgCopyingAll)))
		report = inst.CopyAll(force)
	}

	if !report.Success {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, ui.Error("❌ "+p.Sprintf(i18n.MsgCopyFailed)))
		for _, e := range report.Errors {
			fmt.Fprintln(errOut, ui.Error("   "+e))
		}
		if report.NotFoundCount > 0 {
			printSuggestions(cmd, src, onlyFlag)
		}
		return errReported
	}

	fmt.Fprintln(out, ui.Success("✅ "+p.Sprintf(i18n.MsgCopied, report.CopiedCount, res.DisplayTarget())))
	if report.SkippedCount > 0 {
		fmt.Fprintln(out, ui.Warning("⚠️  "+p.Sprintf(i18n.MsgSkipped, report.SkippedCount)))
	}
	fmt.Fprintln(out, ui.Muted("💡 "+p.Sprintf(i18n.MsgListHint, branding.CLIName())))
	return nil
}

// newConfirmer returns the overwrite prompt for --interactive runs. When
// stdin is a real file that is not a terminal there is nobody to ask, so
// existing files are kept.
func newConfirmer(cmd *cobra.Command) installer.Confirmer {
	if f, ok := cmd.InOrStdin().(*os.File); ok && !confirm.IsInteractive(f) {
		return installer.ConfirmFunc(func(string) (bool, error) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning("⚠️  "+settings.printer.Sprintf(i18n.MsgNotInteractive)))
			return false, nil
		})
	}
	return confirm.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), settings.printer).WithStyle(ui.Warning)
}

// printSuggestions prints "did you mean" hints for requested names missing
// from the catalog.
func printSuggestions(cmd *cobra.Command, src prompt.Source, requested []string) {
	prompts, err := src.List()
	if err != nil {
		return
	}
	names := prompt.Names(prompts)

	for _, name := range requested {
		if _, ok := src.Lookup(name); ok {
			continue
		}
		if suggestions := prompt.Suggest(name, names); len(suggestions) > 0 {
			hint := settings.printer.Sprintf(i18n.MsgDidYouMean, strings.Join(suggestions, ", "))
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Muted("   💡 "+name+": "+hint))
		}
	}
}
