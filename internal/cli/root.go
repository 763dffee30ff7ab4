package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/augprompt-labs/augprompt/internal/config"
	"github.com/augprompt-labs/augprompt/internal/i18n"
	"github.com/augprompt-labs/augprompt/internal/location"
	"github.com/augprompt-labs/augprompt/internal/ui"
	"github.com/augprompt-labs/augprompt/prompts"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// errReported marks a failure whose explanation has already been printed.
var errReported = errors.New("reported")

var (
	listFlag        bool
	onlyFlag        []string
	interactiveFlag bool
	showFlag        string
)

// settings are resolved from the user config before every command runs.
var settings = struct {
	printer  *message.Printer
	resolver *location.Resolver
}{
	printer:  i18n.Printer(""),
	resolver: newResolver("", ""),
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies the bundled Augment AI prompts into ./` + branding.ToolDir() + `/` + branding.RulesDir() + `/
of the current project. Existing prompt files are overwritten unless --interactive is given.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List all available prompts")
	rootCmd.Flags().StringSliceVarP(&onlyFlag, "only", "o", nil, "Copy only the named prompts (comma-separated)")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Ask before overwriting existing files")
	rootCmd.Flags().StringVar(&showFlag, "show", "", "Print one prompt rendered as markdown")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = displayVersion(version)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error("❌ "+settings.printer.Sprintf(i18n.MsgError)), err)
	}
	return err
}

func loadSettings(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning("⚠️  "+err.Error()))
	}

	settings.printer = i18n.Printer(config.Get(config.KeyLang))
	settings.resolver = newResolver(config.Get(config.KeyPromptsDir), config.Get(config.KeyTargetDir))
	return nil
}

// newResolver returns a resolver that falls back to the prompts compiled into
// the binary.
func newResolver(promptsDir, targetDir string) *location.Resolver {
	r := location.NewResolver(promptsDir, targetDir)
	r.Bundled = prompts.FS
	return r
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case listFlag:
		return runList(cmd)
	case showFlag != "":
		return runShow(cmd, showFlag)
	default:
		return runCopy(cmd)
	}
}
