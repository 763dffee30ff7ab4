package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := displayVersion(buildVersion)
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, version)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": version,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), version, buildCommit, buildDate)
		return nil
	},
}

// displayVersion normalizes a semver build version ("v1.2" -> "1.2.0").
// Anything that is not semver, such as "dev", is returned unchanged.
func displayVersion(version string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return version
	}
	return v.String()
}
