package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/boopifier/boopifier/internal/build"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information",
	Long:    "Display version, commit, build date and platform for boopifier",
	Args:    cobra.NoArgs,
	GroupID: GroupDiagnostics,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), versionPlain)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
}

func printVersion(w io.Writer, plain bool) {
	info := []struct {
		label string
		value string
	}{
		{"Version", build.Version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", build.GoVersion()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}

	if plain {
		fmt.Fprintf(w, "%s %s\n", build.Name, build.Version)
		for _, item := range info[1:] {
			fmt.Fprintf(w, "%s: %s\n", item.label, item.value)
		}
		return
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", cyan(build.Name), build.Version)
	for _, item := range info[1:] {
		fmt.Fprintf(w, "  %s %s\n", dim(fmt.Sprintf("%-9s", item.label+":")), item.value)
	}
	if build.IsDevBuild() {
		fmt.Fprintln(w, dim("  (development build)"))
	}
}

// truncateCommit shortens a commit hash to 8 characters
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
