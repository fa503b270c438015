package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/boopifier/boopifier/internal/config"
	clierrors "github.com/boopifier/boopifier/internal/errors"
	"github.com/boopifier/boopifier/internal/notify"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	checkProject string
	checkPlain   bool
)

// checkCmd validates a configuration file without reading stdin.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the boopifier configuration",
	Long: `Validate the boopifier configuration.

Checks syntax, handler definitions, match rules and secret references, then
prints the handlers that would run for the given project after overrides.`,
	Example: `  # Check the auto-detected configuration
  boopifier check

  # Check a specific file as seen from a project
  boopifier check --config ./boopifier.yaml --project ~/work/api`,
	Args:    cobra.NoArgs,
	GroupID: GroupDiagnostics,
	RunE:    runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkProject, "project", "", "Project directory used for override matching (default: $CLAUDE_PROJECT_DIR)")
	checkCmd.Flags().BoolVar(&checkPlain, "plain", false, "Plain output without colors")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	project := checkProject
	if project == "" {
		project = os.Getenv(config.ProjectDirEnv)
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		home, _ := os.UserHomeDir()
		path = config.ResolvePath(project, home).Path
	}
	path = config.ExpandHomePath(path)

	err := executeCheck(cmd.OutOrStdout(), path, project, notify.NewRegistry(), checkPlain)
	if err != nil {
		if checkPlain {
			fmt.Fprint(cmd.ErrOrStderr(), clierrors.FormatErrorPlain(err))
		} else {
			clierrors.FprintError(cmd.ErrOrStderr(), err)
		}
		return NewExitError(ExitConfigInvalid, err)
	}
	return nil
}

// executeCheck validates the configuration at path and reports its handlers to w.
func executeCheck(w io.Writer, path, project string, registry *notify.Registry, plain bool) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return clierrors.ConfigFileNotFound(path)
	}

	if err := config.ValidateSyntax(path); err != nil {
		return clierrors.ConfigLoadError(path, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return clierrors.ConfigLoadError(path, err)
	}

	c := newCheckColors(plain)
	fmt.Fprintf(w, "Config: %s\n", path)

	if config.ShouldApplyOverrides(project) {
		if pattern, ok := cfg.ApplyOverrides(project); ok {
			fmt.Fprintf(w, "Override: %s (project %s)\n", c.yellow(pattern), project)
		}
	}

	fmt.Fprintf(w, "Handlers (%d):\n", len(cfg.Handlers))
	var unknown []string
	for _, h := range cfg.Handlers {
		rules := "always"
		if h.Rule != nil {
			rules = h.Rule.Kind.String()
		}

		if _, ok := registry.Lookup(h.Type); !ok {
			unknown = append(unknown, h.Type)
			fmt.Fprintf(w, "  %s %s (%s) unknown handler type\n", c.red("✗"), h.Name, h.Type)
			continue
		}
		fmt.Fprintf(w, "  %s %s (%s) match: %s, rules: %s\n", c.green("✓"), h.Name, c.cyan(h.Type), h.Mode, rules)
	}

	if len(unknown) > 0 {
		return clierrors.UnknownHandlerType(unknown[0])
	}
	return nil
}

type checkColors struct {
	green, red, cyan, yellow func(a ...interface{}) string
}

func newCheckColors(plain bool) checkColors {
	if plain {
		noop := func(a ...interface{}) string { return fmt.Sprint(a...) }
		return checkColors{green: noop, red: noop, cyan: noop, yellow: noop}
	}
	return checkColors{
		green:  color.New(color.FgGreen).SprintFunc(),
		red:    color.New(color.FgRed).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}
