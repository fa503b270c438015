// boopifier - Notification dispatcher for Claude Code hooks
// Source: https://github.com/boopifier/boopifier

// Package cli provides the Cobra-based command line for boopifier.
// The root command reads one hook event from stdin, dispatches it to the
// configured notification handlers and prints the hook response on stdout.
// Diagnostic subcommands (check, version) never touch stdin.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/boopifier/boopifier/internal/config"
	"github.com/boopifier/boopifier/internal/debuglog"
	"github.com/boopifier/boopifier/internal/hook"
	"github.com/boopifier/boopifier/internal/notify"
	"github.com/boopifier/boopifier/internal/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Command group IDs for organizing help output
const (
	GroupDiagnostics = "diagnostics"
)

var rootCmd = &cobra.Command{
	Use:   "boopifier",
	Short: "Notification dispatcher for Claude Code hooks",
	Long: `Notification dispatcher for Claude Code hooks

Reads a single hook event as JSON from stdin, runs every matching handler
from the configuration (desktop, sound, signal, webhook, email, decision)
and writes the hook response as JSON to stdout.

Configuration is auto-detected from $CLAUDE_PROJECT_DIR/.claude/boopifier.json,
falling back to ~/.claude/boopifier.json.

Source: https://github.com/boopifier/boopifier`,
	Example: `  # Typical Claude Code hook command
  boopifier

  # Use an explicit configuration and write a debug log
  boopifier --config ~/notify.yaml --debug

  # Show the handler types this build supports
  boopifier --list-handlers`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupDiagnostics, Title: "Diagnostics:"})
	rootCmd.SetHelpCommandGroupID(GroupDiagnostics)
	rootCmd.SetCompletionCommandGroupID(GroupDiagnostics)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	rootCmd.Flags().Bool("list-handlers", false, "List available notification handler types and exit")
	rootCmd.Flags().Int("max-parallel", 0, "Maximum handlers run concurrently (0 = unlimited)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// hookOptions is everything a hook invocation needs, after flags and
// environment settings have been merged.
type hookOptions struct {
	ConfigPath  string
	ProjectDir  string
	HomeDir     string
	Debug       bool
	LogFile     string
	MaxParallel int
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if list, _ := cmd.Flags().GetBool("list-handlers"); list {
		printHandlerTypes(cmd.OutOrStdout(), notify.NewRegistry().Types())
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := resolveHookOptions(cmd)
	runHook(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	return nil
}

// resolveHookOptions merges BOOPIFIER_* settings with command-line flags.
// Flags win; --debug can only turn debugging on.
func resolveHookOptions(cmd *cobra.Command) hookOptions {
	settings, err := config.LoadSettings()
	if err != nil {
		settings = config.Settings{
			LogFile:    config.DefaultLogFile(),
			ProjectDir: os.Getenv(config.ProjectDirEnv),
		}
	}

	opts := hookOptions{
		ConfigPath: settings.ConfigPath,
		ProjectDir: settings.ProjectDir,
		Debug:      settings.Debug,
		LogFile:    settings.LogFile,
	}
	if cmd.Flags().Changed("config") {
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.ConfigPath = config.ExpandHomePath(opts.ConfigPath)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		opts.Debug = true
	}
	opts.MaxParallel, _ = cmd.Flags().GetInt("max-parallel")
	if home, err := os.UserHomeDir(); err == nil {
		opts.HomeDir = home
	}
	return opts
}

// runHook processes one event from in and writes exactly one JSON response
// line to out. It never fails: every problem becomes a warning response.
func runHook(ctx context.Context, in io.Reader, out io.Writer, opts hookOptions) {
	logger, err := debuglog.Open(opts.LogFile, opts.Debug)
	defer logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "boopifier: debug log unavailable: %v\n", err)
	}

	if isTerminal(in) {
		logger.Printf("stdin is a terminal, nothing to process")
		writeResponse(out, hook.Response{}, logger)
		return
	}

	registry := notify.NewRegistry(
		notify.WithDebug(opts.Debug),
		notify.WithLogger(logger),
	)
	r := runner.New(runner.Options{
		ConfigPath:  opts.ConfigPath,
		ProjectDir:  opts.ProjectDir,
		HomeDir:     opts.HomeDir,
		MaxParallel: opts.MaxParallel,
	}, registry, logger)

	writeResponse(out, r.Process(ctx, in), logger)
}

func writeResponse(out io.Writer, resp hook.Response, logger *debuglog.Logger) {
	data, err := resp.Encode()
	if err != nil {
		logger.Printf("failed to encode response: %v", err)
		data = []byte("{}")
	}
	if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
		logger.Printf("failed to write response: %v", err)
	}
}

// isTerminal reports whether in is an interactive terminal rather than a pipe.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func printHandlerTypes(w io.Writer, types []string) {
	fmt.Fprintln(w, "Available notification handlers:")
	for _, t := range types {
		fmt.Fprintf(w, "  - %s\n", t)
	}
}
