// boopifier - Notification dispatcher for Claude Code hooks
// Source: https://github.com/boopifier/boopifier

package main

import (
	"os"

	"github.com/boopifier/boopifier/internal/cli"
	clierrors "github.com/boopifier/boopifier/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		code := cli.ExitCode(err)
		if code == cli.ExitInvalidArguments {
			clierrors.PrintError(clierrors.NewRuntimeError(err.Error(), "Run 'boopifier --help' for usage"))
		}
		os.Exit(code)
	}
}
