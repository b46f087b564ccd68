package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/crowdfolio/internal/logger"
	"github.com/google/subcommands"
)

// Environment passed to the extensions, mirroring the global flags.
const (
	EnvConfig   = "CFO_CONFIG"
	EnvLogLevel = "CFO_LOG_LEVEL"
	EnvRaw      = "CFO_RAW"
)

// Known reports whether name is a registered subcommand.
func Known(cdr *subcommands.Commander, name string) bool {
	found := false
	cdr.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external cfo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	log := logger.FromContext(ctx)
	externalCmdName := "cfo-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.CommandContext(ctx, lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvConfig+"="+*configFile)
	cmd.Env = append(cmd.Env, EnvLogLevel+"="+level)
	cmd.Env = append(cmd.Env, EnvRaw+"="+strconv.FormatBool(*raw))

	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
