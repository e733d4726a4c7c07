// Package entry is the process entry point around a console: it installs
// logging, strips the program name from the argument vector and maps run
// failures onto exit codes and a user-facing message.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gopalindians/framework/console"
	"github.com/gopalindians/framework/logging"
)

// ExitCoder lets an error carry its own process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

type exitError struct {
	message string
	code    int
}

func (e exitError) Error() string { return e.message }
func (e exitError) ExitCode() int { return e.code }

// Exit returns an error that terminates the run with the given code. An
// empty message exits silently.
func Exit(message string, code int) error {
	return exitError{message: message, code: code}
}

// Options configure a run.
type Options struct {
	AppName string
	Version string
	Logging logging.Config
}

// Run executes the console against the full argument vector (including the
// program name) and returns the process exit code.
func Run(ctx context.Context, c *console.Console, args []string, opts Options) int {
	closeLogger, err := logging.Init(opts.Logging, logging.InitOptions{
		App:     opts.AppName,
		Version: opts.Version,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	tokens := args
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}
	if err := c.Run(ctx, tokens); err != nil {
		return exitCode(c, opts.AppName, err)
	}
	return 0
}

func exitCode(c *console.Console, appName string, err error) int {
	var coder ExitCoder
	if errors.As(err, &coder) {
		if msg := coder.Error(); msg != "" {
			c.Output().Err(fmt.Sprintf("<error>%s: %s</error>", appName, msg))
		}
		return coder.ExitCode()
	}
	slog.Error("run failed", "err", err)
	c.Output().Err(fmt.Sprintf("<error>%s: %s</error>", appName, err))
	return 1
}
