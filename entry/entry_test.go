package entry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/gopalindians/framework/console"
	"github.com/gopalindians/framework/input"
	"github.com/gopalindians/framework/logging"
	"github.com/gopalindians/framework/output"
)

func testConsole(t *testing.T, action func(ctx context.Context, in *input.Input, out *output.Output) error) (*console.Console, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	out := output.New(&buf, &buf, output.WithProfile(termenv.Ascii))
	c := console.New("app", "test", console.WithOutput(out), console.WithHelpWidth(100))
	if err := c.Add(&console.Func{CommandName: "work", Summary: "do work", Action: action}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	return c, &buf
}

func quietOpts() Options {
	return Options{AppName: "app", Version: "test", Logging: logging.Config{Sink: logging.SinkNone}}
}

func TestRunSuccessReturnsZero(t *testing.T) {
	c, _ := testConsole(t, func(ctx context.Context, in *input.Input, out *output.Output) error {
		return nil
	})
	if code := Run(context.Background(), c, []string{"app", "work"}, quietOpts()); code != 0 {
		t.Fatalf("code = %d", code)
	}
}

func TestRunMapsExitCoder(t *testing.T) {
	c, buf := testConsole(t, func(ctx context.Context, in *input.Input, out *output.Output) error {
		return Exit("gave up", 3)
	})
	if code := Run(context.Background(), c, []string{"app", "work"}, quietOpts()); code != 3 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(buf.String(), "app: gave up") {
		t.Fatalf("stderr = %q", buf.String())
	}
}

func TestRunSilentExit(t *testing.T) {
	c, buf := testConsole(t, func(ctx context.Context, in *input.Input, out *output.Output) error {
		return Exit("", 2)
	})
	if code := Run(context.Background(), c, []string{"app", "work"}, quietOpts()); code != 2 {
		t.Fatalf("code = %d", code)
	}
	if buf.Len() != 0 {
		t.Fatalf("silent exit wrote %q", buf.String())
	}
}

func TestRunMapsPlainErrorToOne(t *testing.T) {
	c, buf := testConsole(t, func(ctx context.Context, in *input.Input, out *output.Output) error {
		return fmt.Errorf("disk full")
	})
	if code := Run(context.Background(), c, []string{"app", "work"}, quietOpts()); code != 1 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(buf.String(), "app: disk full") {
		t.Fatalf("stderr = %q", buf.String())
	}
}

func TestRunReportsParseFailures(t *testing.T) {
	c, buf := testConsole(t, func(ctx context.Context, in *input.Input, out *output.Output) error {
		return nil
	})
	if code := Run(context.Background(), c, []string{"app", "work", "--nope"}, quietOpts()); code != 1 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(buf.String(), "unknown option --nope") {
		t.Fatalf("stderr = %q", buf.String())
	}
}

func TestExitCoderDetection(t *testing.T) {
	var coder ExitCoder
	if !errors.As(Exit("x", 9), &coder) || coder.ExitCode() != 9 {
		t.Fatalf("Exit does not satisfy ExitCoder")
	}
	wrapped := fmt.Errorf("context: %w", Exit("inner", 4))
	if !errors.As(wrapped, &coder) || coder.ExitCode() != 4 {
		t.Fatalf("wrapped ExitCoder not detected")
	}
}
