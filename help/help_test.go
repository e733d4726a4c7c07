package help

import (
	"strings"
	"testing"

	"github.com/gopalindians/framework/input"
)

func globalDef(t *testing.T) *input.Definition {
	t.Helper()
	def := input.NewDefinition()
	if err := def.AddFlag(input.NewFlag("help", "show help").WithAlias("h")); err != nil {
		t.Fatalf("AddFlag error: %v", err)
	}
	if err := def.AddFlag(input.NewFlag("verbose", "increase verbosity").WithAlias("v").AsStackable()); err != nil {
		t.Fatalf("AddFlag error: %v", err)
	}
	return def
}

func buildDef(t *testing.T) *input.Definition {
	t.Helper()
	def := input.NewDefinition()
	if err := def.AddOption(input.NewOption("output", "destination directory").WithAlias("o").WithDefault("dist")); err != nil {
		t.Fatalf("AddOption error: %v", err)
	}
	if err := def.AddArgument(input.NewArgument("path", "source files").AsRequired().AsVariadic()); err != nil {
		t.Fatalf("AddArgument error: %v", err)
	}
	return def
}

func TestApplicationScreen(t *testing.T) {
	screen := Screen{Width: 80}
	app := App{Name: "shipit", Version: "1.2.3", Summary: "build and ship"}
	commands := []Command{
		{Name: "build", Description: "compile sources"},
		{Name: "deploy", Description: "upload a build"},
	}
	got := screen.Application(app, globalDef(t), commands)

	for _, want := range []string{
		"NAME:",
		"shipit - build and ship",
		"VERSION:\n   1.2.3",
		"USAGE:",
		"shipit [flags] <command>",
		"COMMANDS:",
		"build",
		"compile sources",
		"FLAGS:",
		"-h, --help",
		"-v, --verbose",
		"(stackable)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("screen missing %q:\n%s", want, got)
		}
	}
}

func TestCommandScreenListsGlobalsLast(t *testing.T) {
	screen := Screen{Width: 80}
	app := App{Name: "shipit"}
	cmd := Command{Name: "build", Description: "compile sources", Definition: buildDef(t)}
	got := screen.ForCommand(app, cmd, globalDef(t))

	for _, want := range []string{
		"shipit build - compile sources",
		"shipit build [options] PATH...",
		"OPTIONS:",
		"-o, --output VALUE",
		"(default: dist)",
		"ARGUMENTS:",
		"PATH...",
		"GLOBAL FLAGS:",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("screen missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "OPTIONS:") > strings.Index(got, "GLOBAL FLAGS:") {
		t.Fatalf("global section should come last:\n%s", got)
	}
}

func TestUsageMarksOptionalArguments(t *testing.T) {
	def := input.NewDefinition()
	if err := def.AddArgument(input.NewArgument("artifact", "").WithDefault("dist")); err != nil {
		t.Fatalf("AddArgument error: %v", err)
	}
	got := Screen{Width: 80}.ForCommand(App{Name: "shipit"}, Command{Name: "deploy", Definition: def}, nil)
	if !strings.Contains(got, "shipit deploy [ARTIFACT]") {
		t.Fatalf("usage missing optional marker:\n%s", got)
	}
}

func TestRowsWrapDescriptions(t *testing.T) {
	def := input.NewDefinition()
	long := strings.Repeat("word ", 30)
	if err := def.AddFlag(input.NewFlag("flood", strings.TrimSpace(long))); err != nil {
		t.Fatalf("AddFlag error: %v", err)
	}
	got := Screen{Width: 40}.Application(App{Name: "x"}, def, nil)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 45 {
			t.Fatalf("line too wide: %q", line)
		}
	}
}
