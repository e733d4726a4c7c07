// Package help renders usage summaries from input schemas. Rendering is
// pure: it produces a string and performs no writes, so screens are
// independently testable.
package help

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/gopalindians/framework/input"
)

const fallbackWidth = 80

// App describes the application for the usage header.
type App struct {
	Name    string
	Version string
	Summary string
}

// Command describes one command entry on a help screen.
type Command struct {
	Name        string
	Description string
	Definition  *input.Definition
}

// Screen renders help text at a fixed width.
type Screen struct {
	Width int
}

// NewScreen returns a Screen sized to the terminal, falling back to 80
// columns when the writer is not a terminal.
func NewScreen() Screen {
	return Screen{Width: TerminalWidth()}
}

// TerminalWidth reports the current terminal width, or the fallback.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

func (s Screen) width() int {
	if s.Width > 0 {
		return s.Width
	}
	return fallbackWidth
}

// Application renders the top-level help screen: usage line, registered
// commands, then the global flags, options and arguments.
func (s Screen) Application(app App, def *input.Definition, commands []Command) string {
	var b strings.Builder
	s.writeHeader(&b, app, app.Name, app.Summary)

	b.WriteString("USAGE:\n")
	usage := app.Name + usageSuffix(def)
	if len(commands) > 0 {
		usage += " <command>"
	}
	fmt.Fprintf(&b, "   %s\n", usage)

	if len(commands) > 0 {
		b.WriteString("\nCOMMANDS:\n")
		rows := make([]row, 0, len(commands))
		for _, cmd := range commands {
			rows = append(rows, row{label: cmd.Name, description: cmd.Description})
		}
		s.writeRows(&b, rows)
	}

	s.writeSections(&b, def, "FLAGS", "OPTIONS", "ARGUMENTS")
	return b.String()
}

// ForCommand renders a command help screen: the command's description and
// its own elements first, the inherited global ones last.
func (s Screen) ForCommand(app App, cmd Command, global *input.Definition) string {
	var b strings.Builder
	s.writeHeader(&b, app, app.Name+" "+cmd.Name, cmd.Description)

	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "   %s %s%s\n", app.Name, cmd.Name, usageSuffix(cmd.Definition))

	if cmd.Definition != nil {
		s.writeSections(&b, cmd.Definition, "FLAGS", "OPTIONS", "ARGUMENTS")
	}
	if global != nil {
		s.writeSections(&b, global, "GLOBAL FLAGS", "GLOBAL OPTIONS", "GLOBAL ARGUMENTS")
	}
	return b.String()
}

func (s Screen) writeHeader(b *strings.Builder, app App, name, summary string) {
	b.WriteString("NAME:\n")
	if summary != "" {
		fmt.Fprintf(b, "   %s - %s\n", name, summary)
	} else {
		fmt.Fprintf(b, "   %s\n", name)
	}
	if app.Version != "" {
		fmt.Fprintf(b, "\nVERSION:\n   %s\n", app.Version)
	}
	b.WriteString("\n")
}

// usageSuffix summarizes a definition on the usage line: "[flags]",
// "[options]" and the positional arguments in declaration order.
func usageSuffix(def *input.Definition) string {
	if def == nil {
		return ""
	}
	var parts []string
	if len(def.Flags()) > 0 {
		parts = append(parts, "[flags]")
	}
	if len(def.Options()) > 0 {
		parts = append(parts, "[options]")
	}
	for _, arg := range def.Arguments() {
		name := strings.ToUpper(arg.Name)
		if arg.Variadic {
			name += "..."
		}
		if !arg.Required {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (s Screen) writeSections(b *strings.Builder, def *input.Definition, flagTitle, optionTitle, argTitle string) {
	if rows := flagRows(def.Flags()); len(rows) > 0 {
		fmt.Fprintf(b, "\n%s:\n", flagTitle)
		s.writeRows(b, rows)
	}
	if rows := optionRows(def.Options()); len(rows) > 0 {
		fmt.Fprintf(b, "\n%s:\n", optionTitle)
		s.writeRows(b, rows)
	}
	if rows := argumentRows(def.Arguments()); len(rows) > 0 {
		fmt.Fprintf(b, "\n%s:\n", argTitle)
		s.writeRows(b, rows)
	}
}

type row struct {
	label       string
	description string
}

func flagRows(flags []*input.Flag) []row {
	rows := make([]row, 0, len(flags))
	for _, f := range flags {
		desc := f.Description
		if f.Stackable {
			desc = strings.TrimSpace(desc + " (stackable)")
		}
		rows = append(rows, row{label: triggerLabel(f.Name, f.Alias, false), description: desc})
	}
	return rows
}

func optionRows(options []*input.Option) []row {
	rows := make([]row, 0, len(options))
	for _, o := range options {
		desc := o.Description
		if o.HasDefault {
			desc = strings.TrimSpace(desc + fmt.Sprintf(" (default: %s)", o.Default))
		} else if o.Required {
			desc = strings.TrimSpace(desc + " (required)")
		}
		rows = append(rows, row{label: triggerLabel(o.Name, o.Alias, true), description: desc})
	}
	return rows
}

func argumentRows(args []*input.Argument) []row {
	rows := make([]row, 0, len(args))
	for _, a := range args {
		name := strings.ToUpper(a.Name)
		if a.Variadic {
			name += "..."
		}
		desc := a.Description
		if a.HasDefault {
			desc = strings.TrimSpace(desc + fmt.Sprintf(" (default: %s)", a.Default))
		} else if a.Required {
			desc = strings.TrimSpace(desc + " (required)")
		}
		rows = append(rows, row{label: name, description: desc})
	}
	return rows
}

func triggerLabel(name, alias string, valued bool) string {
	label := "--" + name
	if alias != "" {
		label = "-" + alias + ", " + label
	} else {
		label = "    " + label
	}
	if valued {
		label += " VALUE"
	}
	return label
}

// writeRows aligns labels into one column and wraps descriptions into the
// remaining width. Widths are measured with ansi.StringWidth so styled or
// wide-rune labels still line up.
func (s Screen) writeRows(b *strings.Builder, rows []row) {
	widest := 0
	for _, r := range rows {
		if w := ansi.StringWidth(r.label); w > widest {
			widest = w
		}
	}
	indent := widest + 6
	avail := s.width() - indent
	if avail < 20 {
		avail = 20
	}
	for _, r := range rows {
		pad := widest - ansi.StringWidth(r.label)
		if r.description == "" {
			fmt.Fprintf(b, "   %s\n", r.label)
			continue
		}
		wrapped := strings.Split(wordwrap.WrapString(r.description, uint(avail)), "\n")
		fmt.Fprintf(b, "   %s%s   %s\n", r.label, strings.Repeat(" ", pad), wrapped[0])
		for _, line := range wrapped[1:] {
			fmt.Fprintf(b, "%s%s\n", strings.Repeat(" ", indent), line)
		}
	}
}
