// Package output is the formatted sink for program text: verbosity-filtered
// writes plus named styles applied to inline <style>…</style> segments.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Verbosity filters which messages reach the writer.
type Verbosity int

const (
	// Quiet suppresses everything written through Out and Verbose.
	Quiet Verbosity = iota
	// Normal is the default level.
	Normal
	// Verbose additionally shows messages written through Verbose.
	Verbose
)

func clamp(v Verbosity) Verbosity {
	if v < Quiet {
		return Quiet
	}
	if v > Verbose {
		return Verbose
	}
	return v
}

// Output writes program text for one invocation. It is not safe for
// concurrent use; each invocation owns its own instance.
type Output struct {
	writer    io.Writer
	errWriter io.Writer
	verbosity Verbosity
	styles    map[string]Style
	renderer  *lipgloss.Renderer
	profile   termenv.Profile
}

// Option adjusts a new Output.
type Option func(*Output)

// WithProfile forces a color profile instead of detecting one from the
// writer. Tests use termenv.Ascii for deterministic plain output.
func WithProfile(profile termenv.Profile) Option {
	return func(o *Output) {
		o.profile = profile
		// SetColorProfile marks the profile explicit; constructor options
		// alone leave the renderer free to re-detect from the writer.
		o.renderer = lipgloss.NewRenderer(o.writer)
		o.renderer.SetColorProfile(profile)
	}
}

// New returns an Output at Normal verbosity with the default styles. The
// color profile is detected from the writer, so piped output stays plain.
func New(writer, errWriter io.Writer, opts ...Option) *Output {
	o := &Output{
		writer:    writer,
		errWriter: errWriter,
		verbosity: Normal,
		styles:    defaultStyles(),
		renderer:  lipgloss.NewRenderer(writer),
		profile:   termenv.NewOutput(writer).Profile,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Verbosity returns the current level.
func (o *Output) Verbosity() Verbosity { return o.verbosity }

// SetVerbosity clamps the level into [Quiet, Verbose]. Clamping instead of
// failing keeps stacked --verbose counts safe.
func (o *Output) SetVerbosity(v Verbosity) { o.verbosity = clamp(v) }

// SetStyle registers or overwrites a named style.
func (o *Output) SetStyle(name string, style Style) {
	o.styles[name] = style
}

// Out writes text at Normal level, followed by a newline.
func (o *Output) Out(text string) { o.write(o.writer, Normal, text+"\n") }

// Outf formats and writes at Normal level.
func (o *Output) Outf(format string, args ...any) { o.Out(fmt.Sprintf(format, args...)) }

// Verbose writes text shown only at Verbose level.
func (o *Output) Verbose(text string) { o.write(o.writer, Verbose, text+"\n") }

// Verbosef formats and writes at Verbose level.
func (o *Output) Verbosef(format string, args ...any) { o.Verbose(fmt.Sprintf(format, args...)) }

// Err writes text to the error writer. Error text bypasses verbosity so
// failures stay visible under --quiet.
func (o *Output) Err(text string) {
	fmt.Fprint(o.errWriter, o.Render(text)+"\n")
}

// Errf formats and writes to the error writer.
func (o *Output) Errf(format string, args ...any) { o.Err(fmt.Sprintf(format, args...)) }

func (o *Output) write(w io.Writer, level Verbosity, text string) {
	if o.verbosity < level {
		return
	}
	fmt.Fprint(w, o.Render(text))
}
