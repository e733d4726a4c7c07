package spec

import (
	"io"
	"os"
)

// Dependencies provides external services for command handlers.
type Dependencies struct {
	Version string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// DefaultDependencies returns dependencies wired to the process streams.
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}
