package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gopalindians/framework/entry"
	"github.com/gopalindians/framework/spec"
)

var version = "dev"

func main() {
	deps := spec.DefaultDependencies(version)
	c, err := newConsole(deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipit: %v\n", err)
		os.Exit(1)
	}
	os.Exit(entry.Run(context.Background(), c, os.Args, entry.Options{
		AppName: "shipit",
		Version: version,
	}))
}
