package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gopalindians/framework/console"
	"github.com/gopalindians/framework/spec"
)

//go:embed commands.yaml
var manifestYAML []byte

var deployTargets = []string{"staging", "production"}

func newConsole(deps spec.Dependencies) (*console.Console, error) {
	manifest, err := spec.Parse(manifestYAML)
	if err != nil {
		return nil, err
	}
	reg := spec.NewRegistry()
	reg.Register("build", runBuild)
	reg.Register("deploy", runDeploy)
	reg.Register("version", runVersion)
	return spec.Build(manifest, deps, reg)
}

func runBuild(ctx spec.Context) error {
	output, err := ctx.Input.Option("output")
	if err != nil {
		return err
	}
	paths, err := ctx.Input.Argument("path")
	if err != nil {
		return err
	}
	for _, path := range paths.Strings() {
		ctx.Output.Verbosef("adding %s", path)
	}
	ctx.Output.Outf("<success>built %d file(s) into %s</success>",
		len(paths.Strings()), output.String())
	return nil
}

func runDeploy(ctx spec.Context) error {
	target, err := ctx.Input.Option("target")
	if err != nil {
		return err
	}
	force, err := ctx.Input.Flag("force")
	if err != nil {
		return err
	}
	if !force.Present() && !knownTarget(target.String()) {
		return fmt.Errorf("unknown target %q (use one of %s, or --force)",
			target.String(), strings.Join(deployTargets, ", "))
	}
	artifact, err := ctx.Input.Argument("artifact")
	if err != nil {
		return err
	}
	ctx.Output.Verbosef("uploading %s", artifact.String())
	ctx.Output.Outf("<info>deployed %s to %s</info>", artifact.String(), target.String())
	return nil
}

func runVersion(ctx spec.Context) error {
	ctx.Output.Outf("shipit %s", ctx.Deps.Version)
	return nil
}

func knownTarget(target string) bool {
	for _, t := range deployTargets {
		if t == target {
			return true
		}
	}
	return false
}
