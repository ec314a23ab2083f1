package settings

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/runner"
)

// GSettings is the schema store backed by the gsettings client
type GSettings struct {
	runner runner.Runner
}

// NewGSettings creates a schema store running gsettings through r
func NewGSettings(r runner.Runner) *GSettings {
	return &GSettings{runner: r}
}

func (g *GSettings) Name() string { return "gsettings" }

func (g *GSettings) Available() bool {
	return g.runner.LookPath("gsettings")
}

// Get returns the value of schema key, unquoted
func (g *GSettings) Get(ctx context.Context, key Key) (string, error) {
	if !g.Available() {
		return "", unavailable(g.Name())
	}
	return g.runner.Output(ctx, runner.Command("gsettings", "get", key.Namespace, key.Name))
}

// Set writes value to schema key
func (g *GSettings) Set(ctx context.Context, key Key, value string) error {
	if !g.Available() {
		return unavailable(g.Name())
	}
	return g.runner.Run(ctx, runner.Command("gsettings", "set", key.Namespace, key.Name, value))
}
