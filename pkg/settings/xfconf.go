package settings

import (
	"context"

	"github.com/arthur-debert/qualia/pkg/runner"
)

// Xfconf is the property store backed by the xfconf-query client
type Xfconf struct {
	runner runner.Runner
}

// NewXfconf creates a property store running xfconf-query through r
func NewXfconf(r runner.Runner) *Xfconf {
	return &Xfconf{runner: r}
}

func (x *Xfconf) Name() string { return "xfconf-query" }

func (x *Xfconf) Available() bool {
	return x.runner.LookPath("xfconf-query")
}

// Get returns the value of a channel property
func (x *Xfconf) Get(ctx context.Context, key Key) (string, error) {
	if !x.Available() {
		return "", unavailable(x.Name())
	}
	return x.runner.Output(ctx, runner.Command("xfconf-query", "-c", key.Namespace, "-p", key.Name))
}

// Set writes value to a channel property
func (x *Xfconf) Set(ctx context.Context, key Key, value string) error {
	if !x.Available() {
		return unavailable(x.Name())
	}
	return x.runner.Run(ctx, runner.Command("xfconf-query", "-c", key.Namespace, "-p", key.Name, "-s", value))
}
