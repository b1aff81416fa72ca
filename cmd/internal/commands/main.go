package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/adapters/config"
	"go.trai.ch/nosave/internal/adapters/logger"
	"go.trai.ch/nosave/internal/app"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
)

// Provider builds the application components.
type Provider func(ctx context.Context) (*app.Components, error)

// GraftProvider resolves the components from the registered Graft nodes.
func GraftProvider(opts ...graft.Option) Provider {
	return func(ctx context.Context) (*app.Components, error) {
		components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
		return components, err
	}
}

// outputSetter is implemented by loggers whose destination can be changed.
type outputSetter interface {
	SetOutput(w io.Writer)
}

// Main is the entry point shared by both binaries. It returns the process exit code.
func Main(mode domain.Mode) int {
	// Interrupts are left to the installer, which shares our terminal; the
	// context only stops work that has not started yet.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, mode, os.Args[1:], os.Stdout, os.Stderr, GraftProvider(graft.DisableCache()))
}

// Run executes the CLI and maps the outcome to an exit code.
//
// The components are only built when an install is requested, so a broken
// config file does not get in the way of help and version. Everything the
// process logs goes to stderr.
func Run(ctx context.Context, mode domain.Mode, args []string, stdout, stderr io.Writer, provider Provider) int {
	bootstrap := logger.New(slog.LevelInfo)
	bootstrap.SetOutput(stderr)

	load := func(ctx context.Context) (Application, ports.Logger, error) {
		components, err := provider(ctx)
		if err != nil {
			return nil, nil, err
		}
		if l, ok := components.Logger.(outputSetter); ok {
			l.SetOutput(stderr)
		}
		return components.App, components.Logger, nil
	}

	cli := New(load, bootstrap, mode, config.DetectMode())
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	code, err := cli.Execute(ctx)
	if err != nil {
		bootstrap.Error(err)
		return domain.ExitCodeFor(err)
	}
	return code
}
