// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/nosave/internal/core/domain"
)

// Installer runs the wrapped package manager.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install runs the installer for req with the terminal's stdio attached.
	//
	// It returns the child's exit code. A non-zero code is not an error; an
	// error means the installer could not be located, started, or was killed
	// by a signal.
	Install(ctx context.Context, req domain.InstallRequest) (int, error)
}
