// Package app implements the application layer for nosave.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/nosave/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App installs packages and then puts the manifest and lockfile back.
type App struct {
	config    domain.Config
	dir       string
	store     ports.SnapshotStore
	installer ports.Installer
	resolver  *resolver.Resolver
	logger    ports.Logger
}

// New creates a new App instance working in dir.
func New(
	cfg domain.Config,
	dir string,
	store ports.SnapshotStore,
	installer ports.Installer,
	res *resolver.Resolver,
	logger ports.Logger,
) *App {
	return &App{
		config:    cfg,
		dir:       dir,
		store:     store,
		installer: installer,
		resolver:  res,
		logger:    logger,
	}
}

// Run performs one install without saving.
//
// It returns the installer's exit code. On error the code is meaningless and
// callers should use domain.ExitCodeFor.
func (a *App) Run(ctx context.Context, args domain.ParsedArgs) (int, error) {
	project, err := a.snapshot()
	if err != nil {
		return domain.ExitCodeFor(err), err
	}

	packages := make([]string, 0, len(args.Packages))
	packages = append(packages, args.Packages...)

	if args.WantsPeerDeps() {
		peers, err := a.resolver.Resolve(project.Manifest.Data, args.PeerVersion())
		if err != nil {
			return domain.ExitCodeFailure, err
		}
		packages = append(packages, peers...)
	}

	code, err := a.installer.Install(ctx, domain.InstallRequest{
		Dir:       a.dir,
		Packages:  packages,
		Forwarded: args.Options.Unknown(),
	})
	if err != nil {
		return domain.ExitCodeFor(err), err
	}

	if code != domain.ExitCodeOK {
		a.logger.Debug(fmt.Sprintf("%s exited with code %d, leaving %s and %s untouched",
			a.config.Installer, code, a.config.ManifestFile, a.config.LockFile))
		return code, nil
	}

	if err := a.restore(project); err != nil {
		return domain.ExitCodeFailure, err
	}
	return code, nil
}

// snapshot loads the manifest and lockfile. A missing manifest is fatal.
func (a *App) snapshot() (*domain.Project, error) {
	manifestPath := a.path(a.config.ManifestFile)
	manifest, err := a.store.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	if !manifest.Exists {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrManifestNotFound, fmt.Sprintf("No '%s' file found!", a.config.ManifestFile)),
			"path", manifestPath,
		)
	}

	lockfile, err := a.store.Load(a.path(a.config.LockFile))
	if err != nil {
		return nil, err
	}
	if !lockfile.Exists {
		a.logger.Warn(fmt.Sprintf("No '%s' file found.", a.config.LockFile))
		a.logger.Info(fmt.Sprintf("Any '%s' generated by the install will be deleted.", a.config.LockFile))
	}

	return &domain.Project{Manifest: manifest, Lockfile: lockfile}, nil
}

// restore writes both snapshots back, attempting each even if one fails.
func (a *App) restore(project *domain.Project) error {
	var errs []error
	for _, snap := range []*domain.Snapshot{project.Manifest, project.Lockfile} {
		changed, err := a.store.Changed(snap)
		switch {
		case err != nil:
			a.logger.Debug(fmt.Sprintf("could not compare %s: %v", snap.Path, err))
		case changed && snap.Exists:
			a.logger.Debug("restoring " + snap.Path)
		case changed:
			a.logger.Debug("removing " + snap.Path)
		default:
			a.logger.Debug(snap.Path + " is unchanged")
		}

		if err := a.store.Restore(snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.dir, name)
}
