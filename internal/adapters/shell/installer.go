// Package shell provides the installer adapter that runs the package manager.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Installer = (*Installer)(nil)

// Installer implements ports.Installer using os/exec.
type Installer struct {
	command string
	logger  ports.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Installer.
type Option func(*Installer)

// WithStreams replaces the standard streams handed to the child process.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(i *Installer) {
		i.stdin = stdin
		i.stdout = stdout
		i.stderr = stderr
	}
}

// NewInstaller creates an Installer running command, looked up on PATH.
func NewInstaller(command string, logger ports.Logger, opts ...Option) *Installer {
	i := &Installer{
		command: command,
		logger:  logger,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Install runs `<command> add <packages...> <forwarded...>` and waits for it.
//
// The child shares the terminal with this process, so an interrupt reaches it
// directly. The wait is deliberately not tied to ctx: once started, the child
// decides how to handle the interrupt and its exit code is reported back.
func (i *Installer) Install(ctx context.Context, req domain.InstallRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExitCodeFailure, zerr.Wrap(err, "install canceled before start")
	}

	executable, err := i.locate()
	if err != nil {
		return domain.ExitCodeConfig, err
	}

	args := req.Args()
	i.logger.Debug("running " + i.command + " " + strings.Join(args, " "))

	cmd := exec.Command(executable, args...) //nolint:gosec // installer and arguments come from the user

	// exec.Command sets Args[0] to the resolved path; keep the name as invoked.
	cmd.Args[0] = i.command
	cmd.Dir = req.Dir
	cmd.Stdin = i.stdin
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	err = cmd.Run()
	if err == nil {
		return domain.ExitCodeOK, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return domain.ExitCodeFailure, zerr.With(errors.Join(domain.ErrInstallerSpawnFailed, err), "installer", executable)
	}

	code := exitErr.ExitCode()
	if code < 0 {
		return domain.ExitCodeFailure, zerr.With(
			zerr.With(errors.Join(domain.ErrInstallerSignaled, err), "installer", executable),
			"exit_code", code,
		)
	}

	return code, nil
}

// locate resolves the installer to an executable path.
func (i *Installer) locate() (string, error) {
	if strings.ContainsRune(i.command, filepath.Separator) {
		if err := findExecutable(i.command); err != nil {
			return "", zerr.With(errors.Join(domain.ErrInstallerNotFound, err), "installer", i.command)
		}
		return i.command, nil
	}

	path, err := lookPath(i.command, os.Environ())
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrInstallerNotFound, err), "installer", i.command)
	}
	return path, nil
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			if !filepath.IsAbs(candidate) {
				if abs, err := filepath.Abs(candidate); err == nil {
					candidate = abs
				}
			}
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
