package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Exit codes returned by the binaries besides the installer's own.
const (
	// ExitCodeOK is returned after help, version or a successful install.
	ExitCodeOK = 0
	// ExitCodeFailure is returned for internal failures that are not configuration errors.
	ExitCodeFailure = 1
	// ExitCodeConfig is returned for usage and environment errors.
	ExitCodeConfig = 66
)

var (
	// ErrWrongMode is returned when a binary is launched in the other binary's mode.
	ErrWrongMode = zerr.New("invoked in the wrong mode")

	// ErrManifestNotFound is returned when the project has no manifest file.
	ErrManifestNotFound = zerr.New("no manifest file found")

	// ErrInstallerNotFound is returned when the installer command is not on PATH.
	ErrInstallerNotFound = zerr.New("installer not found on PATH")

	// ErrConfigLoadFailed is returned when the runtime configuration cannot be read.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrManifestParseFailed is returned when the project manifest cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrReferenceReadFailed is returned when a --peer-version manifest cannot be read.
	ErrReferenceReadFailed = zerr.New("failed to read reference manifest")

	// ErrReferenceParseFailed is returned when a --peer-version manifest cannot be decoded.
	ErrReferenceParseFailed = zerr.New("failed to parse reference manifest")

	// ErrSnapshotReadFailed is returned when a file exists but cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read file snapshot")

	// ErrRestoreFailed is returned when a snapshot cannot be written back.
	ErrRestoreFailed = zerr.New("failed to restore file snapshot")

	// ErrInstallerSpawnFailed is returned when the installer process cannot be started.
	ErrInstallerSpawnFailed = zerr.New("failed to start installer")

	// ErrInstallerSignaled is returned when the installer was terminated by a signal.
	ErrInstallerSignaled = zerr.New("installer terminated abnormally")
)

// configErrors are reported with ExitCodeConfig.
var configErrors = []error{
	ErrWrongMode,
	ErrManifestNotFound,
	ErrInstallerNotFound,
}

// IsConfigError reports whether err is a usage or environment error.
func IsConfigError(err error) bool {
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ExitCodeFor maps an error returned by the application to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitCodeOK
	case IsConfigError(err):
		return ExitCodeConfig
	default:
		return ExitCodeFailure
	}
}
