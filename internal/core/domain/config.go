package domain

import "go.trai.ch/zerr"

// Mode tells which binary flavour is running.
type Mode int

const (
	// ModeGlobal is the standalone yarn-add-no-save binary.
	ModeGlobal Mode = iota
	// ModeLocal is the project-local binary launched through `yarn add-no-save`.
	ModeLocal
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	if m == ModeLocal {
		return "local"
	}
	return "global"
}

// CheckMode fails when the binary built for binary runs in env's environment.
func CheckMode(binary, env Mode) error {
	if binary == env {
		return nil
	}

	msg := "This version can only run globally."
	if binary == ModeLocal {
		msg = "This version can only run as a local binary."
	}
	return zerr.With(zerr.Wrap(ErrWrongMode, msg), "environment", env.String())
}

// Defaults for the files and command the tool shepherds.
const (
	DefaultInstaller    = "yarn"
	DefaultManifestFile = "package.json"
	DefaultLockFile     = "yarn.lock"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = LogFormatPretty
)

// Log output formats.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Config is the resolved runtime configuration, read once at startup.
type Config struct {
	// Mode is derived from the presence of YARN_WRAP_OUTPUT.
	Mode Mode
	// InitCwd is the directory the user invoked yarn from, if yarn reported one.
	InitCwd string
	// Installer is the command looked up on PATH.
	Installer    string
	ManifestFile string
	LockFile     string
	LogLevel     string
	// LogFormat is either LogFormatPretty or LogFormatJSON.
	LogFormat string
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeGlobal,
		Installer:    DefaultInstaller,
		ManifestFile: DefaultManifestFile,
		LockFile:     DefaultLockFile,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}
