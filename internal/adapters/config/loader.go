// Package config provides the configuration loader for nosave.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the base name of the optional project configuration file.
// Any extension viper understands (.yaml, .yml, .json, .toml) is accepted.
const FileName = ".nosaverc"

// EnvPrefix is prepended to the tool's own environment variables.
const EnvPrefix = "NOSAVE"

// Configuration keys.
const (
	KeyInstaller = "installer"
	KeyManifest  = "manifest"
	KeyLockfile  = "lockfile"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Environment variables set by yarn itself. They are never read from the config file.
const (
	EnvWrapOutput = "YARN_WRAP_OUTPUT"
	EnvInitCwd    = "INIT_CWD"
)

// DetectMode reports the mode of the environment the process runs in.
// yarn sets YARN_WRAP_OUTPUT for the scripts and binaries it launches.
func DetectMode() domain.Mode {
	if os.Getenv(EnvWrapOutput) != "" {
		return domain.ModeLocal
	}
	return domain.ModeGlobal
}

// Loader implements ports.ConfigLoader on top of viper.
// Precedence is NOSAVE_* environment variables, then the config file in Dir,
// then built-in defaults.
type Loader struct {
	// Dir is searched for the optional config file. Empty disables the file.
	Dir string
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader that looks for its config file in dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load resolves the configuration.
func (l *Loader) Load() (domain.Config, error) {
	v := viper.New()

	defaults := domain.DefaultConfig()
	v.SetDefault(KeyInstaller, defaults.Installer)
	v.SetDefault(KeyManifest, defaults.ManifestFile)
	v.SetDefault(KeyLockfile, defaults.LockFile)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyLogFormat, defaults.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{KeyInstaller, KeyManifest, KeyLockfile, KeyLogLevel, KeyLogFormat} {
		if err := v.BindEnv(key); err != nil {
			return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigLoadFailed, err), "key", key)
		}
	}

	if l.Dir != "" {
		v.SetConfigName(FileName)
		v.AddConfigPath(l.Dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigLoadFailed, err), "dir", l.Dir)
			}
		}
	}

	cfg := domain.Config{
		Mode:         DetectMode(),
		InitCwd:      os.Getenv(EnvInitCwd),
		Installer:    orDefault(v.GetString(KeyInstaller), defaults.Installer),
		ManifestFile: orDefault(v.GetString(KeyManifest), defaults.ManifestFile),
		LockFile:     orDefault(v.GetString(KeyLockfile), defaults.LockFile),
		LogLevel:     orDefault(v.GetString(KeyLogLevel), defaults.LogLevel),
		LogFormat:    strings.ToLower(orDefault(v.GetString(KeyLogFormat), defaults.LogFormat)),
	}
	return cfg, nil
}

func orDefault(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}
