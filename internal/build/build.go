// Package build holds build-time information.
package build

// Version is the release of yarn-add-no-save.
// It defaults to "dev" and is set at link time with
// -ldflags "-X go.trai.ch/nosave/internal/build.Version=<version>".
var Version = "dev"
