package commands

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/nosave/internal/build"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/ui/output"
	"go.trai.ch/nosave/internal/ui/style"
)

const usageTemplate = `
  Usage: %s [packages] [flags]

  Options:

    --peer-deps, -p                  Automatically installs peer dependencies listed in the package.json file
    --peer-version <string|path>     Used with --peer-deps: How to define which version of a package to install.
                                     Either 'first', 'last', 'latest' or a path to a package.json (or
                                     package.yaml) from which the version will be inferred. Default: latest
    --help, -h                       Displays help information (this message).
    --version, -v                    Displays the version of this utility.

  NOTE: All unrecognized options are forwarded to the ` + "`yarn add`" + ` command.

`

func printUsage(w io.Writer, mode domain.Mode) {
	_, _ = fmt.Fprintf(w, usageTemplate, Invocation(mode))
}

func printVersion(w io.Writer) {
	out := output.New(w)
	label := out.String(GlobalName + " VERSION:").Foreground(termenv.RGBColor(string(style.Grey)))
	_, _ = fmt.Fprintf(w, "%s %s\n", label, build.Version)
}
