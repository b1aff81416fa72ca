package domain

// InstallSubcommand is the installer subcommand the tool wraps.
const InstallSubcommand = "add"

// InstallRequest describes one invocation of the wrapped installer.
type InstallRequest struct {
	// Dir is the working directory of the child process.
	Dir      string
	Packages []string
	// Forwarded holds options the tool does not understand, passed through verbatim.
	Forwarded OptionSet
}

// Args returns the installer arguments: add, the packages, then forwarded options.
func (r InstallRequest) Args() []string {
	args := make([]string, 0, 1+len(r.Packages)+r.Forwarded.Len())
	args = append(args, InstallSubcommand)
	args = append(args, r.Packages...)
	args = append(args, r.Forwarded.Tokens()...)
	return args
}
