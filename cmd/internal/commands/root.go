// Package commands implements the CLI shared by the yarn-add-no-save binaries.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
)

// Invocation names.
const (
	// GlobalName is the standalone binary.
	GlobalName = "yarn-add-no-save"
	// LocalName is the binary installed into a project's node_modules/.bin.
	LocalName = "add-no-save"
	// LocalInvocation is how users launch the local binary.
	LocalInvocation = "yarn " + LocalName
)

// CLI represents the command line interface for yarn-add-no-save.
type CLI struct {
	load    Loader
	logger  ports.Logger
	mode    domain.Mode
	env     domain.Mode
	rootCmd *cobra.Command
	code    int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args domain.ParsedArgs) (int, error)
}

// Loader resolves the application and the logger configured for it.
// It is only called once the mode check, help and version are handled.
type Loader func(ctx context.Context) (Application, ports.Logger, error)

// New creates a new CLI instance for the binary built for mode running in
// the env environment. logger reports problems found before load is called.
func New(load Loader, logger ports.Logger, mode, env domain.Mode) *CLI {
	c := &CLI{
		load:   load,
		logger: logger,
		mode:   mode,
		env:    env,
	}

	c.rootCmd = &cobra.Command{
		Use:   Invocation(mode) + " [packages] [flags]",
		Short: "Install packages with yarn without saving them to package.json and yarn.lock",
		// Flags belong to yarn as much as to this tool, so tokens are parsed by hand.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE:               c.run,
	}

	return c
}

// Invocation returns the command line a user types to run the binary for mode.
func Invocation(mode domain.Mode) string {
	if mode == domain.ModeLocal {
		return LocalInvocation
	}
	return GlobalName
}

// Execute runs the root command with the given context and returns the exit code.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.rootCmd.SetContext(ctx)
	if err := c.rootCmd.Execute(); err != nil {
		return domain.ExitCodeFor(err), err
	}
	return c.code, nil
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	if err := domain.CheckMode(c.mode, c.env); err != nil {
		c.logger.Error(err)
		for _, hint := range modeHints(c.mode) {
			c.logger.Info(hint)
		}
		c.code = domain.ExitCodeConfig
		return nil
	}

	parsed := domain.ParseArgs(args)

	if parsed.WantsHelp() {
		printUsage(cmd.OutOrStdout(), c.mode)
		c.code = domain.ExitCodeOK
		return nil
	}

	if parsed.WantsVersion() {
		printVersion(cmd.OutOrStdout())
		c.code = domain.ExitCodeOK
		return nil
	}

	a, log, err := c.load(cmd.Context())
	if err != nil {
		return err
	}

	code, err := a.Run(cmd.Context(), parsed)
	if err != nil {
		log.Error(err)
		c.code = domain.ExitCodeFor(err)
		return nil
	}
	c.code = code
	return nil
}

// modeHints explains how to launch the right binary after a mode mismatch.
func modeHints(mode domain.Mode) []string {
	if mode == domain.ModeLocal {
		return []string{
			"Run `" + LocalInvocation + "` from your project's folder.",
			"If you intended to run this command globally use `" + GlobalName + "` instead",
		}
	}
	return []string{
		"Run `" + GlobalName + "` from your project's folder.",
		"If you intended to run this command locally use `" + LocalInvocation + "` instead",
	}
}
