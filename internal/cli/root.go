package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/badgegen/pkg/buildinfo"
	"github.com/matzehuels/badgegen/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The logger is attached to the command context before any subcommand runs,
// and badge render events are logged at debug level.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Badgegen generates shields.io badges as markdown",
		Long: `Badgegen generates markdown snippets embedding shields.io badges for package
dependencies, package.json dependency versions and Go versions, ready to paste
into a README.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetBadgeHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.AddCommand(c.dependencyCommand())
	root.AddCommand(c.nodeCommand())
	root.AddCommand(c.goCommand())
	root.AddCommand(c.genericCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
