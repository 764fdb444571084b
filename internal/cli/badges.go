package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/badgegen/pkg/badges"
	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/observability"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// logoFlags are the logo options shared by the badge commands.
type logoFlags struct {
	logo      string
	logoColor string
}

func (f *logoFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.logo, "logo", "", "simple-icons logo name (e.g. react, python, go)")
	cmd.Flags().StringVar(&f.logoColor, "logo-color", "", "logo colour (name or hex, e.g. white, 61DAFB)")
}

func (f logoFlags) appearance() shields.LogoAppearance {
	return shields.LogoAppearance{Logo: f.logo, LogoColor: f.logoColor}
}

// emit runs a formatter, reports it to the badge hooks and prints the result.
func (c *CLI) emit(ctx context.Context, kind badges.Kind, fn func() (string, error)) error {
	start := time.Now()
	out, err := fn()
	observability.Badges().OnBadgeRendered(ctx, string(kind), time.Since(start), err)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, out)
	return nil
}

// dependencyCommand creates the dependency command.
func (c *CLI) dependencyCommand() *cobra.Command {
	var (
		registry string
		logo     logoFlags
	)

	cmd := &cobra.Command{
		Use:   "dependency <package>",
		Short: "Static badge linking to a package's registry page",
		Long: `Generate a static "dependency" badge for a package, linked to its page on the
package registry.

When --registry is omitted and the terminal is interactive, a picker is shown.`,
		Example: `  badgegen dependency react --registry npm --logo react
  badgegen dependency flask -r pypi --logo flask --logo-color white`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reg, err := c.registryFor(ctx, args[0], registry)
			if err != nil {
				return err
			}
			return c.emit(ctx, badges.KindDependency, func() (string, error) {
				return badges.Dependency(args[0], reg, logo.appearance())
			})
		},
	}

	cmd.Flags().StringVarP(&registry, "registry", "r", "", fmt.Sprintf("package registry (%s)", strings.Join(shields.RegistryNames(), ", ")))
	logo.register(cmd)
	_ = cmd.RegisterFlagCompletionFunc("registry", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return shields.RegistryNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// registryFor parses name, or asks for a registry when name is empty and the
// terminal allows it.
func (c *CLI) registryFor(ctx context.Context, pkg, name string) (shields.Registry, error) {
	if name != "" {
		return shields.ParseRegistry(name)
	}
	if !c.interactive() {
		return 0, errors.New(errors.ErrCodeInvalidRegistry, "--registry is required (%s)", strings.Join(shields.RegistryNames(), ", "))
	}
	return c.pickRegistry(ctx, pkg)
}

// nodeCommand creates the node command.
func (c *CLI) nodeCommand() *cobra.Command {
	var (
		repoRef string
		env     string
		logo    logoFlags
	)

	cmd := &cobra.Command{
		Use:   "node <package>",
		Short: "Dynamic badge showing a package.json dependency version",
		Long: `Generate a badge showing the version of a dependency declared in a GitHub
repository's package.json. The badge is always large and links to npmjs.com.

--repo defaults to the origin remote of the git checkout in the current
directory.`,
		Example: `  badgegen node vue --logo vue.js --logo-color white
  badgegen node typescript --repo MichaelCurrin/badge-generator --env dev`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := shields.ParseEnvironment(env)
			if err != nil {
				return err
			}
			r, err := c.resolveRepo(ctx, repoRef)
			if err != nil {
				return err
			}
			return c.emit(ctx, badges.KindNode, func() (string, error) {
				return badges.NodeVersion(r, args[0], logo.appearance(), e)
			})
		},
	}

	cmd.Flags().StringVar(&repoRef, "repo", "", "GitHub repository (owner/name or URL)")
	cmd.Flags().StringVarP(&env, "env", "e", "prod", "dependency section (prod, dev, peer)")
	logo.register(cmd)

	return cmd
}

// goCommand creates the go command.
func (c *CLI) goCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go [owner/repo]",
		Short: "Dynamic badge showing the Go version from go.mod",
		Long: `Generate a badge showing the Go version declared in a GitHub repository's
go.mod. Without an argument the origin remote of the current checkout is used.`,
		Example: `  badgegen go
  badgegen go spf13/cobra`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var ref string
			if len(args) == 1 {
				ref = args[0]
			}
			r, err := c.resolveRepo(ctx, ref)
			if err != nil {
				return err
			}
			return c.emit(ctx, badges.KindGo, func() (string, error) {
				return badges.GoVersionForRepo(r)
			})
		},
	}

	return cmd
}

// genericCommand creates the generic command.
func (c *CLI) genericCommand() *cobra.Command {
	var (
		g    shields.Generic
		logo logoFlags
	)

	cmd := &cobra.Command{
		Use:   "generic",
		Short: "Free-form static badge",
		Example: `  badgegen generic --label License --message MIT --color blue --link https://opensource.org/licenses/MIT
  badgegen generic --message "Made with Go" --logo go --large`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g.Logo = logo.logo
			g.LogoColor = logo.logoColor
			return c.emit(cmd.Context(), badges.KindGeneric, func() (string, error) {
				return badges.Generic(g)
			})
		},
	}

	cmd.Flags().StringVar(&g.Label, "label", "", "left-hand text")
	cmd.Flags().StringVar(&g.Message, "message", "", "right-hand text (required)")
	cmd.Flags().StringVar(&g.Color, "color", badges.DefaultColor, "badge colour (name or hex)")
	cmd.Flags().StringVar(&g.Link, "link", "", "click target URL")
	cmd.Flags().BoolVar(&g.IsLarge, "large", false, "use the for-the-badge style")
	logo.register(cmd)

	return cmd
}
