package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/badgegen/pkg/badges"
	"github.com/matzehuels/badgegen/pkg/config"
	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/observability"
	"github.com/matzehuels/badgegen/pkg/repo"
)

// renderCommand creates the render command for badge set files.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a badge set file to markdown",
		Long: `Render every badge listed in a badge set file.

Without a file argument, badges.toml, .badges.toml, badges.yaml and badges.yml
are tried in the current directory. When the set has no repo, the origin
remote of the current git checkout is used for node and go badges.`,
		Example: `  badgegen render
  badgegen render docs/badges.yaml -o docs/badges.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			set, err := config.Load(path)
			if err != nil {
				return err
			}
			if set.Repo == "" {
				if r, err := repo.FromGitDir(c.dir, repo.DefaultRemote); err == nil {
					set.Repo = r.String()
					logger.Debug("Using repository from git remote", "repo", set.Repo)
				} else {
					logger.Debug("No repository detected", "err", err)
				}
			}

			prog := newProgress(logger)
			start := time.Now()
			out, err := badges.RenderSet(*set)
			observability.Badges().OnBadgeRendered(ctx, "set", time.Since(start), err)
			if err != nil {
				return err
			}
			prog.done("Rendered badge set")

			if output == "" {
				_, err := c.out.Write([]byte(out + "\n"))
				return err
			}
			if err := os.WriteFile(output, []byte(out+"\n"), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
			}
			printSuccess(c.errOut, "Wrote %d badges", countBadges(set))
			printFile(c.errOut, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write markdown to a file instead of stdout")

	return cmd
}

func countBadges(s *badges.Set) int {
	n := 0
	for _, e := range s.Badges {
		if e.Kind != badges.KindBreak {
			n++
		}
	}
	return n
}
