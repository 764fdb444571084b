package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/badgegen/pkg/repo"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "badgegen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer // badge markdown
	errOut io.Writer // status lines and the registry picker

	// dir is where the git checkout is looked up when --repo is omitted.
	dir string

	interactive  func() bool
	pickRegistry func(ctx context.Context, pkg string) (shields.Registry, error)
}

// New creates a new CLI instance. Badges are written to out; logs, status
// lines and prompts go to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
		dir:    ".",
	}
	c.interactive = isInteractive
	c.pickRegistry = c.runRegistryPicker
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Helpers
// =============================================================================

// isInteractive reports whether both stdin and stderr are terminals, which is
// what the registry picker needs. stdout may be redirected.
func isInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveRepo parses ref, or reads the origin remote of the checkout in c.dir
// when ref is empty.
func (c *CLI) resolveRepo(ctx context.Context, ref string) (repo.Repo, error) {
	if ref != "" {
		return repo.Parse(ref)
	}
	r, err := repo.FromGitDir(c.dir, repo.DefaultRemote)
	if err != nil {
		return repo.Repo{}, err
	}
	loggerFromContext(ctx).Debug("Detected repository", "repo", r.String(), "remote", repo.DefaultRemote)
	return r, nil
}
