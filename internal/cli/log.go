// Package cli implements the badgegen command-line interface.
//
// Badges are printed to stdout as markdown so they can be piped straight into
// a README. Logs and status lines go to stderr. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - dependency: Static badge linking to a package registry page
//   - node: Dynamic badge showing a package.json dependency version
//   - go: Dynamic badge showing the Go version from go.mod
//   - generic: Free-form static badge
//   - render: Render a badge set file (badges.toml or badges.yaml)
//   - inspect: List the linked images in an existing markdown file
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/badgegen/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 6 badges (2ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports badge and HTTP events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.BadgeHooks = logHooks{}
	_ observability.HTTPHooks  = logHooks{}
)

func (h logHooks) OnBadgeRendered(_ context.Context, kind string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Badge failed", "kind", kind, "duration", d, "err", err)
		return
	}
	h.logger.Debug("Badge rendered", "kind", kind, "duration", d)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("Request received", "method", method, "path", path)
}

// OnResponse is a no-op; the server writes its own access log.
func (h logHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
