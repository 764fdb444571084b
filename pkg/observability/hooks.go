// Package observability provides hooks for badge rendering and HTTP serving
// events.
//
// Libraries never log or export metrics on their own. Instead they report
// events through the registered hooks, which default to no-ops. The CLI
// registers a logging implementation when running the HTTP server.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetBadgeHooks(&myBadgeHooks{})
//	observability.SetHTTPHooks(&myHTTPHooks{})
//
// Code that renders badges reports each attempt:
//
//	start := time.Now()
//	out, err := badges.Dependency(name, reg, a)
//	observability.Badges().OnBadgeRendered(ctx, "dependency", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BadgeHooks receives badge rendering events.
type BadgeHooks interface {
	// OnBadgeRendered records one formatter call. kind is the badge kind
	// ("dependency", "node", "go", "generic" or "set") and err is the
	// formatter's error, nil on success.
	OnBadgeRendered(ctx context.Context, kind string, duration time.Duration, err error)
}

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request before it is handled.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopBadgeHooks is a no-op implementation of BadgeHooks.
type NoopBadgeHooks struct{}

func (NoopBadgeHooks) OnBadgeRendered(context.Context, string, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string) {}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	badgeHooks BadgeHooks = NoopBadgeHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetBadgeHooks registers custom badge hooks. A nil value is ignored.
func SetBadgeHooks(h BadgeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		badgeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. A nil value is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Badges returns the registered badge hooks.
func Badges() BadgeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return badgeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	badgeHooks = NoopBadgeHooks{}
	httpHooks = NoopHTTPHooks{}
}
