package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bridges/pkg/observability"
)

// logHooks writes every observability event to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLoad(_ context.Context, path string, vertices, edges int, d time.Duration, err error) {
	h.logger.Debug("load", "path", path, "vertices", vertices, "edges", edges, "took", d, "err", err)
}

func (h logHooks) OnSerialize(_ context.Context, visual string, size int, err error) {
	h.logger.Debug("serialize", "visual", visual, "bytes", size, "err", err)
}

func (h logHooks) OnAttempt(_ context.Context, path string, attempt int) {
	h.logger.Debug("post attempt", "path", path, "attempt", attempt)
}

func (h logHooks) OnResponse(_ context.Context, path string, status int, d time.Duration) {
	h.logger.Debug("post response", "path", path, "status", status, "took", d)
}

func (h logHooks) OnError(_ context.Context, path string, err error) {
	h.logger.Debug("post failed", "path", path, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

// registerHooks installs logHooks when debug logging is on.
func (c *CLI) registerHooks() {
	if c.Logger.GetLevel() > log.DebugLevel {
		return
	}
	h := logHooks{logger: c.Logger}
	observability.SetDocumentHooks(h)
	observability.SetTransportHooks(h)
	observability.SetCacheHooks(h)
}
