package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/observability"
)

// logHooks reports navigation and store events at debug level.
type logHooks struct {
	observability.NoopHTTPHooks
	logger *log.Logger
}

func (h logHooks) OnDispatch(actionType string, changed bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("dispatch failed", "type", actionType, "err", err)
		return
	}
	h.logger.Debug("dispatch", "type", actionType, "changed", changed, "took", d)
}

func (h logHooks) OnFocus(key string)  { h.logger.Debug("focus", "scene", key) }
func (h logHooks) OnBack(handled bool) { h.logger.Debug("back", "handled", handled) }
func (h logHooks) OnStoreHit(_ context.Context, backend string) {
	h.logger.Debug("snapshot hit", "backend", backend)
}
func (h logHooks) OnStoreMiss(_ context.Context, backend string) {
	h.logger.Debug("snapshot miss", "backend", backend)
}
func (h logHooks) OnStoreSet(_ context.Context, backend string, size int) {
	h.logger.Debug("snapshot saved", "backend", backend, "bytes", size)
}

func (c *CLI) installHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetNavigationHooks(h)
	observability.SetStoreHooks(h)
}
