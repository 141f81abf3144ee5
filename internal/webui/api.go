// Package webui serves the browse and submit pages.
package webui

import (
	"go.uber.org/zap"

	"kb-app/internal/kb"
	"kb-app/internal/markdown"
)

// API glues the store, the Markdown renderer, and the template set together.
// It holds a StoreOpener rather than a store: each handler invocation opens
// its own database handle and closes it before returning.
type API struct {
	openStore kb.StoreOpener
	views     *Views
	md        *markdown.Renderer
	logger    *zap.Logger
}

func NewAPI(openStore kb.StoreOpener, views *Views, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		openStore: openStore,
		views:     views,
		md:        markdown.NewRenderer(),
		logger:    logger,
	}
}
