// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/platform/ctxutil"
	"github.com/taibuivan/gamecodex/internal/platform/respond"
)

// GuideSource supplies the merged guides of a device.
type GuideSource interface {
	Merged(ctx context.Context, deviceID string) ([]catalog.Guide, error)
}

// Handler implements the global search endpoint.
type Handler struct {
	store  *catalog.Store
	guides GuideSource
}

// NewHandler constructs a new search [Handler].
func NewHandler(store *catalog.Store, guides GuideSource) *Handler {
	return &Handler{store: store, guides: guides}
}

// Routes returns a [chi.Router] configured with the search endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	return router
}

/*
GET /api/v1/search.

Request:
  - q: string

Response:
  - 200: []Hit: At most 50 hits across items, quests and guides
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	guides, err := handler.guides.Merged(request.Context(), ctxutil.GetDevice(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	corpus := Corpus{
		Items:  handler.store.Items(),
		Quests: handler.store.Quests(),
		Guides: guides,
	}
	respond.OK(writer, Search(corpus, request.URL.Query().Get("q")))
}
