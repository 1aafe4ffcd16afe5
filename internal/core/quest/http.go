// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamecodex/internal/core/filter"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/gamecodex/internal/platform/request"
	"github.com/taibuivan/gamecodex/internal/platform/respond"
	"github.com/taibuivan/gamecodex/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer of the quest browser.
type Handler struct {
	service  *Service
	pageSize int
}

// NewHandler constructs a new quest [Handler]. A non-positive pageSize falls
// back to [constants.DefaultPageSize].
func NewHandler(service *Service, pageSize int) *Handler {
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	return &Handler{service: service, pageSize: pageSize}
}

// Routes returns a [chi.Router] configured with the quest endpoints.
//
// # Routing Strategy
//
//   - Browsing: Device identity is optional and only adds pins and completions.
//   - Ledger: Mutations require the X-Device-ID header.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Browsing
	router.Get("/", handler.listQuests)
	router.Get("/facets", handler.listFacets)
	router.Get("/view", handler.restoreView)
	router.Get("/chain", handler.chainByName)
	router.Get("/{id}", handler.getQuest)
	router.Get("/{id}/chain", handler.getChain)

	// ## Device Ledger
	router.Post("/{id}/pin", handler.togglePin)
	router.Post("/{id}/complete", handler.toggleCompletion)

	return router
}

/*
GET /api/v1/quests.

Request:
  - q: string (Matches name, description, quest giver and faction)
  - class, faction, npc: []string (Facet selections, repeatable or comma separated)
  - min_level, max_level: int (Inclusive, default 0-150)
  - hide_chain, hide_completed: bool
  - sort: string (name, level, experience, gold)
  - page, limit: int

Response:
  - 200: []Entry: Paginated, pinned quests first
*/
func (handler *Handler) listQuests(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequestWithLimit(request, handler.pageSize)
	criteria := filter.FromQuery(request.URL.Query(), facetParams, SortName)

	if _, ok := Schema.Sorts[criteria.Sort]; !ok {
		respond.Error(writer, request, apperr.ValidationError("Unknown sort key",
			apperr.FieldError{Field: filter.ParamSort, Message: "Must be name, level, experience or gold"}))
		return
	}

	entries, total, err := handler.service.List(request.Context(), ctxutil.GetDevice(request.Context()), criteria, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/quests/facets.

Response:
  - 200: map[string][]facet.Choice: Distinct values per facet with counts
*/
func (handler *Handler) listFacets(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Facets())
}

/*
GET /api/v1/quests/view.

Request:
  - address: string (Current page address carrying the ?quest= token)

Response:
  - 200: View: Detail view when the token names a live quest, list view otherwise
*/
func (handler *Handler) restoreView(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.View(request.Context(), ctxutil.GetDevice(request.Context()), request.URL.Query().Get("address"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
GET /api/v1/quests/chain.

Request:
  - name: string (Quest name to start from)

Response:
  - 200: []Quest: Root-first chain, empty when the name does not resolve
*/
func (handler *Handler) chainByName(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ChainByName(request.URL.Query().Get("name")))
}

/*
GET /api/v1/quests/{id}.

Response:
  - 200: Detail
  - 404: Quest not found
*/
func (handler *Handler) getQuest(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.Get(request.Context(), ctxutil.GetDevice(request.Context()), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

/*
GET /api/v1/quests/{id}/chain.

Response:
  - 200: []Quest: Root-first prerequisite chain starting at the quest itself
  - 404: Quest not found
*/
func (handler *Handler) getChain(writer http.ResponseWriter, request *http.Request) {
	chain, err := handler.service.Chain(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chain)
}

// toggleResponse reports the state after a ledger toggle.
type toggleResponse struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

/*
POST /api/v1/quests/{id}/pin.

Response:
  - 200: toggleResponse: active is true when the quest is now pinned
  - 400: Missing X-Device-ID
  - 404: Quest not found
*/
func (handler *Handler) togglePin(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	pinned, err := handler.service.TogglePin(request.Context(), deviceID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toggleResponse{ID: id, Active: pinned})
}

/*
POST /api/v1/quests/{id}/complete.

Response:
  - 200: toggleResponse: active is true when the quest is now completed
  - 400: Missing X-Device-ID
  - 404: Quest not found
*/
func (handler *Handler) toggleCompletion(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	completed, err := handler.service.ToggleCompletion(request.Context(), deviceID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toggleResponse{ID: id, Active: completed})
}
