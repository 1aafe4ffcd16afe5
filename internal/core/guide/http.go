// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamecodex/internal/core/catalog"
	"github.com/taibuivan/gamecodex/internal/core/filter"
	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/constants"
	"github.com/taibuivan/gamecodex/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/gamecodex/internal/platform/request"
	"github.com/taibuivan/gamecodex/internal/platform/respond"
	"github.com/taibuivan/gamecodex/pkg/pagination"
)

// maxImportBytes bounds the size of an uploaded import document.
const maxImportBytes = 2 << 20

// # Handler Implementation

// Handler implements the HTTP layer of the guide browser.
type Handler struct {
	service  *Service
	pageSize int
}

// NewHandler constructs a new guide [Handler]. A non-positive pageSize falls
// back to [constants.DefaultPageSize].
func NewHandler(service *Service, pageSize int) *Handler {
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	return &Handler{service: service, pageSize: pageSize}
}

// Routes returns a [chi.Router] configured with the guide endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Browsing
	router.Get("/", handler.listGuides)
	router.Get("/facets", handler.listFacets)
	router.Get("/view", handler.restoreView)
	router.Get("/export", handler.exportOverlay)
	router.Get("/{id}", handler.getGuide)
	router.Get("/{id}/links", handler.getLinks)

	// ## Device Ledger
	router.Post("/{id}/pin", handler.togglePin)

	// ## User Overlay
	router.Post("/", handler.createGuide)
	router.Post("/import", handler.importOverlay)
	router.Put("/{id}", handler.updateGuide)
	router.Delete("/{id}", handler.deleteGuide)

	return router
}

// # Browsing Endpoints

/*
GET /api/v1/guides.

Request:
  - q: string (Matches title, author, class and build type)
  - class, build_type: []string (Facet selections)
  - user_only: bool (Only user-authored guides)
  - sort: string (empty for catalogue order, or title)
  - page, limit: int

Response:
  - 200: []Entry: Paginated, pinned guides first
*/
func (handler *Handler) listGuides(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequestWithLimit(request, handler.pageSize)
	criteria := filter.FromQuery(request.URL.Query(), facetParams, SortSource)

	if _, ok := Schema.Sorts[criteria.Sort]; !ok && criteria.Sort != SortSource {
		respond.Error(writer, request, apperr.ValidationError("Unknown sort key",
			apperr.FieldError{Field: filter.ParamSort, Message: "Must be empty or title"}))
		return
	}

	entries, total, err := handler.service.List(request.Context(), ctxutil.GetDevice(request.Context()), criteria, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// GET /api/v1/guides/facets.
func (handler *Handler) listFacets(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context(), ctxutil.GetDevice(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, facets)
}

// GET /api/v1/guides/view?address=.
func (handler *Handler) restoreView(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.View(request.Context(), ctxutil.GetDevice(request.Context()), request.URL.Query().Get("address"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

// GET /api/v1/guides/{id}.
func (handler *Handler) getGuide(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.Get(request.Context(), ctxutil.GetDevice(request.Context()), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

/*
GET /api/v1/guides/{id}/links.

Response:
  - 200: []EquipmentLink: Each slot with its item or an items-page search hint
  - 404: Guide not found
*/
func (handler *Handler) getLinks(writer http.ResponseWriter, request *http.Request) {
	links, err := handler.service.Links(request.Context(), ctxutil.GetDevice(request.Context()), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

// toggleResponse reports the state after a pin toggle.
type toggleResponse struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// POST /api/v1/guides/{id}/pin.
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

// # Overlay Endpoints

/*
POST /api/v1/guides.

Request:
  - body: catalog.Guide (Any id in the body is replaced)

Response:
  - 201: catalog.Guide: The stored user guide
  - 400: Missing device or invalid fields
*/
func (handler *Handler) createGuide(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input catalog.Guide
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), deviceID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

/*
PUT /api/v1/guides/{id}.

Response:
  - 200: catalog.Guide
  - 403: Catalogue guides are read-only
  - 404: Guide not in the overlay
*/
func (handler *Handler) updateGuide(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input catalog.Guide
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), deviceID, requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

// DELETE /api/v1/guides/{id}.
func (handler *Handler) deleteGuide(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), deviceID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/guides/export.

Request:
  - format: string (json or yaml, default json)

Response:
  - 200: Document download with the device's user guides
*/
func (handler *Handler) exportOverlay(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	format, err := catalog.ParseFormat(request.URL.Query().Get("format"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.Export(request.Context(), deviceID, format)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Raw(writer, format.ContentType(), "guides"+format.Extension(), document)
}

/*
POST /api/v1/guides/import.

Request:
  - body: Document produced by export
  - format: string (Query parameter; defaults from Content-Type, then json)

Response:
  - 200: ImportResult
  - 400: Malformed document; the overlay is unchanged
*/
func (handler *Handler) importOverlay(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	formatName := request.URL.Query().Get("format")
	if formatName == "" && strings.Contains(request.Header.Get("Content-Type"), "yaml") {
		formatName = string(catalog.FormatYAML)
	}
	format, err := catalog.ParseFormat(formatName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, maxImportBytes))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Import document could not be read",
			apperr.FieldError{Field: "document", Message: fmt.Sprintf("At most %d bytes", maxImportBytes)}))
		return
	}

	result, err := handler.service.Import(request.Context(), deviceID, raw, format)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
