// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package viewstate

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/gamecodex/internal/platform/request"
	"github.com/taibuivan/gamecodex/internal/platform/respond"
	"github.com/taibuivan/gamecodex/internal/platform/validate"
)

// Page binds a browser page to its synchronizer and live-collection lookup.
type Page struct {
	Sync   *Synchronizer
	Exists func(ctx context.Context, deviceID, id string) bool
}

// # Handler Implementation

// Handler exposes publish, clear and share for every registered page.
type Handler struct {
	pages map[string]Page
}

// NewHandler constructs a new view-state [Handler]. Keys of pages are the
// page names accepted in request bodies ("quests", "guides").
func NewHandler(pages map[string]Page) *Handler {
	return &Handler{pages: pages}
}

// Routes returns a [chi.Router] configured with the view-state endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/publish", handler.publish)
	router.Post("/clear", handler.clear)
	router.Post("/share", handler.share)

	return router
}

// addressRequest is the inbound body of the view-state endpoints.
type addressRequest struct {
	Page    string `json:"page"`
	Address string `json:"address"`
	ID      string `json:"id"`
}

// addressResponse carries a rewritten address.
type addressResponse struct {
	Address string `json:"address"`
}

func (handler *Handler) decode(request *http.Request, needAddress, needID bool) (addressRequest, Page, error) {
	var input addressRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		return input, Page{}, err
	}

	validator := &validate.Validator{}
	validator.Required("page", input.Page)
	if needAddress {
		validator.Required("address", input.Address)
	}
	if needID {
		validator.Required("id", input.ID)
	}
	if err := validator.Err(); err != nil {
		return input, Page{}, err
	}

	page, ok := handler.pages[input.Page]
	if !ok {
		return input, Page{}, apperr.ValidationError("Unknown page",
			apperr.FieldError{Field: "page", Message: "Must be quests or guides"})
	}

	if needID && page.Exists != nil && !page.Exists(request.Context(), ctxutil.GetDevice(request.Context()), input.ID) {
		return input, Page{}, apperr.NotFound("Entity")
	}
	return input, page, nil
}

/*
POST /api/v1/viewstate/publish.

Request:
  - body: {page, address, id}

Response:
  - 200: {address}: The address with the token set and other parameters kept
  - 404: The id is not in the live collection
*/
func (handler *Handler) publish(writer http.ResponseWriter, request *http.Request) {
	input, page, err := handler.decode(request, true, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	address, err := page.Sync.Publish(input.Address, input.ID)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid address",
			apperr.FieldError{Field: "address", Message: err.Error()}))
		return
	}
	respond.OK(writer, addressResponse{Address: address})
}

// POST /api/v1/viewstate/clear.
func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	input, page, err := handler.decode(request, true, false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	address, err := page.Sync.Clear(input.Address)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid address",
			apperr.FieldError{Field: "address", Message: err.Error()}))
		return
	}
	respond.OK(writer, addressResponse{Address: address})
}

/*
POST /api/v1/viewstate/share.

Description: The server has no clipboard of its own, so the result always
carries the address with copied=false for the page shell to copy or display.

Response:
  - 200: ShareResult
*/
func (handler *Handler) share(writer http.ResponseWriter, request *http.Request) {
	input, page, err := handler.decode(request, false, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result := page.Sync.Share(request.Context(), input.ID, nil, ctxutil.GetLogger(request.Context()))
	respond.OK(writer, result)
}
