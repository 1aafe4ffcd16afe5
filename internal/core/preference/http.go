// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/gamecodex/internal/platform/request"
	"github.com/taibuivan/gamecodex/internal/platform/respond"
)

// Handler implements the preference endpoints. Every route needs a device.
type Handler struct {
	service *Service
}

// NewHandler constructs a new preference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the preference endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPreferences)
	router.Put("/{name}", handler.setPreference)
	return router
}

// GET /api/v1/preferences.
func (handler *Handler) listPreferences(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	values, err := handler.service.All(request.Context(), deviceID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, values)
}

type setRequest struct {
	Value bool `json:"value"`
}

// PUT /api/v1/preferences/{name}.
func (handler *Handler) setPreference(writer http.ResponseWriter, request *http.Request) {
	deviceID, err := requestutil.RequiredDevice(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	name := requestutil.ID(request, "name")
	if err := handler.service.Set(request.Context(), deviceID, name, input.Value); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
