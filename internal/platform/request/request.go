// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gamecodex/internal/platform/apperr"
	"github.com/taibuivan/gamecodex/internal/platform/ctxutil"
	"github.com/taibuivan/gamecodex/internal/platform/validate"
	"github.com/taibuivan/gamecodex/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (entity identifier) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Bool parses a boolean query parameter. Anything unparsable counts as false.
*/
func Bool(request *http.Request, name string) bool {
	return convert.ToBool(request.URL.Query().Get(name))
}

/*
Int parses an integer query parameter, returning fallback when absent or invalid.
*/
func Int(request *http.Request, name string, fallback int) int {
	return convert.ToIntD(request.URL.Query().Get(name), fallback)
}

/*
RequiredDevice returns the device identifier attached by the device middleware.

Returns:
  - string: Device identifier
  - error: apperr.ValidationError if the request carries no device identity
*/
func RequiredDevice(request *http.Request) (string, error) {
	deviceID := ctxutil.GetDevice(request.Context())
	if deviceID == "" {
		return "", apperr.ValidationError("Device identity required",
			apperr.FieldError{Field: "X-Device-ID", Message: "This header is required"})
	}
	return deviceID, nil
}
