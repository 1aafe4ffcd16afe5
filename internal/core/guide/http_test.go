// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/guide"
	"github.com/taibuivan/gamecodex/internal/platform/ctxutil"
)

func withDevice(deviceID string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		next.ServeHTTP(writer, request.WithContext(ctxutil.WithDevice(request.Context(), deviceID)))
	})
}

func do(handler http.Handler, method, target, body, contentType string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_CreateExportImportYAML(t *testing.T) {
	routes := withDevice("dev", guide.NewHandler(newService(t), 50).Routes())

	recorder := do(routes, http.MethodPost, "/", `{"title": "Berserker", "characterClass": "Warrior"}`, "application/json")
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(routes, http.MethodGet, "/export?format=yaml", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/yaml", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "guides.yaml")
	document := recorder.Body.String()
	assert.Contains(t, document, "title: Berserker")

	recorder = do(routes, http.MethodPost, "/import", document, "application/yaml")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"skipped":[]`)

	recorder = do(routes, http.MethodGet, "/?user_only=true", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":2`)
}

func TestHandler_ImportMalformed(t *testing.T) {
	routes := withDevice("dev", guide.NewHandler(newService(t), 50).Routes())

	recorder := do(routes, http.MethodPost, "/import", `not json`, "application/json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_UpdateBaseGuideForbidden(t *testing.T) {
	routes := withDevice("dev", guide.NewHandler(newService(t), 50).Routes())

	recorder := do(routes, http.MethodPut, "/g1", `{"title": "x"}`, "application/json")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_LinksAndUnknownSort(t *testing.T) {
	routes := guide.NewHandler(newService(t), 50).Routes()

	recorder := do(routes, http.MethodGet, "/g1/links", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"search_hint":"/items?search=Tower+Shield"`)

	recorder = do(routes, http.MethodGet, "/?sort=level", "", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
