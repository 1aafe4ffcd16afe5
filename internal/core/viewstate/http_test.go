// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package viewstate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gamecodex/internal/core/viewstate"
)

func newHandler() http.Handler {
	return viewstate.NewHandler(map[string]viewstate.Page{
		"quests": {
			Sync:   newSync(),
			Exists: func(_ context.Context, _ string, id string) bool { return live[id] },
		},
	}).Routes()
}

func post(handler http.Handler, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return recorder
}

func TestHandler_PublishClearShare(t *testing.T) {
	handler := newHandler()

	recorder := post(handler, "/publish", `{"page":"quests","address":"/quests?sort=gold","id":"42"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"address":"/quests?sort=gold&quest=42"}}`, recorder.Body.String())

	recorder = post(handler, "/clear", `{"page":"quests","address":"/quests?quest=42&sort=gold"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"address":"/quests?sort=gold"}}`, recorder.Body.String())

	recorder = post(handler, "/share", `{"page":"quests","id":"42"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data viewstate.ShareResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "https://codex.example/quests?quest=42", body.Data.URL)
	assert.False(t, body.Data.Copied)
}

func TestHandler_Rejections(t *testing.T) {
	handler := newHandler()

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"unknown_page", "/share", `{"page":"maps","id":"42"}`, http.StatusBadRequest},
		{"unknown_id", "/publish", `{"page":"quests","address":"/quests","id":"999"}`, http.StatusNotFound},
		{"missing_address", "/clear", `{"page":"quests"}`, http.StatusBadRequest},
		{"bad_json", "/share", `{`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, post(handler, tc.target, tc.body).Code)
		})
	}
}
