// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package viewstate maps the open detail view of a browser page to and from a
shareable address.

The address carries at most one view-state token: a query parameter holding
the id of the open entity. Reading or writing the token never disturbs the
other query parameters of the address.
*/
package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// # Token Parameters

const (
	// QuestParam is the token parameter of the quest browser.
	QuestParam = "quest"

	// GuideParam is the token parameter of the guide browser.
	GuideParam = "guide"
)

// ErrInvalidAddress is returned for addresses that cannot be parsed.
var ErrInvalidAddress = errors.New("viewstate: invalid address")

// Synchronizer reads and writes one token parameter on addresses of one page.
type Synchronizer struct {
	// Param is the query parameter holding the entity id.
	Param string

	// Origin is the scheme and host of shared links, e.g. "https://codex.example".
	Origin string

	// Path is the page path of shared links, e.g. "/quests".
	Path string
}

// New creates a [Synchronizer] for the page at origin + path.
func New(param, origin, path string) *Synchronizer {
	return &Synchronizer{
		Param:  param,
		Origin: strings.TrimRight(origin, "/"),
		Path:   "/" + strings.TrimLeft(path, "/"),
	}
}

/*
Restore reads the token of address once at mount.

Description: The id is only returned when exists confirms it belongs to the
live collection; the caller then opens the detail view directly. A missing,
empty or unknown token yields ok=false and the list view.

Returns:
  - string: Entity id
  - bool: Whether the detail view should open
*/
func (s *Synchronizer) Restore(address string, exists func(id string) bool) (string, bool) {
	parsed, err := url.Parse(address)
	if err != nil {
		return "", false
	}

	id := ""
	for _, segment := range strings.Split(parsed.RawQuery, "&") {
		if key, value := splitSegment(segment); key == s.Param {
			id = strings.TrimSpace(value)
			break
		}
	}
	if id == "" || !exists(id) {
		return "", false
	}
	return id, true
}

// Publish writes id as the token of address. The first token segment is
// replaced in place, later duplicates are dropped, and the token is appended
// when absent. Every other segment is kept byte for byte.
func (s *Synchronizer) Publish(address, id string) (string, error) {
	token := url.QueryEscape(s.Param) + "=" + url.QueryEscape(id)
	return s.rewrite(address, token)
}

// Clear removes the token from address, keeping every other segment byte for byte.
func (s *Synchronizer) Clear(address string) (string, error) {
	return s.rewrite(address, "")
}

// rewrite edits the raw query of address segment by segment. An empty token
// removes the parameter.
func (s *Synchronizer) rewrite(address, token string) (string, error) {
	parsed, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	var segments []string
	written := false
	if parsed.RawQuery != "" {
		for _, segment := range strings.Split(parsed.RawQuery, "&") {
			if key, _ := splitSegment(segment); key == s.Param {
				if token != "" && !written {
					segments = append(segments, token)
					written = true
				}
				continue
			}
			segments = append(segments, segment)
		}
	}
	if token != "" && !written {
		segments = append(segments, token)
	}

	parsed.RawQuery = strings.Join(segments, "&")
	return parsed.String(), nil
}

// splitSegment decodes the key and value of one raw query segment. Segments
// that fail to decode keep their raw text.
func splitSegment(segment string) (key, value string) {
	rawKey, rawValue, _ := strings.Cut(segment, "=")
	key, err := url.QueryUnescape(rawKey)
	if err != nil {
		key = rawKey
	}
	value, err = url.QueryUnescape(rawValue)
	if err != nil {
		value = rawValue
	}
	return key, value
}

// ShareURL builds the self-contained address of id: origin, path and the
// token only, whatever else the current address carries.
func (s *Synchronizer) ShareURL(id string) string {
	query := url.Values{}
	query.Set(s.Param, id)
	return s.Origin + s.Path + "?" + query.Encode()
}

// # Sharing

// Clipboard copies text for the user. Implementations may be unavailable.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// ShareResult is the outcome of a share action. URL is always set so the
// address can be shown for manual copying when Copied is false.
type ShareResult struct {
	URL    string `json:"url"`
	Copied bool   `json:"copied"`
	Reason string `json:"reason,omitempty"`
}

/*
Share builds the address of id and tries to copy it once.

Description: The copy is best effort with no retry. A nil clipboard or a copy
failure still returns the address with Copied=false.
*/
func (s *Synchronizer) Share(ctx context.Context, id string, clipboard Clipboard, logger *slog.Logger) ShareResult {
	result := ShareResult{URL: s.ShareURL(id)}

	if clipboard == nil {
		result.Reason = ErrClipboardUnavailable.Error()
		return result
	}

	if err := clipboard.Copy(ctx, result.URL); err != nil {
		logger.InfoContext(ctx, "share_copy_failed",
			slog.String("param", s.Param),
			slog.Any("error", err),
		)
		result.Reason = err.Error()
		return result
	}

	result.Copied = true
	return result
}
