// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"net/url"
	"strings"

	"github.com/taibuivan/gamecodex/pkg/convert"
	"github.com/taibuivan/gamecodex/pkg/query"
)

// # Query Parameters

const (
	ParamSearch          = "q"
	ParamMin             = "min_level"
	ParamMax             = "max_level"
	ParamHideChain       = "hide_chain"
	ParamHideCompleted   = "hide_completed"
	ParamUserContentOnly = "user_only"
	ParamSort            = "sort"
)

/*
FromQuery reads criteria from list query parameters.

Description: facetParams maps a query parameter to a facet name. Facet values
may be repeated (?class=Mage&class=Rogue) or sent once comma separated
(?class=Mage,Rogue). Repeated values are never split, so a value containing a
comma must be sent as a repeated parameter.
A range bound that is missing or invalid keeps its default.

Parameters:
  - values: url.Values
  - facetParams: map[string]string (query parameter -> facet name)
  - defaultSort: string (used when sort is absent)
*/
func FromQuery(values url.Values, facetParams map[string]string, defaultSort string) Criteria {
	criteria := Criteria{
		Search:          strings.TrimSpace(values.Get(ParamSearch)),
		Selected:        make(map[string][]string, len(facetParams)),
		HideChain:       convert.ToBool(values.Get(ParamHideChain)),
		HideCompleted:   convert.ToBool(values.Get(ParamHideCompleted)),
		UserContentOnly: convert.ToBool(values.Get(ParamUserContentOnly)),
		Sort:            defaultSort,
	}

	if sort := strings.TrimSpace(values.Get(ParamSort)); sort != "" {
		criteria.Sort = sort
	}

	for param, name := range facetParams {
		if selected := query.Values(values[param]); len(selected) > 0 {
			criteria.Selected[name] = selected
		}
	}

	if values.Has(ParamMin) || values.Has(ParamMax) {
		r := Range{
			Min: convert.ToIntD(values.Get(ParamMin), DefaultMin),
			Max: convert.ToIntD(values.Get(ParamMax), DefaultMax),
		}
		criteria.Range = &r
	}

	return criteria
}
