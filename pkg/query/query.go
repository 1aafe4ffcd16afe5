// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses multi-valued filter parameters from URL query strings.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values collects a facet selection sent either as repeated parameters
// (?npc=Grimbold, the Smith&npc=Marta) or as one comma-separated parameter
// (?class=Mage,Rogue). Repeated values are kept whole so names containing a
// comma survive; only a lone value is split. Facet values are case-sensitive,
// so no normalisation beyond trimming happens.
func Values(vals []string) []string {
	if len(vals) == 1 {
		return StringSlice(vals[0])
	}
	var res []string
	for _, v := range vals {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
