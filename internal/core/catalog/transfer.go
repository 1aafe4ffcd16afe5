// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/gamecodex/internal/platform/apperr"
)

// # Document Formats

// Format is the serialization of an exported overlay document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MaxImportEntries bounds the number of guides accepted from one document.
const MaxImportEntries = 500

// ParseFormat maps a user-supplied format name to a [Format]. Empty means JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", apperr.ValidationError("Unsupported document format",
		apperr.FieldError{Field: "format", Message: "Must be json or yaml"})
}

// ContentType returns the MIME type of documents in this format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Extension returns the file extension of documents in this format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// # Export

/*
Export serializes overlay guides into a document with the same shape as the
base Guides file ({"guides": [...]}).
*/
func Export(guides []Guide, format Format) ([]byte, error) {
	if guides == nil {
		guides = []Guide{}
	}
	document := guideDocument{Guides: guides}

	switch format {
	case FormatYAML:
		var buffer bytes.Buffer
		encoder := yaml.NewEncoder(&buffer)
		encoder.SetIndent(2)
		if err := encoder.Encode(document); err != nil {
			return nil, fmt.Errorf("catalog: encode yaml export: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("catalog: encode yaml export: %w", err)
		}
		return buffer.Bytes(), nil
	default:
		raw, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("catalog: encode json export: %w", err)
		}
		return raw, nil
	}
}

// # Import

// SkippedEntry describes a document entry that was not imported.
type SkippedEntry struct {
	Index  int    `json:"index"`
	Title  string `json:"title,omitempty"`
	Reason string `json:"reason"`
}

// ImportReport is the outcome of parsing an import document.
type ImportReport struct {
	Guides  []Guide        `json:"guides"`
	Skipped []SkippedEntry `json:"skipped"`
}

// importDocument distinguishes an absent "guides" key from an empty list.
type importDocument struct {
	Guides *[]Guide `json:"guides" yaml:"guides"`
}

var errNoGuideList = errors.New(`document has no "guides" list`)

/*
Import parses an exported document.

Description: Both the {"guides": [...]} document and a bare list are accepted.
Entries that fail [ValidateGuide] are reported in Skipped; the rest are
returned ready for [Overlay.AppendAll], which assigns fresh ids. Any id in the
document is discarded.

Returns:
  - ImportReport: Valid guides and skipped entries
  - error: apperr.ValidationError when the document itself cannot be read
*/
func Import(raw []byte, format Format) (ImportReport, error) {
	guides, err := decodeImport(raw, format)
	if err != nil {
		return ImportReport{}, apperr.ValidationError("Import document is malformed",
			apperr.FieldError{Field: "document", Message: err.Error()})
	}
	if len(guides) > MaxImportEntries {
		return ImportReport{}, apperr.ValidationError("Import document is too large",
			apperr.FieldError{Field: "guides", Message: fmt.Sprintf("At most %d entries per import", MaxImportEntries)})
	}

	report := ImportReport{Guides: []Guide{}, Skipped: []SkippedEntry{}}
	for index, guide := range guides {
		if err := ValidateGuide(guide); err != nil {
			report.Skipped = append(report.Skipped, SkippedEntry{
				Index:  index,
				Title:  guide.Title,
				Reason: describeValidation(err),
			})
			continue
		}
		guide.ID = ""
		guide.UserContent = true
		report.Guides = append(report.Guides, guide)
	}
	return report, nil
}

func decodeImport(raw []byte, format Format) ([]Guide, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("document is empty")
	}

	var document importDocument
	documentErr := decodeDocument(raw, format, &document)
	if documentErr == nil && document.Guides != nil {
		return *document.Guides, nil
	}

	var list []Guide
	if err := decodeDocument(raw, format, &list); err == nil {
		return list, nil
	}

	if documentErr != nil {
		return nil, documentErr
	}
	return nil, errNoGuideList
}

func describeValidation(err error) string {
	appErr := apperr.As(err)
	if appErr == nil || len(appErr.Details) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		parts = append(parts, detail.Field+": "+detail.Message)
	}
	return strings.Join(parts, "; ")
}
