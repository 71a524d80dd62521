/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"godeckwriter/internal/domain"
)

// The JSON wire format is the only persistence/exchange format: the deck
// manifest, the export file and the import payload all share it. Import is
// all-or-nothing; a payload that fails validation leaves the caller's deck
// untouched.

//go:embed deck.schema.json
var deckSchemaJSON []byte

// ErrInvalidManifest marks any import rejection: invalid JSON syntax, a
// top-level shape without slides, a slide entry missing id or template, an
// unknown template, or duplicate slide ids.
var ErrInvalidManifest = errors.New("invalid deck manifest")

// ImportPresentation parses and validates a deck manifest. On success the
// returned presentation is normalized: every slide carries a focal point
// (clamped to range) so later image edits never meet a missing position.
func ImportPresentation(data []byte) (domain.Presentation, error) {
	if !json.Valid(data) {
		return domain.Presentation{}, fmt.Errorf("%w: malformed JSON", ErrInvalidManifest)
	}

	schemaLoader := gojsonschema.NewBytesLoader(deckSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.Presentation{}, fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(msgs, "; "))
	}

	var p domain.Presentation
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Presentation{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	seen := make(map[string]bool, len(p.Slides))
	for i := range p.Slides {
		s := &p.Slides[i]
		if seen[s.ID] {
			return domain.Presentation{}, fmt.Errorf("%w: duplicate slide id %q", ErrInvalidManifest, s.ID)
		}
		seen[s.ID] = true
		if !domain.KnownTemplate(s.Template) {
			return domain.Presentation{}, fmt.Errorf("%w: unknown template %q", ErrInvalidManifest, s.Template)
		}
		normalizeContent(&s.Content)
	}
	if p.Slides == nil {
		p.Slides = []domain.Slide{}
	}
	return p, nil
}

// ExportPresentation serializes a deck to the wire format, pretty-printed
// for a human-readable manifest.
func ExportPresentation(p domain.Presentation) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func normalizeContent(c *domain.Content) {
	if c.ImagePosition == nil {
		c.ImagePosition = domain.Centered()
		return
	}
	c.ImagePosition.X = clampPct(c.ImagePosition.X)
	c.ImagePosition.Y = clampPct(c.ImagePosition.Y)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
