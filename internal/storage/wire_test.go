/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"errors"
	"strings"
	"testing"

	"godeckwriter/internal/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	p := testDeck(t)
	data, err := ExportPresentation(p)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Fatalf("export not newline-terminated")
	}

	got, err := ImportPresentation(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.ID != p.ID || got.Title != p.Title || len(got.Slides) != len(p.Slides) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestImportAcceptsOmittedAndEmptyFields(t *testing.T) {
	payload := `{
	  "id": "deck-1",
	  "title": "Minimal",
	  "slides": [
	    {"id": "s1", "template": "thumbnail", "content": {}},
	    {"id": "s2", "template": "content", "content": {"title": "", "subtitle": "sub"}},
	    {"id": "s3", "template": "title"}
	  ]
	}`
	got, err := ImportPresentation([]byte(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got.Slides) != 3 {
		t.Fatalf("slide count = %d", len(got.Slides))
	}
	// Normalization seeds a centered focal point everywhere.
	for i, s := range got.Slides {
		pos := s.Content.ImagePosition
		if pos == nil || pos.X != 50 || pos.Y != 50 {
			t.Fatalf("slide %d focal point not normalized: %+v", i, pos)
		}
	}
}

func TestImportClampsFocalPoint(t *testing.T) {
	payload := `{
	  "slides": [
	    {"id": "s1", "template": "title", "content": {"imagePosition": {"x": 180, "y": -4}}}
	  ]
	}`
	got, err := ImportPresentation([]byte(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	pos := got.Slides[0].Content.ImagePosition
	if pos.X != 100 || pos.Y != 0 {
		t.Fatalf("focal point not clamped: %+v", pos)
	}
}

func TestImportRejections(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"malformed JSON", `{ "slides": [ `},
		{"missing slides", `{"id": "x", "title": "no slides"}`},
		{"slide missing id", `{"slides": [{"template": "title"}]}`},
		{"slide missing template", `{"slides": [{"id": "s1"}]}`},
		{"unknown template", `{"slides": [{"id": "s1", "template": "quiz"}]}`},
		{"too many steps", `{"slides": [{"id": "s1", "template": "steps", "content": {"steps": [{},{},{},{}]}}]}`},
		{"duplicate ids", `{"slides": [{"id": "s1", "template": "title"}, {"id": "s1", "template": "content"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportPresentation([]byte(tc.payload))
			if !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("expected ErrInvalidManifest, got %v", err)
			}
		})
	}
}

// Import failure must leave the caller's deck untouched; the all-or-nothing
// contract falls out of returning a fresh value, but pin it anyway.
func TestImportAllOrNothing(t *testing.T) {
	current := testDeck(t)
	before, err := ExportPresentation(current)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if _, err := ImportPresentation([]byte(`not json at all`)); err == nil {
		t.Fatalf("malformed payload imported")
	}

	after, err := ExportPresentation(current)
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("current deck changed across failed import")
	}
}

func TestManifestConformsToSchema(t *testing.T) {
	// Export of any valid in-memory deck must import cleanly, i.e. the
	// writer and the schema agree.
	p := testDeck(t)
	s, err := domain.NewSlide(domain.TemplateTitle)
	if err != nil {
		t.Fatalf("NewSlide: %v", err)
	}
	s, err = domain.UpdateField(s, domain.FieldImage, "assets/cover.png")
	if err != nil {
		t.Fatalf("set image: %v", err)
	}
	p.Slides = domain.AppendSlide(p.Slides, s)

	data, err := ExportPresentation(p)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := ImportPresentation(data); err != nil {
		t.Fatalf("exported manifest rejected by schema: %v", err)
	}
}
