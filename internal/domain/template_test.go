/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNewSlideFieldGating(t *testing.T) {
	cases := []struct {
		template Template
		want     FieldSet
	}{
		{TemplateThumbnail, FieldSet{Title: true}},
		{TemplateTitle, FieldSet{Title: true, Text: true, Image: true}},
		{TemplateContent, FieldSet{Title: true, Subtitle: true, Text: true}},
		{TemplateSteps, FieldSet{Title: true, Steps: true}},
	}
	for _, tc := range cases {
		t.Run(string(tc.template), func(t *testing.T) {
			fs, err := Fields(tc.template)
			if err != nil {
				t.Fatalf("Fields(%s): %v", tc.template, err)
			}
			if fs != tc.want {
				t.Fatalf("field set mismatch: got %+v want %+v", fs, tc.want)
			}
			s, err := NewSlide(tc.template)
			if err != nil {
				t.Fatalf("NewSlide(%s): %v", tc.template, err)
			}
			if s.ID == "" {
				t.Fatalf("slide id is empty")
			}
			if s.Template != tc.template {
				t.Fatalf("template mismatch: got %q", s.Template)
			}
			// Non-applicable fields must stay empty on a fresh slide.
			if !fs.Steps && len(s.Content.Steps) != 0 {
				t.Fatalf("%s slide seeded steps: %+v", tc.template, s.Content.Steps)
			}
			if s.Content.Title != "" || s.Content.Subtitle != "" || s.Content.Text != "" || s.Content.Image != "" {
				t.Fatalf("fresh %s slide has populated text fields: %+v", tc.template, s.Content)
			}
		})
	}
}

func TestNewSlideSeedsCenteredFocalPoint(t *testing.T) {
	for _, tpl := range Templates() {
		s, err := NewSlide(tpl)
		if err != nil {
			t.Fatalf("NewSlide(%s): %v", tpl, err)
		}
		pos := s.Content.ImagePosition
		if pos == nil || pos.X != 50 || pos.Y != 50 {
			t.Fatalf("%s slide focal point not centered: %+v", tpl, pos)
		}
	}
}

func TestNewStepsSlideSeedsThreePlaceholders(t *testing.T) {
	s, err := NewSlide(TemplateSteps)
	if err != nil {
		t.Fatalf("NewSlide(steps): %v", err)
	}
	if len(s.Content.Steps) != MaxSteps {
		t.Fatalf("steps slide seeded %d steps, want %d", len(s.Content.Steps), MaxSteps)
	}
	for i, st := range s.Content.Steps {
		want := fmt.Sprintf("Step %d", i+1)
		if st.Subtitle != want {
			t.Fatalf("step %d subtitle = %q, want %q", i, st.Subtitle, want)
		}
		if st.Text != "" {
			t.Fatalf("step %d text not empty: %q", i, st.Text)
		}
	}
}

func TestNewSlideUnknownTemplate(t *testing.T) {
	_, err := NewSlide(Template("quiz"))
	var ute *ErrUnknownTemplate
	if !errors.As(err, &ute) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if ute.Template != "quiz" {
		t.Fatalf("error carries template %q", ute.Template)
	}
}

func TestNewSlideIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := NewSlide(TemplateTitle)
		if err != nil {
			t.Fatalf("NewSlide: %v", err)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate slide id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestPresentationJSONRoundTrip(t *testing.T) {
	p := NewPresentation()
	for _, tpl := range Templates() {
		s, err := NewSlide(tpl)
		if err != nil {
			t.Fatalf("NewSlide(%s): %v", tpl, err)
		}
		p.Slides = AppendSlide(p.Slides, s)
	}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Presentation
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != p.ID || got.Title != p.Title {
		t.Fatalf("metadata mismatch: got %q/%q", got.ID, got.Title)
	}
	if len(got.Slides) != len(p.Slides) {
		t.Fatalf("slide count mismatch: got %d want %d", len(got.Slides), len(p.Slides))
	}
	for i := range got.Slides {
		if got.Slides[i].ID != p.Slides[i].ID || got.Slides[i].Template != p.Slides[i].Template {
			t.Fatalf("slide %d mismatch: %+v vs %+v", i, got.Slides[i], p.Slides[i])
		}
	}
}
