/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Content schema: which fields each template carries and how a fresh slide
// of that template is seeded. The gallery order below is also the order the
// UI offers templates in.

// ErrUnknownTemplate reports a template outside the fixed set. Slides
// carrying one must not be rendered or persisted.
type ErrUnknownTemplate struct {
	Template Template
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown slide template %q", string(e.Template))
}

// FieldSet describes which content fields a template carries.
type FieldSet struct {
	Title    bool
	Subtitle bool
	Text     bool
	Image    bool
	Steps    bool
}

var templateFields = map[Template]FieldSet{
	TemplateThumbnail: {Title: true},
	TemplateTitle:     {Title: true, Text: true, Image: true},
	TemplateContent:   {Title: true, Subtitle: true, Text: true},
	TemplateSteps:     {Title: true, Steps: true},
}

// Templates lists the known templates in gallery order.
func Templates() []Template {
	return []Template{TemplateTitle, TemplateContent, TemplateSteps, TemplateThumbnail}
}

// KnownTemplate reports whether t is one of the fixed template set.
func KnownTemplate(t Template) bool {
	_, ok := templateFields[t]
	return ok
}

// Fields returns the applicable content fields for a template.
func Fields(t Template) (FieldSet, error) {
	fs, ok := templateFields[t]
	if !ok {
		return FieldSet{}, &ErrUnknownTemplate{Template: t}
	}
	return fs, nil
}

// DefaultContent returns the seeded content for a fresh slide of the given
// template. Every template gets a centered focal point up front so adding
// an image later never starts from a missing position. The steps template
// seeds the maximum of three placeholder steps so the editor never shows an
// empty steps slide.
func DefaultContent(t Template) (Content, error) {
	if !KnownTemplate(t) {
		return Content{}, &ErrUnknownTemplate{Template: t}
	}
	c := Content{ImagePosition: Centered()}
	if t == TemplateSteps {
		c.Steps = make([]Step, 0, MaxSteps)
		for i := 1; i <= MaxSteps; i++ {
			c.Steps = append(c.Steps, Step{Subtitle: fmt.Sprintf("Step %d", i)})
		}
	}
	return c, nil
}

// NewSlide creates a slide of the given template with a fresh unique id and
// the template's default content.
func NewSlide(t Template) (Slide, error) {
	c, err := DefaultContent(t)
	if err != nil {
		return Slide{}, err
	}
	return Slide{ID: uuid.NewString(), Template: t, Content: c}, nil
}

// NewPresentation creates an empty untitled deck with a fresh id.
func NewPresentation() Presentation {
	return Presentation{
		ID:     uuid.NewString(),
		Title:  "Untitled Presentation",
		Slides: []Slide{},
	}
}
