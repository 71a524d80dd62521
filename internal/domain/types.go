/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the core data model for Go Deck Writer: a presentation
// is an ordered deck of typed slides. The model serializes to a
// human-readable JSON manifest; field presence in Content depends on the
// slide's template.

// Template is the fixed content-shape tag of a slide.
type Template string

const (
	TemplateTitle     Template = "title"
	TemplateContent   Template = "content"
	TemplateSteps     Template = "steps"
	TemplateThumbnail Template = "thumbnail"
)

// MaxSteps bounds the steps sequence of a steps slide.
const MaxSteps = 3

// Presentation is a deck: ordered slides plus deck-level metadata.
// Slide order is presentation order; slide ids are unique within a deck.
type Presentation struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Slide is one slide in a deck. ID and Template are immutable after
// creation; changing template means creating a new slide.
type Slide struct {
	ID       string   `json:"id"`
	Template Template `json:"template"`
	Content  Content  `json:"content"`
}

// Content holds the per-template fields of a slide. Fields that do not
// apply to the slide's template stay empty and are omitted from JSON.
type Content struct {
	Title         string         `json:"title,omitempty"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Text          string         `json:"text,omitempty"`
	Image         string         `json:"image,omitempty"`
	ImagePosition *ImagePosition `json:"imagePosition,omitempty"`
	Steps         []Step         `json:"steps,omitempty"`
}

// ImagePosition is the focal point of a slide image in percentage
// coordinates, each in [0,100]. {50,50} is the center.
type ImagePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Centered returns the default focal point.
func Centered() *ImagePosition { return &ImagePosition{X: 50, Y: 50} }

// Step is one entry of a steps slide.
type Step struct {
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"`
}

// Clone returns a deep copy of the slide so edits never leak into the
// original through the steps slice or the focal-point pointer.
func (s Slide) Clone() Slide {
	out := s
	if s.Content.ImagePosition != nil {
		p := *s.Content.ImagePosition
		out.Content.ImagePosition = &p
	}
	if s.Content.Steps != nil {
		out.Content.Steps = append([]Step(nil), s.Content.Steps...)
	}
	return out
}

// Clone returns a deep copy of the presentation.
func (p Presentation) Clone() Presentation {
	out := p
	if p.Slides != nil {
		out.Slides = make([]Slide, len(p.Slides))
		for i, s := range p.Slides {
			out.Slides[i] = s.Clone()
		}
	}
	return out
}

// SlideIndex returns the index of the slide with the given id, or -1.
func (p Presentation) SlideIndex(id string) int {
	for i, s := range p.Slides {
		if s.ID == id {
			return i
		}
	}
	return -1
}
