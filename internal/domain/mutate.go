/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"errors"
	"fmt"
)

// Slide mutation: every mutation takes a slide value and returns a new
// slide value; the input is never modified. Callers replace the slide at
// its index in the deck. Mutations that violate a template constraint
// return the input unchanged together with a typed error.

// Field names a content field addressable by the editor.
type Field string

const (
	FieldTitle         Field = "title"
	FieldSubtitle      Field = "subtitle"
	FieldText          Field = "text"
	FieldImage         Field = "image"
	FieldImagePosition Field = "imagePosition"
	FieldSteps         Field = "steps"
)

// ErrStepLimit is reported when a steps slide already holds MaxSteps steps.
var ErrStepLimit = errors.New("a steps slide holds at most 3 steps")

// ErrFieldNotApplicable reports an edit of a field the slide's template
// does not carry.
type ErrFieldNotApplicable struct {
	Field    Field
	Template Template
}

func (e *ErrFieldNotApplicable) Error() string {
	return fmt.Sprintf("field %q does not apply to template %q", string(e.Field), string(e.Template))
}

// UpdateField returns a copy of the slide with the given content field set.
// Type and template-applicability of the value are checked; on any error
// the input slide is returned unchanged.
//
// Two fields are special-cased:
//   - image: clearing the image (empty string) also resets the focal point
//     to center in the same update, so no stale position survives the image.
//   - imagePosition: coordinates are clamped to [0,100], never rejected.
func UpdateField(s Slide, f Field, value any) (Slide, error) {
	fs, err := Fields(s.Template)
	if err != nil {
		return s, err
	}

	out := s.Clone()
	switch f {
	case FieldTitle, FieldSubtitle, FieldText, FieldImage:
		str, ok := value.(string)
		if !ok {
			return s, fmt.Errorf("field %q expects a string, got %T", string(f), value)
		}
		switch f {
		case FieldTitle:
			if !fs.Title {
				return s, &ErrFieldNotApplicable{Field: f, Template: s.Template}
			}
			out.Content.Title = str
		case FieldSubtitle:
			if !fs.Subtitle {
				return s, &ErrFieldNotApplicable{Field: f, Template: s.Template}
			}
			out.Content.Subtitle = str
		case FieldText:
			if !fs.Text {
				return s, &ErrFieldNotApplicable{Field: f, Template: s.Template}
			}
			out.Content.Text = str
		case FieldImage:
			if !fs.Image {
				return s, &ErrFieldNotApplicable{Field: f, Template: s.Template}
			}
			out.Content.Image = str
			if str == "" {
				out.Content.ImagePosition = Centered()
			}
		}
	case FieldImagePosition:
		if !fs.Image {
			return s, &ErrFieldNotApplicable{Field: f, Template: s.Template}
		}
		var pos ImagePosition
		switch v := value.(type) {
		case ImagePosition:
			pos = v
		case *ImagePosition:
			if v == nil {
				return s, fmt.Errorf("field %q expects a position, got nil", string(f))
			}
			pos = *v
		default:
			return s, fmt.Errorf("field %q expects a position, got %T", string(f), value)
		}
		out.Content.ImagePosition = &ImagePosition{
			X: clamp(pos.X, 0, 100),
			Y: clamp(pos.Y, 0, 100),
		}
	case FieldSteps:
		if !fs.Steps {
			return s, &ErrFieldNotApplicable{Field: f, Template: s.Template}
		}
		steps, ok := value.([]Step)
		if !ok {
			return s, fmt.Errorf("field %q expects steps, got %T", string(f), value)
		}
		if len(steps) > MaxSteps {
			return s, ErrStepLimit
		}
		out.Content.Steps = append([]Step(nil), steps...)
	default:
		return s, fmt.Errorf("unknown content field %q", string(f))
	}
	return out, nil
}

// UpdateStepField replaces one field of the step at index. An index outside
// the current steps is a no-op; a stale editor reference racing a deletion
// must never take the deck down.
func UpdateStepField(s Slide, index int, f Field, value string) (Slide, error) {
	fs, err := Fields(s.Template)
	if err != nil {
		return s, err
	}
	if !fs.Steps {
		return s, &ErrFieldNotApplicable{Field: FieldSteps, Template: s.Template}
	}
	if index < 0 || index >= len(s.Content.Steps) {
		return s, nil
	}
	out := s.Clone()
	switch f {
	case FieldSubtitle:
		out.Content.Steps[index].Subtitle = value
	case FieldText:
		out.Content.Steps[index].Text = value
	default:
		return s, fmt.Errorf("step field must be subtitle or text, got %q", string(f))
	}
	return out, nil
}

// AddStep appends an empty step. At MaxSteps the slide is returned
// unchanged with ErrStepLimit so the UI can surface the rejection.
func AddStep(s Slide) (Slide, error) {
	fs, err := Fields(s.Template)
	if err != nil {
		return s, err
	}
	if !fs.Steps {
		return s, &ErrFieldNotApplicable{Field: FieldSteps, Template: s.Template}
	}
	if len(s.Content.Steps) >= MaxSteps {
		return s, ErrStepLimit
	}
	out := s.Clone()
	out.Content.Steps = append(out.Content.Steps, Step{})
	return out, nil
}

// RemoveStep removes the step at index, shifting later steps down.
// Out-of-bounds indexes are a no-op.
func RemoveStep(s Slide, index int) Slide {
	if index < 0 || index >= len(s.Content.Steps) {
		return s
	}
	out := s.Clone()
	out.Content.Steps = append(out.Content.Steps[:index], out.Content.Steps[index+1:]...)
	return out
}

// FocalPointFromClick maps a click at offset (dx,dy) within a rendered
// image box of size w×h to percentage focal-point coordinates. A
// degenerate box yields the center.
func FocalPointFromClick(dx, dy, w, h float64) ImagePosition {
	if w <= 0 || h <= 0 {
		return *Centered()
	}
	return ImagePosition{
		X: clamp(dx/w*100, 0, 100),
		Y: clamp(dy/h*100, 0, 100),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
