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
	"strings"
)

// Deck ordering: all operations take an ordered slide slice and return a
// new slice; inputs are never modified. Drag-and-drop layers hand either a
// (from,to) index pair to MoveSlide or a full id permutation to
// ReorderByIDSequence.

// MoveSlide removes the slide at from and reinserts it at to, with
// splice-remove-then-insert index semantics. Equal or out-of-bounds
// indexes are a no-op.
func MoveSlide(slides []Slide, from, to int) []Slide {
	n := len(slides)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return slides
	}
	out := append([]Slide(nil), slides...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Slide{moved}, out[to:]...)...)
	return out
}

// AppendSlide inserts the slide at the end of the deck; the template
// gallery's only insertion point.
func AppendSlide(slides []Slide, s Slide) []Slide {
	out := make([]Slide, 0, len(slides)+1)
	out = append(out, slides...)
	return append(out, s)
}

// RemoveSlide filters out the slide with the given id and recomputes the
// selection: removing the selected slide falls back to the first remaining
// slide, or to no selection ("") when the deck is empty afterwards.
func RemoveSlide(slides []Slide, id, selectedID string) (out []Slide, newSelected string) {
	out = make([]Slide, 0, len(slides))
	removed := false
	for _, s := range slides {
		if s.ID == id {
			removed = true
			continue
		}
		out = append(out, s)
	}
	newSelected = selectedID
	if removed && selectedID == id {
		newSelected = ""
		if len(out) > 0 {
			newSelected = out[0].ID
		}
	}
	return out, newSelected
}

// ResetSlides empties the deck and drops the selection. The "start over"
// action: the presentation keeps its id and title and gets an empty slide
// list.
func ResetSlides(p Presentation) (out Presentation, newSelected string) {
	out = p
	out.Slides = []Slide{}
	return out, ""
}

// ReorderIntegrityError reports an id permutation that does not match the
// deck: ids it misses, ids the deck does not contain, and ids it repeats.
// Drag-and-drop libraries delivering stale or partial lists trip this
// instead of silently dropping or duplicating slides.
type ReorderIntegrityError struct {
	Missing    []string
	Unknown    []string
	Duplicated []string
}

func (e *ReorderIntegrityError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing ids %v", e.Missing))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown ids %v", e.Unknown))
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, fmt.Sprintf("duplicated ids %v", e.Duplicated))
	}
	if len(parts) == 0 {
		return "reorder id sequence does not match deck"
	}
	return "reorder id sequence does not match deck: " + strings.Join(parts, "; ")
}

// ReorderByIDSequence produces the slides in the order given by orderedIDs,
// which must be a full permutation of the deck's ids. On any mismatch it
// returns nil and a *ReorderIntegrityError; the caller keeps the deck
// unchanged.
func ReorderByIDSequence(slides []Slide, orderedIDs []string) ([]Slide, error) {
	byID := make(map[string]Slide, len(slides))
	for _, s := range slides {
		byID[s.ID] = s
	}

	var ierr ReorderIntegrityError
	seen := make(map[string]bool, len(orderedIDs))
	out := make([]Slide, 0, len(slides))
	for _, id := range orderedIDs {
		if seen[id] {
			ierr.Duplicated = append(ierr.Duplicated, id)
			continue
		}
		seen[id] = true
		s, ok := byID[id]
		if !ok {
			ierr.Unknown = append(ierr.Unknown, id)
			continue
		}
		out = append(out, s)
	}
	for _, s := range slides {
		if !seen[s.ID] {
			ierr.Missing = append(ierr.Missing, s.ID)
		}
	}
	if len(ierr.Missing) > 0 || len(ierr.Unknown) > 0 || len(ierr.Duplicated) > 0 {
		return nil, &ierr
	}
	return out, nil
}
