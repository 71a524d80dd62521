/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package player

import "time"

// DefaultDoubleTapWindow is the maximum gap between two presses of the
// same key for them to count as one double-tap.
const DefaultDoubleTapWindow = 500 * time.Millisecond

// DoubleTap detects two discrete presses of the same key within a timing
// window. Each semantic binding (double-space opens the gallery,
// double-alt toggles fullscreen, double-shift toggles recording) owns its
// own detector so the windows never cross-satisfy.
//
// The timestamp is remembered after every genuine press, not only after a
// trigger, so three quick presses fire twice: press two triggers against
// press one, press three against press two.
type DoubleTap struct {
	window time.Duration
	last   time.Time
	armed  bool
}

// NewDoubleTap builds a detector; a non-positive window selects
// DefaultDoubleTapWindow.
func NewDoubleTap(window time.Duration) *DoubleTap {
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}
	return &DoubleTap{window: window}
}

// Press records a key-down at now and reports whether it completes a
// double-tap. Auto-repeat events (repeat true) are excluded entirely:
// they neither trigger nor move the remembered timestamp.
func (d *DoubleTap) Press(now time.Time, repeat bool) bool {
	if repeat {
		return false
	}
	triggered := d.armed && now.Sub(d.last) < d.window
	d.last = now
	d.armed = true
	return triggered
}

// Reset forgets the previous press, e.g. when the binding's surface loses
// focus.
func (d *DoubleTap) Reset() { d.armed = false }
