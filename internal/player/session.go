/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package player holds the presentation-playback state: the fullscreen
// navigation session over an ordered slide list, the double-tap gesture
// detector the shortcut layer binds semantic actions to, and small
// animation helpers. Everything here is pure state driven by discrete UI
// events; no package in player renders anything.
package player

// DefaultSwipeThreshold is the horizontal drag distance, in pixels, a
// swipe must exceed to count as a navigation gesture.
const DefaultSwipeThreshold = 50.0

// Session tracks the current slide index during fullscreen playback.
// Navigation saturates at both ends; there is no wraparound. Closing the
// session is simply dropping it; re-entering fullscreen starts a new
// session at slide 0, not at the last-viewed slide.
type Session struct {
	slideCount int
	current    int

	// SwipeThreshold can be tuned from config; zero means default.
	SwipeThreshold float64
}

// NewSession starts playback over slideCount slides at index 0. A deck
// with no slides cannot be presented: ok is false and the caller closes
// fullscreen immediately.
func NewSession(slideCount int) (s *Session, ok bool) {
	if slideCount <= 0 {
		return nil, false
	}
	return &Session{slideCount: slideCount, SwipeThreshold: DefaultSwipeThreshold}, true
}

// Current returns the current slide index, in [0, slideCount-1].
func (s *Session) Current() int { return s.current }

// SlideCount returns the number of slides in the session.
func (s *Session) SlideCount() int { return s.slideCount }

// Next advances one slide, saturating at the last slide.
func (s *Session) Next() int {
	if s.current < s.slideCount-1 {
		s.current++
	}
	return s.current
}

// Prev retreats one slide, saturating at the first slide.
func (s *Session) Prev() int {
	if s.current > 0 {
		s.current--
	}
	return s.current
}

// Swipe maps a completed horizontal drag from startX to endX onto a
// navigation transition. A leftward drag past the threshold advances, a
// rightward one retreats; shorter drags are ignored. Returns the current
// index either way.
func (s *Session) Swipe(startX, endX float64) int {
	threshold := s.SwipeThreshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	switch delta := startX - endX; {
	case delta > threshold:
		return s.Next()
	case delta < -threshold:
		return s.Prev()
	}
	return s.current
}

// EaseInOutCubic maps linear animation progress t in [0,1] onto an
// ease-in-out cubic curve, used by the slide-list scroll animation.
func EaseInOutCubic(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	d := -2*t + 2
	return 1 - d*d*d/2
}
