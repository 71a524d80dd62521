/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package outline

import (
	"strings"
	"testing"

	"godeckwriter/internal/domain"
)

func TestParseBasicDeck(t *testing.T) {
	input := `= Quarterly Review

# Welcome
@image assets/hero.png
A short opening line.

; speaker note, not part of the deck
# Agenda
## What we cover
First this.
Then that.

# Rollout
* Prepare :: Freeze the branch
  and tag the release.
* Ship
* Verify`

	p, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if p.Title != "Quarterly Review" {
		t.Fatalf("unexpected deck title: %q", p.Title)
	}
	if len(p.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(p.Slides))
	}

	s0 := p.Slides[0]
	if s0.Template != domain.TemplateTitle {
		t.Fatalf("expected title slide for image, got %q", s0.Template)
	}
	if s0.Content.Title != "Welcome" || s0.Content.Image != "assets/hero.png" {
		t.Fatalf("unexpected title slide content: %+v", s0.Content)
	}
	if s0.Content.Text != "A short opening line." {
		t.Fatalf("unexpected title slide text: %q", s0.Content.Text)
	}
	if s0.Content.ImagePosition == nil || s0.Content.ImagePosition.X != 50 {
		t.Fatalf("expected centered focal point, got %+v", s0.Content.ImagePosition)
	}

	s1 := p.Slides[1]
	if s1.Template != domain.TemplateContent {
		t.Fatalf("expected content slide, got %q", s1.Template)
	}
	if s1.Content.Subtitle != "What we cover" {
		t.Fatalf("unexpected subtitle: %q", s1.Content.Subtitle)
	}
	if s1.Content.Text != "First this.\nThen that." {
		t.Fatalf("unexpected body text: %q", s1.Content.Text)
	}

	s2 := p.Slides[2]
	if s2.Template != domain.TemplateSteps {
		t.Fatalf("expected steps slide, got %q", s2.Template)
	}
	if len(s2.Content.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(s2.Content.Steps))
	}
	if s2.Content.Steps[0].Subtitle != "Prepare" {
		t.Fatalf("unexpected step subtitle: %q", s2.Content.Steps[0].Subtitle)
	}
	if s2.Content.Steps[0].Text != "Freeze the branch\nand tag the release." {
		t.Fatalf("unexpected step continuation: %q", s2.Content.Steps[0].Text)
	}
	if s2.Content.Steps[1] != (domain.Step{Subtitle: "Ship"}) {
		t.Fatalf("unexpected bare step: %+v", s2.Content.Steps[1])
	}
}

func TestParseImplicitSlide(t *testing.T) {
	input := `A cold open without a heading.
More text.`
	p, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if len(p.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(p.Slides))
	}
	if p.Slides[0].Content.Title != "Untitled" {
		t.Fatalf("expected implicit Untitled slide, got %q", p.Slides[0].Content.Title)
	}
	if p.Title != "Untitled Presentation" {
		t.Fatalf("expected default deck title, got %q", p.Title)
	}
}

func TestParseStepOverflowReported(t *testing.T) {
	input := `# Too Many
* one
* two
* three
* four
* five`
	p, errs := Parse(input)
	if len(p.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(p.Slides))
	}
	if len(p.Slides[0].Content.Steps) != domain.MaxSteps {
		t.Fatalf("expected %d steps, got %d", domain.MaxSteps, len(p.Slides[0].Content.Steps))
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 overflow errors, got %+v", errs)
	}
	if errs[0].Line != 5 || !strings.Contains(errs[0].Message, "step dropped") {
		t.Fatalf("unexpected first error: %+v", errs[0])
	}
}

func TestParseInapplicableContentReported(t *testing.T) {
	input := `# Steps With Extras
## ignored subtitle
stray body text
* only step`
	p, errs := Parse(input)
	if len(p.Slides) != 1 || p.Slides[0].Template != domain.TemplateSteps {
		t.Fatalf("expected a single steps slide, got %+v", p.Slides)
	}
	if len(errs) != 2 {
		t.Fatalf("expected subtitle and body warnings, got %+v", errs)
	}
	if errs[0].Line != 2 || !strings.Contains(errs[0].Message, "subtitle ignored") {
		t.Fatalf("unexpected warning: %+v", errs[0])
	}
}

func TestParseDuplicateDeckTitle(t *testing.T) {
	input := `= First
= Second
# Slide`
	p, errs := Parse(input)
	if p.Title != "First" {
		t.Fatalf("expected first title to win, got %q", p.Title)
	}
	if len(errs) != 1 || errs[0].Line != 2 {
		t.Fatalf("expected duplicate-title warning on line 2, got %+v", errs)
	}
}

func TestParseEmptyInput(t *testing.T) {
	p, errs := Parse("")
	if len(errs) != 0 || len(p.Slides) != 0 {
		t.Fatalf("expected empty deck, got slides=%d errs=%+v", len(p.Slides), errs)
	}
}
