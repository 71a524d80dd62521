/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package outline turns a plain-text deck outline into slides. The format is
// Markdown-like and forgiving: authors draft a deck in any editor and import
// it instead of clicking slides together one by one.
package outline

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"godeckwriter/internal/domain"
)

// Error represents a parse problem with position context. Errors are
// advisory: parsing always produces a usable presentation.
type Error struct {
	Line    int
	Message string
}

func (e Error) String() string { return fmt.Sprintf("line %d: %s", e.Line, e.Message) }

// rawSlide accumulates one slide's content before the template is decided.
type rawSlide struct {
	title        string
	subtitle     string
	subtitleLine int
	text         []string
	steps        []domain.Step
	image        string
	headingLine  int
}

// Parse parses outline text into a Presentation.
// Supported syntax (minimal):
//   - "= Deck Title" sets the presentation title (first occurrence wins).
//   - "# Title" starts a new slide. The slide's template is inferred from
//     what follows: steps make it a steps slide, an image makes it a title
//     slide, otherwise it is a content slide.
//   - "## Subtitle" sets the current slide's subtitle.
//   - "* text" adds a step ("Subtitle :: body" splits the two parts). Steps
//     beyond the per-slide limit are dropped and reported.
//   - "@image path" attaches an image to the current slide.
//   - Lines starting with ";" are author notes and skipped.
//   - Continuation lines indented by 2+ spaces extend the previous step.
//   - Any other non-blank line accumulates into the slide's body text.
//
// Text before the first "#" heading starts an implicit "Untitled" slide.
func Parse(input string) (domain.Presentation, []Error) {
	p := domain.NewPresentation()
	var errs []Error

	reDeckTitle := regexp.MustCompile(`^=\s*(.+)$`)
	reHeading := regexp.MustCompile(`^(#+)\s*(.*)$`)
	reStep := regexp.MustCompile(`^\*\s*(.*)$`)
	reImage := regexp.MustCompile(`^(?i)@image\s+(.+)$`)

	var cur *rawSlide
	titleSet := false

	flush := func() {
		if cur == nil {
			return
		}
		s, serrs := materialize(*cur)
		errs = append(errs, serrs...)
		p.Slides = domain.AppendSlide(p.Slides, s)
		cur = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")

		// Continuation line extends the previous step's body.
		if strings.HasPrefix(line, "  ") && cur != nil && len(cur.steps) > 0 {
			cont := strings.TrimSpace(line)
			if cont != "" {
				last := &cur.steps[len(cur.steps)-1]
				if last.Text == "" {
					last.Text = cont
				} else {
					last.Text += "\n" + cont
				}
			}
			continue
		}

		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, ";") {
			continue
		}

		if m := reDeckTitle.FindStringSubmatch(trim); m != nil {
			if titleSet {
				errs = append(errs, Error{Line: lineNo, Message: "duplicate deck title ignored"})
			} else {
				p.Title = strings.TrimSpace(m[1])
				titleSet = true
			}
			continue
		}

		if m := reHeading.FindStringSubmatch(trim); m != nil {
			if m[1] == "#" {
				flush()
				cur = &rawSlide{title: strings.TrimSpace(m[2]), headingLine: lineNo}
				continue
			}
			// "##" and deeper set the subtitle of the current slide
			if cur == nil {
				cur = &rawSlide{title: "Untitled", headingLine: lineNo}
			}
			if cur.subtitle != "" {
				errs = append(errs, Error{Line: lineNo, Message: "duplicate subtitle ignored"})
				continue
			}
			cur.subtitle = strings.TrimSpace(m[2])
			cur.subtitleLine = lineNo
			continue
		}

		if m := reImage.FindStringSubmatch(trim); m != nil {
			if cur == nil {
				cur = &rawSlide{title: "Untitled", headingLine: lineNo}
			}
			cur.image = strings.TrimSpace(m[1])
			continue
		}

		if m := reStep.FindStringSubmatch(trim); m != nil {
			if cur == nil {
				cur = &rawSlide{title: "Untitled", headingLine: lineNo}
			}
			if len(cur.steps) >= domain.MaxSteps {
				errs = append(errs, Error{Line: lineNo, Message: fmt.Sprintf("slide already has %d steps, step dropped", domain.MaxSteps)})
				continue
			}
			sub, body := splitStep(m[1])
			cur.steps = append(cur.steps, domain.Step{Subtitle: sub, Text: body})
			continue
		}

		// Plain body text
		if cur == nil {
			cur = &rawSlide{title: "Untitled", headingLine: lineNo}
		}
		cur.text = append(cur.text, trim)
	}
	flush()

	if err := scanner.Err(); err != nil {
		errs = append(errs, Error{Line: lineNo, Message: err.Error()})
	}
	return p, errs
}

// splitStep separates "Subtitle :: body" into its parts; without the marker
// the whole line becomes the step subtitle.
func splitStep(s string) (subtitle, body string) {
	if i := strings.Index(s, "::"); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+2:])
	}
	return strings.TrimSpace(s), ""
}

// materialize picks a template for the accumulated slide and fills it through
// the mutation service, so template gating and bounds hold for imported
// slides exactly as for edited ones.
func materialize(raw rawSlide) (domain.Slide, []Error) {
	var errs []Error

	tmpl := domain.TemplateContent
	switch {
	case len(raw.steps) > 0:
		tmpl = domain.TemplateSteps
	case raw.image != "":
		tmpl = domain.TemplateTitle
	}

	s, err := domain.NewSlide(tmpl)
	if err != nil {
		// templates above are always known; guard anyway
		errs = append(errs, Error{Line: raw.headingLine, Message: err.Error()})
		return domain.Slide{}, errs
	}

	set := func(f domain.Field, v any, line int) {
		updated, uerr := domain.UpdateField(s, f, v)
		if uerr != nil {
			errs = append(errs, Error{Line: line, Message: uerr.Error()})
			return
		}
		s = updated
	}

	set(domain.FieldTitle, raw.title, raw.headingLine)
	switch tmpl {
	case domain.TemplateSteps:
		set(domain.FieldSteps, raw.steps, raw.headingLine)
		if raw.subtitle != "" {
			errs = append(errs, Error{Line: raw.subtitleLine, Message: "subtitle ignored on steps slide"})
		}
		if len(raw.text) > 0 {
			errs = append(errs, Error{Line: raw.headingLine, Message: "body text ignored on steps slide"})
		}
	case domain.TemplateTitle:
		set(domain.FieldImage, raw.image, raw.headingLine)
		if len(raw.text) > 0 {
			set(domain.FieldText, strings.Join(raw.text, "\n"), raw.headingLine)
		}
		if raw.subtitle != "" {
			errs = append(errs, Error{Line: raw.subtitleLine, Message: "subtitle ignored on title slide"})
		}
	default:
		if raw.subtitle != "" {
			set(domain.FieldSubtitle, raw.subtitle, raw.subtitleLine)
		}
		if len(raw.text) > 0 {
			set(domain.FieldText, strings.Join(raw.text, "\n"), raw.headingLine)
		}
	}
	return s, errs
}
