/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"strings"

	"godeckwriter/internal/domain"
)

// slideLabel renders the one-line list entry for a slide: position, title (or
// a placeholder) and the template name.
func slideLabel(i int, s domain.Slide) string {
	title := strings.TrimSpace(s.Content.Title)
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%d. %s [%s]", i+1, title, s.Template)
}

// templateLabel is the human name shown in the template gallery.
func templateLabel(t domain.Template) string {
	switch t {
	case domain.TemplateTitle:
		return "Title Slide"
	case domain.TemplateContent:
		return "Content Slide"
	case domain.TemplateSteps:
		return "Steps Slide"
	case domain.TemplateThumbnail:
		return "Thumbnail Slide"
	default:
		return string(t)
	}
}

// windowTitle builds the main window title for the open deck, if any.
func windowTitle(deckTitle string) string {
	base := "Go Deck Writer"
	t := strings.TrimSpace(deckTitle)
	if t == "" {
		return base
	}
	return base + " — " + t
}
