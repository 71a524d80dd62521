/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"godeckwriter/internal/domain"
	"godeckwriter/internal/storage"
)

func TestExportDeckPDF_CreatesFile(t *testing.T) {
	root := t.TempDir()

	p := domain.NewPresentation()
	p.Title = "Test Deck"

	thumb := mustSlide(t, domain.TemplateThumbnail)
	thumb.Content.Title = "Test Deck"
	title := mustSlide(t, domain.TemplateTitle)
	title.Content.Title = "Welcome"
	title.Content.Text = "An opening slide"
	title.Content.Image = writeTestImage(t, root, "assets/hero.png")
	content := mustSlide(t, domain.TemplateContent)
	content.Content.Title = "Agenda"
	content.Content.Subtitle = "What we cover"
	content.Content.Text = "First this, then that."
	steps := mustSlide(t, domain.TemplateSteps)
	steps.Content.Title = "Rollout"
	p.Slides = []domain.Slide{thumb, title, content, steps}

	dh, err := storage.InitDeck(root, p)
	if err != nil {
		t.Fatalf("init deck: %v", err)
	}
	out := filepath.Join(root, "exports", "deck-test.pdf")
	if err := ExportDeckPDF(dh, out, PDFOptions{IncludeSlideNumbers: true}); err != nil {
		t.Fatalf("export: %v", err)
	}
	st, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Size() <= 0 {
		t.Fatalf("pdf file empty")
	}
}

func TestExportDeckPDF_SlideSubsetAndRelativeOut(t *testing.T) {
	root := t.TempDir()

	p := domain.NewPresentation()
	a := mustSlide(t, domain.TemplateContent)
	a.Content.Title = "A"
	b := mustSlide(t, domain.TemplateContent)
	b.Content.Title = "B"
	p.Slides = []domain.Slide{a, b}

	dh, err := storage.InitDeck(root, p)
	if err != nil {
		t.Fatalf("init deck: %v", err)
	}
	if err := ExportDeckPDF(dh, "subset.pdf", PDFOptions{Slides: []int{1}}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "exports", "subset.pdf")); err != nil {
		t.Fatalf("expected pdf under deck exports dir: %v", err)
	}
}

func TestExportDeckPDF_NilHandle(t *testing.T) {
	if err := ExportDeckPDF(nil, "out.pdf", PDFOptions{}); err == nil {
		t.Fatalf("expected error for nil deck handle")
	}
}

func mustSlide(t *testing.T, tmpl domain.Template) domain.Slide {
	t.Helper()
	s, err := domain.NewSlide(tmpl)
	if err != nil {
		t.Fatalf("new slide %q: %v", tmpl, err)
	}
	return s
}

// writeTestImage writes a small gradient PNG under root and returns its
// deck-relative path.
func writeTestImage(t *testing.T, root, rel string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		t.Fatalf("encode image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close image: %v", err)
	}
	return rel
}
