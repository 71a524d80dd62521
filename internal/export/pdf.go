/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"godeckwriter/internal/domain"
	"godeckwriter/internal/storage"
	"godeckwriter/internal/theme"
)

// Page geometry for exported slides. 16:9 landscape in points, matching the
// aspect ratio slides are authored and played back in.
const (
	slidePageW  = 960.0
	slidePageH  = 540.0
	slideMargin = 48.0
)

// PDFOptions controls PDF export behavior.
// Units are points (pt). The deck's theme picks the base font family; base
// PDF fonts keep text vector without embedding.
type PDFOptions struct {
	IncludeSlideNumbers bool
	Slides              []int // if empty, export all slides
}

// ExportDeckPDF exports the deck to a single multi-page PDF placed at outPath,
// one landscape page per slide. Image paths in slide content are resolved
// relative to the deck root and cropped to their focal point before embedding.
func ExportDeckPDF(dh *storage.DeckHandle, outPath string, opt PDFOptions) error {
	if dh == nil {
		return fmt.Errorf("deck handle is nil")
	}
	p := dh.Presentation

	th, err := theme.Load(dh.Root)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: slidePageW, Ht: slidePageH},
		OrientationStr: "",
	})
	pdf.SetTitle(p.Title, false)
	pdf.SetAuthor("Go Deck Writer", false)
	pdf.SetFont(th.Font, "", th.BodySize)
	setTextColor(pdf, th.TextColor)

	slides := slideIndexes(len(p.Slides), opt.Slides)
	for _, sidx := range slides {
		if sidx < 0 || sidx >= len(p.Slides) {
			continue
		}
		s := p.Slides[sidx]
		pdf.AddPageFormat("", gofpdf.SizeType{Wd: slidePageW, Ht: slidePageH})

		switch s.Template {
		case domain.TemplateThumbnail:
			drawThumbnailSlide(pdf, th, s)
		case domain.TemplateTitle:
			if err := drawTitleSlide(pdf, th, dh.Root, s); err != nil {
				return fmt.Errorf("slide %d: %w", sidx+1, err)
			}
		case domain.TemplateContent:
			drawContentSlide(pdf, th, s)
		case domain.TemplateSteps:
			drawStepsSlide(pdf, th, s)
		}

		if opt.IncludeSlideNumbers {
			pdf.SetFont(th.Font, "", 10)
			setTextColor(pdf, th.AccentColor)
			pdf.Text(slidePageW-slideMargin, slidePageH-18, fmt.Sprintf("%d / %d", sidx+1, len(p.Slides)))
			setTextColor(pdf, th.TextColor)
		}
	}

	// Relative output paths land in the deck's exports folder.
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(dh.Root, "exports", outPath)
	}
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawThumbnailSlide(pdf *gofpdf.Fpdf, th theme.Theme, s domain.Slide) {
	pdf.SetFont(th.Font, "B", th.TitleSize+8)
	w := pdf.GetStringWidth(s.Content.Title)
	pdf.Text((slidePageW-w)/2, slidePageH/2, s.Content.Title)
}

func drawTitleSlide(pdf *gofpdf.Fpdf, th theme.Theme, root string, s domain.Slide) error {
	textW := slidePageW - 2*slideMargin
	if s.Content.Image != "" {
		// Text on the left half, image on the right half.
		textW = slidePageW/2 - 1.5*slideMargin
		imgX := slidePageW / 2
		imgW := slidePageW/2 - slideMargin
		imgH := slidePageH - 2*slideMargin
		fp := domain.Centered()
		if s.Content.ImagePosition != nil {
			fp = s.Content.ImagePosition
		}
		if err := embedCroppedImage(pdf, root, s.Content.Image, *fp, imgX, slideMargin, imgW, imgH); err != nil {
			return err
		}
	}
	pdf.SetFont(th.Font, "B", th.TitleSize)
	pdf.SetXY(slideMargin, slidePageH/3)
	pdf.MultiCell(textW, th.TitleSize*1.2, s.Content.Title, "", "L", false)
	if s.Content.Text != "" {
		pdf.SetFont(th.Font, "", th.BodySize)
		pdf.SetX(slideMargin)
		pdf.MultiCell(textW, th.BodySize*1.4, s.Content.Text, "", "L", false)
	}
	return nil
}

func drawContentSlide(pdf *gofpdf.Fpdf, th theme.Theme, s domain.Slide) {
	textW := slidePageW - 2*slideMargin
	pdf.SetFont(th.Font, "B", th.TitleSize*0.85)
	pdf.SetXY(slideMargin, slideMargin)
	pdf.MultiCell(textW, th.TitleSize, s.Content.Title, "", "L", false)
	if s.Content.Subtitle != "" {
		pdf.SetFont(th.Font, "I", th.SubtitleSize)
		setTextColor(pdf, th.AccentColor)
		pdf.SetX(slideMargin)
		pdf.MultiCell(textW, th.SubtitleSize*1.3, s.Content.Subtitle, "", "L", false)
		setTextColor(pdf, th.TextColor)
	}
	pdf.SetFont(th.Font, "", th.BodySize)
	pdf.SetXY(slideMargin, pdf.GetY()+18)
	pdf.MultiCell(textW, th.BodySize*1.4, s.Content.Text, "", "L", false)
}

func drawStepsSlide(pdf *gofpdf.Fpdf, th theme.Theme, s domain.Slide) {
	textW := slidePageW - 2*slideMargin
	pdf.SetFont(th.Font, "B", th.TitleSize*0.85)
	pdf.SetXY(slideMargin, slideMargin)
	pdf.MultiCell(textW, th.TitleSize, s.Content.Title, "", "L", false)

	n := len(s.Content.Steps)
	if n == 0 {
		return
	}
	colW := (slidePageW - 2*slideMargin - float64(n-1)*24) / float64(n)
	y := slidePageH / 3
	for i, st := range s.Content.Steps {
		x := slideMargin + float64(i)*(colW+24)
		pdf.SetFont(th.Font, "B", th.StepSize+4)
		pdf.SetXY(x, y)
		pdf.MultiCell(colW, (th.StepSize+4)*1.3, st.Subtitle, "", "L", false)
		pdf.SetFont(th.Font, "", th.StepSize)
		pdf.SetXY(x, pdf.GetY()+6)
		pdf.MultiCell(colW, th.StepSize*1.3, st.Text, "", "L", false)
	}
}

func setTextColor(pdf *gofpdf.Fpdf, c *theme.RGB) {
	if c == nil {
		pdf.SetTextColor(0, 0, 0)
		return
	}
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

// embedCroppedImage decodes the slide image, crops it to the given focal
// point at the box aspect ratio, and registers the result as an inline PNG.
func embedCroppedImage(pdf *gofpdf.Fpdf, root, imgPath string, fp domain.ImagePosition, x, y, w, h float64) error {
	path := imgPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open slide image: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode slide image %s: %w", imgPath, err)
	}
	// Two source pixels per point keeps embedded images crisp on projection.
	cropped, err := CropToFocalPoint(src, fp, int(w*2), int(h*2))
	if err != nil {
		return fmt.Errorf("crop slide image %s: %w", imgPath, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return fmt.Errorf("encode cropped image: %w", err)
	}
	imgOpt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgPath, imgOpt, &buf)
	pdf.ImageOptions(imgPath, x, y, w, h, false, imgOpt, 0, "")
	return nil
}

func slideIndexes(total int, specific []int) []int {
	if len(specific) == 0 {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}
		return out
	}
	return specific
}
