/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"godeckwriter/internal/domain"
)

// CropToFocalPoint scales and crops src to cover a targetW x targetH frame,
// positioning the crop window so the focal point (given as percentages of the
// source dimensions, 0..100) sits as close to the window center as the source
// bounds allow. This mirrors how slide renderers apply object-position.
func CropToFocalPoint(src image.Image, fp domain.ImagePosition, targetW, targetH int) (image.Image, error) {
	if targetW <= 0 || targetH <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", targetW, targetH)
	}
	b := src.Bounds()
	srcW := b.Dx()
	srcH := b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("empty source image")
	}

	// Crop window in source coordinates with the target aspect ratio,
	// as large as the source allows (cover fit).
	targetAspect := float64(targetW) / float64(targetH)
	srcAspect := float64(srcW) / float64(srcH)
	var cropW, cropH float64
	if srcAspect > targetAspect {
		cropH = float64(srcH)
		cropW = cropH * targetAspect
	} else {
		cropW = float64(srcW)
		cropH = cropW / targetAspect
	}

	fx := clampPct(fp.X) / 100 * float64(srcW)
	fy := clampPct(fp.Y) / 100 * float64(srcH)
	x0 := clampRange(fx-cropW/2, 0, float64(srcW)-cropW)
	y0 := clampRange(fy-cropH/2, 0, float64(srcH)-cropH)

	cropRect := image.Rect(
		b.Min.X+int(math.Round(x0)),
		b.Min.Y+int(math.Round(y0)),
		b.Min.X+int(math.Round(x0+cropW)),
		b.Min.Y+int(math.Round(y0+cropH)),
	)

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, cropRect, xdraw.Src, nil)
	return dst, nil
}

func clampPct(v float64) float64 { return clampRange(v, 0, 100) }

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
