// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// PixmapTarget is a CPU-backed draw destination using *image.RGBA.
// It implements drawpass.Target and provides the direct pixel access the
// SoftwareExecutor rasterizes into.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a CPU-backed target of the given size.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	rgba := color.RGBA{
		R: uint8(r >> 8), //nolint:gosec // G115: 16-bit channel shifted into range
		G: uint8(g >> 8), //nolint:gosec // G115
		B: uint8(b >> 8), //nolint:gosec // G115
		A: uint8(a >> 8), //nolint:gosec // G115
	}
	pix := t.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
}

// TextureTarget is a GPU texture destination. The texture handle comes from
// the host (or from a TextureCreator upload) and is carried opaquely; the
// pipeline only reads the dimensions and format it was declared with.
type TextureTarget struct {
	tex    gpucontext.Texture
	width  int
	height int
	format gputypes.TextureFormat
}

// NewTextureTarget wraps a GPU texture handle as a draw destination.
// The caller declares the dimensions and format; the handle is not queried.
func NewTextureTarget(tex gpucontext.Texture, width, height int, format gputypes.TextureFormat) *TextureTarget {
	return &TextureTarget{tex: tex, width: width, height: height, format: format}
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return t.height
}

// Format returns the declared pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.format
}

// Texture returns the wrapped GPU texture handle.
func (t *TextureTarget) Texture() gpucontext.Texture {
	return t.tex
}
