package drawpass

import (
	"github.com/gogpu/gputypes"
)

// AlphaType describes how pixel alpha is interpreted.
type AlphaType uint8

const (
	// AlphaTypePremul means color channels are premultiplied by alpha.
	AlphaTypePremul AlphaType = iota
	// AlphaTypeUnpremul means color channels are independent of alpha.
	AlphaTypeUnpremul
	// AlphaTypeOpaque means alpha is ignored and treated as fully opaque.
	AlphaTypeOpaque
)

// String returns a human-readable name for the alpha type.
func (a AlphaType) String() string {
	switch a {
	case AlphaTypePremul:
		return "Premul"
	case AlphaTypeUnpremul:
		return "Unpremul"
	case AlphaTypeOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// ColorSpace identifies the color space of a destination.
// The pipeline never converts between spaces; the value is carried through
// to executors and backends.
type ColorSpace uint8

const (
	// ColorSpaceSRGB is the standard sRGB transfer curve.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceLinear is linear-light sRGB primaries.
	ColorSpaceLinear
	// ColorSpaceDisplayP3 is the Display P3 wide gamut space.
	ColorSpaceDisplayP3
)

// String returns a human-readable name for the color space.
func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceSRGB:
		return "sRGB"
	case ColorSpaceLinear:
		return "Linear"
	case ColorSpaceDisplayP3:
		return "DisplayP3"
	default:
		return "Unknown"
	}
}

// ImageInfo describes the pixel interpretation of a draw destination:
// integer dimensions plus color type, alpha type, and color space.
// It is derived once at DrawContext construction from the target's
// dimensions and the requested pixel interpretation.
type ImageInfo struct {
	// Width is the destination width in pixels.
	Width int
	// Height is the destination height in pixels.
	Height int
	// ColorType is the pixel format of the destination.
	ColorType gputypes.TextureFormat
	// AlphaType is the alpha interpretation of the destination.
	AlphaType AlphaType
	// ColorSpace is the color space of the destination.
	ColorSpace ColorSpace
}

// MakeImageInfo builds an ImageInfo from explicit values.
func MakeImageInfo(width, height int, ct gputypes.TextureFormat, at AlphaType, cs ColorSpace) ImageInfo {
	return ImageInfo{
		Width:      width,
		Height:     height,
		ColorType:  ct,
		AlphaType:  at,
		ColorSpace: cs,
	}
}

// IsEmpty reports whether the info describes a zero-area destination.
func (i ImageInfo) IsEmpty() bool {
	return i.Width <= 0 || i.Height <= 0
}

// Target is the destination surface a DrawContext records intent against.
// The pipeline reads dimensions and format once at construction and never
// mutates the target; concrete implementations (pixmaps, GPU textures,
// window surfaces) live in the render package.
//
// A Target may be shared: other contexts or backends can hold the same
// handle concurrently, which is safe because this layer only records
// intent against it.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat
}
