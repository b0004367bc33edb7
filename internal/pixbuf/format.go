// Package pixbuf implements packed, format-tagged pixel buffers.
//
// A Buffer stores channel-interleaved samples in row-major order with no
// padding: the row stride is always width times the pixel size, so layout is
// fully determined by width, height, and format. Buffers can borrow caller
// storage without copying.
package pixbuf

// ScalarKind identifies the storage type of one channel sample.
type ScalarKind uint8

// Supported channel sample types.
const (
	KindUint8 ScalarKind = iota
	KindUint16
	KindFloat32
)

// Size returns the byte size of one sample of this kind.
func (k ScalarKind) Size() int {
	switch k {
	case KindUint8:
		return 1
	case KindUint16:
		return 2
	case KindFloat32:
		return 4
	default:
		panic("pixbuf: unknown scalar kind")
	}
}

// String returns a human-readable name for the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGrayAlpha8 is 8-bit grayscale with alpha (2 bytes per pixel).
	FormatGrayAlpha8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel).
	FormatRGBA8

	// FormatBGR8 is 24-bit RGB with the blue sample first.
	FormatBGR8

	// FormatBGRA8 is 32-bit RGBA with the blue sample first.
	// Common on Windows surfaces and some GPU swapchains.
	FormatBGRA8

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, native endian).
	FormatGray16

	// FormatGrayAlpha16 is 16-bit grayscale with alpha (4 bytes per pixel).
	FormatGrayAlpha16

	// FormatRGB16 is 48-bit RGB (6 bytes per pixel).
	FormatRGB16

	// FormatRGBA16 is 64-bit RGBA (8 bytes per pixel).
	FormatRGBA16

	// FormatGrayF32 is 32-bit float grayscale (4 bytes per pixel).
	FormatGrayF32

	// FormatGrayAlphaF32 is 32-bit float grayscale with alpha (8 bytes per pixel).
	FormatGrayAlphaF32

	// FormatRGBF32 is 96-bit float RGB (12 bytes per pixel).
	FormatRGBF32

	// FormatRGBAF32 is 128-bit float RGBA (16 bytes per pixel).
	FormatRGBAF32

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of interleaved samples per pixel.
	Channels int

	// Kind is the storage type of each sample.
	Kind ScalarKind

	// HasAlpha indicates if the last channel is an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// BlueFirst indicates reversed color order (BGR instead of RGB).
	BlueFirst bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8:        {Channels: 1, Kind: KindUint8, IsGrayscale: true},
	FormatGrayAlpha8:   {Channels: 2, Kind: KindUint8, HasAlpha: true, IsGrayscale: true},
	FormatRGB8:         {Channels: 3, Kind: KindUint8},
	FormatRGBA8:        {Channels: 4, Kind: KindUint8, HasAlpha: true},
	FormatBGR8:         {Channels: 3, Kind: KindUint8, BlueFirst: true},
	FormatBGRA8:        {Channels: 4, Kind: KindUint8, HasAlpha: true, BlueFirst: true},
	FormatGray16:       {Channels: 1, Kind: KindUint16, IsGrayscale: true},
	FormatGrayAlpha16:  {Channels: 2, Kind: KindUint16, HasAlpha: true, IsGrayscale: true},
	FormatRGB16:        {Channels: 3, Kind: KindUint16},
	FormatRGBA16:       {Channels: 4, Kind: KindUint16, HasAlpha: true},
	FormatGrayF32:      {Channels: 1, Kind: KindFloat32, IsGrayscale: true},
	FormatGrayAlphaF32: {Channels: 2, Kind: KindFloat32, HasAlpha: true, IsGrayscale: true},
	FormatRGBF32:       {Channels: 3, Kind: KindFloat32},
	FormatRGBAF32:      {Channels: 4, Kind: KindFloat32, HasAlpha: true},
}

// canonicalFormats maps (channels-1, kind) to the RGB-order format.
// Blue-first formats are never inferred; callers select them explicitly.
var canonicalFormats = [4][3]Format{
	{FormatGray8, FormatGray16, FormatGrayF32},
	{FormatGrayAlpha8, FormatGrayAlpha16, FormatGrayAlphaF32},
	{FormatRGB8, FormatRGB16, FormatRGBF32},
	{FormatRGBA8, FormatRGBA16, FormatRGBAF32},
}

// FormatFor returns the canonical format storing the given number of
// interleaved channels with the given sample kind. The second return value
// is false when no format matches (channels outside 1..4).
func FormatFor(channels int, kind ScalarKind) (Format, bool) {
	if channels < 1 || channels > 4 {
		return formatCount, false
	}
	if kind != KindUint8 && kind != KindUint16 && kind != KindFloat32 {
		return formatCount, false
	}
	return canonicalFormats[channels-1][kind], true
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of interleaved samples per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// Kind returns the storage type of each sample.
func (f Format) Kind() ScalarKind {
	return f.Info().Kind
}

// HasAlpha returns true if the last channel is an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// BlueFirst returns true if the color order is reversed (BGR).
func (f Format) BlueFirst() bool {
	return f.Info().BlueFirst
}

// BytesPerChannel returns the byte size of one sample.
func (f Format) BytesPerChannel() int {
	return f.Info().Kind.Size()
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	info := f.Info()
	return info.Channels * info.Kind.Size()
}

// RowBytes calculates the number of bytes in a packed row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes in a packed image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGR8:
		return "BGR8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatGray16:
		return "Gray16"
	case FormatGrayAlpha16:
		return "GrayAlpha16"
	case FormatRGB16:
		return "RGB16"
	case FormatRGBA16:
		return "RGBA16"
	case FormatGrayF32:
		return "GrayF32"
	case FormatGrayAlphaF32:
		return "GrayAlphaF32"
	case FormatRGBF32:
		return "RGBF32"
	case FormatRGBAF32:
		return "RGBAF32"
	default:
		return "Unknown"
	}
}
