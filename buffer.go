package ndimage

import "github.com/rust-cv/ndimage/internal/pixbuf"

// Buffer is a packed, channel-interleaved pixel buffer.
//
// Rows are stored back to back with no padding, so the byte stride is
// always Format.RowBytes(Width). A Buffer may own its storage (NewBuffer,
// Clone) or borrow caller storage (BufferFromBytes); writes through a
// borrowing Buffer are visible to the owner and vice versa.
type Buffer = pixbuf.Buffer

// Format represents a pixel storage format.
type Format = pixbuf.Format

// FormatInfo contains metadata about a pixel format.
type FormatInfo = pixbuf.FormatInfo

// ScalarKind identifies the storage type of one channel sample.
type ScalarKind = pixbuf.ScalarKind

// Supported channel sample types.
const (
	KindUint8   = pixbuf.KindUint8
	KindUint16  = pixbuf.KindUint16
	KindFloat32 = pixbuf.KindFloat32
)

// Pixel formats.
const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 = pixbuf.FormatGray8

	// FormatGrayAlpha8 is 8-bit grayscale with alpha (2 bytes per pixel).
	FormatGrayAlpha8 = pixbuf.FormatGrayAlpha8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 = pixbuf.FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel).
	FormatRGBA8 = pixbuf.FormatRGBA8

	// FormatBGR8 is 24-bit RGB with the blue sample first.
	FormatBGR8 = pixbuf.FormatBGR8

	// FormatBGRA8 is 32-bit RGBA with the blue sample first.
	// Common on Windows surfaces and some GPU swapchains.
	FormatBGRA8 = pixbuf.FormatBGRA8

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, native endian).
	FormatGray16 = pixbuf.FormatGray16

	// FormatGrayAlpha16 is 16-bit grayscale with alpha (4 bytes per pixel).
	FormatGrayAlpha16 = pixbuf.FormatGrayAlpha16

	// FormatRGB16 is 48-bit RGB (6 bytes per pixel).
	FormatRGB16 = pixbuf.FormatRGB16

	// FormatRGBA16 is 64-bit RGBA (8 bytes per pixel).
	FormatRGBA16 = pixbuf.FormatRGBA16

	// FormatGrayF32 is 32-bit float grayscale (4 bytes per pixel).
	FormatGrayF32 = pixbuf.FormatGrayF32

	// FormatGrayAlphaF32 is 32-bit float grayscale with alpha (8 bytes per pixel).
	FormatGrayAlphaF32 = pixbuf.FormatGrayAlphaF32

	// FormatRGBF32 is 96-bit float RGB (12 bytes per pixel).
	FormatRGBF32 = pixbuf.FormatRGBF32

	// FormatRGBAF32 is 128-bit float RGBA (16 bytes per pixel).
	FormatRGBAF32 = pixbuf.FormatRGBAF32
)

// Buffer errors, re-exported for matching with errors.Is.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = pixbuf.ErrInvalidDimensions

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = pixbuf.ErrInvalidFormat

	// ErrBufferSizeMismatch is returned when provided data does not match
	// the packed image size exactly.
	ErrBufferSizeMismatch = pixbuf.ErrSizeMismatch

	// ErrMisalignedData is returned when provided data is not aligned for
	// the format's sample type.
	ErrMisalignedData = pixbuf.ErrMisalignedData

	// ErrOutOfBounds is returned when a row range is outside the image.
	ErrOutOfBounds = pixbuf.ErrOutOfBounds
)

// NewBuffer creates a zeroed pixel buffer with the given dimensions and
// format.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	return pixbuf.New(width, height, format)
}

// BufferFromBytes creates a Buffer borrowing existing data without copying.
// The slice length must equal the packed image size exactly, and for
// multi-byte sample types the data must be aligned for in-place
// reinterpretation. The caller must keep data valid for the Buffer's
// lifetime.
func BufferFromBytes(data []byte, width, height int, format Format) (*Buffer, error) {
	return pixbuf.FromBytes(data, width, height, format)
}

// FormatFor returns the canonical format storing the given number of
// interleaved channels with the given sample kind: grayscale for one
// channel, grayscale+alpha for two, RGB for three, RGBA for four. The
// second return value is false when no format matches (channels outside
// 1..4). Blue-first formats are never returned; select them explicitly.
func FormatFor(channels int, kind ScalarKind) (Format, bool) {
	return pixbuf.FormatFor(channels, kind)
}
