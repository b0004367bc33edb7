package ndimage

import "errors"

// Conversion errors. Every entry point returns exactly one of these kinds,
// possibly wrapped with detail; match with errors.Is.
var (
	// ErrShapeMismatch is returned when a view's dimensions cannot describe
	// the requested pixel layout: the rank is not 2 or 3, or an explicitly
	// requested format disagrees with the view's channel extent.
	ErrShapeMismatch = errors.New("ndimage: shape mismatch")

	// ErrUnsupportedChannelCount is returned when the channel extent is
	// outside 1 through 4.
	ErrUnsupportedChannelCount = errors.New("ndimage: unsupported channel count")

	// ErrUnsupportedPixelFormat is returned when a pixel format is unknown,
	// or when a buffer's format cannot be expressed in the requested target
	// (wrong sample type for the view's element type, or an image type with
	// no packed interleaved twin).
	ErrUnsupportedPixelFormat = errors.New("ndimage: unsupported pixel format")

	// ErrNonContiguousLayout is returned by zero-copy conversions when the
	// view's memory is not one packed row-major, channel-interleaved run.
	// Sharing is all or nothing: a partially aliasable view is rejected, not
	// silently copied.
	ErrNonContiguousLayout = errors.New("ndimage: non-contiguous layout")

	// ErrUnsupportedConversion is returned when the element types on the two
	// sides disagree. Conversions reinterpret layout and never convert
	// sample values.
	ErrUnsupportedConversion = errors.New("ndimage: unsupported conversion")
)
