// Package ndimage bridges strided multidimensional views and packed pixel
// buffers without copying.
//
// # Overview
//
// Numeric code wants images as arrays: shape (H, W) or (H, W, C), row-major,
// one scalar per element, indexed [row, column, channel]. Graphics code wants
// images as buffers: a flat byte slice of H rows, each W packed
// channel-interleaved pixels. ndimage converts between the two in both
// directions over the same memory, and falls back to explicit copies when the
// caller asks for them.
//
// # Quick Start
//
//	import "github.com/rust-cv/ndimage"
//
//	// Wrap 8-bit RGB pixels as a (H, W, 3) view. Zero-copy: writes through
//	// the view land in buf's bytes.
//	buf, _ := ndimage.NewBuffer(640, 480, ndimage.FormatRGB8)
//	v, _ := ndimage.AsView[uint8](buf)
//
//	// Red channel of every other row, as a strided sub-view. Filling it
//	// writes straight into buf.
//	red, _ := v.Slice(ndimage.Every(2))
//	red, _ = red.Pick(2, 0)
//	red.Fill(255)
//
//	// The full view is packed, so going back is zero-copy too. (AsBuffer
//	// on the strided red view would fail; ToBuffer would copy it.)
//	out, _ := ndimage.AsBuffer(v)
//	_ = out
//
// # Conversions
//
// As-prefixed functions (AsBuffer, AsView, AsStdImage, WrapStdImage) borrow:
// the result aliases the input's memory and the call is O(1). They fail with
// ErrNonContiguousLayout rather than copy behind the caller's back.
// To-prefixed functions (ToBuffer, ToView, ToStdImage, NewBufferFromImage)
// allocate fresh storage and copy element by element, accepting any stride
// arrangement.
//
// Conversion failures are reported through five sentinel errors —
// ErrShapeMismatch, ErrUnsupportedChannelCount, ErrUnsupportedPixelFormat,
// ErrNonContiguousLayout and ErrUnsupportedConversion — matched with
// errors.Is. Nothing is converted implicitly: no resampling, no color-space
// math, no channel reordering.
//
// # Interop
//
// Buffers share memory with the standard library's packed 8-bit image types
// (image.Gray, image.NRGBA, image.RGBA) and carry exactly the layout a WebGPU
// texture upload consumes; TextureFormat and UploadLayout produce the
// gputypes descriptors for that path.
//
// # Concurrency
//
// All conversions are pure functions over caller-owned memory. Distinct
// views and buffers may be used concurrently; aliased ones follow the usual
// rule of many readers or one writer.
package ndimage

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
