package ndimage

import (
	"fmt"
	"unsafe"

	"github.com/rust-cv/ndimage/internal/ndview"
	"github.com/rust-cv/ndimage/internal/pixbuf"
)

// AsBuffer wraps a view's memory as a pixel buffer without copying. The
// format is inferred from the element type and the channel extent:
// grayscale for one channel, grayscale+alpha for two, RGB for three, RGBA
// for four. Blue-first formats are never inferred; use AsBufferFormat.
//
// The view must have rank 2 (height, width) or 3 (height, width, channels)
// and address one packed row-major, channel-interleaved run of memory.
// Sharing is all or nothing: a view that does not alias cleanly is rejected
// with ErrNonContiguousLayout, never silently copied.
//
// The returned buffer borrows the view's storage; writes through either
// side are visible through the other.
func AsBuffer[T Scalar](v *View[T]) (*Buffer, error) {
	h, w, c, err := imageDims(v.Shape())
	if err != nil {
		return nil, err
	}
	if err := checkChannels(c); err != nil {
		return nil, err
	}
	format, _ := pixbuf.FormatFor(c, kindOf[T]()) // both inputs validated, cannot miss
	return shareBuffer(v, format, w, h)
}

// AsBufferFormat is AsBuffer with an explicit target format, for layouts
// inference never picks (FormatBGR8, FormatBGRA8). The format's channel
// count must equal the view's channel extent and its sample kind must equal
// the view's element type; sample values are reinterpreted, never reordered.
func AsBufferFormat[T Scalar](v *View[T], format Format) (*Buffer, error) {
	h, w, err := checkFormatTarget[T](v, format)
	if err != nil {
		return nil, err
	}
	return shareBuffer(v, format, w, h)
}

// AsView wraps a buffer's memory as a strided view without copying. The
// shape is (height, width) for single-channel formats and (height, width,
// channels) otherwise, with packed row-major strides. The channel axis
// follows storage order: for blue-first formats channel 0 is blue.
//
// The element type must match the buffer format's sample kind exactly;
// an 8-bit buffer cannot be viewed as uint16. Buffers are always packed,
// so layout never prevents this direction.
//
// The returned view borrows the buffer's storage; writes through either
// side are visible through the other.
func AsView[T Scalar](b *Buffer) (*View[T], error) {
	if got, want := kindOf[T](), b.Format().Kind(); got != want {
		return nil, fmt.Errorf("%w: %s buffer viewed with %s elements",
			ErrUnsupportedPixelFormat, b.Format(), got)
	}
	w, h := b.Bounds()
	if c := b.Format().Channels(); c > 1 {
		return ndview.Wrap(bufferScalars[T](b), h, w, c)
	}
	return ndview.Wrap(bufferScalars[T](b), h, w)
}

// ToBuffer copies a view's elements into a fresh pixel buffer. Format
// inference and shape rules match AsBuffer; only the layout precondition is
// waived, so arbitrarily strided views (sub-slices, picked windows) are
// accepted. Elements are visited in row-major, channel-fastest order and
// transferred exactly; values are never rescaled.
func ToBuffer[T Scalar](v *View[T]) (*Buffer, error) {
	h, w, c, err := imageDims(v.Shape())
	if err != nil {
		return nil, err
	}
	if err := checkChannels(c); err != nil {
		return nil, err
	}
	format, _ := pixbuf.FormatFor(c, kindOf[T]())
	return copyBuffer(v, format, w, h)
}

// ToBufferFormat is ToBuffer with an explicit target format, under
// AsBufferFormat's matching rules.
func ToBufferFormat[T Scalar](v *View[T], format Format) (*Buffer, error) {
	h, w, err := checkFormatTarget[T](v, format)
	if err != nil {
		return nil, err
	}
	return copyBuffer(v, format, w, h)
}

// ToView copies a buffer's pixels into a view with fresh packed storage.
// Shape and element type rules match AsView. The result does not alias the
// buffer: later writes on either side stay invisible to the other.
func ToView[T Scalar](b *Buffer) (*View[T], error) {
	shared, err := AsView[T](b)
	if err != nil {
		return nil, err
	}
	Logger().Debug("ndimage: copying buffer into view",
		"format", b.Format().String(), "shape", shared.Shape(), "bytes", b.ByteSize())
	return shared.Compact(), nil
}

// imageDims splits a view shape into height, width, and channel extents.
// Rank 2 means a single implicit channel.
func imageDims(s Shape) (height, width, channels int, err error) {
	switch len(s) {
	case 2:
		return s[0], s[1], 1, nil
	case 3:
		return s[0], s[1], s[2], nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: rank %d view cannot describe an image (want 2 or 3)",
			ErrShapeMismatch, len(s))
	}
}

// checkChannels enforces the supported interleaved channel counts.
func checkChannels(c int) error {
	if c < 1 || c > 4 {
		return fmt.Errorf("%w: %d channels (want 1 to 4)", ErrUnsupportedChannelCount, c)
	}
	return nil
}

// checkFormatTarget validates an explicitly requested format against the
// view's shape and element type, returning the image extents.
func checkFormatTarget[T Scalar](v *View[T], format Format) (height, width int, err error) {
	h, w, c, err := imageDims(v.Shape())
	if err != nil {
		return 0, 0, err
	}
	if err := checkChannels(c); err != nil {
		return 0, 0, err
	}
	if !format.IsValid() {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedPixelFormat, format)
	}
	if format.Channels() != c {
		return 0, 0, fmt.Errorf("%w: %d-channel view as %s", ErrShapeMismatch, c, format)
	}
	if format.Kind() != kindOf[T]() {
		return 0, 0, fmt.Errorf("%w: %s elements as %s samples",
			ErrUnsupportedConversion, kindOf[T](), format.Kind())
	}
	return h, w, nil
}

// shareBuffer wraps the view's storage window as a packed buffer. The
// window must be one packed channels-fastest run.
func shareBuffer[T Scalar](v *View[T], format Format, width, height int) (*Buffer, error) {
	if !v.IsContiguous() {
		return nil, fmt.Errorf("%w: strides %v for shape %v",
			ErrNonContiguousLayout, v.Strides(), v.Shape())
	}
	window := v.Data()[:v.NumElements()]
	return pixbuf.FromBytes(scalarBytes(window), width, height, format)
}

// copyBuffer lands the view's elements in a fresh packed buffer, visiting
// them in row-major channel-fastest order.
func copyBuffer[T Scalar](v *View[T], format Format, width, height int) (*Buffer, error) {
	compact := v.Compact()
	Logger().Debug("ndimage: copying view into buffer",
		"shape", v.Shape(), "format", format.String(), "bytes", format.ImageBytes(width, height))
	return pixbuf.FromBytes(scalarBytes(compact.Data()), width, height, format)
}

// kindOf reports the sample kind stored by the element type T.
func kindOf[T Scalar]() pixbuf.ScalarKind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return pixbuf.KindUint8
	case uint16:
		return pixbuf.KindUint16
	case float32:
		return pixbuf.KindFloat32
	default:
		panic("ndimage: unsupported element type")
	}
}

// bufferScalars reinterprets the buffer's packed bytes as the view element
// type. The kinds must already match.
func bufferScalars[T Scalar](b *Buffer) []T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(b.Pix8()).([]T)
	case uint16:
		return any(b.Pix16()).([]T)
	default:
		return any(b.PixF32()).([]T)
	}
}

// scalarBytes reinterprets a packed element slice as raw bytes.
func scalarBytes[T Scalar](s []T) []byte {
	//nolint:gosec // length is exact, element types have no pointers
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}
