package pixbuf

import (
	"errors"
	"fmt"
	"unsafe"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixbuf: invalid format")

	// ErrSizeMismatch is returned when provided data does not match the
	// packed image size exactly.
	ErrSizeMismatch = errors.New("pixbuf: data size mismatch")

	// ErrMisalignedData is returned when provided data is not aligned for
	// the format's sample type.
	ErrMisalignedData = errors.New("pixbuf: data not aligned for format")

	// ErrOutOfBounds is returned when a row range is outside the image.
	ErrOutOfBounds = errors.New("pixbuf: rows out of bounds")
)

// Buffer is a packed, channel-interleaved pixel buffer.
//
// Rows are stored back to back with no padding, so the byte stride is
// always Format.RowBytes(width). A Buffer may own its storage (New, Clone)
// or borrow caller storage (FromBytes); writes through a borrowing Buffer
// are visible to the owner and vice versa.
type Buffer struct {
	data   []byte
	width  int
	height int
	format Format
}

// New creates a zeroed pixel buffer with the given dimensions and format.
func New(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &Buffer{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromBytes creates a Buffer borrowing existing data without copying.
// The slice length must equal the packed image size exactly, and for
// multi-byte sample types the data must be aligned for in-place
// reinterpretation. The caller must keep data valid for the Buffer's
// lifetime.
func FromBytes(data []byte, width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if want := format.ImageBytes(width, height); len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d %s (want %d)",
			ErrSizeMismatch, len(data), width, height, format, want)
	}
	if align := format.BytesPerChannel(); align > 1 {
		if uintptr(unsafe.Pointer(unsafe.SliceData(data)))%uintptr(align) != 0 {
			return nil, fmt.Errorf("%w: %s needs %d-byte alignment", ErrMisalignedData, format, align)
		}
	}

	return &Buffer{
		data:   data,
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer. The copy owns fresh storage.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Stride returns the number of bytes per row. Buffers are packed, so this
// is always Format.RowBytes(Width).
func (b *Buffer) Stride() int {
	return b.format.RowBytes(b.width)
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// Bytes returns the raw pixel data. Modifying it modifies the image.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Row returns the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.Stride()
	return b.data[y*stride : (y+1)*stride]
}

// Rows returns a buffer sharing storage with b, restricted to rows
// [y0, y1). Packed layout is preserved because the band spans full rows.
func (b *Buffer) Rows(y0, y1 int) (*Buffer, error) {
	if y0 < 0 || y1 > b.height || y0 >= y1 {
		return nil, fmt.Errorf("%w: [%d, %d) of %d rows", ErrOutOfBounds, y0, y1, b.height)
	}
	stride := b.Stride()

	return &Buffer{
		data:   b.data[y0*stride : y1*stride],
		width:  b.width,
		height: y1 - y0,
		format: b.format,
	}, nil
}

// Retag returns a buffer sharing storage with b under a different format
// tag. No bytes change; only the interpretation does, so the new format
// must have the same channel count and sample kind (RGB8 to BGR8, RGBA8 to
// BGRA8, and so on).
func (b *Buffer) Retag(format Format) (*Buffer, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if format.Channels() != b.format.Channels() || format.Kind() != b.format.Kind() {
		return nil, fmt.Errorf("%w: cannot retag %s as %s", ErrInvalidFormat, b.format, format)
	}

	return &Buffer{
		data:   b.data,
		width:  b.width,
		height: b.height,
		format: format,
	}, nil
}

// Pix8 interprets the pixel data as []uint8.
// Panics if the format's sample kind is not uint8.
func (b *Buffer) Pix8() []uint8 {
	if b.format.Kind() != KindUint8 {
		panic(fmt.Sprintf("pixbuf: %s buffer read as uint8", b.format))
	}
	return b.data
}

// Pix16 interprets the pixel data as []uint16 without copying.
// Panics if the format's sample kind is not uint16.
func (b *Buffer) Pix16() []uint16 {
	if b.format.Kind() != KindUint16 {
		panic(fmt.Sprintf("pixbuf: %s buffer read as uint16", b.format))
	}
	//nolint:gosec // alignment is checked at construction, length is exact
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b.data[0])), len(b.data)/2)
}

// PixF32 interprets the pixel data as []float32 without copying.
// Panics if the format's sample kind is not float32.
func (b *Buffer) PixF32() []float32 {
	if b.format.Kind() != KindFloat32 {
		panic(fmt.Sprintf("pixbuf: %s buffer read as float32", b.format))
	}
	//nolint:gosec // alignment is checked at construction, length is exact
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), len(b.data)/4)
}
