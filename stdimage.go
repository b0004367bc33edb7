package ndimage

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/rust-cv/ndimage/internal/pixbuf"
)

// WrapStdImage borrows a standard library image's pixels as a Buffer
// without copying. Supported types: *image.Gray (FormatGray8) and
// *image.NRGBA or *image.RGBA (FormatRGBA8; both carry four interleaved
// 8-bit samples, and alpha semantics pass through untouched).
//
// The image's stride must equal its packed row size; sub-images with wider
// strides fail with ErrNonContiguousLayout. The 16-bit standard types store
// big-endian samples, which native-endian buffers cannot alias, so they and
// every other type (YCbCr, Paletted, CMYK, Alpha) fail with
// ErrUnsupportedPixelFormat; use NewBufferFromImage where a copy is
// acceptable.
func WrapStdImage(img image.Image) (*Buffer, error) {
	switch im := img.(type) {
	case *image.Gray:
		return wrapPix(im.Pix, im.Stride, im.Rect, FormatGray8)
	case *image.NRGBA:
		return wrapPix(im.Pix, im.Stride, im.Rect, FormatRGBA8)
	case *image.RGBA:
		return wrapPix(im.Pix, im.Stride, im.Rect, FormatRGBA8)
	case *image.Gray16, *image.NRGBA64, *image.RGBA64:
		return nil, fmt.Errorf("%w: %T stores big-endian samples", ErrUnsupportedPixelFormat, img)
	default:
		return nil, fmt.Errorf("%w: %T is not a packed interleaved image", ErrUnsupportedPixelFormat, img)
	}
}

// AsStdImage wraps a buffer's pixels as a standard library image without
// copying: FormatGray8 becomes *image.Gray and FormatRGBA8 becomes
// *image.NRGBA, sharing the buffer's storage. Every other format has no
// packed native-endian standard twin and fails with
// ErrUnsupportedPixelFormat; use ToStdImage where a copy is acceptable.
func AsStdImage(b *Buffer) (image.Image, error) {
	w, h := b.Bounds()
	rect := image.Rect(0, 0, w, h)

	switch b.Format() {
	case FormatGray8:
		return &image.Gray{Pix: b.Bytes(), Stride: b.Stride(), Rect: rect}, nil
	case FormatRGBA8:
		return &image.NRGBA{Pix: b.Bytes(), Stride: b.Stride(), Rect: rect}, nil
	default:
		return nil, fmt.Errorf("%w: %s has no standard image twin", ErrUnsupportedPixelFormat, b.Format())
	}
}

// NewBufferFromImage copies a standard library image's pixels into a fresh
// Buffer. The zero-copy set of WrapStdImage is accepted with any stride,
// plus the 16-bit types: *image.Gray16 becomes FormatGray16 and
// *image.NRGBA64 or *image.RGBA64 become FormatRGBA16, with big-endian
// samples decoded to native order. Decoding byte order is an exact-width
// value transfer; sample values are never rescaled or color-converted, so
// types that would need a color model (YCbCr, Paletted, CMYK, Alpha) fail
// with ErrUnsupportedPixelFormat.
func NewBufferFromImage(img image.Image) (*Buffer, error) {
	switch im := img.(type) {
	case *image.Gray:
		return copyPix(im.Pix, im.Stride, im.Rect, FormatGray8)
	case *image.NRGBA:
		return copyPix(im.Pix, im.Stride, im.Rect, FormatRGBA8)
	case *image.RGBA:
		return copyPix(im.Pix, im.Stride, im.Rect, FormatRGBA8)
	case *image.Gray16:
		return copyPix16(im.Pix, im.Stride, im.Rect, FormatGray16)
	case *image.NRGBA64:
		return copyPix16(im.Pix, im.Stride, im.Rect, FormatRGBA16)
	case *image.RGBA64:
		return copyPix16(im.Pix, im.Stride, im.Rect, FormatRGBA16)
	default:
		return nil, fmt.Errorf("%w: %T would need color conversion", ErrUnsupportedPixelFormat, img)
	}
}

// ToStdImage copies a buffer's pixels into a fresh standard library image:
// FormatGray8 to *image.Gray, FormatRGBA8 to *image.NRGBA, FormatGray16 to
// *image.Gray16, and FormatRGBA16 to *image.NRGBA64, encoding 16-bit
// samples back to the standard types' big-endian order. Formats with no
// standard twin of equal channel layout (two- and three-channel, blue-first,
// float) fail with ErrUnsupportedPixelFormat.
func ToStdImage(b *Buffer) (image.Image, error) {
	w, h := b.Bounds()
	rect := image.Rect(0, 0, w, h)

	switch b.Format() {
	case FormatGray8:
		gray := image.NewGray(rect)
		copy(gray.Pix, b.Bytes())
		return gray, nil
	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		copy(nrgba.Pix, b.Bytes())
		return nrgba, nil
	case FormatGray16:
		gray16 := image.NewGray16(rect)
		encodeSamplesBE(gray16.Pix, gray16.Stride, b)
		return gray16, nil
	case FormatRGBA16:
		nrgba64 := image.NewNRGBA64(rect)
		encodeSamplesBE(nrgba64.Pix, nrgba64.Stride, b)
		return nrgba64, nil
	default:
		return nil, fmt.Errorf("%w: %s has no standard image twin", ErrUnsupportedPixelFormat, b.Format())
	}
}

// wrapPix borrows a standard image's pixel window as a packed buffer.
// Pix[0] is the first pixel of the image's rectangle for both full images
// and sub-images.
func wrapPix(pix []byte, stride int, rect image.Rectangle, format Format) (*Buffer, error) {
	w, h := rect.Dx(), rect.Dy()
	if stride != format.RowBytes(w) {
		return nil, fmt.Errorf("%w: stride %d for width %d (packed is %d)",
			ErrNonContiguousLayout, stride, w, format.RowBytes(w))
	}
	need := format.ImageBytes(w, h)
	if len(pix) < need {
		return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d", ErrBufferSizeMismatch, len(pix), w, h)
	}
	return pixbuf.FromBytes(pix[:need], w, h, format)
}

// copyPix lands a standard image's 8-bit rows in a fresh packed buffer,
// row by row so padded strides are handled.
func copyPix(pix []byte, stride int, rect image.Rectangle, format Format) (*Buffer, error) {
	w, h := rect.Dx(), rect.Dy()
	buf, err := pixbuf.New(w, h, format)
	if err != nil {
		return nil, err
	}
	rowBytes := buf.Stride()
	for y := 0; y < h; y++ {
		copy(buf.Row(y), pix[y*stride:y*stride+rowBytes])
	}
	return buf, nil
}

// copyPix16 lands a standard 16-bit image's rows in a fresh packed buffer,
// decoding each big-endian sample to native order.
func copyPix16(pix []byte, stride int, rect image.Rectangle, format Format) (*Buffer, error) {
	w, h := rect.Dx(), rect.Dy()
	buf, err := pixbuf.New(w, h, format)
	if err != nil {
		return nil, err
	}
	samples := buf.Pix16()
	perRow := w * format.Channels()
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for i := 0; i < perRow; i++ {
			samples[y*perRow+i] = binary.BigEndian.Uint16(row[i*2:])
		}
	}
	return buf, nil
}

// encodeSamplesBE writes a 16-bit buffer's samples into a standard image's
// Pix in big-endian order.
func encodeSamplesBE(pix []byte, stride int, b *Buffer) {
	samples := b.Pix16()
	w, h := b.Bounds()
	perRow := w * b.Format().Channels()
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for i := 0; i < perRow; i++ {
			binary.BigEndian.PutUint16(row[i*2:], samples[y*perRow+i])
		}
	}
}
