package ndimage

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
)

// TextureFormat returns the WebGPU texture format whose texel layout matches
// f byte for byte, so a Buffer's Bytes() can be handed to a WriteTexture-style
// API without repacking.
//
// Only Gray8, RGBA8 and BGRA8 have portable equivalents (R8Unorm, RGBA8Unorm
// and BGRA8Unorm). WebGPU has no 24-bit packed color, no two-channel unorm
// that decodes as gray+alpha, and 16-bit/float color support varies by
// adapter; every other format returns TextureFormatUndefined with
// ErrUnsupportedPixelFormat.
func TextureFormat(f Format) (gputypes.TextureFormat, error) {
	switch f {
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm, nil
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm, nil
	default:
		return gputypes.TextureFormatUndefined,
			fmt.Errorf("%w: %s has no WebGPU texture equivalent", ErrUnsupportedPixelFormat, f)
	}
}

// UploadLayout describes b for a queue texture write: the data layout of
// b.Bytes() and the texel extent it covers. Buffers are packed, so
// BytesPerRow is exactly width times bytes-per-pixel with no padding; callers
// whose backend requires 256-byte row alignment must repack themselves.
//
// Fails with ErrUnsupportedPixelFormat when b's format has no WebGPU
// equivalent (see TextureFormat).
func UploadLayout(b *Buffer) (gputypes.TextureDataLayout, gputypes.Extent3D, error) {
	if _, err := TextureFormat(b.Format()); err != nil {
		return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, err
	}
	layout := gputypes.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  clampUint32(b.Stride()),
		RowsPerImage: clampUint32(b.Height()),
	}
	extent := gputypes.Extent3D{
		Width:              clampUint32(b.Width()),
		Height:             clampUint32(b.Height()),
		DepthOrArrayLayers: 1,
	}
	return layout, extent, nil
}

// TextureDescriptor builds a 2-D sampled+copyable texture descriptor sized
// and formatted for b. The usage covers the common upload-and-sample path
// (TextureBinding | CopyDst); callers needing storage or render-attachment
// usage should adjust the returned descriptor before creating the texture.
func TextureDescriptor(b *Buffer, label string) (*gputypes.TextureDescriptor, error) {
	format, err := TextureFormat(b.Format())
	if err != nil {
		return nil, err
	}
	return &gputypes.TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              clampUint32(b.Width()),
			Height:             clampUint32(b.Height()),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}, nil
}

// clampUint32 converts a non-negative int to uint32, saturating instead of
// wrapping. Buffer dimensions are validated positive at construction, so in
// practice only absurd widths ever clamp.
func clampUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
