package ndimage

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format  Format
		want    gputypes.TextureFormat
		wantErr error
	}{
		{FormatGray8, gputypes.TextureFormatR8Unorm, nil},
		{FormatRGBA8, gputypes.TextureFormatRGBA8Unorm, nil},
		{FormatBGRA8, gputypes.TextureFormatBGRA8Unorm, nil},
		{FormatRGB8, gputypes.TextureFormatUndefined, ErrUnsupportedPixelFormat},
		{FormatGrayAlpha8, gputypes.TextureFormatUndefined, ErrUnsupportedPixelFormat},
		{FormatGray16, gputypes.TextureFormatUndefined, ErrUnsupportedPixelFormat},
		{FormatRGBAF32, gputypes.TextureFormatUndefined, ErrUnsupportedPixelFormat},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := TextureFormat(tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TextureFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUploadLayout(t *testing.T) {
	buf, err := NewBuffer(320, 240, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	layout, extent, err := UploadLayout(buf)
	if err != nil {
		t.Fatalf("UploadLayout() error = %v", err)
	}
	if layout.Offset != 0 {
		t.Errorf("Offset = %d, want 0", layout.Offset)
	}
	if layout.BytesPerRow != 1280 {
		t.Errorf("BytesPerRow = %d, want 1280", layout.BytesPerRow)
	}
	if layout.RowsPerImage != 240 {
		t.Errorf("RowsPerImage = %d, want 240", layout.RowsPerImage)
	}
	want := gputypes.Extent3D{Width: 320, Height: 240, DepthOrArrayLayers: 1}
	if extent != want {
		t.Errorf("extent = %+v, want %+v", extent, want)
	}
}

func TestUploadLayout_Gray8(t *testing.T) {
	buf, err := NewBuffer(7, 3, FormatGray8)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	layout, _, err := UploadLayout(buf)
	if err != nil {
		t.Fatalf("UploadLayout() error = %v", err)
	}
	// Packed rows: no 256-byte padding is ever introduced.
	if layout.BytesPerRow != 7 {
		t.Errorf("BytesPerRow = %d, want 7", layout.BytesPerRow)
	}
}

func TestUploadLayout_UnsupportedFormat(t *testing.T) {
	buf, err := NewBuffer(4, 4, FormatRGB8)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if _, _, err := UploadLayout(buf); !errors.Is(err, ErrUnsupportedPixelFormat) {
		t.Errorf("UploadLayout() error = %v, want ErrUnsupportedPixelFormat", err)
	}
}

func TestTextureDescriptor(t *testing.T) {
	buf, err := NewBuffer(64, 32, FormatBGRA8)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	desc, err := TextureDescriptor(buf, "swapchain-blit")
	if err != nil {
		t.Fatalf("TextureDescriptor() error = %v", err)
	}
	if desc.Label != "swapchain-blit" {
		t.Errorf("Label = %q, want %q", desc.Label, "swapchain-blit")
	}
	if desc.Size.Width != 64 || desc.Size.Height != 32 || desc.Size.DepthOrArrayLayers != 1 {
		t.Errorf("Size = %+v, want 64x32x1", desc.Size)
	}
	if desc.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format = %v, want BGRA8Unorm", desc.Format)
	}
	if desc.Dimension != gputypes.TextureDimension2D {
		t.Errorf("Dimension = %v, want 2D", desc.Dimension)
	}
	if desc.MipLevelCount != 1 || desc.SampleCount != 1 {
		t.Errorf("MipLevelCount/SampleCount = %d/%d, want 1/1", desc.MipLevelCount, desc.SampleCount)
	}
	wantUsage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if desc.Usage != wantUsage {
		t.Errorf("Usage = %v, want %v", desc.Usage, wantUsage)
	}

	if _, err := TextureDescriptor(mustBuffer(t, 2, 2, FormatRGBF32), "x"); !errors.Is(err, ErrUnsupportedPixelFormat) {
		t.Errorf("TextureDescriptor() error = %v, want ErrUnsupportedPixelFormat", err)
	}
}

func TestClampUint32(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, 0},
		{-5, 0},
		{640, 640},
		{1 << 40, ^uint32(0)},
	}

	for _, tt := range tests {
		if got := clampUint32(tt.in); got != tt.want {
			t.Errorf("clampUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func mustBuffer(t *testing.T, w, h int, format Format) *Buffer {
	t.Helper()
	buf, err := NewBuffer(w, h, format)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	return buf
}
