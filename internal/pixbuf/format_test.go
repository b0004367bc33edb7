package pixbuf

import "testing"

func TestFormat_BytesPerPixel(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{FormatGray8, 1},
		{FormatGrayAlpha8, 2},
		{FormatRGB8, 3},
		{FormatRGBA8, 4},
		{FormatBGR8, 3},
		{FormatBGRA8, 4},
		{FormatGray16, 2},
		{FormatGrayAlpha16, 4},
		{FormatRGB16, 6},
		{FormatRGBA16, 8},
		{FormatGrayF32, 4},
		{FormatGrayAlphaF32, 8},
		{FormatRGBF32, 12},
		{FormatRGBAF32, 16},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.expected {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_Channels(t *testing.T) {
	tests := []struct {
		format   Format
		expected int
	}{
		{FormatGray8, 1},
		{FormatGrayAlpha8, 2},
		{FormatRGB8, 3},
		{FormatRGBA8, 4},
		{FormatBGR8, 3},
		{FormatBGRA8, 4},
		{FormatGray16, 1},
		{FormatRGBA16, 4},
		{FormatGrayF32, 1},
		{FormatRGBAF32, 4},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Channels(); got != tt.expected {
				t.Errorf("Channels() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFormat_Kind(t *testing.T) {
	tests := []struct {
		format   Format
		expected ScalarKind
	}{
		{FormatGray8, KindUint8},
		{FormatBGRA8, KindUint8},
		{FormatGray16, KindUint16},
		{FormatRGB16, KindUint16},
		{FormatGrayF32, KindFloat32},
		{FormatRGBAF32, KindFloat32},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Kind(); got != tt.expected {
				t.Errorf("Kind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatGray8, false},
		{FormatGrayAlpha8, true},
		{FormatRGB8, false},
		{FormatRGBA8, true},
		{FormatBGR8, false},
		{FormatBGRA8, true},
		{FormatRGBA16, true},
		{FormatRGBF32, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.HasAlpha(); got != tt.expected {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_BlueFirst(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatRGB8, false},
		{FormatRGBA8, false},
		{FormatBGR8, true},
		{FormatBGRA8, true},
		{FormatRGBAF32, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BlueFirst(); got != tt.expected {
				t.Errorf("BlueFirst() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormat_RowAndImageBytes(t *testing.T) {
	if got := FormatRGB8.RowBytes(4); got != 12 {
		t.Errorf("RowBytes(4) = %d, want 12", got)
	}
	if got := FormatRGB8.ImageBytes(4, 2); got != 24 {
		t.Errorf("ImageBytes(4, 2) = %d, want 24", got)
	}
	if got := FormatRGBA16.ImageBytes(3, 3); got != 72 {
		t.Errorf("ImageBytes(3, 3) = %d, want 72", got)
	}
}

func TestFormat_IsValid(t *testing.T) {
	if !FormatGray8.IsValid() {
		t.Error("FormatGray8.IsValid() = false, want true")
	}
	if !FormatRGBAF32.IsValid() {
		t.Error("FormatRGBAF32.IsValid() = false, want true")
	}
	if Format(200).IsValid() {
		t.Error("Format(200).IsValid() = true, want false")
	}
	if Format(200).Channels() != 0 {
		t.Errorf("Format(200).Channels() = %d, want 0", Format(200).Channels())
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		channels int
		kind     ScalarKind
		want     Format
		ok       bool
	}{
		{1, KindUint8, FormatGray8, true},
		{2, KindUint8, FormatGrayAlpha8, true},
		{3, KindUint8, FormatRGB8, true},
		{4, KindUint8, FormatRGBA8, true},
		{1, KindUint16, FormatGray16, true},
		{2, KindUint16, FormatGrayAlpha16, true},
		{3, KindUint16, FormatRGB16, true},
		{4, KindUint16, FormatRGBA16, true},
		{1, KindFloat32, FormatGrayF32, true},
		{2, KindFloat32, FormatGrayAlphaF32, true},
		{3, KindFloat32, FormatRGBF32, true},
		{4, KindFloat32, FormatRGBAF32, true},
		{0, KindUint8, 0, false},
		{5, KindUint8, 0, false},
		{3, ScalarKind(9), 0, false},
	}

	for _, tt := range tests {
		got, ok := FormatFor(tt.channels, tt.kind)
		if ok != tt.ok {
			t.Errorf("FormatFor(%d, %v) ok = %v, want %v", tt.channels, tt.kind, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("FormatFor(%d, %v) = %v, want %v", tt.channels, tt.kind, got, tt.want)
		}
	}
}

func TestFormatFor_NeverInfersBlueFirst(t *testing.T) {
	for channels := 1; channels <= 4; channels++ {
		for _, kind := range []ScalarKind{KindUint8, KindUint16, KindFloat32} {
			f, ok := FormatFor(channels, kind)
			if !ok {
				t.Fatalf("FormatFor(%d, %v) unexpectedly failed", channels, kind)
			}
			if f.BlueFirst() {
				t.Errorf("FormatFor(%d, %v) = %v, inferred a blue-first format", channels, kind, f)
			}
		}
	}
}

func TestScalarKind_Size(t *testing.T) {
	tests := []struct {
		kind ScalarKind
		size int
	}{
		{KindUint8, 1},
		{KindUint16, 2},
		{KindFloat32, 4},
	}

	for _, tt := range tests {
		if got := tt.kind.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.kind, got, tt.size)
		}
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatGray8, "Gray8"},
		{FormatBGRA8, "BGRA8"},
		{FormatRGBA16, "RGBA16"},
		{FormatGrayAlphaF32, "GrayAlphaF32"},
		{Format(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
