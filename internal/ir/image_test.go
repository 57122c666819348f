package ir

import "testing"

func TestFormatFor(t *testing.T) {
	tests := []struct {
		binary, gray bool
		want         Format
		magic, ext   string
	}{
		{false, false, FormatASCIIColor, "P3", ".ppm"},
		{false, true, FormatASCIIGray, "P2", ".pgm"},
		{true, false, FormatBinaryColor, "P6", ".ppm"},
		{true, true, FormatBinaryGray, "P5", ".pgm"},
	}
	for _, tc := range tests {
		f := FormatFor(tc.binary, tc.gray)
		if f != tc.want {
			t.Errorf("FormatFor(%v, %v) = %v, want %v", tc.binary, tc.gray, f, tc.want)
		}
		if f.Magic() != tc.magic || f.Extension() != tc.ext {
			t.Errorf("%v: magic %s ext %s, want %s %s", f, f.Magic(), f.Extension(), tc.magic, tc.ext)
		}
		if f.Binary() != tc.binary || f.Gray() != tc.gray {
			t.Errorf("%v: Binary=%v Gray=%v", f, f.Binary(), f.Gray())
		}
		if ParseMagic(tc.magic) != f {
			t.Errorf("ParseMagic(%s) = %v", tc.magic, ParseMagic(tc.magic))
		}
	}
	if ParseMagic("P4") != FormatUnknown {
		t.Error("P4 should be unknown")
	}
}

func TestChannels(t *testing.T) {
	img := &Image{}
	if len(img.Channels()) != 3 || len(img.Planes()) != 3 {
		t.Fatal("color image should expose three channels")
	}
	img.Grayscale = true
	if len(img.Channels()) != 1 || len(img.Planes()) != 3 {
		t.Fatal("grayscale image should emit one channel but keep three planes")
	}
	img.Release()
}
