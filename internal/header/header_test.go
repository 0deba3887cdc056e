package header

import (
	"testing"

	"imcpng/pngerr"
)

func ihdrBytes(width, height uint32, bitDepth uint8, colorType ColorType, comp, filt, interlace uint8) []byte {
	b := make([]byte, 13)
	b[0] = byte(width >> 24)
	b[1] = byte(width >> 16)
	b[2] = byte(width >> 8)
	b[3] = byte(width)
	b[4] = byte(height >> 24)
	b[5] = byte(height >> 16)
	b[6] = byte(height >> 8)
	b[7] = byte(height)
	b[8] = bitDepth
	b[9] = byte(colorType)
	b[10] = comp
	b[11] = filt
	b[12] = interlace
	return b
}

func TestDecodeTruecolor(t *testing.T) {
	h, err := Decode(ihdrBytes(4, 3, 8, Truecolor, 0, 0, 0))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h.Width != 4 || h.Height != 3 || h.NChannels != 3 {
		t.Fatalf("got %+v", h)
	}
}

func TestDecodeTruecolorAlpha16Bit(t *testing.T) {
	h, err := Decode(ihdrBytes(1, 1, 16, TruecolorAlpha, 0, 0, 0))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h.NChannels != 4 || h.BitDepth != 16 {
		t.Fatalf("got %+v", h)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := Decode(make([]byte, 12)); err == nil {
		t.Fatalf("expected error for short payload")
	}
}

func TestDecodeRejectsZeroWidth(t *testing.T) {
	_, err := Decode(ihdrBytes(0, 1, 8, Truecolor, 0, 0, 0))
	if !pngerr.Is(err, pngerr.InvalidHeader) {
		t.Fatalf("got %v, want InvalidHeader", err)
	}
}

func TestDecodeRejectsUnsupportedColorType(t *testing.T) {
	_, err := Decode(ihdrBytes(1, 1, 8, Greyscale, 0, 0, 0))
	if !pngerr.Is(err, pngerr.UnsupportedColorType) {
		t.Fatalf("got %v, want UnsupportedColorType", err)
	}
}

func TestDecodeRejectsBadBitDepth(t *testing.T) {
	_, err := Decode(ihdrBytes(1, 1, 4, Truecolor, 0, 0, 0))
	if !pngerr.Is(err, pngerr.InvalidHeader) {
		t.Fatalf("got %v, want InvalidHeader", err)
	}
}

func TestDecodeRejectsInterlace(t *testing.T) {
	_, err := Decode(ihdrBytes(1, 1, 8, Truecolor, 0, 0, 1))
	if !pngerr.Is(err, pngerr.UnsupportedFeature) {
		t.Fatalf("got %v, want UnsupportedFeature", err)
	}
}

func TestScanlineBytesAndSampleStride(t *testing.T) {
	h, err := Decode(ihdrBytes(5, 1, 8, Truecolor, 0, 0, 0))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got, want := h.ScanlineBytes(), 15; got != want {
		t.Fatalf("ScanlineBytes() = %d, want %d", got, want)
	}
	if got, want := h.SampleStride(), 3; got != want {
		t.Fatalf("SampleStride() = %d, want %d", got, want)
	}
}
