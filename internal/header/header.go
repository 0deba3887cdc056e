// Package header decodes and validates the PNG IHDR chunk payload.
package header

import (
	"encoding/binary"

	"imcpng/pngerr"
)

// ColorType is the PNG color-type byte (IHDR offset 9).
type ColorType uint8

const (
	Greyscale      ColorType = 0
	Truecolor      ColorType = 2
	Palette        ColorType = 3
	GreyscaleAlpha ColorType = 4
	TruecolorAlpha ColorType = 6
)

// maxDimension is (2^31)-1, the largest width/height the PNG spec allows.
const maxDimension = (1 << 31) - 1

// Header is the decoded, validated IHDR payload.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
	NChannels         int
}

// Decode parses and validates a 13-byte IHDR payload. See spec §4.3.
func Decode(data []byte) (Header, error) {
	if len(data) != 13 {
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "IHDR payload must be 13 bytes, got %d", len(data))
	}

	h := Header{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         ColorType(data[9]),
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}

	if h.Width == 0 || h.Width > maxDimension {
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "width %d out of range (1..%d)", h.Width, maxDimension)
	}
	if h.Height == 0 || h.Height > maxDimension {
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "height %d out of range (1..%d)", h.Height, maxDimension)
	}

	switch h.ColorType {
	case Truecolor:
		h.NChannels = 3
		if h.BitDepth != 8 && h.BitDepth != 16 {
			return Header{}, pngerr.Newf(pngerr.InvalidHeader, "truecolor requires bit depth 8 or 16, got %d", h.BitDepth)
		}
	case TruecolorAlpha:
		h.NChannels = 4
		if h.BitDepth != 8 && h.BitDepth != 16 {
			return Header{}, pngerr.Newf(pngerr.InvalidHeader, "truecolor+alpha requires bit depth 8 or 16, got %d", h.BitDepth)
		}
	case Greyscale, GreyscaleAlpha, Palette:
		return Header{}, pngerr.Newf(pngerr.UnsupportedColorType, "color type %d is not supported", h.ColorType)
	default:
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "unrecognized color type %d", h.ColorType)
	}

	if h.CompressionMethod != 0 {
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "unsupported compression method %d", h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "unsupported filter method %d", h.FilterMethod)
	}
	if h.InterlaceMethod == 1 {
		return Header{}, pngerr.New(pngerr.UnsupportedFeature, "interlaced (Adam7) PNGs are not supported")
	}
	if h.InterlaceMethod != 0 {
		return Header{}, pngerr.Newf(pngerr.InvalidHeader, "unrecognized interlace method %d", h.InterlaceMethod)
	}

	return h, nil
}

// ScanlineBytes returns ceil(n_channels * width * bit_depth / 8), the
// number of filtered-data bytes per scanline (excluding the filter-type byte).
func (h Header) ScanlineBytes() int {
	return (h.NChannels*int(h.Width)*int(h.BitDepth) + 7) / 8
}

// SampleStride is the byte distance between two adjacent pixels within a
// scanline: max(1, n_channels * bit_depth / 8).
func (h Header) SampleStride() int {
	s := (h.NChannels * int(h.BitDepth)) / 8
	if s < 1 {
		return 1
	}
	return s
}
