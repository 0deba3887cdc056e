// Package pixmap implements the decoded-image value type and the fixed set
// of transforms over it: sampling, alpha blending, grayscale reduction,
// ASCII-art projection, rotation, scaling, and PPM/ASCII writeback.
//
// Transforms are synchronous and side-effect-free except where an output
// file path is supplied (spec §4.7). Only bit_depth 8 and 16 are supported
// by transforms; the decoder may produce other bit depths but the kernel
// need not handle them (spec §4.7.1).
package pixmap

// Rgb is a three-channel 8-bit color value.
type Rgb struct {
	R, G, B uint8
}

// Rgba is a four-channel 8-bit color value.
type Rgba struct {
	R, G, B, A uint8
}

// Pixmap is the decoded pixel buffer and its shape: the product of decoding
// and the input/output of every transform.
type Pixmap struct {
	Width     int
	Height    int
	NChannels int
	BitDepth  uint8
	Data      []byte
	offset    int
}

// New allocates a zeroed Pixmap of the given shape. len(Data) equals
// height * ((n_channels*width*bit_depth + 7) / 8), per spec §3.
func New(width, height, nChannels int, bitDepth uint8) *Pixmap {
	rowBytes := (nChannels*width*int(bitDepth) + 7) / 8
	return &Pixmap{
		Width:     width,
		Height:    height,
		NChannels: nChannels,
		BitDepth:  bitDepth,
		Data:      make([]byte, rowBytes*height),
	}
}

// bytesPerSample returns 1 for bit_depth <= 8, 2 for bit_depth == 16.
func (p *Pixmap) bytesPerSample() int {
	if p.BitDepth > 8 {
		return 2
	}
	return 1
}

// PixelSize returns n_channels * (1 if bit_depth <= 8 else 2), per spec §4.7.1.
func (p *Pixmap) PixelSize() int {
	return p.NChannels * p.bytesPerSample()
}

// rowBytes is the tightly packed, unpadded byte width of one scanline.
func (p *Pixmap) rowBytes() int {
	return p.Width * p.PixelSize()
}

// channelAt reads the value of channel ch of the pixel at (row, col),
// promoted to an 8-bit sample. For 16-bit depth, the high byte is used,
// matching how most 16-bit PNG consumers downsample for 8-bit display.
func (p *Pixmap) channelAt(row, col, ch int) uint8 {
	bps := p.bytesPerSample()
	base := row*p.rowBytes() + col*p.PixelSize() + ch*bps
	return p.Data[base]
}

// PixelAt returns the pixel at (row, col) promoted to Rgba, with a=255 when
// the source has three channels. row and col must already be in range;
// callers needing bounds handling should use SampleNorm or SamplePos.
func (p *Pixmap) PixelAt(row, col int) Rgba {
	r := p.channelAt(row, col, 0)
	g := p.channelAt(row, col, 1)
	b := p.channelAt(row, col, 2)
	if p.NChannels >= 4 {
		a := p.channelAt(row, col, 3)
		return Rgba{r, g, b, a}
	}
	return Rgba{r, g, b, 255}
}

// Destroy releases the pixmap's backing buffer. In Go this simply drops the
// reference; there is no manual free/double-free hazard to guard against,
// unlike the systems-language original (spec §5, §9).
func (p *Pixmap) Destroy() {
	p.Data = nil
}

// clampF/lerp/clampInt — small numeric helpers lifted from the original's
// imc_clamp/imc_lerp pair (original_source/src/pixmap.c). clampF and clampInt
// are used by SampleNorm, SamplePos, and the grayscale/ASCII luma
// computations; lerp is not called anywhere in the package.

func clampF(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// roundHalfUp rounds to the nearest integer, with halves of non-negative
// values rounded up (2.5 becomes 3), not to even. Negative values are rounded
// symmetrically, so their halves move away from zero (-2.5 becomes -3); every
// caller in this package passes non-negative values.
func roundHalfUp(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}
