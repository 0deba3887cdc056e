// Package filter reverses the five PNG per-scanline filters (None, Sub, Up,
// Average, Paeth), turning the decompressed IDAT byte stream into a raw,
// densely packed pixel buffer.
package filter

import (
	"imcpng/internal/header"
	"imcpng/pngerr"
)

// kind is the filter-type byte prefixing each scanline in the decompressed
// stream. A small enumeration with a single switch in Reverse, replacing the
// function-pointer table of the original C implementation (spec §9).
type kind uint8

const (
	none kind = 0
	sub  kind = 1
	up   kind = 2
	avg  kind = 3
	paeth kind = 4
)

// Reverse undoes per-scanline filtering over the decompressed stream,
// producing a raw pixel buffer of height*scanlineBytes bytes.
//
// The decompressed stream is height records, each a 1-byte filter type
// followed by scanlineBytes bytes of filtered pixel data.
func Reverse(decompressed []byte, h header.Header) ([]byte, error) {
	scanlineBytes := h.ScanlineBytes()
	stride := h.SampleStride()
	height := int(h.Height)

	want := height * (1 + scanlineBytes)
	if len(decompressed) < want {
		return nil, pngerr.Newf(pngerr.TruncatedImage,
			"decompressed stream is %d bytes, need %d for %d scanlines", len(decompressed), want, height)
	}

	out := make([]byte, height*scanlineBytes)
	prev := make([]byte, scanlineBytes)
	curr := make([]byte, scanlineBytes)

	off := 0
	for row := 0; row < height; row++ {
		fm := kind(decompressed[off])
		off++
		copy(curr, decompressed[off:off+scanlineBytes])
		off += scanlineBytes

		switch fm {
		case none:
			// curr already holds the reconstructed bytes.
		case sub:
			for i := 0; i < scanlineBytes; i++ {
				a := left(curr, i, stride)
				curr[i] = curr[i] + a
			}
		case up:
			for i := 0; i < scanlineBytes; i++ {
				curr[i] = curr[i] + prev[i]
			}
		case avg:
			for i := 0; i < scanlineBytes; i++ {
				a := int(left(curr, i, stride))
				b := int(prev[i])
				curr[i] = curr[i] + byte((a+b)/2)
			}
		case paeth:
			for i := 0; i < scanlineBytes; i++ {
				a := left(curr, i, stride)
				b := prev[i]
				c := upLeft(prev, i, stride)
				curr[i] = curr[i] + paethPredictor(a, b, c)
			}
		default:
			return nil, pngerr.Newf(pngerr.InvalidFilter, "invalid scanline filter type %d at row %d", fm, row)
		}

		copy(out[row*scanlineBytes:(row+1)*scanlineBytes], curr)
		prev, curr = curr, prev
	}

	return out, nil
}

// left returns the already-reconstructed byte one sample stride to the left
// of index i within the (in-progress) current scanline, or 0 if out of range.
func left(curr []byte, i, stride int) byte {
	if i < stride {
		return 0
	}
	return curr[i-stride]
}

// upLeft returns the reconstructed byte one sample stride to the left of
// index i within the previous scanline, or 0 if out of range.
func upLeft(prev []byte, i, stride int) byte {
	if i < stride {
		return 0
	}
	return prev[i-stride]
}

// paethPredictor selects among a, b, c per the PNG spec, ties broken in the
// order written: a before b before c.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
