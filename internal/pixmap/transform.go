package pixmap

import "imcpng/pngerr"

// ScaleMethod selects the resampling kernel used by Scale.
type ScaleMethod int

const (
	Nearest ScaleMethod = iota
	Bilinear
	Bicubic
)

// ToGrayscale computes a monochrome luminance L = 0.30R + 0.59G + 0.11B per
// pixel and writes (0,0,0,255-L) into a fresh RGBA pixmap. The source may be
// RGB or RGBA; the output is always four-channel RGBA (spec §4.7.5).
func (p *Pixmap) ToGrayscale() *Pixmap {
	const rW, gW, bW = 0.30, 0.59, 0.11

	out := New(p.Width, p.Height, 4, 8)
	idx := 0
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			px := p.PixelAt(row, col)
			l := rW*float64(px.R) + gW*float64(px.G) + bW*float64(px.B)
			a := clampInt(0, 255, 255-roundHalfUp(l))
			out.Data[idx] = 0
			out.Data[idx+1] = 0
			out.Data[idx+2] = 0
			out.Data[idx+3] = byte(a)
			idx += 4
		}
	}
	return out
}

// ToMonochrome would threshold the perceptual luma (spec §4.7.6) against
// lumaThreshold and replace each pixel with black or white. Specified but
// not required to be implemented in v1 — matching the original's
// imc_pixmap_to_monochrome, whose body is an empty stub.
func (p *Pixmap) ToMonochrome(lumaThreshold float64) (*Pixmap, error) {
	return nil, pngerr.New(pngerr.Unimplemented, "ToMonochrome is not implemented in v1")
}

// RotateCW rotates the pixmap 90 degrees clockwise into a freshly allocated
// pixmap with swapped width/height. Source (r,c) maps to dest (c, height-1-r)
// (spec §4.7.9).
func (p *Pixmap) RotateCW() *Pixmap {
	out := New(p.Height, p.Width, p.NChannels, p.BitDepth)
	pxSize := p.PixelSize()
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			dr := c
			dc := p.Height - 1 - r
			copyPixel(out, dr, dc, p, r, c, pxSize)
		}
	}
	return out
}

// RotateCCW rotates the pixmap 90 degrees counter-clockwise into a freshly
// allocated pixmap with swapped width/height. Source (r,c) maps to dest
// (width-1-c, r) (spec §4.7.9).
func (p *Pixmap) RotateCCW() *Pixmap {
	out := New(p.Height, p.Width, p.NChannels, p.BitDepth)
	pxSize := p.PixelSize()
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			dr := p.Width - 1 - c
			dc := r
			copyPixel(out, dr, dc, p, r, c, pxSize)
		}
	}
	return out
}

// copyPixel copies one whole pixel (pxSize bytes) from src(sr,sc) to dst(dr,dc).
func copyPixel(dst *Pixmap, dr, dc int, src *Pixmap, sr, sc, pxSize int) {
	dstOff := dr*dst.rowBytes() + dc*pxSize
	srcOff := sr*src.rowBytes() + sc*pxSize
	copy(dst.Data[dstOff:dstOff+pxSize], src.Data[srcOff:srcOff+pxSize])
}

// Scale resizes the pixmap to (width, height) independently per axis.
// Nearest downscales/upscales using normalized sampling at evenly spaced
// positions (spec §4.7.10). When one axis shrinks and the other grows, the
// shrinking axis is applied first. Bilinear and Bicubic are not implemented
// in v1.
func (p *Pixmap) Scale(width, height int, method ScaleMethod) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, pngerr.Newf(pngerr.InvalidArgument, "scale target %dx%d must be positive", width, height)
	}
	if method != Nearest {
		return nil, pngerr.New(pngerr.Unimplemented, "only nearest-neighbour scaling is implemented in v1")
	}

	cur := p
	if width < cur.Width {
		cur = scaleWidthNearest(cur, width)
	}
	if height < cur.Height {
		cur = scaleHeightNearest(cur, height)
	}
	if width > cur.Width {
		cur = scaleWidthNearest(cur, width)
	}
	if height > cur.Height {
		cur = scaleHeightNearest(cur, height)
	}
	return cur, nil
}

// Nearest-neighbour scaling samples through SampleNorm, which always
// promotes to an 8-bit Rgba; the scaled output is therefore always 8-bit per
// channel regardless of the source's bit depth.
func scaleWidthNearest(src *Pixmap, width int) *Pixmap {
	out := New(width, src.Height, src.NChannels, 8)
	for row := 0; row < src.Height; row++ {
		// SampleNorm picks round(ty*height), so row/height keeps each row in place.
		ty := float64(row) / float64(src.Height)
		for col := 0; col < width; col++ {
			tx := (float64(col) + 0.5) / float64(width)
			px := src.SampleNorm(tx, ty)
			writeRgbaLike(out, row, col, src.NChannels, px)
		}
	}
	return out
}

func scaleHeightNearest(src *Pixmap, height int) *Pixmap {
	out := New(src.Width, height, src.NChannels, 8)
	for row := 0; row < height; row++ {
		ty := (float64(row) + 0.5) / float64(height)
		for col := 0; col < src.Width; col++ {
			tx := (float64(col) + 0.5) / float64(src.Width)
			px := src.SampleNorm(tx, ty)
			writeRgbaLike(out, row, col, src.NChannels, px)
		}
	}
	return out
}

// writeRgbaLike writes px into out at (row,col), dropping the alpha channel
// when out is three-channel.
func writeRgbaLike(out *Pixmap, row, col, nChannels int, px Rgba) {
	base := row*out.rowBytes() + col*out.PixelSize()
	out.Data[base] = px.R
	out.Data[base+1] = px.G
	out.Data[base+2] = px.B
	if nChannels >= 4 {
		out.Data[base+3] = px.A
	}
}
