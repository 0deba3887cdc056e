package pixmap

import (
	"bufio"
	"fmt"
	"os"

	"imcpng/pngerr"
)

// ToPPM writes a binary PPM (P6): header "P6\n<W> <H>\n<maxval>\n" followed
// by width*height tightly packed RGB triples in row-major order. If the
// source is RGBA, each pixel is alpha-blended against bg before writing
// (spec §4.7.8). Width and height are expressed in pixels.
func (p *Pixmap) ToPPM(path string, bg Rgb) error {
	f, err := os.Create(path)
	if err != nil {
		return pngerr.Wrap(pngerr.IoError, err, "opening PPM output file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	maxVal := (1 << p.BitDepth) - 1

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", p.Width, p.Height, maxVal); err != nil {
		return pngerr.Wrap(pngerr.IoError, err, "writing PPM header")
	}

	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			px := p.PixelAt(row, col)
			rgb := Rgb{px.R, px.G, px.B}
			if p.NChannels >= 4 {
				rgb = Blend(rgb, bg, px.A)
			}
			if _, err := w.Write([]byte{rgb.R, rgb.G, rgb.B}); err != nil {
				return pngerr.Wrap(pngerr.IoError, err, "writing PPM pixel data")
			}
		}
	}

	if err := w.Flush(); err != nil {
		return pngerr.Wrap(pngerr.IoError, err, "flushing PPM output")
	}
	return nil
}
