package pixmap

import (
	"os"

	"imcpng/pngerr"
)

// asciiRamp is the fixed 10-character density ramp, darkest to brightest
// (spec §4.7.7).
var asciiRamp = [10]byte{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// ToASCII projects the pixmap to one character per pixel from asciiRamp and
// overwrites the pixmap's data with the resulting single-channel buffer.
// If path is non-empty, each row is written to the file followed by a
// newline; opening the file failing yields IoError.
func (p *Pixmap) ToASCII(path string) error {
	out := make([]byte, p.Width*p.Height)
	idx := 0
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			out[idx] = asciiRamp[asciiIndex(p, row, col)]
			idx++
		}
	}

	p.Data = out
	p.NChannels = 1
	p.BitDepth = 8

	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return pngerr.Wrap(pngerr.IoError, err, "opening ASCII output file")
	}
	defer f.Close()

	line := make([]byte, p.Width+1)
	line[p.Width] = '\n'
	for row := 0; row < p.Height; row++ {
		copy(line, out[row*p.Width:(row+1)*p.Width])
		if _, err := f.Write(line); err != nil {
			return pngerr.Wrap(pngerr.IoError, err, "writing ASCII output file")
		}
	}
	return nil
}

// asciiIndex computes the ramp index for the pixel at (row, col), per the
// two luma rules of spec §4.7.7.
func asciiIndex(p *Pixmap, row, col int) int {
	const c = 0.193
	const rW, gW, bW = 0.2126, 0.7152, 0.0722

	px := p.PixelAt(row, col)
	var idx int
	if p.NChannels == 4 {
		luma := float64(px.A)/255.0 + c
		idx = 10 - (roundHalfUp(luma*10) - 1)
	} else {
		luma := rW*float64(px.R)/255.0 + gW*float64(px.G)/255.0 + bW*float64(px.B)/255.0
		idx = roundHalfUp(luma*10) - 1
	}
	return clampInt(0, 9, idx)
}
