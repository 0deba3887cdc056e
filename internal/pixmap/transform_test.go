package pixmap

import "testing"

// stripes builds a 3-wide, 2-tall RGB pixmap whose red channel encodes the
// pixel's raster index (0..5), to make rotation mappings easy to verify.
func stripes() *Pixmap {
	p := New(3, 2, 3, 8)
	for i := 0; i < 6; i++ {
		p.Data[i*3] = byte(i)
	}
	return p
}

func TestRotateCW(t *testing.T) {
	p := stripes()
	out := p.RotateCW()
	if out.Width != 2 || out.Height != 3 {
		t.Fatalf("got %dx%d, want 2x3", out.Width, out.Height)
	}
	want := [][2]int{{3, 0}, {4, 1}, {5, 2}}
	for row, pair := range want {
		if got := out.PixelAt(row, 0).R; int(got) != pair[0] {
			t.Fatalf("row %d col 0: got %d, want %d", row, got, pair[0])
		}
		if got := out.PixelAt(row, 1).R; int(got) != pair[1] {
			t.Fatalf("row %d col 1: got %d, want %d", row, got, pair[1])
		}
	}
}

func TestRotateCCW(t *testing.T) {
	p := stripes()
	out := p.RotateCCW()
	if out.Width != 2 || out.Height != 3 {
		t.Fatalf("got %dx%d, want 2x3", out.Width, out.Height)
	}
	want := [][2]int{{2, 5}, {1, 4}, {0, 3}}
	for row, pair := range want {
		if got := out.PixelAt(row, 0).R; int(got) != pair[0] {
			t.Fatalf("row %d col 0: got %d, want %d", row, got, pair[0])
		}
		if got := out.PixelAt(row, 1).R; int(got) != pair[1] {
			t.Fatalf("row %d col 1: got %d, want %d", row, got, pair[1])
		}
	}
}

func TestToGrayscaleProducesRGBA(t *testing.T) {
	p := New(1, 1, 3, 8)
	copy(p.Data, []byte{255, 255, 255})
	out := p.ToGrayscale()
	if out.NChannels != 4 {
		t.Fatalf("NChannels = %d, want 4", out.NChannels)
	}
	px := out.PixelAt(0, 0)
	if px.R != 0 || px.G != 0 || px.B != 0 {
		t.Fatalf("got %+v, want black RGB", px)
	}
	if px.A != 0 {
		t.Fatalf("alpha = %d, want 0 for a white source", px.A)
	}
}

func TestToMonochromeUnimplemented(t *testing.T) {
	p := New(1, 1, 3, 8)
	if _, err := p.ToMonochrome(128); err == nil {
		t.Fatalf("expected Unimplemented error")
	}
}

func TestScaleRejectsNonPositive(t *testing.T) {
	p := New(2, 2, 3, 8)
	if _, err := p.Scale(0, 2, Nearest); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestScaleRejectsBilinear(t *testing.T) {
	p := New(2, 2, 3, 8)
	if _, err := p.Scale(4, 4, Bilinear); err == nil {
		t.Fatalf("expected Unimplemented error for Bilinear")
	}
}

func TestScaleUpsamplePreservesShape(t *testing.T) {
	p := checkerboard()
	out, err := p.Scale(4, 4, Nearest)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if out.Width != 4 || out.Height != 4 {
		t.Fatalf("got %dx%d, want 4x4", out.Width, out.Height)
	}
}

func TestScaleDownsamplePreservesShape(t *testing.T) {
	p := New(4, 4, 3, 8)
	out, err := p.Scale(2, 2, Nearest)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", out.Width, out.Height)
	}
}
