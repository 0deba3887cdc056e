package pixmap

import "testing"

func TestNewAllocatesTightlyPacked(t *testing.T) {
	p := New(4, 3, 3, 8)
	if got, want := len(p.Data), 3*4*3; got != want {
		t.Fatalf("len(Data) = %d, want %d", got, want)
	}
}

func TestPixelAtRGB(t *testing.T) {
	p := New(2, 1, 3, 8)
	copy(p.Data, []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60})
	got := p.PixelAt(0, 1)
	want := Rgba{0x40, 0x50, 0x60, 255}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPixelAtRGBA(t *testing.T) {
	p := New(1, 1, 4, 8)
	copy(p.Data, []byte{0x01, 0x02, 0x03, 0x04})
	got := p.PixelAt(0, 0)
	want := Rgba{0x01, 0x02, 0x03, 0x04}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPixelSizeAndRowBytes(t *testing.T) {
	p := New(4, 2, 3, 16)
	if got, want := p.PixelSize(), 6; got != want {
		t.Fatalf("PixelSize() = %d, want %d", got, want)
	}
	if got, want := p.rowBytes(), 24; got != want {
		t.Fatalf("rowBytes() = %d, want %d", got, want)
	}
}

func TestDestroyClearsData(t *testing.T) {
	p := New(1, 1, 3, 8)
	p.Destroy()
	if p.Data != nil {
		t.Fatalf("Data not cleared after Destroy")
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{2.5: 3, 2.4: 2, -2.5: -3, 0.5: 1, 0: 0}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Fatalf("roundHalfUp(%v) = %d, want %d", in, got, want)
		}
	}
}
