package pixmap

import (
	"os"
	"path/filepath"
	"testing"
)

// Scenario 4 of spec §8: a 1x1 RGB pixmap writes an exact PPM header+payload.
func TestToPPMHeaderAndPayload(t *testing.T) {
	p := New(1, 1, 3, 8)
	copy(p.Data, []byte{0x12, 0x34, 0x56})

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := p.ToPPM(path, Rgb{}); err != nil {
		t.Fatalf("ToPPM: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := append([]byte("P6\n1 1\n255\n"), 0x12, 0x34, 0x56)
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToPPMBlendsAlpha(t *testing.T) {
	p := New(1, 1, 4, 8)
	copy(p.Data, []byte{0xFF, 0x00, 0x00, 0x00})

	path := filepath.Join(t.TempDir(), "out.ppm")
	bg := Rgb{0, 0, 255}
	if err := p.ToPPM(path, bg); err != nil {
		t.Fatalf("ToPPM: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := append([]byte("P6\n1 1\n255\n"), bg.R, bg.G, bg.B)
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
