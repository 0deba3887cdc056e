// Command decoder is a thin CLI exercising the imcpng library end to end:
// open a PNG, parse it, and write either a PPM or an ASCII-art rendering.
// Out of scope per the library's spec — it exists only to drive the I/O
// contract described there.
package main

import (
	"flag"
	"log"

	"imcpng"
)

func main() {
	var (
		pngPath = flag.String("png", "", "PNG file to decode")
		out     = flag.String("out", "out.ppm", "output file path")
		mode    = flag.String("mode", "ppm", "output mode: ppm or ascii")
		strict  = flag.Bool("strict-crc", false, "verify chunk CRCs while decoding")
	)
	flag.Parse()

	if *pngPath == "" {
		log.Fatal("usage: decoder -png <file> [-out <file>] [-mode ppm|ascii] [-strict-crc]")
	}

	var opts []imcpng.Option
	if *strict {
		opts = append(opts, imcpng.WithStrictCRC())
	}

	h, err := imcpng.Open(*pngPath, opts...)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer h.Close()

	pm, err := h.Parse()
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	switch *mode {
	case "ppm":
		bg := imcpng.Rgb{R: 0, G: 0, B: 0}
		if err := pm.ToPPM(*out, bg); err != nil {
			log.Fatalf("write ppm: %v", err)
		}
	case "ascii":
		if err := pm.ToASCII(*out); err != nil {
			log.Fatalf("write ascii: %v", err)
		}
	default:
		log.Fatalf("unknown -mode %q, want ppm or ascii", *mode)
	}

	log.Printf("decoded %dx%d image, wrote %s", pm.Width, pm.Height, *out)
}
