// Package imcpng implements a PNG image decoder paired with a pixmap
// processing kernel: magic validation, chunk framing, IHDR interpretation,
// IDAT concatenation, DEFLATE decompression, and per-scanline filter
// reversal, yielding a Pixmap ready for the transforms in package pixmap.
package imcpng

import (
	"log"
	"os"

	"imcpng/internal/chunk"
	"imcpng/internal/filter"
	"imcpng/internal/header"
	"imcpng/internal/idat"
	"imcpng/internal/pixmap"
	"imcpng/pngerr"
)

// Pixmap, Rgb and Rgba are re-exported so callers of this package don't need
// to import imcpng/internal/pixmap directly.
type Pixmap = pixmap.Pixmap
type Rgb = pixmap.Rgb
type Rgba = pixmap.Rgba

// decodeStage tracks where the top-level state machine is, per spec §4.2.
type decodeStage int

const (
	stageExpectMagic decodeStage = iota
	stageReadIhdr
	stageExpectNonIdat
	stageCollectIdat
	stageDecompress
	stageReconstruct
	stageDone
)

// PngHandle owns the file-level resources for one PNG decode: an open read
// handle and the total file size. It is 1:1 with Open/Close and is not
// shareable across goroutines (spec §5).
type PngHandle struct {
	f        *os.File
	size     int64
	strictCRC bool
	stage    decodeStage
}

// Option configures a PngHandle at Open time.
type Option func(*PngHandle)

// WithStrictCRC enables CRC verification for every chunk read during Parse.
// A mismatch surfaces as pngerr.ChunkCrcMismatch. Disabled by default, per
// spec §7's "CRC checking is OPTIONAL behavior in v1".
func WithStrictCRC() Option {
	return func(h *PngHandle) { h.strictCRC = true }
}

// Open opens path and validates its 8-byte PNG magic, returning a handle
// ready for Parse. The file is positioned immediately after the magic.
func Open(path string, opts ...Option) (*PngHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pngerr.Wrap(pngerr.IoError, err, "opening PNG file")
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, pngerr.Wrap(pngerr.IoError, err, "statting PNG file")
	}

	h := &PngHandle{f: f, size: info.Size(), stage: stageExpectMagic}
	for _, opt := range opts {
		opt(h)
	}

	if err := chunk.CheckMagic(f); err != nil {
		f.Close()
		return nil, err
	}
	h.stage = stageReadIhdr

	return h, nil
}

// Close releases the handle's file descriptor.
func (h *PngHandle) Close() error {
	if h == nil || h.f == nil {
		return pngerr.New(pngerr.InvalidArgument, "attempted to close a nil PNG handle")
	}
	err := h.f.Close()
	h.f = nil
	if err != nil {
		return pngerr.Wrap(pngerr.IoError, err, "closing PNG file")
	}
	return nil
}

// Parse drives the full decode pipeline: IHDR, ancillary chunk skip, IDAT
// collection, inflate, filter reversal, producing a Pixmap. See spec §4.2.
// On failure the file is closed and the handle cannot be parsed again; a
// later Close then reports InvalidArgument.
func (h *PngHandle) Parse() (_ *Pixmap, err error) {
	if h.f == nil || h.stage != stageReadIhdr {
		return nil, pngerr.New(pngerr.ChunkOrdering, "Parse called out of sequence or on a closed handle")
	}
	defer func() {
		if err != nil {
			h.f.Close()
			h.f = nil
		}
	}()

	cr := chunk.NewReader(h.f)

	ihdrChunk, terminal, err := cr.Next()
	if err != nil {
		return nil, err
	}
	if terminal {
		return nil, pngerr.New(pngerr.TruncatedImage, "stream ended at IEND before any IHDR")
	}
	if ihdrChunk.Type != chunk.IHDR {
		return nil, pngerr.Newf(pngerr.ChunkOrdering, "first chunk must be IHDR, got %q", string(ihdrChunk.Type))
	}
	if h.strictCRC {
		if err := ihdrChunk.VerifyCRC(); err != nil {
			return nil, err
		}
	}

	hdr, err := header.Decode(ihdrChunk.Data)
	if err != nil {
		return nil, err
	}
	h.stage = stageExpectNonIdat

	var buf idat.Buffer
	seenIdatRun := false
	idatRunClosed := false

	for {
		c, terminal, err := cr.Next()
		if err != nil {
			return nil, err
		}
		if h.strictCRC {
			if err := c.VerifyCRC(); err != nil {
				return nil, err
			}
		}

		if terminal {
			h.stage = stageDone
			break
		}

		switch c.Type {
		case chunk.PLTE:
			return nil, pngerr.New(pngerr.UnsupportedColorType, "PLTE chunk present: palette color type is not supported")
		case chunk.IDAT:
			if idatRunClosed {
				return nil, pngerr.New(pngerr.ChunkOrdering, "IDAT chunk found after a non-consecutive gap")
			}
			seenIdatRun = true
			h.stage = stageCollectIdat
			buf.Append(c.Data)
		default:
			if seenIdatRun {
				idatRunClosed = true
			}
			log.Printf("imcpng: skipping ancillary chunk %q (%d bytes)", string(c.Type), c.Length)
		}
	}

	if !seenIdatRun {
		return nil, pngerr.New(pngerr.TruncatedImage, "IEND reached before any IDAT chunk")
	}

	h.stage = stageDecompress
	decompressed, err := buf.Inflate()
	if err != nil {
		return nil, err
	}

	h.stage = stageReconstruct
	raw, err := filter.Reverse(decompressed, hdr)
	if err != nil {
		return nil, err
	}

	pm := &Pixmap{
		Width:     int(hdr.Width),
		Height:    int(hdr.Height),
		NChannels: hdr.NChannels,
		BitDepth:  hdr.BitDepth,
		Data:      raw,
	}
	h.stage = stageDone

	return pm, nil
}
