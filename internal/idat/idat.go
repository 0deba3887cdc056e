// Package idat concatenates consecutive IDAT chunk payloads into one
// contiguous compressed stream and adapts it to the external DEFLATE
// inflater (compress/zlib), the pack's established idiom for "external
// decompressor" (fumin-png/reader.go, the teacher's cmd/decoder/main.go).
package idat

import (
	"bytes"
	"compress/zlib"
	"io"

	"imcpng/pngerr"
)

// Buffer is a grow-only byte buffer holding the concatenated IDAT payloads.
type Buffer struct {
	buf bytes.Buffer
}

// Append copies chunk data onto the end of the buffer.
func (b *Buffer) Append(data []byte) {
	b.buf.Write(data)
}

// Len reports the number of bytes accumulated so far.
func (b *Buffer) Len() int { return b.buf.Len() }

// Bytes returns the concatenated compressed stream. The caller consumes it
// by move: Buffer should not be appended to again afterwards.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// checkDeflateMagic validates that the first byte's low nibble is 8
// (DEFLATE compression method), per spec §4.5, before handing control to zlib.
func checkDeflateMagic(data []byte) error {
	if len(data) == 0 {
		return pngerr.New(pngerr.TruncatedImage, "no IDAT data to inflate")
	}
	if data[0]&0x0F != 0x08 {
		return pngerr.Newf(pngerr.InvalidCompression, "first IDAT byte %#02x is not a DEFLATE stream", data[0])
	}
	return nil
}

// Inflate decompresses the concatenated IDAT stream in full, returning the
// raw (still filtered) scanline bytes.
func (b *Buffer) Inflate() ([]byte, error) {
	data := b.Bytes()
	if err := checkDeflateMagic(data); err != nil {
		return nil, err
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, pngerr.Wrap(pngerr.InflateError, err, "initializing inflater")
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, pngerr.Wrap(pngerr.InflateError, err, "inflating IDAT stream")
	}
	return out, nil
}
