// Package chunk implements the PNG chunk framing layer: big-endian
// primitive reads, one-chunk-at-a-time decoding with CRC exposure, and the
// small set of chunk-type constants the decoder needs to recognize.
package chunk

import (
	"encoding/binary"
	"io"

	"github.com/snksoft/crc"

	"imcpng/pngerr"
)

// Type is a 4-byte ASCII PNG chunk type code (e.g. "IHDR", "IDAT").
type Type string

const (
	IHDR Type = "IHDR"
	PLTE Type = "PLTE"
	IDAT Type = "IDAT"
	IEND Type = "IEND"

	BKGD Type = "bKGD"
	CHRM Type = "cHRM"
	GAMA Type = "gAMA"
	HIST Type = "hIST"
	ICCP Type = "iCCP"
	ITXT Type = "iTXt"
	PHYS Type = "pHYs"
	SBIT Type = "sBIT"
	SPLT Type = "sPLT"
	SRGB Type = "sRGB"
	TEXT Type = "tEXt"
	TIME Type = "tIME"
	TRNS Type = "tRNS"
	ZTXT Type = "zTXt"
)

// IsCritical reports whether a chunk type is critical (uppercase first
// letter), per the PNG chunk naming convention.
func (t Type) IsCritical() bool {
	if len(t) == 0 {
		return false
	}
	return t[0] >= 'A' && t[0] <= 'Z'
}

// Magic is the 8-byte PNG signature every file must begin with.
var Magic = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Chunk is one decoded PNG chunk: length, type, payload, and CRC.
// Chunk exclusively owns Data; once consumed the caller should let it go out
// of scope rather than alias it.
type Chunk struct {
	Length uint32
	Type   Type
	Data   []byte
	Crc    uint32
}

// VerifyCRC recomputes the CRC32 over Type||Data and compares it against the
// CRC read from the stream. Only invoked when the Decoder runs in strict
// mode (spec §7: CRC checking is optional in v1).
func (c *Chunk) VerifyCRC() error {
	preceding := append([]byte(c.Type), c.Data...)
	computed := uint32(crc.CalculateCRC(crc.CRC32, preceding))
	if computed != c.Crc {
		return pngerr.Newf(pngerr.ChunkCrcMismatch,
			"chunk %q: stored crc %08x does not match computed crc %08x",
			string(c.Type), c.Crc, computed)
	}
	return nil
}

// Reader reads one PNG chunk at a time from an underlying big-endian byte
// stream, allocating Chunk.Data fresh for every call.
type Reader struct {
	r io.Reader
}

// NewReader wraps r as a chunk-framed PNG stream. r must already be
// positioned immediately after the 8-byte PNG magic.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// CheckMagic reads and validates the 8-byte PNG signature from r.
// Returns pngerr.NotPng if the signature doesn't match.
func CheckMagic(r io.Reader) error {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return pngerr.Wrap(pngerr.IoError, err, "reading PNG magic")
	}
	if hdr != Magic {
		return pngerr.New(pngerr.NotPng, "signature does not match the PNG magic bytes")
	}
	return nil
}

// Next reads one chunk and reports whether it was IEND (terminal).
//
// Read order: 4-byte big-endian length, 4-byte ASCII type, `length` bytes of
// payload, 4-byte big-endian CRC. CRC is read but not verified here; the
// caller decides whether to enforce it via Chunk.VerifyCRC.
func (cr *Reader) Next() (Chunk, bool, error) {
	var lenBuf, crcBuf [4]byte
	var typeBuf [4]byte

	if _, err := io.ReadFull(cr.r, lenBuf[:]); err != nil {
		return Chunk{}, false, pngerr.Wrap(pngerr.IoError, err, "reading chunk length")
	}
	length := binary.BigEndian.Uint32(lenBuf[:])

	if _, err := io.ReadFull(cr.r, typeBuf[:]); err != nil {
		return Chunk{}, false, pngerr.Wrap(pngerr.IoError, err, "reading chunk type")
	}
	typ := Type(typeBuf[:])

	var data []byte
	if length > 0 {
		if int64(length) > (1 << 31) {
			return Chunk{}, false, pngerr.Newf(pngerr.AllocError, "chunk length %d too large to allocate", length)
		}
		data = make([]byte, length)
		if _, err := io.ReadFull(cr.r, data); err != nil {
			return Chunk{}, false, pngerr.Wrap(pngerr.IoError, err, "reading chunk data")
		}
	}

	if _, err := io.ReadFull(cr.r, crcBuf[:]); err != nil {
		return Chunk{}, false, pngerr.Wrap(pngerr.IoError, err, "reading chunk crc")
	}
	crcVal := binary.BigEndian.Uint32(crcBuf[:])

	c := Chunk{Length: length, Type: typ, Data: data, Crc: crcVal}
	return c, typ == IEND, nil
}
