// Package pngerr defines the typed failure taxonomy surfaced by imcpng.
//
// Every error returned by the decoder or the pixmap kernel carries a Kind so
// callers can branch on the failure category without string matching, while
// still getting a stack-annotated cause for debugging via github.com/pkg/errors.
package pngerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind categorizes a failure. See spec §7.
type Kind int

const (
	// IoError covers file open/read/write failures.
	IoError Kind = iota
	// AllocError covers allocation failures (always fatal for the current op).
	AllocError
	// NotPng covers a magic signature mismatch.
	NotPng
	// ChunkOrdering covers IHDR not first, non-consecutive IDATs, or IEND out of order.
	ChunkOrdering
	// TruncatedImage covers a stream ending before IEND or before any IDAT.
	TruncatedImage
	// InvalidHeader covers an IHDR field out of its permitted range.
	InvalidHeader
	// UnsupportedColorType covers Greyscale, GreyscaleAlpha, and Palette.
	UnsupportedColorType
	// UnsupportedFeature covers interlaced PNGs and bit depths outside {8, 16}.
	UnsupportedFeature
	// InvalidCompression covers a compression-method byte that isn't DEFLATE.
	InvalidCompression
	// InflateError covers data/dict/mem/stream errors from the inflater.
	InflateError
	// InvalidFilter covers a scanline filter byte outside {0,1,2,3,4}.
	InvalidFilter
	// InvalidArgument covers a null or out-of-range caller argument.
	InvalidArgument
	// Unimplemented covers transform methods explicitly deferred in v1.
	Unimplemented
	// ChunkCrcMismatch covers a CRC verification failure under strict mode.
	ChunkCrcMismatch
)

func (k Kind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case AllocError:
		return "AllocError"
	case NotPng:
		return "NotPng"
	case ChunkOrdering:
		return "ChunkOrdering"
	case TruncatedImage:
		return "TruncatedImage"
	case InvalidHeader:
		return "InvalidHeader"
	case UnsupportedColorType:
		return "UnsupportedColorType"
	case UnsupportedFeature:
		return "UnsupportedFeature"
	case InvalidCompression:
		return "InvalidCompression"
	case InflateError:
		return "InflateError"
	case InvalidFilter:
		return "InvalidFilter"
	case InvalidArgument:
		return "InvalidArgument"
	case Unimplemented:
		return "Unimplemented"
	case ChunkCrcMismatch:
		return "ChunkCrcMismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned across the imcpng API.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause so errors.Is / errors.As keep working.
func (e *Error) Unwrap() error { return e.cause }

// New builds a fresh, stack-annotated Error of the given Kind.
func New(kind Kind, msg string) error {
	return errors.WithStack(&Error{Kind: kind, msg: msg})
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap annotates cause with a Kind and a stack trace, preserving cause for
// errors.Is / errors.As / errors.Unwrap.
func Wrap(kind Kind, cause error, msg string) error {
	if cause == nil {
		return nil
	}
	return errors.WithStack(&Error{Kind: kind, msg: msg, cause: cause})
}

// Is reports whether err (or any error it wraps) is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return false
	}
	return e.Kind == kind
}
