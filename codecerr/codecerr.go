// Package codecerr defines the shared error taxonomy returned by every
// codec and container parser in this module.
package codecerr

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies why a parse or decode operation failed.
type Kind int

const (
	// BadMagic means a container or codec signature did not match. The
	// dispatcher treats this as "try the next format" rather than a hard
	// failure.
	BadMagic Kind = iota
	// UnsupportedVersion means the container is recognized but its
	// version field is not one this decoder understands.
	UnsupportedVersion
	// BadChecksum means a CRC check (HCA header or frame) failed.
	BadChecksum
	// BadSync means a frame did not start with the expected sync word.
	BadSync
	// UnpackError means a decoded value (scalefactor, coefficient, ...)
	// fell outside its representable range.
	UnpackError
	// BitstreamOverrun means a read ran past the end of the frame.
	BitstreamOverrun
	// BadParams means the header contradicts itself or declares values
	// this decoder refuses to operate on.
	BadParams
)

func (k Kind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case UnsupportedVersion:
		return "unsupported version"
	case BadChecksum:
		return "bad checksum"
	case BadSync:
		return "bad sync"
	case UnpackError:
		return "unpack error"
	case BitstreamOverrun:
		return "bitstream overrun"
	case BadParams:
		return "bad params"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by codec and dispatch
// packages. Codec names the package that raised it (e.g. "hca", "bink",
// "bigrp"); Offset is the byte offset into the stream where the failure
// was detected, or -1 if not applicable.
type Error struct {
	Kind   Kind
	Codec  string
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s at offset %d: %v", e.Codec, e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Codec, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error, wrapping msg with a stack trace via pkg/errors.
func New(codec string, kind Kind, offset int64, msg string) *Error {
	return &Error{Kind: kind, Codec: codec, Offset: offset, Err: pkgerrors.New(msg)}
}

// Wrap builds an *Error around an existing error, attaching a stack
// trace the way the rest of this module wraps low-level errors.
func Wrap(codec string, kind Kind, offset int64, err error, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Codec: codec, Offset: offset, Err: pkgerrors.Wrap(err, msg)}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
