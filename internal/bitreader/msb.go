// Package bitreader provides the two bit-extraction orders this module's
// codecs need over an in-memory frame buffer: MSB-first (HCA) and
// LSB-first (Bink Audio, ICE).
package bitreader

import (
	"bytes"
	"errors"

	"github.com/icza/bitio"
)

// ErrOverrun is returned when a read runs past the end of the buffer.
var ErrOverrun = errors.New("bitreader: read past end of buffer")

// MSBReader reads bits most-significant-bit first out of a fixed byte
// buffer, the order HCA's bitstream uses. HCA additionally needs to peek
// ahead and to push bits back after reading them (RewindBits for the
// low-resolution prefix codes, UnreadBit for sign-magnitude coefficient
// decode); icza/bitio.Reader only reads forward, so MSBReader wraps it
// with a small MSB-aligned lookahead cache that supplies these
// operations while still drawing its bytes from bitio.
type MSBReader struct {
	br        *bitio.Reader
	size      int // total bits available
	pos       int // logical bits consumed so far
	cache     uint64
	cacheBits uint
	eof       bool
}

// NewMSBReader returns a reader over buf's bits, MSB-first.
func NewMSBReader(buf []byte) *MSBReader {
	return &MSBReader{
		br:   bitio.NewReader(bytes.NewReader(buf)),
		size: len(buf) * 8,
	}
}

// fill ensures cacheBits >= n (or EOF), pulling whole bytes from the
// underlying bitio.Reader into the top of cache.
func (r *MSBReader) fill(n uint) error {
	for r.cacheBits < n {
		if r.cacheBits > 56 {
			// cache nearly full; only ReadBits with n<=32 are used by
			// this module, so this should not happen, but guard anyway.
			break
		}
		b, err := r.br.ReadByte()
		if err != nil {
			r.eof = true
			return ErrOverrun
		}
		r.cache |= uint64(b) << (56 - r.cacheBits)
		r.cacheBits += 8
	}
	return nil
}

// ReadBits reads n bits (0 <= n <= 32) and returns them right-aligned.
func (r *MSBReader) ReadBits(n uint) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	if err := r.fill(n); err != nil {
		return 0, err
	}
	result := r.cache >> (64 - n)
	r.cache <<= n
	r.cacheBits -= n
	r.pos += int(n)
	return uint32(result), nil
}

// PeekBits reads n bits without advancing the reader.
func (r *MSBReader) PeekBits(n uint) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	if err := r.fill(n); err != nil {
		return 0, err
	}
	return uint32(r.cache >> (64 - n)), nil
}

// SkipBits advances the reader by n bits without returning their value.
func (r *MSBReader) SkipBits(n uint) error {
	_, err := r.ReadBits(n)
	return err
}

// RewindBits pushes the low n bits of value back onto the front of the
// stream, so the next ReadBits/PeekBits call sees them again. Used by
// HCA's low-resolution coefficient codes, which read a worst-case number
// of bits up front and then rewind the unused tail once the actual
// (shorter) prefix code length is known from a table lookup.
func (r *MSBReader) RewindBits(value uint32, n uint) {
	if n == 0 {
		return
	}
	bits := uint64(value) & (1<<n - 1)
	r.cache = (r.cache >> n) | (bits << (64 - n))
	r.cacheBits += n
	r.pos -= int(n)
}

// UnreadBit pushes a single bit back onto the front of the stream, so
// the next ReadBits/PeekBits call sees it again. bit must be the value
// (0 or 1) that was just consumed. Used by HCA's sign-magnitude
// coefficient decode, which rewinds by one bit when the raw code is
// zero.
func (r *MSBReader) UnreadBit(bit uint32) {
	r.cache = (r.cache >> 1) | (uint64(bit&1) << 63)
	r.cacheBits++
	r.pos--
}

// BitsRead returns the number of bits consumed so far.
func (r *MSBReader) BitsRead() int {
	return r.pos
}

// Size returns the total number of bits in the underlying buffer.
func (r *MSBReader) Size() int {
	return r.size
}
