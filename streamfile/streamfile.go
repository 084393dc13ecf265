// Package streamfile is the random-access byte source codec and
// dispatch packages read through. It is the Go shape of the "streamfile"
// abstraction these formats were originally built against: a named,
// sized, seekable byte source that can hand back a sibling file (for
// formats like .xsb that are split across a pair of files on disk).
package streamfile

import (
	"io"
	"os"
	"path/filepath"
)

// StreamFile is the interface every container dispatcher and codec
// reads through. It is never owned by a codec, only referenced: the
// dispatcher opens it, a codec instance reads from it by offset and
// length for as long as it lives.
type StreamFile interface {
	io.ReaderAt
	// Size returns the total length of the stream in bytes.
	Size() int64
	// Name returns the stream's display name (typically a file name).
	Name() string
	// OpenCompanion opens a sibling stream beside this one, for
	// container formats split across multiple files (.xbb + .xsb,
	// .pos alongside the main stream).
	OpenCompanion(name string) (StreamFile, error)
}

// fileStream is a StreamFile backed by an *os.File, read through
// directly: codecs and dispatchers address it by arbitrary offset and
// length (header re-reads, chunk tables, per-frame seeks), not
// sequentially, so os.File.ReadAt's own random access already fits the
// access pattern without a buffering layer in front of it.
type fileStream struct {
	f    *os.File
	name string
	size int64
}

// Open opens path as a StreamFile.
func Open(path string) (StreamFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileStream{
		f:    f,
		name: path,
		size: fi.Size(),
	}, nil
}

func (s *fileStream) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *fileStream) Size() int64 { return s.size }

func (s *fileStream) Name() string { return s.name }

func (s *fileStream) OpenCompanion(name string) (StreamFile, error) {
	return Open(filepath.Join(filepath.Dir(s.name), name))
}

// Close releases the underlying file handle.
func (s *fileStream) Close() error {
	return s.f.Close()
}

// ReadFull reads exactly len(p) bytes from sf starting at off, mirroring
// io.ReadFull's short-read semantics over a StreamFile.
func ReadFull(sf StreamFile, off int64, p []byte) error {
	n, err := sf.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return err
}
