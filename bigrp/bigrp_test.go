package bigrp

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// memStream is a minimal in-memory streamfile.StreamFile for tests.
type memStream struct {
	data []byte
}

func (m *memStream) ReadAt(p []byte, off int64) (int, error) {
	return bytes.NewReader(m.data).ReadAt(p, off)
}
func (m *memStream) Size() int64  { return int64(len(m.data)) }
func (m *memStream) Name() string { return "test.bigrp" }
func (m *memStream) OpenCompanion(name string) (streamfile.StreamFile, error) {
	return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "no companion")
}

func putU32(buf []byte, off int, v uint32) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
}

// buildArchive assembles a single-subsong BIGRP archive around a range
// codec entry, its intro block zero samples and a 16-sample body block.
func buildArchive(t *testing.T) []byte {
	t.Helper()

	var bodyZlib bytes.Buffer
	zw := zlib.NewWriter(&bodyZlib)
	rawBody := make([]byte, 64) // all-zero headers/codes
	if _, err := zw.Write(rawBody); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	bodyBlock := make([]byte, 4+bodyZlib.Len())
	putU32(bodyBlock, 0, uint32(len(rawBody)))
	copy(bodyBlock[4:], bodyZlib.Bytes())

	const headSize = 0x10
	const entrySize = 0x34
	entryOffset := headSize

	buf := make([]byte, entryOffset+entrySize)
	putU32(buf, 0x00, headSize)
	putU32(buf, 0x04, entrySize)
	putU32(buf, 0x08, 1) // total_subsongs

	e := buf[entryOffset:]
	putU32(e, 0x08, uint32(CodecRange))
	putU32(e, 0x0c, 44100) // sample_rate
	e[0x10] = 1            // channels
	e[0x11] = 16           // spf
	putU32(e, 0x14, 0)     // loop_flag
	putU32(e, 0x18, 100)   // frame_codes
	putU32(e, 0x1c, 0)     // intro_samples
	putU32(e, 0x20, 0)     // intro_zsize
	putU32(e, 0x24, 0)     // intro_offset
	putU32(e, 0x28, 16)    // body_samples
	putU32(e, 0x2c, uint32(len(bodyBlock)))
	bodyOffset := uint32(len(buf))
	putU32(e, 0x30, bodyOffset-uint32(entryOffset))

	buf = append(buf, bodyBlock...)
	return buf
}

func TestOpenAndDecodeRangeSong(t *testing.T) {
	data := buildArchive(t)
	sf := &memStream{data: data}

	song, err := Open(sf, 1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if song.Info().SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", song.Info().SampleRate)
	}

	out := make([]int16, 16)
	n, err := song.Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 16 {
		t.Fatalf("Read() = %d samples, want 16", n)
	}
	for i, s := range out {
		if s != 0 {
			t.Fatalf("out[%d] = %d, want 0 (silent archive)", i, s)
		}
	}
}

func TestParseHeaderRejectsBadSubsong(t *testing.T) {
	data := buildArchive(t)
	if _, err := parseHeader(data[:0x10], 2); err == nil {
		t.Fatal("expected an error for an out-of-range subsong")
	} else if !codecerr.Is(err, codecerr.BadParams) {
		t.Fatalf("got %v, want a BadParams error", err)
	}
}

func TestParseEntryRejectsMultichannelRange(t *testing.T) {
	buf := make([]byte, 0x34)
	putU32(buf, 0x08, uint32(CodecRange))
	putU32(buf, 0x0c, 44100)
	buf[0x10] = 2 // channels
	buf[0x11] = 16
	putU32(buf, 0x1c, 1)
	putU32(buf, 0x28, 1)
	if _, err := parseEntry(buf); err == nil {
		t.Fatal("expected an error for multichannel range codec")
	}
}
