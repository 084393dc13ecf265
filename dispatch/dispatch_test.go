package dispatch

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// memStream is a minimal in-memory streamfile.StreamFile for tests,
// with optional named companions for formats split across files.
type memStream struct {
	name       string
	data       []byte
	companions map[string]*memStream
}

func (m *memStream) ReadAt(p []byte, off int64) (int, error) {
	return bytes.NewReader(m.data).ReadAt(p, off)
}
func (m *memStream) Size() int64  { return int64(len(m.data)) }
func (m *memStream) Name() string { return m.name }
func (m *memStream) OpenCompanion(name string) (streamfile.StreamFile, error) {
	if c, ok := m.companions[name]; ok {
		return c, nil
	}
	return nil, codecerr.New("test", codecerr.BadParams, 0, "no such companion")
}

func putU32LE(buf []byte, off int, v uint32) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
}

func putU16LE(buf []byte, off int, v uint16) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
}

func TestOpenUnrecognized(t *testing.T) {
	sf := &memStream{name: "junk.bin", data: make([]byte, 64)}
	if _, err := Open(sf, 0); !codecerr.Is(err, codecerr.BadMagic) {
		t.Fatalf("Open(junk) = %v, want a BadMagic error", err)
	}
}

// buildRIFFPCM assembles a minimal mono 8kHz PCM16 RIFF/WAVE file with
// 4 silent samples.
func buildRIFFPCM(t *testing.T) []byte {
	t.Helper()
	data := make([]byte, 8) // 4 mono int16 samples, all zero

	fmtChunk := make([]byte, 16)
	putU16LE(fmtChunk, 0x00, 1) // PCM
	putU16LE(fmtChunk, 0x02, 1) // mono
	putU32LE(fmtChunk, 0x04, 8000)
	putU32LE(fmtChunk, 0x08, 16000)
	putU16LE(fmtChunk, 0x0c, 2) // block align
	putU16LE(fmtChunk, 0x0e, 16)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	var sizePlaceholder [4]byte
	buf.Write(sizePlaceholder[:])
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	var fmtSize [4]byte
	putU32LE(fmtSize[:], 0, uint32(len(fmtChunk)))
	buf.Write(fmtSize[:])
	buf.Write(fmtChunk)
	buf.WriteString("data")
	var dataSize [4]byte
	putU32LE(dataSize[:], 0, uint32(len(data)))
	buf.Write(dataSize[:])
	buf.Write(data)

	out := buf.Bytes()
	putU32LE(out, 4, uint32(len(out)-8))
	return out
}

func TestOpenRIFFPCM(t *testing.T) {
	sf := &memStream{name: "test.wav", data: buildRIFFPCM(t)}
	s, err := Open(sf, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Info().SampleRate != 8000 || s.Info().Channels != 1 {
		t.Fatalf("Info() = %+v, want 8000Hz mono", s.Info())
	}
	out := make([]int16, 4)
	n, err := s.Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 4 {
		t.Fatalf("Read() = %d samples, want 4", n)
	}
}

// buildKTSS assembles a minimal one-channel, zero-loop KTSS (version 1)
// stream with a single silent 8-byte ADPCM frame.
func buildKTSS(t *testing.T) []byte {
	t.Helper()
	// 0x40 fixed header, then a single channel's 0x20-byte coef table
	// (all-zero, so every decoded sample stays 0), then audio data.
	buf := make([]byte, 0x60)
	copy(buf[0:4], "KTSS")
	buf[0x22] = 1 // version
	buf[0x28] = 1 // channel multiplier
	buf[0x29] = 1 // channel count
	putU32LE(buf, 0x24, 0x40)  // start_offset - 0x20
	putU32LE(buf, 0x30, 14)    // num_samples
	putU16LE(buf, 0x2c, 22050) // sample_rate
	putU32LE(buf, 0x34, 0)     // loop_start
	putU32LE(buf, 0x38, 0)     // loop_length -> no loop

	frame := make([]byte, 8) // predictor 0, scale 0, all-zero nibbles
	buf = append(buf, frame...)
	return buf
}

func TestOpenKTSS(t *testing.T) {
	sf := &memStream{name: "test.ktss", data: buildKTSS(t)}
	s, err := Open(sf, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Info().SampleRate != 22050 || s.Info().Channels != 1 {
		t.Fatalf("Info() = %+v, want 22050Hz mono", s.Info())
	}
	out := make([]int16, 14)
	n, err := s.Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 14 {
		t.Fatalf("Read() = %d samples, want 14", n)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %d, want 0 (silent frame)", i, v)
		}
	}
}

// buildBIGRP assembles a single-subsong BIGRP archive identical in
// shape to bigrp's own test fixture, to exercise the dispatcher's
// structural (magic-less) detection path.
func buildBIGRP(t *testing.T) []byte {
	t.Helper()

	var bodyZlib bytes.Buffer
	zw := zlib.NewWriter(&bodyZlib)
	rawBody := make([]byte, 64)
	if _, err := zw.Write(rawBody); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	bodyBlock := make([]byte, 4+bodyZlib.Len())
	putU32LE(bodyBlock, 0, uint32(len(rawBody)))
	copy(bodyBlock[4:], bodyZlib.Bytes())

	const headSize = 0x10
	const entrySize = 0x34
	entryOffset := headSize

	buf := make([]byte, entryOffset+entrySize)
	putU32LE(buf, 0x00, headSize)
	putU32LE(buf, 0x04, entrySize)
	putU32LE(buf, 0x08, 1)

	e := buf[entryOffset:]
	putU32LE(e, 0x08, 0) // CodecRange
	putU32LE(e, 0x0c, 44100)
	e[0x10] = 1
	e[0x11] = 16
	putU32LE(e, 0x14, 0)
	putU32LE(e, 0x18, 100)
	putU32LE(e, 0x1c, 0)
	putU32LE(e, 0x20, 0)
	putU32LE(e, 0x24, 0)
	putU32LE(e, 0x28, 16)
	putU32LE(e, 0x2c, uint32(len(bodyBlock)))
	bodyOffset := uint32(len(buf))
	putU32LE(e, 0x30, bodyOffset-uint32(entryOffset))

	buf = append(buf, bodyBlock...)
	return buf
}

func TestOpenBIGRP(t *testing.T) {
	sf := &memStream{name: "test.bigrp", data: buildBIGRP(t)}
	s, err := Open(sf, 1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Info().SampleRate != 44100 {
		t.Fatalf("Info() = %+v, want 44100Hz", s.Info())
	}
}
