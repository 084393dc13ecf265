// Package bigrp reads Inti Creates' BIGRP container, the archive format
// their "ICE"/Imperial Engine games pack range- and DCT-coded streams
// into, and drives playback across a stream's intro and body blocks.
package bigrp

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"

	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/ice"
	"github.com/mewkiz/vgaudio/streamfile"
)

// Codec identifies which payload format an entry's data block uses.
type Codec uint32

const (
	CodecRange Codec = 0x00
	CodecData  Codec = 0x01
	CodecMIDI  Codec = 0x02
	CodecDCT   Codec = 0x03
)

func (c Codec) String() string {
	switch c {
	case CodecRange:
		return "range"
	case CodecData:
		return "data"
	case CodecMIDI:
		return "midi"
	case CodecDCT:
		return "dct"
	default:
		return "unknown"
	}
}

const (
	entrySizeSmall = 0x34
	entrySizeLarge = 0x40
	headSizeSmall  = 0x0c
	headSizeLarge  = 0x10
)

// header is BIGRP's archive-level table: entry count, per-entry record
// size, and the offset the entry table starts at.
type header struct {
	headSize      uint32
	entrySize     uint32
	totalSubsongs int
}

func parseHeader(buf []byte, subsong int) (*header, error) {
	if len(buf) < 0x0c {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "header too small")
	}
	h := &header{
		headSize:      binary.LittleEndian.Uint32(buf[0x00:]),
		entrySize:     binary.LittleEndian.Uint32(buf[0x04:]),
		totalSubsongs: int(binary.LittleEndian.Uint32(buf[0x08:])),
	}
	if int(h.headSize) > len(buf) {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "head_size past buffer end")
	}

	var dummy uint32
	if h.headSize >= 0x10 {
		dummy = binary.LittleEndian.Uint32(buf[0x0c:])
	}

	// 0x0c: Bloodstained COTM (Vita/3DS), Mighty Gunvolt Burst (PC); 0x10: the rest.
	if h.headSize != headSizeSmall && h.headSize != headSizeLarge {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "unsupported head_size")
	}
	if h.entrySize != entrySizeSmall && h.entrySize != entrySizeLarge {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "unsupported entry_size")
	}
	if dummy != 0 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "non-zero reserved dword")
	}
	if subsong < 1 || subsong > h.totalSubsongs {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "subsong index out of range")
	}
	return h, nil
}

// entry is one BIGRP archive entry (a song), in the codec-00/03 layout;
// metadata (codec 01) and MIDI (codec 02) entries are recognized but not
// decodable by this package.
type entry struct {
	codec Codec

	sampleRate int
	channels   int
	spf        int
	loopFlag   bool
	frameCodes int

	introSamples uint32
	introZsize   uint32
	introOffset  uint32
	bodySamples  uint32
	bodyZsize    uint32
	bodyOffset   uint32
}

func parseEntry(buf []byte) (*entry, error) {
	if len(buf) < 0x34 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "entry too small")
	}
	codec := Codec(binary.LittleEndian.Uint32(buf[0x08:]))

	switch codec {
	case CodecRange, CodecDCT:
	case CodecData, CodecMIDI:
		return &entry{codec: codec}, nil
	default:
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "unrecognized entry codec")
	}

	e := &entry{
		codec:        codec,
		sampleRate:   int(binary.LittleEndian.Uint32(buf[0x0c:])),
		channels:     int(buf[0x10]),
		spf:          int(buf[0x11]),
		loopFlag:     binary.LittleEndian.Uint32(buf[0x14:]) != 0,
		frameCodes:   int(binary.LittleEndian.Uint32(buf[0x18:])),
		introSamples: binary.LittleEndian.Uint32(buf[0x1c:]),
		introZsize:   binary.LittleEndian.Uint32(buf[0x20:]),
		introOffset:  binary.LittleEndian.Uint32(buf[0x24:]),
		bodySamples:  binary.LittleEndian.Uint32(buf[0x28:]),
		bodyZsize:    binary.LittleEndian.Uint32(buf[0x2c:]),
		bodyOffset:   binary.LittleEndian.Uint32(buf[0x30:]),
	}

	if e.sampleRate < 2000 || e.sampleRate > 48000 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "sample rate out of range")
	}
	if e.channels < 1 || e.channels > 2 || e.spf != 16 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "bad channel count or samples-per-frame")
	}
	if e.frameCodes != 0 && e.frameCodes != 0x64 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "unexpected frame_codes value")
	}
	if e.channels != 0 && e.frameCodes%e.channels != 0 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "frame_codes not a multiple of channel count")
	}
	if e.introSamples == 0 && e.bodySamples == 0 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "entry has no samples")
	}
	if e.channels > 1 && e.codec == CodecRange {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "multichannel range codec not supported")
	}
	return e, nil
}

// Song decodes one BIGRP entry's audio, driving an ice.RangeDecoder or
// ice.DCTDecoder across the entry's intro block (played once) and body
// block (repeated on loop when the entry loops).
type Song struct {
	sf  streamfile.StreamFile
	etr *entry

	introOffset int64
	bodyOffset  int64

	rangeDec *ice.RangeDecoder
	dctDec   *ice.DCTDecoder

	introDone bool
	introInit bool
	bodyInit  bool

	info codec.StreamInfo
}

// Open reads a BIGRP archive's header and the given subsong's entry
// (1-based, matching the archive's own numbering), returning a Song
// ready to decode. Non-audio entries (metadata, MIDI) are rejected.
func Open(sf streamfile.StreamFile, subsong int) (*Song, error) {
	headBuf := make([]byte, headSizeLarge)
	n, err := sf.ReadAt(headBuf, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}
	hdr, err := parseHeader(headBuf[:n], subsong)
	if err != nil {
		return nil, err
	}

	entryOffset := int64(hdr.headSize) + int64(hdr.entrySize)*int64(subsong-1)
	entryBuf := make([]byte, hdr.entrySize)
	if _, err := sf.ReadAt(entryBuf, entryOffset); err != nil && err != io.EOF {
		return nil, err
	}
	etr, err := parseEntry(entryBuf)
	if err != nil {
		return nil, err
	}
	if etr.codec != CodecRange && etr.codec != CodecDCT {
		return nil, codecerr.New("bigrp", codecerr.BadParams, entryOffset, "entry is not a decodable audio stream")
	}

	s := &Song{
		sf:          sf,
		etr:         etr,
		introOffset: entryOffset + int64(etr.introOffset),
		bodyOffset:  entryOffset + int64(etr.bodyOffset),
	}

	totalSamples := int64(etr.introSamples) + int64(etr.bodySamples)
	switch etr.codec {
	case CodecRange:
		frameCodes := etr.frameCodes
		if frameCodes == 0 {
			frameCodes = 0x64
		}
		dec, err := ice.NewRangeDecoder(etr.sampleRate, etr.channels, frameCodes, totalSamples, int64(etr.introSamples), etr.loopFlag)
		if err != nil {
			return nil, err
		}
		s.rangeDec = dec
		s.info = dec.Info()
	case CodecDCT:
		dec, err := ice.NewDCTDecoder(etr.sampleRate, etr.channels, totalSamples, int64(etr.introSamples), etr.loopFlag)
		if err != nil {
			return nil, err
		}
		s.dctDec = dec
		s.info = dec.Info()
	}
	s.info.FormatName = "BIGRP"

	s.Reset()
	return s, nil
}

func (s *Song) Info() codec.StreamInfo { return s.info }

// Reset restarts playback from the entry's intro block, or its body
// block directly if the entry has no intro (or on an explicit loop
// restart), matching icesnd_reset.
func (s *Song) Reset() {
	s.introInit = false
	s.bodyInit = false
	s.introDone = s.etr.introSamples == 0
}

func (s *Song) readBlock(intro bool) ([]byte, error) {
	var offset int64
	var zsize uint32
	if intro {
		offset, zsize = s.introOffset, s.etr.introZsize
	} else {
		offset, zsize = s.bodyOffset, s.etr.bodyZsize
	}

	raw := make([]byte, zsize)
	if _, err := s.sf.ReadAt(raw, offset); err != nil && err != io.EOF {
		return nil, err
	}

	switch s.etr.codec {
	case CodecRange:
		return inflateBlock(raw)
	case CodecDCT:
		// A DCT block's outer bytes are not deflated; only the
		// per-band codebook chunks it points into are, unpacked
		// lazily by ice.DCTDecoder.SetBlock.
		return raw, nil
	default:
		return nil, codecerr.New("bigrp", codecerr.BadParams, offset, "unsupported entry codec")
	}
}

func inflateBlock(raw []byte) ([]byte, error) {
	if len(raw) < 4 {
		return nil, codecerr.New("bigrp", codecerr.BadParams, 0, "zlib block too small")
	}
	decompressedSize := binary.LittleEndian.Uint32(raw[0:4])
	zr, err := zlib.NewReader(bytes.NewReader(raw[4:]))
	if err != nil {
		return nil, codecerr.Wrap("bigrp", codecerr.BadParams, 0, err, "opening zlib block")
	}
	out := make([]byte, decompressedSize)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, codecerr.Wrap("bigrp", codecerr.BadParams, 0, err, "inflating zlib block")
	}
	return out, nil
}

func (s *Song) setupBlock(intro bool) error {
	data, err := s.readBlock(intro)
	if err != nil {
		return err
	}
	switch s.etr.codec {
	case CodecRange:
		samples := int(s.etr.bodySamples)
		if intro {
			samples = int(s.etr.introSamples)
		}
		s.rangeDec.SetBlock(data, samples)
	case CodecDCT:
		if err := s.dctDec.SetBlock(data); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes up to len(out)/channels samples into out (interleaved),
// returning the number of samples actually written. It decodes at most
// one codec frame per call (up to frame_codes samples for the range
// codec, 16 for DCT), so it often returns fewer than requested; callers
// loop until
// enough samples are collected or Read returns 0 (end of a non-looping
// stream). On a looping entry, once the body block is exhausted the
// next Read call restarts the body block from its beginning.
func (s *Song) Read(out []int16) (int, error) {
	channels := s.etr.channels
	maxSamples := len(out) / channels
	if maxSamples == 0 {
		return 0, nil
	}

	if !s.introDone && !s.introInit {
		if err := s.setupBlock(true); err != nil {
			return 0, err
		}
		s.introInit = true
	} else if s.introDone && !s.bodyInit {
		if err := s.setupBlock(false); err != nil {
			return 0, err
		}
		s.bodyInit = true
	}

	var pcm []int16
	var err error
	var blockDone bool
	if s.etr.codec == CodecRange {
		pcm, err = s.rangeDec.DecodeFrame(nil)
		blockDone = s.rangeDec.Done()
	} else {
		pcm, err = s.dctDec.DecodeFrame(nil)
		blockDone = s.dctDec.Done()
	}
	if err != nil {
		return 0, err
	}

	n := copy(out, pcm)

	if blockDone {
		s.introDone = true
		if s.etr.loopFlag {
			s.bodyInit = false
		}
	}

	return n / channels, nil
}
