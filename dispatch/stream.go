// Package dispatch recognizes a container format from its magic bytes
// or, failing that, structural validation, and opens the subsong it
// names as a playable Stream. It is the entry point cmd/vgaudio2wav
// drives: try each known format in turn, skip past a BadMagic result,
// and stop at the first hard error or first match.
package dispatch

import (
	"io"

	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/dsp"
	"github.com/mewkiz/vgaudio/streamfile"
)

// Stream is a fully resolved, playable audio stream: a container's
// subsong bound to whichever codec decodes its payload. bigrp.Song
// already satisfies this; dspStream and pcmStream below implement it
// for the DSP-family and raw-PCM containers this package parses
// directly.
type Stream interface {
	Info() codec.StreamInfo
	Read(out []int16) (int, error)
	Reset()
}

// dspStream drives one dsp.Decoder per channel over per-frame
// interleaved DSP ADPCM data: channel 0's 8-byte frame, then channel
// 1's, repeating. This covers every DSP-family container in this
// package; formats with a coarser interleave block (several frames per
// channel between switches) are not handled by this helper.
type dspStream struct {
	sf         streamfile.StreamFile
	channels   int
	dataOffset int64
	decoders   []*dsp.Decoder

	frameIndex int64
	leftover   [][]int16

	totalSamples int64
	samplesDone  int64

	info codec.StreamInfo
}

func newDSPStream(sf streamfile.StreamFile, dataOffset int64, totalSamples int64, headers []*dsp.Header, sampleRate int, loopStart int64, loopFlag bool) *dspStream {
	channels := len(headers)
	decs := make([]*dsp.Decoder, channels)
	for i, h := range headers {
		decs[i] = dsp.NewDecoder(sampleRate, h, totalSamples, loopStart, loopFlag)
	}
	s := &dspStream{
		sf:           sf,
		channels:     channels,
		dataOffset:   dataOffset,
		decoders:     decs,
		leftover:     make([][]int16, channels),
		totalSamples: totalSamples,
	}
	s.info = codec.StreamInfo{
		FormatName:   "DSP",
		Encoding:     "Nintendo GameCube ADPCM",
		Layout:       "interleaved",
		SampleRate:   sampleRate,
		Channels:     channels,
		TotalSamples: totalSamples,
		LoopStart:    loopStart,
		LoopEnd:      totalSamples,
		LoopFlag:     loopFlag,
	}
	return s
}

func (s *dspStream) Info() codec.StreamInfo { return s.info }

func (s *dspStream) Reset() {
	s.frameIndex = 0
	s.samplesDone = 0
	for i, d := range s.decoders {
		d.Reset()
		s.leftover[i] = nil
	}
}

func (s *dspStream) fillNextFrame() error {
	frameBuf := make([]byte, dsp.FrameSize)
	decoded := make([][]int16, s.channels)
	for ch := 0; ch < s.channels; ch++ {
		off := s.dataOffset + s.frameIndex*int64(s.channels)*dsp.FrameSize + int64(ch)*dsp.FrameSize
		if err := streamfile.ReadFull(s.sf, off, frameBuf); err != nil {
			return err
		}
		pcm, err := s.decoders[ch].DecodeFrame(frameBuf)
		if err != nil {
			return err
		}
		decoded[ch] = pcm
	}
	s.frameIndex++
	for ch := range decoded {
		s.leftover[ch] = decoded[ch]
	}
	return nil
}

func (s *dspStream) Read(out []int16) (int, error) {
	if s.channels == 0 || s.samplesDone >= s.totalSamples {
		return 0, nil
	}
	maxSamples := len(out) / s.channels
	n := 0
	for n < maxSamples {
		if len(s.leftover[0]) == 0 {
			if s.samplesDone >= s.totalSamples {
				break
			}
			if err := s.fillNextFrame(); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					break
				}
				return n, err
			}
		}
		avail := len(s.leftover[0])
		if remaining := s.totalSamples - s.samplesDone; int64(avail) > remaining {
			avail = int(remaining)
		}
		take := avail
		if maxSamples-n < take {
			take = maxSamples - n
		}
		for i := 0; i < take; i++ {
			for ch := 0; ch < s.channels; ch++ {
				out[(n+i)*s.channels+ch] = s.leftover[ch][i]
			}
		}
		for ch := range s.leftover {
			s.leftover[ch] = s.leftover[ch][take:]
		}
		n += take
		s.samplesDone += int64(take)
	}
	return n, nil
}

// pcmStream reads raw interleaved little-endian PCM16, the payload of a
// RIFF stream whose fmt tag is 1 (PCM); openRIFF is its only user.
type pcmStream struct {
	sf         streamfile.StreamFile
	channels   int
	dataOffset int64

	samplesDone  int64
	totalSamples int64

	info codec.StreamInfo
}

func newPCMStream(sf streamfile.StreamFile, dataOffset int64, channels int, sampleRate int, totalSamples int64) *pcmStream {
	s := &pcmStream{sf: sf, channels: channels, dataOffset: dataOffset, totalSamples: totalSamples}
	s.info = codec.StreamInfo{
		FormatName:   "PCM",
		Encoding:     "PCM16 little-endian",
		Layout:       "interleaved",
		SampleRate:   sampleRate,
		Channels:     channels,
		TotalSamples: totalSamples,
		LoopEnd:      totalSamples,
	}
	return s
}

func (s *pcmStream) Info() codec.StreamInfo { return s.info }

func (s *pcmStream) Reset() { s.samplesDone = 0 }

func (s *pcmStream) Read(out []int16) (int, error) {
	if s.channels == 0 {
		return 0, nil
	}
	maxSamples := len(out) / s.channels
	remaining := s.totalSamples - s.samplesDone
	if int64(maxSamples) > remaining {
		maxSamples = int(remaining)
	}
	if maxSamples <= 0 {
		return 0, nil
	}
	buf := make([]byte, maxSamples*s.channels*2)
	off := s.dataOffset + s.samplesDone*int64(s.channels)*2
	n, err := s.sf.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return 0, err
	}
	samples := n / 2 / s.channels
	for i := 0; i < samples*s.channels; i++ {
		out[i] = int16(uint16(buf[i*2]) | uint16(buf[i*2+1])<<8)
	}
	s.samplesDone += int64(samples)
	return samples, nil
}
