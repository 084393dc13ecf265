package ice

import (
	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/internal/bitreader"
)

const maxChannels = 2

// RangeDecoder decodes Inti Creates' "range" codec (internally
// IceSoundCodecDecoderRange): each frame is a 24-bit header per channel
// giving a signed sample range and a quantized code width, followed by
// up to frameCodes unsigned codes per channel that map linearly onto
// that range. Similar in spirit to adaptive dynamic range coding (ADRC)
// though distinct from arithmetic range coding despite the name.
type RangeDecoder struct {
	channels   int
	frameCodes int

	br          *bitreader.LSBReader
	maxSamples  int
	samplesDone int
	codesLeft   int

	rangeMin  [maxChannels]int16
	rangeMax  [maxChannels]int16
	rangeBits [maxChannels]uint
	rangeMask [maxChannels]uint32

	info codec.StreamInfo
}

// NewRangeDecoder returns a RangeDecoder for a stream with the given
// parameters. frameCodes is the entry header's frame_codes field (the
// number of codes per channel between range headers, typically 100).
func NewRangeDecoder(sampleRate, channels, frameCodes int, totalSamples int64, loopStart int64, loopFlag bool) (*RangeDecoder, error) {
	if channels < 1 || channels > maxChannels {
		return nil, codecerr.New("ice", codecerr.BadParams, -1, "channel count out of range")
	}
	d := &RangeDecoder{
		channels:   channels,
		frameCodes: frameCodes,
	}
	d.info = codec.StreamInfo{
		FormatName:      "ICE BIGRP",
		Encoding:        "ICE range (ADRC)",
		Layout:          "interleaved",
		SampleRate:      sampleRate,
		Channels:        channels,
		TotalSamples:    totalSamples,
		LoopStart:       loopStart,
		LoopEnd:         totalSamples,
		LoopFlag:        loopFlag,
		SamplesPerFrame: frameCodes,
	}
	return d, nil
}

func (d *RangeDecoder) Info() codec.StreamInfo { return d.info }

// Reset clears the block's sample and code counters, so Done reports
// false again and the next DecodeFrame reads a fresh range header. It
// does not rewind the bit reader: decoding resumes at the reader's
// current position, not at the block's first byte; SetBlock does that.
// ICE's range codec carries no prediction history to clear.
func (d *RangeDecoder) Reset() {
	d.samplesDone = 0
	d.codesLeft = 0
}

// SetBlock points the decoder at a freshly zlib-inflated intro or body
// block, ready to decode maxSamples samples from its start.
func (d *RangeDecoder) SetBlock(data []byte, maxSamples int) {
	d.br = bitreader.NewLSBReader(data)
	d.maxSamples = maxSamples
	d.samplesDone = 0
	d.codesLeft = 0
}

// Done reports whether the current block has no samples left.
func (d *RangeDecoder) Done() bool {
	return d.samplesDone >= d.maxSamples
}

func (d *RangeDecoder) loadHeader(ch int) error {
	d.br.ByteAlign()
	header, err := d.br.ReadBits(24)
	if err != nil {
		return codecerr.Wrap("ice", codecerr.BitstreamOverrun, -1, err, "reading range frame header")
	}
	d.rangeMin[ch] = int16(uint16((header >> 3) << 5))
	d.rangeMax[ch] = int16(uint16((header >> 14) << 6))
	bits := (header & 7) + 1
	d.rangeBits[ch] = uint(bits)
	d.rangeMask[ch] = (1 << bits) - 1
	return nil
}

func (d *RangeDecoder) getSample(ch int) (int16, error) {
	code, err := d.br.ReadBits(d.rangeBits[ch])
	if err != nil {
		return 0, codecerr.Wrap("ice", codecerr.BitstreamOverrun, -1, err, "reading range code")
	}
	span := int32(d.rangeMax[ch]) - int32(d.rangeMin[ch])
	delta := int32(code) * span / int32(d.rangeMask[ch])
	return d.rangeMin[ch] + int16(delta), nil
}

// DecodeFrame decodes one header-and-code group: up to frameCodes
// samples per channel, fewer at the tail of a block, interleaved. The
// frame argument is unused; SetBlock supplies the underlying bytes,
// matching how the upstream decoder treats this codec's data as one
// continuous bitstream rather than independently addressable frames.
func (d *RangeDecoder) DecodeFrame(frame []byte) ([]int16, error) {
	if d.Done() {
		return nil, nil
	}
	if d.codesLeft == 0 {
		for ch := 0; ch < d.channels; ch++ {
			if err := d.loadHeader(ch); err != nil {
				return nil, err
			}
		}
		d.codesLeft = d.frameCodes
		if d.samplesDone+d.codesLeft > d.maxSamples {
			d.codesLeft = d.maxSamples - d.samplesDone
		}
	}

	out := make([]int16, 0, d.codesLeft*d.channels)
	for d.codesLeft > 0 {
		for ch := 0; ch < d.channels; ch++ {
			s, err := d.getSample(ch)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		d.samplesDone++
		d.codesLeft--
	}
	return out, nil
}
