package ice

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/internal/bitreader"
)

const (
	dctMaxBands    = 16
	dctMaxPrev     = 4
	dctMaxPrevMask = 0x3
	dctHeaderSize  = 0x114
)

// dctCodebook holds one band's zlib-deflated stream of 4-bit quantizer
// widths, unpacked once per block and read LSB-first a nibble at a time.
type dctCodebook struct {
	br *bitreader.LSBReader
}

func newDCTCodebook(chunk []byte) (*dctCodebook, error) {
	zr, err := zlib.NewReader(bytes.NewReader(chunk))
	if err != nil {
		return nil, codecerr.Wrap("ice", codecerr.BadParams, -1, err, "opening dct codebook stream")
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, codecerr.Wrap("ice", codecerr.BadParams, -1, err, "inflating dct codebook stream")
	}
	return &dctCodebook{br: bitreader.NewLSBReader(data)}, nil
}

func (c *dctCodebook) getQBits() (uint8, error) {
	v, err := c.br.ReadBits(4)
	if err != nil {
		return 0, codecerr.Wrap("ice", codecerr.BitstreamOverrun, -1, err, "reading dct codebook nibble")
	}
	return uint8(v), nil
}

// DCTDecoder decodes Inti Creates' "dct" codec (internally
// IceSoundCodecDecoderDCT): per-band quantized deltas against the
// previous two 16-sample groups, dequantized with a fixed iDCT-like
// butterfly and, for stereo streams, mid-side recombined.
type DCTDecoder struct {
	bands      uint8
	channels   uint8
	maxSamples int

	transform [8][dctMaxBands]float32

	codebooks [maxChannels][dctMaxBands]*dctCodebook
	br        *bitreader.LSBReader

	spectra     [maxChannels][dctMaxPrev][dctMaxBands]int16
	spectraCurr int
	samplesDone int

	current [dctMaxBands * maxChannels]int16

	info codec.StreamInfo
}

// NewDCTDecoder returns a DCTDecoder for a stream with the given sample
// rate, channel count and loop parameters; SetBlock must be called
// before the first DecodeFrame to load a block's codebooks and data.
func NewDCTDecoder(sampleRate, channels int, totalSamples int64, loopStart int64, loopFlag bool) (*DCTDecoder, error) {
	if channels < 1 || channels > maxChannels {
		return nil, codecerr.New("ice", codecerr.BadParams, -1, "channel count out of range")
	}
	d := &DCTDecoder{}
	d.info = codec.StreamInfo{
		FormatName:      "ICE BIGRP",
		Encoding:        "ICE DCT",
		Layout:          "interleaved",
		SampleRate:      sampleRate,
		Channels:        channels,
		TotalSamples:    totalSamples,
		LoopStart:       loopStart,
		LoopEnd:         totalSamples,
		LoopFlag:        loopFlag,
		SamplesPerFrame: dctMaxBands,
	}
	return d, nil
}

func (d *DCTDecoder) Info() codec.StreamInfo { return d.info }

// Reset clears the previous-group history so the next SetBlock starts a
// fresh prediction chain, matching the upstream decoder's own reset.
func (d *DCTDecoder) Reset() {
	d.spectra = [maxChannels][dctMaxPrev][dctMaxBands]int16{}
	d.spectraCurr = 0
	d.samplesDone = 0
}

// SetBlock parses a DCT block's codeinfo header, rebuilds its transform
// matrix from the block's init_scale, and opens every band's zlib
// codebook stream plus the main (uncompressed) code bitstream. Unlike
// the range codec, a DCT block's outer bytes are not themselves
// deflated: only the per-band codebook chunks it points into are.
func (d *DCTDecoder) SetBlock(buf []byte) error {
	if len(buf) < dctHeaderSize {
		return codecerr.New("ice", codecerr.BadParams, -1, "dct codeinfo block too small")
	}
	getU32 := func(off int) uint32 {
		return uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
	}

	initScale := buf[0x04]
	bands := buf[0x05]
	channels := buf[0x06]
	unused := buf[0x07]
	maxSamples := getU32(0x08)

	if bands < 1 || bands > dctMaxBands {
		return codecerr.New("ice", codecerr.BadParams, -1, "dct band count out of range")
	}
	if channels < 1 || channels > maxChannels {
		return codecerr.New("ice", codecerr.BadParams, -1, "dct channel count out of range")
	}
	if unused != 0 {
		return codecerr.New("ice", codecerr.BadParams, -1, "dct codeinfo reserved byte set")
	}

	var cbkOffset, cbkSize [maxChannels][dctMaxBands]uint32
	pos := 0x0c
	for ch := 0; ch < maxChannels; ch++ {
		for i := 0; i < dctMaxBands; i++ {
			cbkOffset[ch][i] = getU32(pos)
			pos += 4
		}
	}
	for ch := 0; ch < maxChannels; ch++ {
		for i := 0; i < dctMaxBands; i++ {
			cbkSize[ch][i] = getU32(pos)
			pos += 4
		}
	}
	dataStart := getU32(0x10c)
	dataSize := getU32(0x110)
	if int(dataStart+dataSize) > len(buf) {
		return codecerr.New("ice", codecerr.BadParams, -1, "dct data extends past block end")
	}

	d.bands = bands
	d.channels = channels
	d.maxSamples = int(maxSamples)

	scale := float32(initScale)
	var coefs [dctMaxBands]float32
	for i := range coefs {
		coefs[i] = dctTransformCoefs[i] * scale
	}
	for i := 0; i < dctMaxBands; i++ {
		steps := dctTransformSteps[i]
		pos := i
		for step := 0; step < steps; step++ {
			var coef float32
			switch (pos >> 4) & 3 {
			case 1:
				coef = -coefs[16-(pos&0xF)]
			case 2:
				coef = -coefs[pos&0xF]
			case 3:
				coef = coefs[16-(pos&0xF)]
			default:
				coef = coefs[pos&0xF]
			}
			pos += 2 * i
			d.transform[step][i] = dctTransformScales[i] * coef
		}
	}

	for ch := 0; ch < int(channels); ch++ {
		for band := 0; band < int(bands); band++ {
			start := cbkOffset[ch][band]
			size := cbkSize[ch][band]
			if int(start+size) > len(buf) {
				return codecerr.New("ice", codecerr.BadParams, -1, "dct codebook chunk extends past block end")
			}
			cbk, err := newDCTCodebook(buf[start : start+size])
			if err != nil {
				return err
			}
			d.codebooks[ch][band] = cbk
		}
	}

	d.br = bitreader.NewLSBReader(buf[dataStart : dataStart+dataSize])
	d.spectra = [maxChannels][dctMaxPrev][dctMaxBands]int16{}
	d.spectraCurr = 0
	d.samplesDone = 0

	return nil
}

// Done reports whether the current block has no samples left.
func (d *DCTDecoder) Done() bool {
	return d.samplesDone >= d.maxSamples
}

func (d *DCTDecoder) getCode(qbits uint8) (int16, error) {
	if qbits == 0 {
		v, err := d.br.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if v != 0 {
			return -1, nil
		}
		return 0, nil
	}
	v, err := d.br.ReadBits(uint(qbits))
	if err != nil {
		return 0, err
	}
	code := int16(v)
	if code < int16(1)<<(qbits-1) {
		code -= int16(1) << qbits
	}
	return code, nil
}

func (d *DCTDecoder) dequantize(ch int) error {
	pos := d.spectraCurr
	prev1 := &d.spectra[ch][(pos-1)&dctMaxPrevMask]
	prev2 := &d.spectra[ch][(pos-2)&dctMaxPrevMask]
	spectra := &d.spectra[ch][pos]

	for band := 0; band < int(d.bands); band++ {
		qbits, err := d.codebooks[ch][band].getQBits()
		if err != nil {
			return err
		}
		code, err := d.getCode(qbits)
		if err != nil {
			return codecerr.Wrap("ice", codecerr.BitstreamOverrun, -1, err, "reading dct code")
		}
		spectra[band] = code + 2*prev1[band] - prev2[band]
	}
	return nil
}

// transform applies the butterfly network built in SetBlock to one
// channel's dequantized band values, writing 16 interleaved samples
// into out starting at offset ch.
func (d *DCTDecoder) transform(ch int, out []int16, stride int) {
	var fbuf [dctMaxBands]float32
	spectra := &d.spectra[ch][d.spectraCurr]

	for band := 0; band < int(d.bands); band++ {
		coef := float32(spectra[band])

		switch band {
		case 0:
			f := d.transform[0][band] * coef
			for i := range fbuf {
				fbuf[i] = f
			}
		case 1, 3, 5, 7, 9, 11, 13, 15:
			for step := 0; step < 8; step++ {
				f := d.transform[step][band] * coef
				fbuf[step] += f
				fbuf[15-step] -= f
			}
		case 2, 6, 10, 14:
			for step := 0; step < 4; step++ {
				f := d.transform[step][band] * coef
				fbuf[step] += f
				fbuf[7-step] -= f
				fbuf[8+step] -= f
				fbuf[15-step] += f
			}
		case 4, 12:
			for step := 0; step < 2; step++ {
				f := d.transform[step][band] * coef
				fbuf[step] += f
				fbuf[3-step] -= f
				fbuf[4+step] -= f
				fbuf[7-step] += f
				fbuf[8+step] += f
				fbuf[11-step] -= f
				fbuf[12+step] -= f
				fbuf[15-step] += f
			}
		case 8:
			f := d.transform[0][band] * coef
			fbuf[0] += f
			fbuf[1] -= f
			fbuf[2] -= f
			fbuf[3] += f
			fbuf[4] += f
			fbuf[5] -= f
			fbuf[6] -= f
			fbuf[7] += f
			fbuf[8] += f
			fbuf[9] -= f
			fbuf[10] -= f
			fbuf[11] += f
			fbuf[12] += f
			fbuf[13] -= f
			fbuf[14] -= f
			fbuf[15] += f
		}
	}

	for i := 0; i < dctMaxBands; i++ {
		var sample float32
		if fbuf[i] >= 0 {
			sample = float32(int32(fbuf[i] + 0.5))
		} else {
			sample = float32(int32(fbuf[i] - 0.5))
		}
		out[ch+stride*i] = int16(sample)
	}
}

// msStereo restores left/right from mid/side with a 1.0 ratio: tmp
// holds the raw per-channel transform output, current receives the
// recombined, final interleaved samples.
func (d *DCTDecoder) msStereo(tmp []int16) {
	for i := 0; i < dctMaxBands; i++ {
		l := tmp[0+2*i]
		r := tmp[1+2*i]
		d.current[0+2*i] = l + r
		d.current[1+2*i] = l - r
	}
}

// DecodeFrame decodes the next group of up to dctMaxBands samples per
// channel, fewer at the tail of a block. The frame argument is unused;
// SetBlock supplies the underlying bytes.
func (d *DCTDecoder) DecodeFrame(frame []byte) ([]int16, error) {
	if d.Done() {
		return nil, nil
	}

	if d.samplesDone%dctMaxBands == 0 {
		channels := int(d.channels)
		var tmp [dctMaxBands * maxChannels]int16
		dst := d.current[:]
		if channels == 2 {
			dst = tmp[:]
		}
		for ch := 0; ch < channels; ch++ {
			if err := d.dequantize(ch); err != nil {
				return nil, err
			}
			d.transform(ch, dst, channels)
		}
		d.spectraCurr = (d.spectraCurr + 1) & dctMaxPrevMask
		if channels == 2 {
			d.msStereo(tmp[:])
		}
	}

	start := d.samplesDone % dctMaxBands
	n := dctMaxBands - start
	if d.samplesDone+n > d.maxSamples {
		n = d.maxSamples - d.samplesDone
	}
	channels := int(d.channels)
	out := make([]int16, n*channels)
	copy(out, d.current[start*channels:(start+n)*channels])

	d.samplesDone += n
	return out, nil
}
