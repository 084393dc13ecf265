// Package hca decodes CRI Middleware's HCA perceptual audio codec: a
// chunked header, MSB-first bitstream, optional keycode-based byte
// substitution cipher, and a per-subframe scalefactor/resolution/gain
// pipeline feeding a 128-point DCT-IV based IMDCT.
package hca

import (
	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/internal/bitreader"
)

// channel holds one HCA channel's per-frame and per-subframe decode state.
// scalefactors doubles as storage for the channel's high-frequency group
// scales, written starting at cfg.HFRScalesOffset, mirroring the aliased
// hfr_scales pointer in the original decoder.
type channel struct {
	cfg channelConfig

	intensity    [subframesPerFrame]byte
	scalefactors [samplesPerSubframe]byte
	resolution   [samplesPerSubframe]byte

	gain    [samplesPerSubframe]float32
	spectra [samplesPerSubframe]float32
	dct     [samplesPerSubframe]float32

	imdctPrevious [samplesPerSubframe]float32
	wave          [subframesPerFrame][samplesPerSubframe]float32
}

func (c *channel) hfrScales() []byte {
	return c.scalefactors[c.cfg.HFRScalesOffset:]
}

// unpack reads one channel's per-frame scalefactors (or intensity indexes,
// for a stereo-secondary channel), computes its dequantization resolution
// per band against the ATH noise floor, and derives the final per-band
// gain.
func (c *channel) unpack(br *bitreader.MSBReader, hfrGroupCount int, packedNoiseLevel int, ath *athCurve) error {
	csfCount := c.cfg.CodedScalefactorCount

	deltaBits, _ := br.ReadBits(3)
	switch {
	case deltaBits >= 6:
		for i := 0; i < csfCount; i++ {
			v, _ := br.ReadBits(6)
			c.scalefactors[i] = byte(v)
		}
	case deltaBits > 0:
		expectedDelta := byte(1<<deltaBits - 1)
		extraDelta := expectedDelta >> 1
		v, _ := br.ReadBits(6)
		prev := byte(v)
		c.scalefactors[0] = prev
		for i := 1; i < csfCount; i++ {
			dv, _ := br.ReadBits(uint(deltaBits))
			delta := byte(dv)
			if delta != expectedDelta {
				test := int(prev) + int(delta) - int(extraDelta)
				if test < 0 || test > 64 {
					return codecerr.New("hca", codecerr.UnpackError, -1, "scalefactor delta out of range")
				}
				prev = byte(test)
			} else {
				v, _ := br.ReadBits(6)
				prev = byte(v)
			}
			c.scalefactors[i] = prev
		}
	default:
		for i := range c.scalefactors {
			c.scalefactors[i] = 0
		}
	}

	if c.cfg.Type == stereoSecondary {
		iv, _ := br.PeekBits(4)
		c.intensity[0] = byte(iv)
		// A peeked value of 15 leaves the bitstream untouched: the rest of
		// the per-subframe intensities are only read when the first one
		// is below the maximum.
		if iv < 15 {
			for i := 0; i < subframesPerFrame; i++ {
				v, _ := br.ReadBits(4)
				c.intensity[i] = byte(v)
			}
		}
	} else {
		hfr := c.hfrScales()
		for i := 0; i < hfrGroupCount; i++ {
			v, _ := br.ReadBits(6)
			hfr[i] = byte(v)
		}
	}

	for i := 0; i < csfCount; i++ {
		var newResolution byte
		sf := c.scalefactors[i]
		if sf > 0 {
			noiseLevel := int(ath[i]) + ((packedNoiseLevel + i) >> 8)
			curvePos := noiseLevel - ((5*int(sf))>>1) + 1
			switch {
			case curvePos < 0:
				newResolution = 15
			case curvePos >= 57:
				newResolution = 1
			default:
				newResolution = scaleToResolutionCurve[curvePos]
			}
		}
		c.resolution[i] = newResolution
	}
	for i := csfCount; i < samplesPerSubframe; i++ {
		c.resolution[i] = 0
	}

	for i := 0; i < csfCount; i++ {
		c.gain[i] = dequantizerScalingTable[c.scalefactors[i]] * quantizerStepSize[c.resolution[i]]
	}

	return nil
}

// dequantize reads one subframe's worth of quantized spectral
// coefficients for the channel, using a prefix codebook below resolution
// 8 and plain sign-magnitude codes above it.
func (c *channel) dequantize(br *bitreader.MSBReader) {
	csfCount := c.cfg.CodedScalefactorCount

	for i := 0; i < csfCount; i++ {
		resolution := c.resolution[i]
		maxBits := quantizedSpectrumMaxBits[resolution]
		code, _ := br.ReadBits(uint(maxBits))

		var qc float32
		if resolution < 8 {
			idx := code + uint32(resolution)<<4
			actualBits := quantizedSpectrumBits[idx]
			if d := int(maxBits) - int(actualBits); d > 0 {
				br.RewindBits(code, uint(d))
			}
			qc = quantizedSpectrumValue[idx]
		} else {
			signedCode := (1 - int32(code&1)<<1) * int32(code>>1)
			if signedCode == 0 {
				br.UnreadBit(code & 1)
			}
			qc = float32(signedCode)
		}

		c.spectra[i] = c.gain[i] * qc
	}
	for i := csfCount; i < samplesPerSubframe; i++ {
		c.spectra[i] = 0
	}
}

// reconstructHighFrequency copies and rescales low-band spectra up into
// the bands HCA's encoder dropped, using the channel's high-frequency
// group scales read during unpack.
func (c *channel) reconstructHighFrequency(hfrGroupCount, bandsPerHFRGroup, stereoBandCount, baseBandCount, totalBandCount int) {
	if c.cfg.Type == stereoSecondary {
		return
	}
	if bandsPerHFRGroup == 0 {
		return
	}

	startBand := stereoBandCount + baseBandCount
	highband := startBand
	lowband := startBand - 1
	hfr := c.hfrScales()

	for group := 0; group < hfrGroupCount; group++ {
		for i := 0; i < bandsPerHFRGroup && highband < totalBandCount; i++ {
			scIndex := int(hfr[group]) - int(c.scalefactors[lowband]) + 64
			c.spectra[highband] = scaleConversionTable[scIndex] * c.spectra[lowband]
			highband++
			lowband--
		}
	}
	c.spectra[samplesPerSubframe-1] = 0
}

// applyIntensityStereo mixes a stereo-primary/secondary pair's spectra
// using the secondary channel's per-subframe intensity index, restoring
// the side-channel detail the encoder replaced with a ratio.
func applyIntensityStereo(primary, secondary *channel, subframe int, totalBandCount, baseBandCount, stereoBandCount int) {
	if primary.cfg.Type != stereoPrimary {
		return
	}
	if stereoBandCount == 0 {
		return
	}

	ratioL := intensityRatioTable[secondary.intensity[subframe]]
	ratioR := ratioL - 2.0

	for band := baseBandCount; band < totalBandCount; band++ {
		secondary.spectra[band] = primary.spectra[band] * ratioR
		primary.spectra[band] = primary.spectra[band] * ratioL
	}
}

// runIMDCT applies a 128-point DCT-IV to the channel's dequantized
// spectra, then overlap-adds it against the previous subframe's tail to
// produce this subframe's windowed output samples.
func (c *channel) runIMDCT(subframe int) {
	const half = samplesPerSubframe / 2

	var bufA, bufB [samplesPerSubframe]float32
	copy(bufA[:], c.spectra[:])

	// Stage 1: decimation-in-time split, ping-ponging between the two
	// scratch buffers mdctBits times.
	src, dst := &bufA, &bufB
	count1, count2 := 1, half
	for i := 0; i < mdctBits; i++ {
		d1, d2 := 0, count2
		s := 0
		for j := 0; j < count1; j++ {
			for k := 0; k < count2; k++ {
				a := src[s]
				b := src[s+1]
				s += 2
				dst[d1] = b + a
				dst[d2] = a - b
				d1++
				d2++
			}
			d1 += count2
			d2 += count2
		}
		src, dst = dst, src
		count1 <<= 1
		count2 >>= 1
	}

	// Stage 2: butterfly rotation against the precomputed sin/cos tables.
	count1, count2 = half, 1
	for i := 0; i < mdctBits; i++ {
		sinT := sinTables[i][:]
		cosT := cosTables[i][:]
		d1 := 0
		d2 := count2*2 - 1
		s1 := 0
		s2 := count2
		t := 0
		for j := 0; j < count1; j++ {
			for k := 0; k < count2; k++ {
				a := src[s1]
				b := src[s2]
				s1++
				s2++
				sinV := sinT[t]
				cosV := cosT[t]
				t++
				dst[d1] = a*sinV - b*cosV
				dst[d2] = a*cosV + b*sinV
				d1++
				d2--
			}
			s1 += count2
			s2 += count2
			d1 += count2
			d2 += count2 * 3
		}
		src, dst = dst, src
		count1 >>= 1
		count2 <<= 1
	}

	copy(c.dct[:], src[:])

	for i := 0; i < half; i++ {
		c.wave[subframe][i] = imdctWindow[i]*c.dct[i+half] + c.imdctPrevious[i]
		c.wave[subframe][i+half] = imdctWindow[i+half]*c.dct[samplesPerSubframe-1-i] - c.imdctPrevious[i+half]
		c.imdctPrevious[i] = imdctWindow[samplesPerSubframe-1-i] * c.dct[half-i-1]
		c.imdctPrevious[i+half] = imdctWindow[half-i-1] * c.dct[i]
	}
}

// Decoder decodes successive HCA frames for a single stream, implementing
// codec.Decoder.
type Decoder struct {
	h        *Header
	channels [maxChannels]channel
	info     codec.StreamInfo
}

// NewDecoder returns a Decoder for a stream whose header has already been
// parsed with ParseHeader.
func NewDecoder(h *Header) *Decoder {
	d := &Decoder{h: h}
	for i := 0; i < h.Channels; i++ {
		d.channels[i].cfg = h.Channel[i]
	}

	totalSamples := int64(h.FrameCount)*samplesPerFrame - int64(h.EncoderDelay) - int64(h.EncoderPadding)
	d.info = codec.StreamInfo{
		FormatName:      "HCA",
		Encoding:        "CRI HCA",
		Layout:          "interleaved",
		SampleRate:      h.SampleRate,
		Channels:        h.Channels,
		TotalSamples:    totalSamples,
		LoopStart:       int64(h.LoopStartFrame) * samplesPerFrame,
		LoopEnd:         int64(h.LoopEndFrame+1) * samplesPerFrame,
		LoopFlag:        h.LoopFlag,
		SamplesPerFrame: samplesPerFrame,
	}
	return d
}

func (d *Decoder) Info() codec.StreamInfo { return d.info }

// Reset clears IMDCT overlap history, as required after a seek.
func (d *Decoder) Reset() {
	for i := 0; i < d.h.Channels; i++ {
		d.channels[i].imdctPrevious = [samplesPerSubframe]float32{}
	}
}

// DecodeFrame decodes exactly one HCA frame (h.FrameSize bytes) into
// interleaved int16 PCM.
func (d *Decoder) DecodeFrame(frame []byte) ([]int16, error) {
	if len(frame) < d.h.FrameSize {
		return nil, codecerr.New("hca", codecerr.BadParams, -1, "frame shorter than frame_size")
	}
	// Decryption happens in place; copy so the caller's buffer (which may
	// be a shared read-ahead window) is never mutated.
	buf := append([]byte(nil), frame[:d.h.FrameSize]...)
	if err := d.decodeBlock(buf); err != nil {
		return nil, err
	}
	return d.interleavePCM(), nil
}

// TestFrame probes whether buf decodes to a plausible HCA frame under the
// decoder's current cipher table, for brute-forcing an unknown keycode.
// It returns 0 for a silent/empty frame (inconclusive), the clip count
// (2 or more; a single clipped sample is reported as 2) if decoding
// produced out-of-range samples (wrong key), 1 if the frame looks
// plausible, and -1 if decoding failed outright. The decode runs on a
// copy of the frame but updates the decoder's channel state just as
// DecodeFrame does.
func (d *Decoder) TestFrame(frame []byte) int {
	if len(frame) < d.h.FrameSize {
		return -1
	}
	buf := frame[:d.h.FrameSize]

	empty := true
	for i := 2; i < len(buf)-2; i++ {
		if buf[i] != 0 {
			empty = false
			break
		}
	}
	if empty {
		return 0
	}

	work := append([]byte(nil), buf...)
	if err := d.decodeBlock(work); err != nil {
		return -1
	}

	clips, blanks := 0, 0
	total := d.h.Channels * subframesPerFrame * samplesPerSubframe
	for ch := 0; ch < d.h.Channels; ch++ {
		for sf := 0; sf < subframesPerFrame; sf++ {
			for s := 0; s < samplesPerSubframe; s++ {
				f := d.channels[ch].wave[sf][s]
				if f > 1.0 || f < -1.0 {
					clips++
				} else if p := int32(f * 32768.0); p == 0 || p == -1 {
					blanks++
				}
			}
		}
	}

	if clips == 1 {
		clips++
	}
	if clips > 1 {
		return clips
	}
	if blanks == total {
		return 0
	}
	return 1
}

// decodeBlock runs the full per-frame pipeline (sync/checksum/decrypt,
// then 8 subframes of unpack/dequantize/reconstruct/IMDCT) against buf,
// which decodeBlock decrypts in place.
func (d *Decoder) decodeBlock(buf []byte) error {
	if checksum16(buf) != 0 {
		return codecerr.New("hca", codecerr.BadChecksum, -1, "frame checksum mismatch")
	}
	d.h.Cipher.decrypt(buf)

	br := bitreader.NewMSBReader(buf)
	sync, _ := br.ReadBits(16)
	if sync != 0xFFFF {
		return codecerr.New("hca", codecerr.BadSync, -1, "bad frame sync")
	}

	acceptableNoiseLevel, _ := br.ReadBits(9)
	evaluationBoundary, _ := br.ReadBits(7)
	packedNoiseLevel := int(acceptableNoiseLevel)<<8 - int(evaluationBoundary)

	for ch := 0; ch < d.h.Channels; ch++ {
		if err := d.channels[ch].unpack(br, d.h.HFRGroupCount, packedNoiseLevel, &d.h.ATH); err != nil {
			return err
		}
	}

	for sf := 0; sf < subframesPerFrame; sf++ {
		for ch := 0; ch < d.h.Channels; ch++ {
			d.channels[ch].dequantize(br)
		}
		for ch := 0; ch < d.h.Channels; ch++ {
			d.channels[ch].reconstructHighFrequency(d.h.HFRGroupCount, d.h.BandsPerHFRGroup, d.h.StereoBandCount, d.h.BaseBandCount, d.h.TotalBandCount)
		}
		for ch := 0; ch < d.h.Channels-1; ch++ {
			applyIntensityStereo(&d.channels[ch], &d.channels[ch+1], sf, d.h.TotalBandCount, d.h.BaseBandCount, d.h.StereoBandCount)
		}
		for ch := 0; ch < d.h.Channels; ch++ {
			d.channels[ch].runIMDCT(sf)
		}
	}

	if br.BitsRead() > br.Size()-16 {
		return codecerr.New("hca", codecerr.BitstreamOverrun, -1, "frame bitstream overrun")
	}
	return nil
}

// interleavePCM converts every channel's current frame of float samples
// to saturated int16 PCM, interleaved subframe-major/sample-major/
// channel-minor to match HCA's native sample ordering.
func (d *Decoder) interleavePCM() []int16 {
	out := make([]int16, samplesPerFrame*d.h.Channels)
	idx := 0
	for sf := 0; sf < subframesPerFrame; sf++ {
		for s := 0; s < samplesPerSubframe; s++ {
			for ch := 0; ch < d.h.Channels; ch++ {
				f := d.channels[ch].wave[sf][s]
				if f > 1.0 {
					f = 1.0
				} else if f < -1.0 {
					f = -1.0
				}
				v := int32(f * 32768.0)
				if uint32(v+0x8000)&0xFFFF0000 != 0 {
					v = (v >> 31) ^ 0x7FFF
				}
				out[idx] = int16(v)
				idx++
			}
		}
	}
	return out
}
