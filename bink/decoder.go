// Package bink decodes RAD Game Tools' Bink Audio codec: a banded,
// RLE-grouped quantized-coefficient bitstream feeding a DCT-III (or, for
// Bink 1.1's older interleaved mode, a real inverse DFT), with a
// fixed-fraction frame overlap smoothing each frame's boundary into the
// next.
package bink

import (
	"math"

	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/internal/bitreader"
)

const maxBands = 26

// Mode selects which container generation produced the stream and which
// transform its frames use.
type Mode int

const (
	// ModeBCFDCT is Bink 1.1's DCT-based audio, the common case.
	ModeBCFDCT Mode = iota
	// ModeBCFRDFT is Bink 1.1's older, rarely-seen RDFT-based audio.
	ModeBCFRDFT
	// ModeUEBA is Bink Audio 2 ("UEBA"), always DCT-based.
	ModeUEBA
)

// subDecoder decodes one mono or stereo pair out of a (possibly
// multichannel) Bink packet. Channels beyond a stereo pair are handled by
// partitioning a packet into multiple subDecoders, matching the upstream
// decoder's mono/stereo-only design.
type subDecoder struct {
	frameSamples   int
	frameChannels  int
	bandCount      int
	bandThresholds [maxBands]int
	scale          float32
	overlapSamples int
	overlapEnabled bool
	isFirstFrame   bool
	isDCT          bool
	isBinka2       bool

	coefs   []float32 // frameChannels*frameSamples, planar
	overlap []float32 // frameChannels*overlapSamples, planar
}

func newSubDecoder(sampleRate, frameChannels int, isDCT, isBinka2 bool) *subDecoder {
	frameSamples := 512
	switch {
	case sampleRate >= 44100:
		frameSamples = 2048
	case sampleRate >= 22050:
		frameSamples = 1024
	}

	d := &subDecoder{
		frameChannels: frameChannels,
		frameSamples:  frameSamples,
		isDCT:         isDCT,
		isBinka2:      isBinka2,
		isFirstFrame:  true,
	}

	halfSamples := frameSamples / 2
	halfRate := (sampleRate + 1) / 2

	bandCount := 0
	for bandCount < maxBands-1 {
		if cutoffFrequency[bandCount] >= halfRate {
			break
		}
		bandCount++
	}
	d.bandCount = bandCount

	for i := 0; i < bandCount; i++ {
		limit := halfSamples * cutoffFrequency[i] / halfRate
		if limit == 0 {
			limit = 1
		}
		d.bandThresholds[i] = limit
	}
	d.bandThresholds[bandCount] = halfSamples

	d.overlapSamples = frameSamples >> 4
	switch d.overlapSamples {
	case 32, 64, 128, 256:
		d.overlapEnabled = true
	}
	d.scale = float32(2 / math.Sqrt(float64(frameSamples)))

	d.coefs = make([]float32, frameChannels*frameSamples)
	d.overlap = make([]float32, frameChannels*d.overlapSamples)

	return d
}

// readFloat29 unpacks one of Bink's 29-bit packed floats: a 5-bit power,
// a 23-bit mantissa, and a sign bit, recombined as mantissa*2^(power-23).
func readFloat29(br *bitreader.LSBReader) (float32, error) {
	code, err := br.ReadBits(29)
	if err != nil {
		return 0, err
	}
	power := code & 0x1F
	mantissa := (code >> 5) & 0x7FFFFF
	sign := (code >> 28) & 1

	v := float32(mantissa) * float29Power[power]
	if sign != 0 {
		v = -v
	}
	return v, nil
}

// unpackChannel reads one channel's worth of spectral coefficients:
// two packed floats, a scalefactor per band, then a sequence of
// RLE-grouped, band-scaled quantized coefficients until the frame is
// full.
func (d *subDecoder) unpackChannel(br *bitreader.LSBReader, coefs []float32) error {
	c0, err := readFloat29(br)
	if err != nil {
		return err
	}
	c1, err := readFloat29(br)
	if err != nil {
		return err
	}
	coefs[0], coefs[1] = c0, c1

	iBits := uint(8)
	if d.isBinka2 {
		iBits = 7
	}
	var bandScales [maxBands]float32
	for i := 0; i < d.bandCount; i++ {
		idx, err := br.ReadBits(iBits)
		if err != nil {
			return err
		}
		if idx > 95 {
			idx = 95
		}
		bandScales[i] = scalefactors[idx]
	}

	bandScale := float32(0)
	band := 0
	pos := 2
	for pos < d.frameSamples {
		rleFlag, err := br.ReadBit()
		if err != nil {
			return err
		}
		end := pos + 8
		if rleFlag != 0 {
			rleIdx, err := br.ReadBits(4)
			if err != nil {
				return err
			}
			end = pos + 8*rleTable[rleIdx]
		}
		if end > d.frameSamples {
			end = d.frameSamples
		}

		qBits, err := br.ReadBits(4)
		if err != nil {
			return err
		}

		switch {
		case qBits == 0:
			for i := pos; i < end; i++ {
				coefs[i] = 0
			}
			for end > d.bandThresholds[band]*2 {
				bandScale = bandScales[band]
				band++
			}
			pos = end

		case d.isBinka2:
			for sub := pos; sub < end; sub++ {
				v, err := br.ReadBits(qBits)
				if err != nil {
					return err
				}
				coefs[sub] = float32(v)
			}
			for sub := pos; sub < end; sub++ {
				if coefs[sub] != 0 {
					neg, err := br.ReadBit()
					if err != nil {
						return err
					}
					if neg != 0 {
						coefs[sub] = -coefs[sub]
					}
				}
			}
			for pos < end {
				if pos == d.bandThresholds[band]*2 {
					bandScale = bandScales[band]
					band++
				}
				coefs[pos] *= bandScale
				pos++
			}

		default:
			for pos < end {
				if pos == d.bandThresholds[band]*2 {
					bandScale = bandScales[band]
					band++
				}
				v, err := br.ReadBits(qBits)
				if err != nil {
					return err
				}
				if v != 0 {
					neg, err := br.ReadBit()
					if err != nil {
						return err
					}
					coef := float32(v) * bandScale
					if neg != 0 {
						coef = -coef
					}
					coefs[pos] = coef
				} else {
					coefs[pos] = 0
				}
				pos++
			}
		}
	}

	return nil
}

// applyOverlapAndScale scales this frame's samples and blends its first
// overlapSamples against the previous frame's tail, then saves the new
// tail for the next frame.
func (d *subDecoder) applyOverlapAndScale() {
	for i := range d.coefs {
		d.coefs[i] *= d.scale
	}

	blend := d.overlapEnabled && !d.isFirstFrame
	d.isFirstFrame = false

	outputSamples := d.frameSamples - d.overlapSamples
	for ch := 0; ch < d.frameChannels; ch++ {
		chCoefs := d.coefs[ch*d.frameSamples : (ch+1)*d.frameSamples]
		chOverlap := d.overlap[ch*d.overlapSamples : (ch+1)*d.overlapSamples]

		if blend {
			for i := 0; i < d.overlapSamples; i++ {
				s1 := chOverlap[i]
				s2 := float32(i) * (chCoefs[i] - s1) / float32(d.overlapSamples)
				chCoefs[i] = s1 + s2
			}
		}

		copy(chOverlap, chCoefs[outputSamples:outputSamples+d.overlapSamples])
	}
}

// decodeFrame reads and transforms one packet's worth of data for every
// channel this subDecoder owns.
func (d *subDecoder) decodeFrame(br *bitreader.LSBReader) error {
	if d.isDCT {
		if _, err := br.ReadBits(2); err != nil {
			return err
		}
	}
	for ch := 0; ch < d.frameChannels; ch++ {
		chCoefs := d.coefs[ch*d.frameSamples : (ch+1)*d.frameSamples]
		if err := d.unpackChannel(br, chCoefs); err != nil {
			return err
		}
		if d.isDCT {
			dctIII(chCoefs)
		} else {
			idft(chCoefs)
		}
	}
	d.applyOverlapAndScale()
	return nil
}

// Decoder decodes successive Bink Audio packets for a stream, partitioning
// channels beyond a stereo pair into additional mono/stereo subDecoders,
// implementing codec.Decoder.
type Decoder struct {
	channels      int
	outputSamples int
	subDecoders   []*subDecoder
	info          codec.StreamInfo
}

// NewDecoder returns a Decoder for a stream with the given sample rate,
// channel count, and container mode.
func NewDecoder(sampleRate, channels int, mode Mode) (*Decoder, error) {
	if channels < 1 {
		return nil, codecerr.New("bink", codecerr.BadParams, -1, "channel count out of range")
	}
	if sampleRate < 1 {
		return nil, codecerr.New("bink", codecerr.BadParams, -1, "sample rate out of range")
	}

	isDCT := mode != ModeBCFRDFT
	isBinka2 := mode == ModeUEBA

	d := &Decoder{channels: channels}

	switch {
	case sampleRate >= 44100:
		d.outputSamples = 1920
	case sampleRate >= 22050:
		d.outputSamples = 960
	default:
		d.outputSamples = 480
	}

	for remaining := channels; remaining > 0; remaining -= 2 {
		frameChannels := 2
		if remaining < 2 {
			frameChannels = 1
		}
		d.subDecoders = append(d.subDecoders, newSubDecoder(sampleRate, frameChannels, isDCT, isBinka2))
	}

	encoding := "Bink Audio 1.1"
	if isBinka2 {
		encoding = "Bink Audio 2"
	}
	d.info = codec.StreamInfo{
		FormatName:      "Bink Audio",
		Encoding:        encoding,
		Layout:          "interleaved",
		SampleRate:      sampleRate,
		Channels:        channels,
		SamplesPerFrame: d.outputSamples,
	}

	return d, nil
}

func (d *Decoder) Info() codec.StreamInfo { return d.info }

// Reset marks every sub-decoder's next frame as first-of-stream, so
// overlap blending is skipped once after a seek, matching the upstream
// decoder's own reset behavior.
func (d *Decoder) Reset() {
	for _, sd := range d.subDecoders {
		sd.isFirstFrame = true
	}
}

// DecodeFrame decodes one Bink Audio packet, which holds one sub-frame
// per subDecoder back to back, each aligned to a 32-bit boundary, into
// interleaved int16 PCM.
func (d *Decoder) DecodeFrame(frame []byte) ([]int16, error) {
	cursor := 0
	for _, sd := range d.subDecoders {
		if cursor > len(frame) {
			return nil, codecerr.New("bink", codecerr.BitstreamOverrun, int64(cursor), "packet too short for channel count")
		}
		br := bitreader.NewLSBReader(frame[cursor:])
		if err := sd.decodeFrame(br); err != nil {
			return nil, codecerr.Wrap("bink", codecerr.UnpackError, int64(cursor), err, "decoding bink sub-frame")
		}
		br.Bit32Align()
		cursor += br.BytePos()
	}
	return d.interleave(), nil
}

// interleave saturates and interleaves every sub-decoder's planar output
// into L/R/.../L/R int16 PCM, truncated to the packet's output_samples
// (the overlap-reserved tail is excluded).
func (d *Decoder) interleave() []int16 {
	out := make([]int16, d.outputSamples*d.channels)
	ch := 0
	for _, sd := range d.subDecoders {
		for sc := 0; sc < sd.frameChannels; sc++ {
			chCoefs := sd.coefs[sc*sd.frameSamples : (sc+1)*sd.frameSamples]
			for s := 0; s < d.outputSamples; s++ {
				f := chCoefs[s]
				if f > 1 {
					f = 1
				} else if f < -1 {
					f = -1
				}
				v := int32(f * 32768)
				if uint32(v+0x8000)&0xFFFF0000 != 0 {
					v = (v >> 31) ^ 0x7FFF
				}
				out[s*d.channels+ch] = int16(v)
			}
			ch++
		}
	}
	return out
}
