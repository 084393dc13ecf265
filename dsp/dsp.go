// Package dsp decodes Nintendo's standard GameCube/Wii ADPCM codec
// (internally coding_NGC_DSP): a coefficient-pair predictor over 8-byte
// frames, 14 samples each. It backs the DSP-family containers in this
// module (GSND and KTSS, which store bare coefficient tables read with
// ParseCoefsBE/ParseCoefsLE), one Decoder instance per channel.
// ParseHeader reads the standard 96-byte DSP header; no container in
// this module calls it.
package dsp

import (
	"encoding/binary"

	"github.com/mewkiz/vgaudio/codec"
	"github.com/mewkiz/vgaudio/codecerr"
)

// HeaderSize is the size in bytes of the standard DSP channel header.
const HeaderSize = 0x60

const (
	// FrameSize is the size in bytes of one ADPCM frame.
	FrameSize = 8
	// SamplesPerFrame is the number of samples one frame decodes to.
	SamplesPerFrame = 14
	numCoefPairs    = 8
)

// Header holds the per-channel fields of the standard 96-byte (0x60) DSP
// header, read once at container-parse time and handed to NewDecoder.
type Header struct {
	SampleCount     int32
	NibbleCount     int32
	SampleRate      int32
	LoopFlag        bool
	LoopStartNibble int32
	LoopEndNibble   int32
	Coef            [numCoefPairs * 2]int16
	Gain            int16
	InitialPredScale int16
	InitialHist1    int16
	InitialHist2    int16
}

// ParseHeader reads one channel's standard DSP header out of buf,
// big-endian (the GameCube-native byte order every container in this
// package stores it in).
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, codecerr.New("dsp", codecerr.BadParams, -1, "DSP header too small")
	}
	h := &Header{
		SampleCount:     int32(binary.BigEndian.Uint32(buf[0x00:])),
		NibbleCount:     int32(binary.BigEndian.Uint32(buf[0x04:])),
		SampleRate:      int32(binary.BigEndian.Uint32(buf[0x08:])),
		LoopFlag:        binary.BigEndian.Uint16(buf[0x0c:]) != 0,
		LoopStartNibble: int32(binary.BigEndian.Uint32(buf[0x10:])),
		LoopEndNibble:   int32(binary.BigEndian.Uint32(buf[0x14:])),
		Gain:            int16(binary.BigEndian.Uint16(buf[0x3c:])),
	}
	for i := 0; i < numCoefPairs*2; i++ {
		h.Coef[i] = int16(binary.BigEndian.Uint16(buf[0x1c+i*2:]))
	}
	h.InitialPredScale = int16(binary.BigEndian.Uint16(buf[0x3e:]))
	h.InitialHist1 = int16(binary.BigEndian.Uint16(buf[0x40:]))
	h.InitialHist2 = int16(binary.BigEndian.Uint16(buf[0x42:]))
	return h, nil
}

// ParseCoefsLE reads a bare 16-entry little-endian coefficient table,
// the shape containers like KTSS embed outside the standard header
// (dsp_read_coefs_le).
func ParseCoefsLE(buf []byte) (coef [numCoefPairs * 2]int16, err error) {
	return parseCoefs(buf, binary.LittleEndian)
}

// ParseCoefsBE is ParseCoefsLE's big-endian counterpart
// (dsp_read_coefs_be), used by containers like GSND.
func ParseCoefsBE(buf []byte) (coef [numCoefPairs * 2]int16, err error) {
	return parseCoefs(buf, binary.BigEndian)
}

func parseCoefs(buf []byte, order binary.ByteOrder) (coef [numCoefPairs * 2]int16, err error) {
	if len(buf) < len(coef)*2 {
		return coef, codecerr.New("dsp", codecerr.BadParams, -1, "coefficient table too small")
	}
	for i := range coef {
		coef[i] = int16(order.Uint16(buf[i*2:]))
	}
	return coef, nil
}

// Decoder decodes one channel of DSP ADPCM. Coef holds 8 (a, b)
// predictor pairs selected by the top nibble of each frame's header
// byte; hist1/hist2 carry the previous two decoded samples across
// frames.
type Decoder struct {
	coef  [numCoefPairs * 2]int16
	hist1 int16
	hist2 int16

	info codec.StreamInfo
}

// NewDecoder returns a Decoder for one channel of a DSP stream.
// totalSamples/loopStart describe the channel as a whole, for Info;
// decoding itself is frame-local and does not use them.
func NewDecoder(sampleRate int, h *Header, totalSamples int64, loopStart int64, loopFlag bool) *Decoder {
	d := &Decoder{
		coef:  h.Coef,
		hist1: h.InitialHist1,
		hist2: h.InitialHist2,
	}
	d.info = codec.StreamInfo{
		FormatName:      "DSP",
		Encoding:        "Nintendo GameCube ADPCM",
		Layout:          "per-channel",
		SampleRate:      sampleRate,
		Channels:        1,
		TotalSamples:    totalSamples,
		LoopStart:       loopStart,
		LoopEnd:         totalSamples,
		LoopFlag:        loopFlag,
		SamplesPerFrame: SamplesPerFrame,
	}
	return d
}

func (d *Decoder) Info() codec.StreamInfo { return d.info }

// Reset zeroes hist1/hist2, for seeking back to sample 0; it does not
// restore the header's InitialHist1/InitialHist2 values that NewDecoder
// starts from. Seeking to a mid-stream loop point additionally
// requires restoring the hist1/hist2 values stored alongside the loop
// offset in the container header, which callers set directly via
// SetHistory.
func (d *Decoder) Reset() {
	d.hist1 = 0
	d.hist2 = 0
}

// SetHistory overrides hist1/hist2, used when seeking to a loop point
// whose predictor history was captured in the container header.
func (d *Decoder) SetHistory(hist1, hist2 int16) {
	d.hist1 = hist1
	d.hist2 = hist2
}

// DecodeFrame decodes one 8-byte frame into 14 int16 PCM samples.
func (d *Decoder) DecodeFrame(frame []byte) ([]int16, error) {
	if len(frame) < FrameSize {
		return nil, codecerr.New("dsp", codecerr.BitstreamOverrun, -1, "short ADPCM frame")
	}
	predScale := frame[0]
	predictor := int((predScale >> 4) & 0xf)
	scale := int32(1) << uint(predScale&0xf)
	if predictor >= numCoefPairs {
		return nil, codecerr.New("dsp", codecerr.BadParams, -1, "predictor index out of range")
	}
	coef1 := int32(d.coef[predictor*2])
	coef2 := int32(d.coef[predictor*2+1])

	out := make([]int16, 0, SamplesPerFrame)
	hist1, hist2 := int32(d.hist1), int32(d.hist2)
	for i := 0; i < SamplesPerFrame; i++ {
		b := frame[1+i/2]
		var nibble int32
		if i%2 == 0 {
			nibble = int32(int8(b&0xf0) >> 4)
		} else {
			nibble = int32(int8(b<<4) >> 4)
		}
		sample := (nibble*scale<<11 + coef1*hist1 + coef2*hist2) >> 11
		sample = clampInt16(sample)
		out = append(out, int16(sample))
		hist2 = hist1
		hist1 = sample
	}
	d.hist1 = int16(hist1)
	d.hist2 = int16(hist2)
	return out, nil
}

func clampInt16(v int32) int32 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return v
	}
}
