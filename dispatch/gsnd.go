package dispatch

import (
	"encoding/binary"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/dsp"
	"github.com/mewkiz/vgaudio/streamfile"
)

// openGSND recognizes Tecmo's GSND ".gsp"+".gsb" pair: a HEAD/DATA/BSIC
// chunk container describing a single stream, grounded on gsnd.c. Only
// the DSP inner codec (0x04) is decoded; a GSND file with any other
// inner codec (PCM16, ATRAC3, XMA2, ...) is recognized but reported as
// unsupported.
func openGSND(sf streamfile.StreamFile, subsong int) (Stream, error) {
	magic := make([]byte, 4)
	if err := streamfile.ReadFull(sf, 0, magic); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "short read")
	}
	if string(magic) != "GSND" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "not a GSND file")
	}

	sb, err := sf.OpenCompanion(companionName(sf.Name(), "gsb"))
	if err != nil {
		return nil, codecerr.Wrap("dispatch", codecerr.BadParams, 0, err, "opening GSND .gsb companion")
	}

	firstOffBuf := make([]byte, 4)
	if err := streamfile.ReadFull(sf, 0x10, firstOffBuf); err != nil {
		return nil, err
	}
	firstOffset := int64(binary.BigEndian.Uint32(firstOffBuf))

	dataOff, _, err := findChunkBE(sf, "DATA", firstOffset)
	if err != nil {
		return nil, err
	}
	dataBuf := make([]byte, 0x1c)
	if err := streamfile.ReadFull(sf, dataOff, dataBuf); err != nil {
		return nil, err
	}
	codecID := binary.BigEndian.Uint32(dataBuf[0x04:])
	sampleRate := int(binary.BigEndian.Uint32(dataBuf[0x08:]))
	channels := int(binary.BigEndian.Uint16(dataBuf[0x0e:]))
	numSamples := int64(binary.BigEndian.Uint32(dataBuf[0x14:]))

	if codecID != 0x04 {
		return nil, codecerr.New("dispatch", codecerr.BadParams, dataOff, "GSND: unsupported inner codec")
	}

	gcexOff, _, err := findChunkBE(sf, "GCEX", firstOffset)
	if err != nil {
		return nil, err
	}
	coefOff := gcexOff + 0x18
	headers := make([]*dsp.Header, channels)
	for ch := 0; ch < channels; ch++ {
		coefBuf := make([]byte, 0x20)
		if err := streamfile.ReadFull(sf, coefOff+int64(ch)*0x30, coefBuf); err != nil {
			return nil, err
		}
		coef, err := dsp.ParseCoefsBE(coefBuf)
		if err != nil {
			return nil, err
		}
		headers[ch] = &dsp.Header{Coef: coef}
	}

	return newDSPStream(sb, 0, numSamples, headers, sampleRate, 0, false), nil
}

// companionName swaps the current extension of name for ext.
func companionName(name, ext string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '/'; i-- {
		if name[i] == '.' {
			return name[:i+1] + ext
		}
	}
	return name + "." + ext
}
