package dispatch

import (
	"encoding/binary"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/dsp"
	"github.com/mewkiz/vgaudio/streamfile"
)

// openKTSS recognizes Koei Tecmo's KTSS container (magic "KTSS",
// extensions .kns/.ktss), grounded on ktss.c. Only its DSP codec path
// is decoded; Opus-NX and PCM16 KTSS streams are out of scope.
func openKTSS(sf streamfile.StreamFile, subsong int) (Stream, error) {
	magic := make([]byte, 4)
	if err := streamfile.ReadFull(sf, 0, magic); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "short read")
	}
	if string(magic) != "KTSS" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "not a KTSS file")
	}

	var versionBuf [1]byte
	if err := streamfile.ReadFull(sf, 0x22, versionBuf[:]); err != nil {
		return nil, err
	}
	var coefStart, coefSpacing int64
	switch versionBuf[0] {
	case 1:
		coefStart, coefSpacing = 0x40, 0x2e
	case 3:
		coefStart, coefSpacing = 0x5c, 0x60
	default:
		return nil, codecerr.New("dispatch", codecerr.UnsupportedVersion, 0x22, "unrecognized KTSS version")
	}

	fields := make([]byte, 0x3c)
	if err := streamfile.ReadFull(sf, 0, fields); err != nil {
		return nil, err
	}
	loopLength := int64(binary.LittleEndian.Uint32(fields[0x38:]))
	loopFlag := loopLength > 0
	channelMultiplier := int(fields[0x28])
	channels := int(fields[0x29]) * channelMultiplier
	if channels <= 0 {
		return nil, codecerr.New("dispatch", codecerr.BadParams, 0, "KTSS: bad channel count")
	}

	numSamples := int64(binary.LittleEndian.Uint32(fields[0x30:]))
	sampleRate := int(binary.LittleEndian.Uint16(fields[0x2c:]))
	loopStart := int64(binary.LittleEndian.Uint32(fields[0x34:]))
	startOffset := int64(binary.LittleEndian.Uint32(fields[0x24:])) + 0x20

	headers := make([]*dsp.Header, channels)
	for ch := 0; ch < channels; ch++ {
		coefBuf := make([]byte, 0x20)
		if err := streamfile.ReadFull(sf, coefStart+int64(ch)*coefSpacing, coefBuf); err != nil {
			return nil, err
		}
		coef, err := dsp.ParseCoefsLE(coefBuf)
		if err != nil {
			return nil, err
		}
		headers[ch] = &dsp.Header{Coef: coef}
	}

	return newDSPStream(sf, startOffset, numSamples, headers, sampleRate, loopStart, loopFlag), nil
}
