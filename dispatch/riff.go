package dispatch

import (
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// openRIFF recognizes a standard "RIFF"+fourCC container: plain WAVE
// (PCM16 decoded directly), or XWMA (fmt/data walk per xwma.c, reported
// as unsupported since this module does not implement WMA).
// BKHD hands it each subsong's embedded .wem, which is itself ordinary
// RIFF.
func openRIFF(sf streamfile.StreamFile, subsong int) (Stream, error) {
	hdr := make([]byte, 12)
	if err := streamfile.ReadFull(sf, 0, hdr); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "short read")
	}
	if string(hdr[0:4]) != "RIFF" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "not a RIFF stream")
	}
	form := string(hdr[8:12])
	if form != "WAVE" && form != "XWMA" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "unrecognized RIFF form "+form)
	}

	fmt, dataOffset, dataSize, err := walkRIFF(sf, 0)
	if err != nil {
		return nil, err
	}

	if fmt.formatTag != riffFormatPCM {
		return nil, codecerr.New("dispatch", codecerr.BadParams, dataOffset, "RIFF stream uses an unsupported codec (format tag unsupported by this module)")
	}
	if fmt.channels <= 0 || fmt.blockAlign <= 0 {
		return nil, codecerr.New("dispatch", codecerr.BadParams, dataOffset, "RIFF stream has a malformed fmt chunk")
	}

	totalSamples := dataSize / int64(fmt.blockAlign)
	return newPCMStream(sf, dataOffset, fmt.channels, fmt.sampleRate, totalSamples), nil
}

// openXWMA is a thin alias kept distinct from openRIFF in the dispatch
// chain so an XWMA file's magic (RIFF+"XWMA") is matched and reported
// with its own context even though the parsing itself is shared.
func openXWMA(sf streamfile.StreamFile, subsong int) (Stream, error) {
	hdr := make([]byte, 8)
	if err := streamfile.ReadFull(sf, 0, hdr); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "short read")
	}
	if string(hdr[0:4]) != "RIFF" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "not a RIFF stream")
	}
	var form [4]byte
	if err := streamfile.ReadFull(sf, 8, form[:]); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 8, "short read")
	}
	if string(form[:]) != "XWMA" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 8, "not an XWMA stream")
	}
	return openRIFF(sf, subsong)
}
