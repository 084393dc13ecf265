package dispatch

import (
	"encoding/binary"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// openBKHD recognizes a Wwise soundbank (magic "BKHD", extension .bnk),
// grounded on bkhd.c. It supports the modern (version > 26) DIDX+DATA
// index layout; each subsong is an embedded RIFF .wem handed to
// openRIFF. The older inline-index layout (version <= 26) is not
// implemented.
func openBKHD(sf streamfile.StreamFile, subsong int) (Stream, error) {
	base := int64(0)
	magic := make([]byte, 4)
	if err := streamfile.ReadFull(sf, 0, magic); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "short read")
	}
	if string(magic) == "AKBK" {
		base = 0x0c
	}
	if err := streamfile.ReadFull(sf, base, magic); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, base, "short read")
	}
	if string(magic) != "BKHD" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, base, "not a BKHD bank")
	}

	verBuf := make([]byte, 4)
	if err := streamfile.ReadFull(sf, base+8, verBuf); err != nil {
		return nil, err
	}
	version := binary.LittleEndian.Uint32(verBuf)
	if version == 0 || version == 1 {
		if err := streamfile.ReadFull(sf, base+0x10, verBuf); err != nil {
			return nil, err
		}
		version = binary.LittleEndian.Uint32(verBuf)
	}
	if version <= 26 {
		return nil, codecerr.New("dispatch", codecerr.UnsupportedVersion, base, "BKHD: pre-27 inline index layout not supported")
	}

	didxOff, didxSize, err := findChunkLE(sf, "DIDX", base)
	if err != nil {
		return nil, err
	}
	dataOff, _, err := findChunkLE(sf, "DATA", base)
	if err != nil {
		return nil, err
	}

	totalSubsongs := int(didxSize / 0x0c)
	if totalSubsongs < 1 {
		return nil, codecerr.New("dispatch", codecerr.BadParams, didxOff, "BKHD: bank has no subsongs")
	}
	if subsong == 0 {
		subsong = 1
	}
	if subsong > totalSubsongs {
		return nil, codecerr.New("dispatch", codecerr.BadParams, didxOff, "BKHD: subsong index out of range")
	}

	entryBuf := make([]byte, 0x0c)
	entryOff := didxOff + int64(subsong-1)*0x0c
	if err := streamfile.ReadFull(sf, entryOff, entryBuf); err != nil {
		return nil, err
	}
	subOffset := int64(binary.LittleEndian.Uint32(entryBuf[0x04:])) + dataOff
	subSize := int64(binary.LittleEndian.Uint32(entryBuf[0x08:]))
	if subOffset <= dataOff || subSize <= 0 {
		return nil, codecerr.New("dispatch", codecerr.BadParams, entryOff, "BKHD: empty subsong entry")
	}

	wem := newSubfile(sf, subOffset, subSize, sf.Name()+"#wem")
	return openRIFF(wem, 1)
}
