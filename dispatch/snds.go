package dispatch

import (
	"encoding/binary"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// openSNDS recognizes Sony/SCE's SNDS container (magic "SSDD"),
// grounded on snds.c. Every known SNDS file carries ATRAC9 audio,
// which this module does not decode; openSNDS exists so the dispatcher
// reports that plainly instead of falling through to BadMagic.
func openSNDS(sf streamfile.StreamFile, subsong int) (Stream, error) {
	magic := make([]byte, 4)
	if err := streamfile.ReadFull(sf, 0, magic); err != nil {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "short read")
	}
	if string(magic) != "SSDD" {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "not an SNDS file")
	}

	sizeBuf := make([]byte, 4)
	if err := streamfile.ReadFull(sf, 0x04, sizeBuf); err != nil {
		return nil, err
	}
	if int64(binary.LittleEndian.Uint32(sizeBuf)) != sf.Size() {
		return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "SNDS file size mismatch")
	}

	wavsOff, _, err := findChunkLE(sf, "WAVS", 0x60)
	if err != nil {
		return nil, err
	}
	entryBuf := make([]byte, 0x04)
	if err := streamfile.ReadFull(sf, wavsOff, entryBuf); err != nil {
		return nil, err
	}
	if binary.LittleEndian.Uint16(entryBuf[0:2]) != 0x2c {
		return nil, codecerr.New("dispatch", codecerr.BadParams, wavsOff, "SNDS: unexpected WAVS entry size")
	}
	totalSubsongs := int(int16(binary.LittleEndian.Uint16(entryBuf[2:4])))
	if subsong < 1 {
		subsong = 1
	}
	if subsong > totalSubsongs || totalSubsongs < 1 {
		return nil, codecerr.New("dispatch", codecerr.BadParams, wavsOff, "SNDS: subsong index out of range")
	}

	headOff := wavsOff + 0x04 + 0x2c*int64(subsong-1)
	hdrBuf := make([]byte, 0x29)
	if err := streamfile.ReadFull(sf, headOff, hdrBuf); err != nil {
		return nil, err
	}
	codecID := hdrBuf[0x0c]

	// Every shipped SNDS file uses codec 0x41 (ATRAC9); this module
	// recognizes the container but does not decode that codec.
	return nil, codecerr.New("dispatch", codecerr.BadParams, headOff, "SNDS: unsupported inner codec 0x"+hex(codecID))
}

func hex(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
