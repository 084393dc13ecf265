package dispatch

import (
	"encoding/binary"

	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// findChunkBE walks a sequence of 8-byte (4-byte big-endian tag, 4-byte
// big-endian size) chunks starting at start looking for tag, the shape
// GSND's HEAD/DATA/BSIC chunks use. It returns the offset of the
// chunk's payload (just past the tag+size header) and its size.
func findChunkBE(sf streamfile.StreamFile, tag string, start int64) (int64, int64, error) {
	return findChunk(sf, tag, start, binary.BigEndian)
}

// findChunkLE is findChunkBE with little-endian sizes, the shape SNDS's
// WAVS/WAVD chunks use.
func findChunkLE(sf streamfile.StreamFile, tag string, start int64) (int64, int64, error) {
	return findChunk(sf, tag, start, binary.LittleEndian)
}

func findChunk(sf streamfile.StreamFile, tag string, start int64, order binary.ByteOrder) (int64, int64, error) {
	off := start
	end := sf.Size()
	hdr := make([]byte, 8)
	for off+8 <= end {
		if err := streamfile.ReadFull(sf, off, hdr); err != nil {
			return 0, 0, err
		}
		size := int64(order.Uint32(hdr[4:8]))
		if string(hdr[0:4]) == tag {
			return off + 8, size, nil
		}
		off += 8 + size
		if size < 0 {
			break
		}
	}
	return 0, 0, codecerr.New("dispatch", codecerr.BadMagic, start, "chunk "+tag+" not found")
}

// riffFmt holds the fields of a RIFF "fmt " chunk this package can act
// on; chunks describing codecs out of scope (Vorbis, WMA, XMA2, ...)
// are still parsed far enough to report a specific error instead of
// BadMagic.
type riffFmt struct {
	formatTag  uint16
	channels   int
	sampleRate int
	blockAlign int
}

// walkRIFF finds the "fmt " and "data" sub-chunks of a RIFF container
// starting just past the 12-byte RIFF/size/form header, mirroring the
// chunk_t walk xwma.c and bkhd.c both use for their payload.
func walkRIFF(sf streamfile.StreamFile, riffStart int64) (fmt riffFmt, dataOffset, dataSize int64, err error) {
	off := riffStart + 12
	end := sf.Size()
	hdr := make([]byte, 8)
	haveFmt := false
	for off+8 <= end {
		if err := streamfile.ReadFull(sf, off, hdr); err != nil {
			return fmt, 0, 0, err
		}
		tag := string(hdr[0:4])
		size := int64(binary.LittleEndian.Uint32(hdr[4:8]))
		payload := off + 8
		switch tag {
		case "fmt ":
			fbuf := make([]byte, 16)
			if err := streamfile.ReadFull(sf, payload, fbuf); err != nil {
				return fmt, 0, 0, err
			}
			fmt.formatTag = binary.LittleEndian.Uint16(fbuf[0:2])
			fmt.channels = int(binary.LittleEndian.Uint16(fbuf[2:4]))
			fmt.sampleRate = int(binary.LittleEndian.Uint32(fbuf[4:8]))
			fmt.blockAlign = int(binary.LittleEndian.Uint16(fbuf[12:14]))
			haveFmt = true
		case "data":
			dataOffset = payload
			dataSize = size
		}
		off = payload + size + size%2
	}
	if !haveFmt || dataOffset == 0 {
		return fmt, 0, 0, codecerr.New("dispatch", codecerr.BadMagic, riffStart, "RIFF stream missing fmt/data chunks")
	}
	return fmt, dataOffset, dataSize, nil
}

const riffFormatPCM = 1
