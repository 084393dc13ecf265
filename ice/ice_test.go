package ice

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/mewkiz/vgaudio/internal/bitreader"
)

func TestRangeDecoderSilence(t *testing.T) {
	d, err := NewRangeDecoder(44100, 1, 100, 200, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	// A range header of all zero bits means range_min=range_max=0, bits=1:
	// every code decodes to sample 0.
	data := make([]byte, 64)
	d.SetBlock(data, 100)

	pcm, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(pcm) != 100 {
		t.Fatalf("len(pcm) = %d, want 100", len(pcm))
	}
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("pcm[%d] = %d, want 0", i, s)
		}
	}
}

func TestRangeDecoderStereoInterleave(t *testing.T) {
	d, err := NewRangeDecoder(44100, 2, 10, 10, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	data := make([]byte, 64)
	d.SetBlock(data, 10)

	pcm, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(pcm) != 20 {
		t.Fatalf("len(pcm) = %d, want 20 (10 samples * 2 channels)", len(pcm))
	}
}

func TestRangeDecoderDone(t *testing.T) {
	d, err := NewRangeDecoder(44100, 1, 4, 4, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	d.SetBlock(make([]byte, 32), 4)
	if d.Done() {
		t.Fatal("Done() = true before any samples decoded")
	}
	if _, err := d.DecodeFrame(nil); err != nil {
		t.Fatal(err)
	}
	if !d.Done() {
		t.Fatal("Done() = false after decoding all samples")
	}
	pcm, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatal(err)
	}
	if pcm != nil {
		t.Fatalf("DecodeFrame after Done() = %v, want nil", pcm)
	}
}

// buildDCTBlock assembles a minimal DCT block with the given channel and
// band counts: a codeinfo header, one zlib codebook chunk of all-zero
// nibbles (qbits=0 throughout) per channel and band, and a data
// bitstream of all-zero bits (so every code decodes to 0).
func buildDCTBlock(t *testing.T, channels int, bands int, maxSamples int) []byte {
	t.Helper()

	var cbk bytes.Buffer
	zw := zlib.NewWriter(&cbk)
	if _, err := zw.Write(make([]byte, 16)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	cbkChunk := cbk.Bytes()

	header := make([]byte, dctHeaderSize)
	putU32 := func(off int, v uint32) {
		header[off] = byte(v)
		header[off+1] = byte(v >> 8)
		header[off+2] = byte(v >> 16)
		header[off+3] = byte(v >> 24)
	}
	header[0x04] = 16 // init_scale
	header[0x05] = byte(bands)
	header[0x06] = byte(channels)
	header[0x07] = 0
	putU32(0x08, uint32(maxSamples))

	pos := 0x0c
	offset := uint32(dctHeaderSize)
	for ch := 0; ch < maxChannels; ch++ {
		for i := 0; i < dctMaxBands; i++ {
			putU32(pos, offset)
			pos += 4
			if ch < channels && i < bands {
				offset += uint32(len(cbkChunk))
			}
		}
	}
	pos = 0x0c + 4*maxChannels*dctMaxBands
	for ch := 0; ch < maxChannels; ch++ {
		for i := 0; i < dctMaxBands; i++ {
			if ch < channels && i < bands {
				putU32(pos, uint32(len(cbkChunk)))
			} else {
				putU32(pos, 0)
			}
			pos += 4
		}
	}

	buf := append([]byte(nil), header...)
	for ch := 0; ch < channels; ch++ {
		for i := 0; i < bands; i++ {
			buf = append(buf, cbkChunk...)
		}
	}

	dataStart := uint32(len(buf))
	putU32(0x10c, dataStart)
	dataSize := uint32(64)
	putU32(0x110, dataSize)
	copy(buf[:dctHeaderSize], header)
	buf = append(buf, make([]byte, dataSize)...)

	return buf
}

func TestDCTDecoderSilence(t *testing.T) {
	d, err := NewDCTDecoder(22050, 1, 32, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	buf := buildDCTBlock(t, 1, 2, 32)
	if err := d.SetBlock(buf); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}

	pcm, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(pcm) != dctMaxBands {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), dctMaxBands)
	}
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("pcm[%d] = %d, want 0 (all-zero codes and history)", i, s)
		}
	}
}

func TestDCTDecoderTailTruncation(t *testing.T) {
	d, err := NewDCTDecoder(22050, 1, 20, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	buf := buildDCTBlock(t, 1, 1, 20)
	if err := d.SetBlock(buf); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}

	first, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 16 {
		t.Fatalf("len(first) = %d, want 16", len(first))
	}
	second, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 4 {
		t.Fatalf("len(second) = %d, want 4 (tail of a 20-sample block)", len(second))
	}
	if !d.Done() {
		t.Fatal("Done() = false after consuming the whole block")
	}
}

// buildDCTBandFoldBlock builds a one-channel, 5-band DCT block where
// bands 0-3 always decode to code 0 and band 4 decodes to a nonzero
// code, to exercise the 8-way butterfly fold's case 4, 12 branch (the
// only bands reaching it with this small a band count).
func buildDCTBandFoldBlock(t *testing.T, bandQBits [5]byte, dataByte byte) []byte {
	t.Helper()

	deflate := func(b byte) []byte {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write([]byte{b}); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	const bands = 5
	var cbkChunks [bands][]byte
	for i, qb := range bandQBits {
		cbkChunks[i] = deflate(qb)
	}

	header := make([]byte, dctHeaderSize)
	putU32 := func(off int, v uint32) {
		header[off] = byte(v)
		header[off+1] = byte(v >> 8)
		header[off+2] = byte(v >> 16)
		header[off+3] = byte(v >> 24)
	}
	header[0x04] = 16 // init_scale
	header[0x05] = bands
	header[0x06] = 1 // channels
	header[0x07] = 0
	putU32(0x08, 16) // maxSamples

	var offsets, sizes [maxChannels][dctMaxBands]uint32
	offset := uint32(dctHeaderSize)
	for i := 0; i < bands; i++ {
		offsets[0][i] = offset
		sizes[0][i] = uint32(len(cbkChunks[i]))
		offset += uint32(len(cbkChunks[i]))
	}
	pos := 0x0c
	for ch := 0; ch < maxChannels; ch++ {
		for i := 0; i < dctMaxBands; i++ {
			putU32(pos, offsets[ch][i])
			pos += 4
		}
	}
	for ch := 0; ch < maxChannels; ch++ {
		for i := 0; i < dctMaxBands; i++ {
			putU32(pos, sizes[ch][i])
			pos += 4
		}
	}

	buf := append([]byte(nil), header...)
	for i := 0; i < bands; i++ {
		buf = append(buf, cbkChunks[i]...)
	}

	dataStart := uint32(len(buf))
	putU32(0x10c, dataStart)
	putU32(0x110, 1)
	copy(buf[:dctHeaderSize], header)
	buf = append(buf, dataByte)

	return buf
}

// TestDCTDecoderBandFoldSign exercises the case 4, 12 branch of the
// butterfly fold with a nonzero band 4 coefficient. Band 4's step=1
// contribution only ever lands in fbuf[13] (fbuf[11] receives only
// step=0's write); a fbuf[12-step] mistake in place of fbuf[12+step]
// leaves fbuf[13] untouched and double-writes fbuf[11] instead.
func TestDCTDecoderBandFoldSign(t *testing.T) {
	bandQBits := [5]byte{0, 0, 0, 0, 4}
	const code = 10 // 10 >= 1<<3, so getCode(4) leaves it unsigned-extended
	dataByte := byte(code << 4)

	buf := buildDCTBandFoldBlock(t, bandQBits, dataByte)

	d, err := NewDCTDecoder(22050, 1, 16, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetBlock(buf); err != nil {
		t.Fatalf("SetBlock: %v", err)
	}

	pcm, err := d.DecodeFrame(nil)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(pcm) != dctMaxBands {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), dctMaxBands)
	}
	if pcm[13] == 0 {
		t.Fatalf("pcm[13] = 0, want band 4's step=1 fold contribution (nonzero)")
	}
}

func TestDCTGetCodeSignEncoding(t *testing.T) {
	d := &DCTDecoder{}
	// qbits=0: a single set bit decodes to -1, a clear bit to 0. Bit 0 of
	// 0x01 is 1, bit 1 is 0.
	d.br = bitreader.NewLSBReader([]byte{0x01})
	v, err := d.getCode(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != -1 {
		t.Fatalf("getCode(0) with bit=1 = %d, want -1", v)
	}
	v, err = d.getCode(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("getCode(0) with bit=0 = %d, want 0", v)
	}
}
