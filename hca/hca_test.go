package hca

import (
	"testing"

	"github.com/mewkiz/vgaudio/codecerr"
)

func TestChecksum16Zero(t *testing.T) {
	// CRI constructs every checksummed header/frame so that the checksum
	// of the whole buffer (trailing two bytes included) is zero.
	buf := []byte{0x48, 0x43, 0x41, 0x00, 0x02, 0x00, 0x30, 0x00}
	sum := checksum16(buf[:len(buf)-2])
	buf[len(buf)-2] = byte(sum >> 8)
	buf[len(buf)-1] = byte(sum)
	if got := checksum16(buf); got != 0 {
		t.Fatalf("checksum16(buf) = %#x, want 0", got)
	}
}

func TestCipherIdentity(t *testing.T) {
	table, err := buildCipherTable(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		if table[i] != byte(i) {
			t.Fatalf("identity cipher table[%d] = %d, want %d", i, table[i], i)
		}
	}
}

func TestCipherSyncInvariant(t *testing.T) {
	// All three cipher schemes must map 0x00 and 0xFF to themselves, since
	// the frame sync word (0xFFFF) has to survive decryption unconditionally.
	for _, tc := range []struct {
		ciphType int
		keycode  uint64
	}{
		{0, 0},
		{1, 0},
		{56, 0x1122334455},
	} {
		table, err := buildCipherTable(tc.ciphType, tc.keycode)
		if err != nil {
			t.Fatalf("ciphType=%d: %v", tc.ciphType, err)
		}
		if table[0x00] != 0x00 {
			t.Errorf("ciphType=%d: table[0x00] = %#x, want 0x00", tc.ciphType, table[0x00])
		}
		if table[0xFF] != 0xFF {
			t.Errorf("ciphType=%d: table[0xFF] = %#x, want 0xFF", tc.ciphType, table[0xFF])
		}
	}
}

func TestCipher56RoundTrip(t *testing.T) {
	table, err := buildCipherTable(56, 0xDEADBEEF1234)
	if err != nil {
		t.Fatal(err)
	}
	// A valid cipher table must be a permutation of 0..255: build the
	// inverse and decrypt-then-decrypt-with-inverse should be identity.
	var inverse cipherTable
	seen := make(map[byte]bool)
	for i := 0; i < 256; i++ {
		v := table[i]
		if seen[v] {
			t.Fatalf("cipher table is not a permutation: value %d repeats", v)
		}
		seen[v] = true
		inverse[v] = byte(i)
	}

	data := []byte{0x00, 0xFF, 0x10, 0x20, 0x55, 0xAA}
	want := append([]byte(nil), data...)
	table.decrypt(data)
	inverse.decrypt(data)
	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("round trip: byte %d = %#x, want %#x", i, data[i], want[i])
		}
	}
}

func TestBuildCipherTable56KeylessFallsBackToIdentity(t *testing.T) {
	table, err := buildCipherTable(56, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		if table[i] != byte(i) {
			t.Fatalf("keyless type-56 table[%d] = %d, want identity", i, table[i])
		}
	}
}

func TestBuildAthCurveDisabled(t *testing.T) {
	c, err := buildAthCurve(0, 44100)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range c {
		if v != 0 {
			t.Fatalf("disabled ATH curve[%d] = %d, want 0", i, v)
		}
	}
}

func TestBuildAthCurveType1(t *testing.T) {
	c, err := buildAthCurve(1, 44100)
	if err != nil {
		t.Fatal(err)
	}
	// Entry i reads base index ((i+1)*sample_rate)>>13, so entry 0 at
	// 44100 Hz reads index 5.
	if want := athBaseCurve[44100>>13]; c[0] != want {
		t.Fatalf("ATH curve[0] = %d, want %d", c[0], want)
	}
	// Past the base curve's coverage the curve must saturate at 0xFF.
	if c[samplesPerSubframe-1] != 0xFF && c[samplesPerSubframe-1] != athBaseCurve[len(athBaseCurve)-1] {
		t.Fatalf("ATH curve[%d] = %d, want 0xFF or final base curve value", samplesPerSubframe-1, c[samplesPerSubframe-1])
	}
}

func TestBuildAthCurveUnsupportedType(t *testing.T) {
	if _, err := buildAthCurve(2, 44100); err == nil {
		t.Fatal("expected an error for an unsupported ATH type")
	} else if !codecerr.Is(err, codecerr.BadParams) {
		t.Fatalf("got %v, want a BadParams error", err)
	}
}

// buildSilentHeader returns a minimal one-channel, one-frame HCA header
// with the encryption and ATH chunks omitted (type-0 cipher, ATH disabled
// by a v2.0 version tag), used to exercise a full silent-frame decode.
func buildSilentHeader(t *testing.T) *Header {
	t.Helper()

	var buf []byte
	putU32 := func(v uint32) {
		buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	putU16 := func(v uint16) {
		buf = append(buf, byte(v>>8), byte(v))
	}

	// header_size (the field written into the HCA chunk) counts the whole
	// header including its trailing 2-byte checksum.
	const chunkBytes = 0x08 + 0x10 + 0x10
	const headerSize = chunkBytes + 2

	putU32(tagHCA)
	putU16(0x0200)
	putU16(headerSize)

	putU32(tagFMT)
	buf = append(buf, 1)                // channels
	buf = append(buf, 0x00, 0xAC, 0x44) // sample_rate (24-bit big-endian) = 44100
	putU32(1)                           // frame_count
	putU16(0)                           // encoder_delay
	putU16(0)                           // encoder_padding

	putU32(tagCOMP)
	putU16(8) // frame_size
	buf = append(buf, 1)  // min_resolution
	buf = append(buf, 15) // max_resolution
	buf = append(buf, 1)  // track_count
	buf = append(buf, 0)  // channel_config
	buf = append(buf, 8)  // total_band_count
	buf = append(buf, 8)  // base_band_count
	buf = append(buf, 0)  // stereo_band_count
	buf = append(buf, 0)  // bands_per_hfr_group
	buf = append(buf, 0)  // reserved1
	buf = append(buf, 0)  // reserved2

	if len(buf) != chunkBytes {
		t.Fatalf("buildSilentHeader: wrote %d bytes, want %d", len(buf), chunkBytes)
	}

	sum := checksum16(buf)
	buf = append(buf, byte(sum>>8), byte(sum))

	h, err := ParseHeader(buf, 0)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	return h
}

func TestParseHeaderSilentStream(t *testing.T) {
	h := buildSilentHeader(t)
	if h.Channels != 1 {
		t.Fatalf("Channels = %d, want 1", h.Channels)
	}
	if h.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", h.SampleRate)
	}
	if h.Channel[0].Type != discrete {
		t.Fatalf("Channel[0].Type = %v, want discrete", h.Channel[0].Type)
	}
}

func TestDecodeSilentFrame(t *testing.T) {
	h := buildSilentHeader(t)
	h.FrameSize = 8
	d := NewDecoder(h)

	// A silent HCA frame is sync word + 0x00 padding + trailing checksum;
	// an all-zero 3-bit scalefactor delta field zeroes every scalefactor,
	// so every spectral coefficient dequantizes to 0 and the IMDCT output
	// is silence.
	frame := make([]byte, 8)
	frame[0] = 0xFF
	frame[1] = 0xFF
	sum := checksum16(frame[:len(frame)-2])
	frame[len(frame)-2] = byte(sum >> 8)
	frame[len(frame)-1] = byte(sum)

	pcm, err := d.DecodeFrame(frame)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(pcm) != samplesPerFrame*h.Channels {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), samplesPerFrame*h.Channels)
	}
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("pcm[%d] = %d, want 0 (silent frame)", i, s)
		}
	}
}

func TestDecodeFrameBadChecksum(t *testing.T) {
	h := buildSilentHeader(t)
	h.FrameSize = 8
	d := NewDecoder(h)

	frame := make([]byte, 8)
	frame[0] = 0xFF
	frame[1] = 0xFF
	frame[7] = 0x01 // corrupt checksum

	if _, err := d.DecodeFrame(frame); err == nil {
		t.Fatal("expected a checksum error")
	} else if !codecerr.Is(err, codecerr.BadChecksum) {
		t.Fatalf("got %v, want a BadChecksum error", err)
	}
}

func TestDecoderReset(t *testing.T) {
	h := buildSilentHeader(t)
	h.FrameSize = 8
	d := NewDecoder(h)
	d.channels[0].imdctPrevious[0] = 1.5
	d.Reset()
	if d.channels[0].imdctPrevious[0] != 0 {
		t.Fatalf("imdctPrevious[0] = %v after Reset, want 0", d.channels[0].imdctPrevious[0])
	}
}

func TestDecoderInfo(t *testing.T) {
	h := buildSilentHeader(t)
	d := NewDecoder(h)
	info := d.Info()
	if info.FormatName != "HCA" {
		t.Fatalf("FormatName = %q, want HCA", info.FormatName)
	}
	if info.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.Channels != 1 {
		t.Fatalf("Channels = %d, want 1", info.Channels)
	}
}
