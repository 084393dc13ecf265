package hca

import (
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/internal/bitreader"
)

// Chunk tags, matched against the top 32 bits of the stream with
// chunkMask applied first: CRI encrypts some streams by XORing the high
// bit of selected header bytes, so every tag comparison must mask it off
// before comparing.
const (
	tagHCA  = 0x48434100 // "HCA\x00"
	tagFMT  = 0x666D7400 // "fmt\x00"
	tagCOMP = 0x636F6D70 // "comp"
	tagDEC  = 0x64656300 // "dec\x00"
	tagVBR  = 0x76627200 // "vbr\x00"
	tagATH  = 0x61746800 // "ath\x00"
	tagLOOP = 0x6C6F6F70 // "loop"
	tagCIPH = 0x63697068 // "ciph"
	tagRVA  = 0x72766100 // "rva\x00"
	tagCOMM = 0x636F6D6D // "comm"
	tagPAD  = 0x70616400 // "pad\x00"

	chunkMask = 0x7F7F7F7F
)

const (
	subframesPerFrame  = 8
	samplesPerSubframe = 128
	samplesPerFrame    = subframesPerFrame * samplesPerSubframe
	maxChannels        = 16
)

// Channel type, assigned per-channel from the fmt/comp chunk's track
// layout: discrete channels decode independently, stereo pairs share
// intensity and high-frequency reconstruction.
const (
	discrete channelType = iota
	stereoPrimary
	stereoSecondary
)

type channelType int

// channelConfig is a channel's static decode parameters, fixed for the
// life of the stream once the header is parsed.
type channelConfig struct {
	Type                  channelType
	CodedScalefactorCount int
	// HFRScalesOffset indexes into a subframe's scalefactors array where
	// this channel's high-frequency group scales are written.
	HFRScalesOffset int
}

// Header holds every field parsed out of an HCA stream's chunked header,
// plus the derived ATH curve and cipher table needed to decode its frames.
type Header struct {
	Version    int
	HeaderSize int

	Channels      int
	SampleRate    int
	FrameCount    int
	EncoderDelay  int
	EncoderPadding int

	FrameSize        int
	MinResolution    int
	MaxResolution    int
	TrackCount       int
	ChannelConfig    int
	StereoType       int
	TotalBandCount   int
	BaseBandCount    int
	StereoBandCount  int
	BandsPerHFRGroup int

	VBRMaxFrameSize int
	VBRNoiseLevel   int

	ATHType int

	LoopFlag       bool
	LoopStartFrame int
	LoopEndFrame   int
	LoopStartDelay int
	LoopEndPadding int

	CipherType int
	Keycode    uint64

	RVAVolume float32

	Comment string

	HFRGroupCount int

	ATH    athCurve
	Cipher cipherTable

	Channel [maxChannels]channelConfig
}

func errHeader(msg string) error {
	return codecerr.New("hca", codecerr.BadParams, -1, msg)
}

// headerReader is a sticky-error wrapper over bitreader.MSBReader: once a
// read fails every subsequent read is a no-op, so ParseHeader can read
// fields in a straight line and check for an error once at the end of
// each chunk.
type headerReader struct {
	br  *bitreader.MSBReader
	err error
}

func (r *headerReader) peekTag() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.br.PeekBits(32)
	if err != nil {
		r.err = err
		return 0
	}
	return v & chunkMask
}

func (r *headerReader) read(n uint) uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.br.ReadBits(n)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *headerReader) skip(n uint) {
	if r.err != nil {
		return
	}
	if err := r.br.SkipBits(n); err != nil {
		r.err = err
	}
}

// ceilDiv is HCA's header_ceil2: ceiling integer division, zero if b==0.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// ParseHeader parses an HCA stream's chunked header out of buf, which must
// contain at least the full header (HeaderSize bytes). keycode is the
// decryption key to use if the stream's ciph chunk calls for type-56
// encryption; pass 0 for unkeyed streams.
func ParseHeader(buf []byte, keycode uint64) (*Header, error) {
	if len(buf) < 8 {
		return nil, codecerr.New("hca", codecerr.BadParams, 0, "buffer too small for HCA header")
	}

	r := &headerReader{br: bitreader.NewMSBReader(buf)}
	h := &Header{Keycode: keycode}

	size := len(buf)

	if r.peekTag() != tagHCA {
		return nil, codecerr.New("hca", codecerr.BadMagic, 0, "missing HCA chunk")
	}
	r.skip(32)
	h.Version = int(r.read(16))
	h.HeaderSize = int(r.read(16))
	if r.err != nil {
		return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading HCA chunk")
	}
	if size < h.HeaderSize {
		return nil, codecerr.New("hca", codecerr.BadParams, 0, "header_size exceeds buffer")
	}
	if checksum16(buf[:h.HeaderSize]) != 0 {
		return nil, codecerr.New("hca", codecerr.BadChecksum, 0, "HCA header checksum mismatch")
	}
	size -= 0x08

	// fmt\0
	if size >= 0x10 && r.peekTag() == tagFMT {
		r.skip(32)
		h.Channels = int(r.read(8))
		h.SampleRate = int(r.read(24))
		h.FrameCount = int(r.read(32))
		h.EncoderDelay = int(r.read(16))
		h.EncoderPadding = int(r.read(16))
		if r.err != nil {
			return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading fmt chunk")
		}
		if h.Channels < 1 || h.Channels > maxChannels {
			return nil, errHeader("channel count out of range")
		}
		if h.FrameCount == 0 {
			return nil, errHeader("zero frame count")
		}
		if h.SampleRate < 1 || h.SampleRate > 0x7FFFFF {
			return nil, errHeader("sample rate out of range")
		}
		size -= 0x10
	} else {
		return nil, errHeader("missing fmt chunk")
	}

	// comp\0 (v2.0) or dec\0 (v1.x)
	switch {
	case size >= 0x10 && r.peekTag() == tagCOMP:
		r.skip(32)
		h.FrameSize = int(r.read(16))
		h.MinResolution = int(r.read(8))
		h.MaxResolution = int(r.read(8))
		h.TrackCount = int(r.read(8))
		h.ChannelConfig = int(r.read(8))
		h.TotalBandCount = int(r.read(8))
		h.BaseBandCount = int(r.read(8))
		h.StereoBandCount = int(r.read(8))
		h.BandsPerHFRGroup = int(r.read(8))
		r.read(8) // reserved1
		r.read(8) // reserved2
		size -= 0x10
	case size >= 0x0c && r.peekTag() == tagDEC:
		r.skip(32)
		h.FrameSize = int(r.read(16))
		h.MinResolution = int(r.read(8))
		h.MaxResolution = int(r.read(8))
		h.TotalBandCount = int(r.read(8)) + 1
		h.BaseBandCount = int(r.read(8)) + 1
		h.TrackCount = int(r.read(4))
		h.ChannelConfig = int(r.read(4))
		h.StereoType = int(r.read(8))
		if h.StereoType == 0 {
			h.BaseBandCount = h.TotalBandCount
		}
		h.StereoBandCount = h.TotalBandCount - h.BaseBandCount
		h.BandsPerHFRGroup = 0
		size -= 0x0c
	default:
		return nil, errHeader("missing comp/dec chunk")
	}
	if r.err != nil {
		return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading comp/dec chunk")
	}

	// vbr\0
	if size >= 0x08 && r.peekTag() == tagVBR {
		r.skip(32)
		h.VBRMaxFrameSize = int(r.read(16))
		h.VBRNoiseLevel = int(r.read(16))
		if r.err != nil {
			return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading vbr chunk")
		}
		if !(h.FrameSize == 0 && h.VBRMaxFrameSize > 8 && h.VBRMaxFrameSize <= 0x1FF) {
			return nil, errHeader("inconsistent vbr chunk")
		}
		size -= 0x08
	}

	// ath\0
	if size >= 0x06 && r.peekTag() == tagATH {
		r.skip(32)
		h.ATHType = int(r.read(16))
		size -= 0x06
	} else if h.Version < 0x200 {
		h.ATHType = 1
	}
	if r.err != nil {
		return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading ath chunk")
	}

	// loop
	if size >= 0x10 && r.peekTag() == tagLOOP {
		r.skip(32)
		h.LoopStartFrame = int(r.read(32))
		h.LoopEndFrame = int(r.read(32))
		h.LoopStartDelay = int(r.read(16))
		h.LoopEndPadding = int(r.read(16))
		h.LoopFlag = true
		if r.err != nil {
			return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading loop chunk")
		}
		if !(h.LoopStartFrame >= 0 && h.LoopStartFrame <= h.LoopEndFrame && h.LoopEndFrame < h.FrameCount) {
			return nil, errHeader("inconsistent loop chunk")
		}
		size -= 0x10
	}

	// ciph
	if size >= 0x06 && r.peekTag() == tagCIPH {
		r.skip(32)
		h.CipherType = int(r.read(16))
		if r.err != nil {
			return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading ciph chunk")
		}
		if h.CipherType != 0 && h.CipherType != 1 && h.CipherType != 56 {
			return nil, errHeader("unsupported cipher type")
		}
		size -= 0x06
	}

	// rva\0
	if size >= 0x08 && r.peekTag() == tagRVA {
		r.skip(32)
		bits := r.read(32)
		h.RVAVolume = f32(bits)
		size -= 0x08
	} else {
		h.RVAVolume = 1
	}
	if r.err != nil {
		return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading rva chunk")
	}

	// comm
	if size >= 0x05 && r.peekTag() == tagCOMM {
		r.skip(32)
		n := int(r.read(8))
		if r.err != nil {
			return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading comm chunk")
		}
		if n > size {
			return nil, errHeader("comment length exceeds buffer")
		}
		comment := make([]byte, n)
		for i := 0; i < n; i++ {
			comment[i] = byte(r.read(8))
		}
		h.Comment = string(comment)
		size -= 0x05 + n
	}
	if r.err != nil {
		return nil, codecerr.Wrap("hca", codecerr.BadParams, 0, r.err, "reading comm chunk")
	}

	// pad\0: no fields, just fills up to header_size.

	if !(h.FrameSize >= 0x08 && h.FrameSize <= 0xFFFF) {
		return nil, errHeader("frame_size out of range")
	}
	if !(h.MinResolution == 1 && h.MaxResolution == 15) {
		return nil, errHeader("unsupported resolution range")
	}

	if h.TrackCount == 0 {
		h.TrackCount = 1
	}
	h.HFRGroupCount = ceilDiv(h.TotalBandCount-h.BaseBandCount-h.StereoBandCount, h.BandsPerHFRGroup)

	ath, err := buildAthCurve(h.ATHType, h.SampleRate)
	if err != nil {
		return nil, err
	}
	h.ATH = ath

	cipher, err := buildCipherTable(h.CipherType, h.Keycode)
	if err != nil {
		return nil, err
	}
	h.Cipher = cipher

	assignChannelTypes(h)

	return h, nil
}

// assignChannelTypes fills in h.Channel, mirroring CRI's per-track-width
// stereo pairing table.
func assignChannelTypes(h *Header) {
	var types [maxChannels]channelType

	channelsPerTrack := h.Channels / h.TrackCount
	if h.StereoBandCount > 0 && channelsPerTrack > 1 {
		for i := 0; i < h.TrackCount; i++ {
			ct := types[i*channelsPerTrack:]
			switch channelsPerTrack {
			case 2:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
			case 3:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
				ct[2] = discrete
			case 4:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
				if h.ChannelConfig == 0 {
					ct[2] = stereoPrimary
					ct[3] = stereoSecondary
				} else {
					ct[2] = discrete
					ct[3] = discrete
				}
			case 5:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
				ct[2] = discrete
				if h.ChannelConfig <= 2 {
					ct[3] = stereoPrimary
					ct[4] = stereoSecondary
				} else {
					ct[3] = discrete
					ct[4] = discrete
				}
			case 6:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
				ct[2] = discrete
				ct[3] = discrete
				ct[4] = stereoPrimary
				ct[5] = stereoSecondary
			case 7:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
				ct[2] = discrete
				ct[3] = discrete
				ct[4] = stereoPrimary
				ct[5] = stereoSecondary
				ct[6] = discrete
			case 8:
				ct[0] = stereoPrimary
				ct[1] = stereoSecondary
				ct[2] = discrete
				ct[3] = discrete
				ct[4] = stereoPrimary
				ct[5] = stereoSecondary
				ct[6] = stereoPrimary
				ct[7] = stereoSecondary
			}
		}
	}

	for i := 0; i < h.Channels; i++ {
		cc := channelConfig{Type: types[i]}
		if types[i] != stereoSecondary {
			cc.CodedScalefactorCount = h.BaseBandCount + h.StereoBandCount
		} else {
			cc.CodedScalefactorCount = h.BaseBandCount
		}
		cc.HFRScalesOffset = h.BaseBandCount + h.StereoBandCount
		h.Channel[i] = cc
	}
}
