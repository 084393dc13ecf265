// Package codec defines the shared decoder contract every codec in this
// module implements: create from a header, decode one frame at a time,
// reset for seeks.
package codec

// StreamInfo describes the immutable parameters of a decoded stream,
// enough to render the one-line format description a container
// dispatcher attaches to every resolved stream.
type StreamInfo struct {
	FormatName    string
	Encoding      string
	Layout        string
	SampleRate    int
	Channels      int
	TotalSamples  int64
	LoopStart     int64
	LoopEnd       int64
	LoopFlag      bool
	SamplesPerFrame int
}

// Decoder is implemented by every codec's frame decoder: hca.Decoder,
// bink.Decoder, ice.RangeDecoder, ice.DCTDecoder, dsp.Decoder.
type Decoder interface {
	// DecodeFrame consumes exactly one frame of compressed bytes and
	// returns samples_per_frame*channels interleaved int16 PCM samples.
	DecodeFrame(frame []byte) ([]int16, error)
	// Reset zeroes overlap/history state so the next DecodeFrame call
	// starts fresh, for use after a seek.
	Reset()
	// Info returns the stream's immutable parameters.
	Info() StreamInfo
}
