package bink

import (
	"math"
	"testing"
)

func TestFloat29PowerMatchesFormula(t *testing.T) {
	for p := 0; p < 32; p++ {
		want := float32(math.Ldexp(1, p-23))
		if float29Power[p] != want {
			t.Fatalf("float29Power[%d] = %v, want %v", p, float29Power[p], want)
		}
	}
}

func TestScalefactorsMonotonic(t *testing.T) {
	for i := 1; i < len(scalefactors); i++ {
		if scalefactors[i] <= scalefactors[i-1] {
			t.Fatalf("scalefactors[%d] = %v, want > scalefactors[%d] = %v", i, scalefactors[i], i-1, scalefactors[i-1])
		}
	}
}

func TestRLETableMonotonic(t *testing.T) {
	for i := 1; i < len(rleTable); i++ {
		if rleTable[i] <= rleTable[i-1] {
			t.Fatalf("rleTable[%d] = %d, want > rleTable[%d] = %d", i, rleTable[i], i-1, rleTable[i-1])
		}
	}
}

func TestNewDecoderBandCount(t *testing.T) {
	d, err := NewDecoder(44100, 2, ModeBCFDCT)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.subDecoders) != 1 {
		t.Fatalf("len(subDecoders) = %d, want 1 for stereo", len(d.subDecoders))
	}
	sd := d.subDecoders[0]
	if sd.frameSamples != 2048 {
		t.Fatalf("frameSamples = %d, want 2048 at 44100Hz", sd.frameSamples)
	}
	if sd.bandCount == 0 {
		t.Fatal("bandCount = 0, want at least one band")
	}
	if sd.bandThresholds[sd.bandCount] != sd.frameSamples/2 {
		t.Fatalf("bandThresholds[bandCount] = %d, want %d", sd.bandThresholds[sd.bandCount], sd.frameSamples/2)
	}
}

func TestNewDecoderMultichannelPartition(t *testing.T) {
	d, err := NewDecoder(48000, 6, ModeUEBA)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.subDecoders) != 3 {
		t.Fatalf("len(subDecoders) = %d, want 3 for 6 channels", len(d.subDecoders))
	}
	for i, sd := range d.subDecoders {
		if sd.frameChannels != 2 {
			t.Fatalf("subDecoders[%d].frameChannels = %d, want 2", i, sd.frameChannels)
		}
	}
}

func TestNewDecoderOddChannelTail(t *testing.T) {
	d, err := NewDecoder(48000, 3, ModeUEBA)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.subDecoders) != 2 {
		t.Fatalf("len(subDecoders) = %d, want 2 for 3 channels", len(d.subDecoders))
	}
	if d.subDecoders[1].frameChannels != 1 {
		t.Fatalf("last subDecoder frameChannels = %d, want 1", d.subDecoders[1].frameChannels)
	}
}

func TestDecodeFrameSilence(t *testing.T) {
	d, err := NewDecoder(22050, 2, ModeBCFDCT)
	if err != nil {
		t.Fatal(err)
	}

	// An all-zero packet decodes to all-zero coefficients at every
	// quantization step (rle_flag=0, q_bits=0 throughout), so the DCT of
	// a zero spectrum and its scale/overlap stages all stay zero.
	frame := make([]byte, 1024)

	pcm, err := d.DecodeFrame(frame)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if len(pcm) != d.outputSamples*d.channels {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), d.outputSamples*d.channels)
	}
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("pcm[%d] = %d, want 0 (silent packet)", i, s)
		}
	}
}

func TestDecoderResetClearsFirstFrame(t *testing.T) {
	d, err := NewDecoder(22050, 1, ModeBCFDCT)
	if err != nil {
		t.Fatal(err)
	}
	d.subDecoders[0].isFirstFrame = false
	d.Reset()
	if !d.subDecoders[0].isFirstFrame {
		t.Fatal("Reset did not mark sub-decoder as first-frame")
	}
}

func TestDecoderInfo(t *testing.T) {
	d, err := NewDecoder(44100, 2, ModeBCFDCT)
	if err != nil {
		t.Fatal(err)
	}
	info := d.Info()
	if info.FormatName != "Bink Audio" {
		t.Fatalf("FormatName = %q, want Bink Audio", info.FormatName)
	}
	if info.Channels != 2 {
		t.Fatalf("Channels = %d, want 2", info.Channels)
	}
	if info.SamplesPerFrame != 1920 {
		t.Fatalf("SamplesPerFrame = %d, want 1920", info.SamplesPerFrame)
	}
}

func TestDCTIIIConstantInput(t *testing.T) {
	// x[0]=1, all other coefficients 0 is the DC-only case: the inverse
	// DCT-III of a pure DC spectrum is a constant signal.
	coefs := make([]float32, 8)
	coefs[0] = 1
	dctIII(coefs)
	for i, v := range coefs {
		if v != 1 {
			t.Fatalf("dctIII(DC-only)[%d] = %v, want 1", i, v)
		}
	}
}
