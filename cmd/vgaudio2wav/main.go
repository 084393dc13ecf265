// vgaudio2wav converts a game-audio container this module can decode
// (BIGRP, DSP-coded GSND and KTSS, PCM RIFF/WAVE, including a PCM .wem
// inside a BKHD bank) into a WAV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"

	"github.com/mewkiz/vgaudio/dispatch"
	"github.com/mewkiz/vgaudio/streamfile"
)

func main() {
	var (
		force   bool
		subsong int
	)
	flag.BoolVar(&force, "f", false, "force overwrite")
	flag.IntVar(&subsong, "s", 0, "subsong index (0 = first/only)")
	flag.Parse()
	for _, path := range flag.Args() {
		if err := convert(path, subsong, force); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

func convert(path string, subsong int, force bool) error {
	sf, err := streamfile.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}

	stream, err := dispatch.Open(sf, subsong)
	if err != nil {
		return errors.Wrapf(err, "opening %q", path)
	}
	info := stream.Info()

	wavPath := pathutil.TrimExt(path) + ".wav"
	if !force && osutil.Exists(wavPath) {
		return errors.Errorf("the file %q exists already; use -f to force overwrite", wavPath)
	}
	fw, err := os.Create(wavPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer fw.Close()

	enc := wav.NewEncoder(fw, info.SampleRate, 16, info.Channels, 1)
	defer enc.Close()

	fmt.Printf("%s: %s %s, %d Hz, %d ch, %d samples\n", path, info.FormatName, info.Encoding, info.SampleRate, info.Channels, info.TotalSamples)

	buf := make([]int16, 4096*info.Channels)
	ibuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: info.Channels, SampleRate: info.SampleRate},
		SourceBitDepth: 16,
	}
	for {
		n, err := stream.Read(buf)
		if err != nil {
			return errors.WithStack(err)
		}
		if n == 0 {
			break
		}
		samples := buf[:n*info.Channels]
		if cap(ibuf.Data) < len(samples) {
			ibuf.Data = make([]int, len(samples))
		}
		ibuf.Data = ibuf.Data[:len(samples)]
		for i, s := range samples {
			ibuf.Data[i] = int(s)
		}
		if err := enc.Write(ibuf); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
