// vgaudiokey searches for the HCA cipher-56 keycode that makes a file's
// frames decode plausibly, trying each candidate from a keylist against
// a sample of the file's frames via hca.Decoder.TestFrame.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mewkiz/vgaudio/hca"
)

func main() {
	var (
		keysPath string
		sample   int
	)
	flag.StringVar(&keysPath, "keys", "", "file of candidate keycodes, one per line (0x-prefixed hex or decimal)")
	flag.IntVar(&sample, "n", 16, "number of frames to test per candidate")
	flag.Parse()
	if flag.NArg() != 1 || keysPath == "" {
		fmt.Fprintln(os.Stderr, "usage: vgaudiokey -keys keys.txt file.hca")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), keysPath, sample); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(path, keysPath string, sample int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	keys, err := readKeycodes(keysPath)
	if err != nil {
		return err
	}

	var bestKey uint64
	bestScore := 0
	found := false
	for _, key := range keys {
		h, err := hca.ParseHeader(data, key)
		if err != nil {
			// a key can't make a malformed header well-formed; skip and
			// keep searching rather than aborting the whole run.
			continue
		}
		score := scoreKeycode(hca.NewDecoder(h), h, data, sample)
		fmt.Printf("keycode 0x%014x: score %d\n", key, score)
		if !found || score > bestScore {
			bestKey, bestScore, found = key, score, true
		}
	}
	if !found {
		return errors.New("no candidate keycode produced a parseable header")
	}
	fmt.Printf("best candidate: 0x%014x (score %d)\n", bestKey, bestScore)
	return nil
}

// scoreKeycode runs TestFrame across up to n leading frames, counting a
// plausible frame as +1 and a clipped or outright-failed frame as -1;
// silent/inconclusive frames don't move the score either way.
func scoreKeycode(d *hca.Decoder, h *hca.Header, data []byte, n int) int {
	off := h.HeaderSize
	score := 0
	for i := 0; i < n && i < h.FrameCount; i++ {
		end := off + h.FrameSize
		if end > len(data) {
			break
		}
		switch d.TestFrame(data[off:end]) {
		case 1:
			score++
		case 0:
		default:
			score--
		}
		off = end
	}
	return score
}

func readKeycodes(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var keys []uint64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		key, err := strconv.ParseUint(line, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing keycode %q", line)
		}
		keys = append(keys, key)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return keys, nil
}
