package dispatch

import (
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

type detector func(sf streamfile.StreamFile, subsong int) (Stream, error)

// chain lists every format this package recognizes, least-ambiguous
// magic first. BIGRP runs last because it has no fixed magic string
// and is instead validated structurally (see openBIGRP); every
// magic-bearing format gets a chance to match, or confidently fail
// with something other than BadMagic, before BIGRP's looser structural
// check is tried.
var chain = []detector{
	openGSND,
	openKTSS,
	openSNDS,
	openBKHD,
	openXWMA,
	openRIFF,
	openBIGRP,
}

// Open tries every known container format against sf in turn and
// returns the first one that recognizes it, opened to the given
// 1-based subsong (0 means "the first/only subsong", matching each
// format's own convention). A detector's BadMagic error means "not
// this format, try the next one"; any other error is a hard failure
// the caller should report immediately, since the format matched but
// something past the magic check was wrong.
func Open(sf streamfile.StreamFile, subsong int) (Stream, error) {
	for _, d := range chain {
		s, err := d(sf, subsong)
		if err == nil {
			return s, nil
		}
		if !codecerr.Is(err, codecerr.BadMagic) {
			return nil, err
		}
	}
	return nil, codecerr.New("dispatch", codecerr.BadMagic, 0, "unrecognized container format")
}
