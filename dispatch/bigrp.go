package dispatch

import (
	"github.com/mewkiz/vgaudio/bigrp"
	"github.com/mewkiz/vgaudio/codecerr"
	"github.com/mewkiz/vgaudio/streamfile"
)

// openBIGRP recognizes Inti Creates' BIGRP archive. Unlike every other
// format in this chain it carries no fixed magic string, only a
// structurally validated header+entry table, so any parse failure is
// reported as BadMagic: the dispatcher should move on rather than
// treat a non-BIGRP file that happens to fail here as a hard error.
func openBIGRP(sf streamfile.StreamFile, subsong int) (Stream, error) {
	if subsong == 0 {
		subsong = 1
	}
	song, err := bigrp.Open(sf, subsong)
	if err != nil {
		return nil, codecerr.Wrap("dispatch", codecerr.BadMagic, 0, err, "not a BIGRP archive")
	}
	return song, nil
}
