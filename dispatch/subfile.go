package dispatch

import "github.com/mewkiz/vgaudio/streamfile"

// subfile is a StreamFile view over [base, base+size) of a parent
// stream, the Go shape of setup_subfile_streamfile: BKHD hands each
// subsong's embedded .wem to the RIFF parser this way rather than
// copying bytes out.
type subfile struct {
	parent streamfile.StreamFile
	base   int64
	size   int64
	name   string
}

func newSubfile(parent streamfile.StreamFile, base, size int64, name string) *subfile {
	return &subfile{parent: parent, base: base, size: size, name: name}
}

func (s *subfile) ReadAt(p []byte, off int64) (int, error) {
	if off >= s.size {
		return 0, nil
	}
	if off+int64(len(p)) > s.size {
		p = p[:s.size-off]
	}
	return s.parent.ReadAt(p, s.base+off)
}

func (s *subfile) Size() int64  { return s.size }
func (s *subfile) Name() string { return s.name }

func (s *subfile) OpenCompanion(name string) (streamfile.StreamFile, error) {
	return s.parent.OpenCompanion(name)
}
