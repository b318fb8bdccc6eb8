// Package input yields the lines of a file or a stream.
//
// Regular files are memory-mapped read-only and scanned in place, so a line
// costs no copy. Streams (stdin, pipes) are read with a bufio.Scanner.
// Either way a returned line is only valid until the next call to Next.
package input

import (
	"bufio"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"github.com/coregx/seeq/simd"
)

// MaxLineSize bounds a single line read from a stream.
const MaxLineSize = 256 << 20

// Source iterates over lines. Line terminators are stripped.
type Source struct {
	name string

	// mapped input
	file *os.File
	data mmap.MMap
	pos  int

	// streamed input
	scanner *bufio.Scanner

	line []byte
	err  error
}

// Open maps the file at path. An empty file yields no lines.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open input")
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "cannot stat %s", path)
	}
	if !fi.Mode().IsRegular() {
		// Named pipes and devices cannot be mapped.
		s := FromReader(path, f)
		s.file = f
		return s, nil
	}

	s := &Source{name: path, file: f}
	if fi.Size() == 0 {
		return s, nil
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "cannot map %s", path)
	}
	// Advice only; a refusal changes nothing but speed.
	_ = adviseSequential(data)
	s.data = data
	return s, nil
}

// FromReader reads lines from r, named name in messages.
func FromReader(name string, r io.Reader) *Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Source{name: name, scanner: sc}
}

// Name returns the input name.
func (s *Source) Name() string {
	return s.name
}

// Mapped reports whether the input is memory-mapped.
func (s *Source) Mapped() bool {
	return s.data != nil
}

// Next advances to the next line, reporting false at the end of input or
// on error.
func (s *Source) Next() bool {
	if s.err != nil {
		return false
	}
	if s.scanner != nil {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				s.err = errors.Wrapf(err, "cannot read %s", s.name)
			}
			return false
		}
		s.line = s.scanner.Bytes()
		return true
	}

	if s.pos >= len(s.data) {
		return false
	}
	end := simd.MemchrAt(s.data, '\n', s.pos)
	next := end + 1
	if end < 0 {
		end, next = len(s.data), len(s.data)
	}
	s.line = dropCR(s.data[s.pos:end:end])
	s.pos = next
	return true
}

// Line returns the current line.
func (s *Source) Line() []byte {
	return s.line
}

// Err returns the first read error.
func (s *Source) Err() error {
	return s.err
}

// Close releases the mapping and the file.
func (s *Source) Close() error {
	var err error
	if s.data != nil {
		err = s.data.Unmap()
		s.data = nil
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	return errors.Wrapf(err, "cannot close %s", s.name)
}

// dropCR matches bufio.ScanLines on CRLF input.
func dropCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}
