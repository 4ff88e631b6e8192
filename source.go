package matroska

import (
	"bufio"
	"io"
)

// source wraps a seekable byte stream with a bufio.Reader so sequential
// VINT/body reads do not pay a syscall per byte, while still supporting
// the random jumps a SeekHead directs. Grounded on
// pixelbender/go-matroska/ebml.Decoder, which pairs a bufio.Reader with
// the underlying io.ReadSeeker and only resets the buffer when a seek
// actually needs to leave the buffered window — our position bookkeeping
// follows that same split.
type source struct {
	rs  io.ReadSeeker
	buf *bufio.Reader
	off int64 // absolute position of the next unread byte
}

func newSource(rs io.ReadSeeker) (*source, error) {
	off, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ioErr(err)
	}
	return &source{rs: rs, buf: bufio.NewReaderSize(rs, 32*1024), off: off}, nil
}

// pos returns the absolute offset of the next byte that will be read.
func (s *source) pos() int64 {
	return s.off
}

// readFull reads exactly len(p) bytes or returns an Io error.
func (s *source) readFull(p []byte) error {
	n, err := io.ReadFull(s.buf, p)
	s.off += int64(n)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return ioErr(io.EOF)
		}
		return ioErr(err)
	}
	return nil
}

func (s *source) readByte() (byte, error) {
	b, err := s.buf.ReadByte()
	if err != nil {
		return 0, ioErr(err)
	}
	s.off++
	return b, nil
}

// seekCurrent advances the stream by n bytes (n >= 0), discarding from
// the bufio layer when the jump stays inside the buffered window and
// falling back to a real Seek (which invalidates the buffer) otherwise.
func (s *source) seekCurrent(n int64) error {
	if n < 0 {
		return s.seekStart(s.off + n)
	}
	buffered := int64(s.buf.Buffered())
	if n <= buffered {
		if _, err := s.buf.Discard(int(n)); err != nil {
			return ioErr(err)
		}
		s.off += n
		return nil
	}
	if _, err := s.rs.Seek(s.off+n, io.SeekStart); err != nil {
		return ioErr(err)
	}
	s.buf.Reset(s.rs)
	s.off += n
	return nil
}

// seekStart jumps to an absolute offset from the start of the stream.
func (s *source) seekStart(abs int64) error {
	if abs == s.off {
		return nil
	}
	if _, err := s.rs.Seek(abs, io.SeekStart); err != nil {
		return ioErr(err)
	}
	s.buf.Reset(s.rs)
	s.off = abs
	return nil
}
