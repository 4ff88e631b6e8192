package matroska

import (
	"errors"
	"io"
)

// Tree parsing: turn a byte range into a slice of element nodes,
// recursing into masters up to opts.maxDepth. Grounded on
// original_source/src/ebml.rs's Element::parse/parse_body, adapted to
// Go's explicit-error style and to a configurable recursion ceiling and
// per-element size ceiling (spec.md §4.4) the original left unbounded.

// readHeader reads one element's ID and size at the stream's current
// position, without touching its body.
func (s *source) readHeader() (id uint32, size uint64, err error) {
	id, err = s.readVIntID()
	if err != nil {
		return 0, 0, err
	}
	size, err = s.readVIntSize()
	if err != nil {
		return 0, 0, err
	}
	return id, size, nil
}

// parseChildren reads elements until budget bytes have been consumed,
// recursing into each master up to opts.maxDepth. When unbounded is
// true, budget is ignored and elements are read until EOF.
func parseChildren(s *source, budget uint64, unbounded bool, depth int, opts parseOptions) ([]element, error) {
	if depth > opts.maxDepth {
		return nil, newErr(KindCorruptFile, "element nesting exceeds configured depth limit")
	}
	var out []element
	var consumed uint64
	for {
		if !unbounded && consumed >= budget {
			break
		}
		startOff := s.pos()
		id, size, err := s.readHeader()
		if err != nil {
			if unbounded && isEOF(err) {
				break
			}
			return nil, err
		}
		headerLen := uint64(s.pos() - startOff)
		if !unbounded && consumed+headerLen+size > budget {
			return nil, newErr(KindCorruptFile, "child element overruns its parent's declared size")
		}
		if opts.maxElementSize != 0 && size > opts.maxElementSize {
			return nil, wrapErrf(KindCorruptFile, nil, "element 0x%X declares size %d over the configured ceiling %d", id, size, opts.maxElementSize)
		}

		k := classify(id)
		e := element{id: id, bodyOff: s.pos(), bodySize: size, k: k}

		if k == kindMaster {
			children, err := parseChildren(s, size, false, depth+1, opts)
			if err != nil {
				return nil, err
			}
			e.children = children
		} else {
			body := make([]byte, size)
			if size > 0 {
				if err := s.readFull(body); err != nil {
					return nil, err
				}
			}
			if err := validateBody(id, k, body, opts.strictASCII); err != nil {
				return nil, err
			}
			e.raw = body
		}

		out = append(out, e)
		consumed += headerLen + size
	}
	return out, nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
