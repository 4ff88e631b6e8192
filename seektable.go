package matroska

import "github.com/rs/zerolog"

// seektable maps a target element ID to its byte offset relative to the
// start of the Segment body (callers add segmentStart), grounded on original_source/src/lib.rs's Seektable/Seek, generalized
// with chained-SeekHead following and cycle defense per spec.md §4.5.
type seektable struct {
	entries map[uint32]uint64 // id -> offset relative to segmentStart
}

// seek mirrors the wire Seek element: the target ID is kept as raw
// bytes (matching its Binary wire encoding) with a lazy fold into a
// 32-bit ID, per spec.md §4.7's "preserve the raw representation"
// note on Seek.id.
type seek struct {
	rawID    []byte
	position uint64
}

func (s seek) id() uint32 {
	var v uint32
	for _, b := range s.rawID {
		v = (v << 8) | uint32(b)
	}
	return v
}

func newSeektable() *seektable {
	return &seektable{entries: make(map[uint32]uint64)}
}

func (t *seektable) get(id uint32) (uint64, bool) {
	off, ok := t.entries[id]
	return off, ok
}

// parseSeekEntries folds a SeekHead master's already-parsed children
// into id->offset entries, without following chained SeekHeads itself.
func parseSeekEntries(children []element) map[uint32]uint64 {
	entries := make(map[uint32]uint64)
	for _, c := range children {
		if c.id != idSeek {
			continue
		}
		var sk seek
		for _, f := range c.children {
			switch f.id {
			case idSeekID:
				sk.rawID = f.raw
			case idSeekPos:
				sk.position = f.asUInt()
			}
		}
		entries[sk.id()] = sk.position
	}
	return entries
}

// readSeektable parses the SeekHead at the stream's current position
// (its header already consumed, body of bodySize bytes follows) and
// follows any chained SeekHead entries, merging each generation's
// entries into one table. segmentStart anchors the relative offsets
// recorded on the wire; chainLimit bounds how many SeekHeads are
// followed before a cycle is assumed.
func readSeektable(s *source, bodySize uint64, segmentStart int64, chainLimit int, opts parseOptions, logger *zerolog.Logger) (*seektable, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	table := newSeektable()
	visited := make(map[int64]bool)

	size := bodySize
	for depth := 0; ; depth++ {
		if depth >= chainLimit {
			return nil, newErr(KindCorruptFile, "SeekHead cycle")
		}

		children, err := parseChildren(s, size, false, 0, opts)
		if err != nil {
			return nil, err
		}
		for id, off := range parseSeekEntries(children) {
			if _, exists := table.entries[id]; !exists {
				table.entries[id] = off
			}
		}

		nextOff, ok := table.entries[idSeekHead]
		if !ok {
			logger.Debug().Int("depth", depth).Int("entries", len(table.entries)).Msg("seektable chain resolved")
			return table, nil
		}
		delete(table.entries, idSeekHead)

		abs, overflow := addOverflowChecked(segmentStart, nextOff)
		if overflow {
			return nil, newErr(KindCorruptFile, "chained SeekHead offset overflows")
		}
		if visited[abs] {
			return nil, newErr(KindCorruptFile, "SeekHead cycle")
		}
		visited[abs] = true

		logger.Debug().Int("depth", depth).Int64("offset", abs).Msg("following chained SeekHead")
		if err := s.seekStart(abs); err != nil {
			return nil, err
		}
		id, nextSize, err := s.readHeader()
		if err != nil {
			return nil, err
		}
		if id != idSeekHead {
			return nil, newErr(KindCorruptFile, "chained SeekHead entry did not point at a SeekHead")
		}
		size = nextSize
	}
}

// addOverflowChecked adds an unsigned offset to a signed base, the way
// segment_start + seek.position needs to be checked per spec.md §4.5's
// "checked addition (overflow -> CorruptFile)" rule.
func addOverflowChecked(base int64, off uint64) (int64, bool) {
	if off > 1<<62 {
		return 0, true
	}
	sum := base + int64(off)
	if sum < base {
		return 0, true
	}
	return sum, false
}
