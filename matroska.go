package matroska

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Matroska is the aggregate of every section this package extracts
// from a Segment, grounded on original_source/src/lib.rs's MKV struct.
type Matroska struct {
	Info            Info             `json:"info"`
	Tracks          []Track          `json:"tracks,omitempty"`
	Attachments     []Attachment     `json:"attachments,omitempty"`
	ChapterEditions []ChapterEdition `json:"chapter_editions,omitempty"`
	Tags            []Tag            `json:"tags,omitempty"`
}

// VideoTracks returns every Track whose Type is TracktypeVideo.
func (m *Matroska) VideoTracks() []Track {
	return lo.Filter(m.Tracks, func(t Track, _ int) bool { return t.Type == TracktypeVideo })
}

// AudioTracks returns every Track whose Type is TracktypeAudio.
func (m *Matroska) AudioTracks() []Track {
	return lo.Filter(m.Tracks, func(t Track, _ int) bool { return t.Type == TracktypeAudio })
}

// SubtitleTracks returns every Track whose Type is TracktypeSubtitle.
func (m *Matroska) SubtitleTracks() []Track {
	return lo.Filter(m.Tracks, func(t Track, _ int) bool { return t.Type == TracktypeSubtitle })
}

// Open opens path (buffered) and delegates to Parse.
func Open(path string, opts ...Option) (*Matroska, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr(err)
	}
	defer f.Close()
	return Parse(f, opts...)
}

// Parse reads every section of rs's Segment and returns the assembled
// Matroska. Grounded on original_source/src/lib.rs's MKV::open: locate
// the Segment, then either follow a SeekHead (which wins over any
// subsequent sibling) or fold each section inline as it's reached.
func Parse(rs io.ReadSeeker, opts ...Option) (*Matroska, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	s, err := newSource(rs)
	if err != nil {
		return nil, err
	}

	segmentStart, segmentSize, err := locateSegment(s, cfg.parseOptions)
	if err != nil {
		return nil, err
	}

	m := &Matroska{}
	remaining := segmentSize
	logger := cfg.log()

	for remaining > 0 {
		startOff := s.pos()
		id, size, err := s.readHeader()
		if err != nil {
			return nil, err
		}
		headerLen := uint64(s.pos() - startOff)
		if headerLen+size > remaining {
			return nil, newErr(KindCorruptFile, "segment child overruns segment size")
		}

		switch id {
		case idSeekHead:
			logger.Debug().Int64("offset", startOff).Msg("SeekHead found, short-circuiting sequential scan")
			table, err := readSeektable(s, size, segmentStart, cfg.seekChainLimit, cfg.parseOptions, logger)
			if err != nil {
				return nil, err
			}
			if err := fillFromSeektable(s, m, table, segmentStart, cfg.parseOptions, logger); err != nil {
				return nil, err
			}
			return m, nil
		case idInfo:
			children, err := parseChildren(s, size, false, 0, cfg.parseOptions)
			if err != nil {
				return nil, err
			}
			m.Info = buildInfo(children)
		case idTracks:
			children, err := parseChildren(s, size, false, 0, cfg.parseOptions)
			if err != nil {
				return nil, err
			}
			m.Tracks = buildTracks(children)
		case idAttachments:
			children, err := parseChildren(s, size, false, 0, cfg.parseOptions)
			if err != nil {
				return nil, err
			}
			m.Attachments = buildAttachments(children)
		case idChapters:
			children, err := parseChildren(s, size, false, 0, cfg.parseOptions)
			if err != nil {
				return nil, err
			}
			m.ChapterEditions = buildChapterEditions(children)
		case idTags:
			children, err := parseChildren(s, size, false, 0, cfg.parseOptions)
			if err != nil {
				return nil, err
			}
			m.Tags = buildTags(children)
		default:
			logger.Debug().Uint32("id", id).Uint64("size", size).Msg("skipping unrecognized top-level element")
			if err := s.seekCurrent(int64(size)); err != nil {
				return nil, err
			}
		}

		remaining -= headerLen + size
	}

	return m, nil
}

// locateSegment skips any non-Segment top-level element (notably the
// EBML header) until the Segment header is read, then returns the
// absolute offset of the Segment's body and its declared size.
func locateSegment(s *source, opts parseOptions) (start int64, size uint64, err error) {
	for {
		id, bodySize, err := s.readHeader()
		if err != nil {
			return 0, 0, err
		}
		if id == idSegment {
			return s.pos(), bodySize, nil
		}
		if opts.maxElementSize != 0 && bodySize > opts.maxElementSize {
			return 0, 0, wrapErrf(KindCorruptFile, nil, "top-level element 0x%X declares size %d over the configured ceiling", id, bodySize)
		}
		if err := s.seekCurrent(int64(bodySize)); err != nil {
			return 0, 0, err
		}
	}
}

// fillFromSeektable dispatches to each of {Info, Tracks, Attachments,
// Chapters, Tags} the Seektable names, in the order spec.md §4.6 lists
// them, verifying the ID read at the target offset before handing it
// to the section's builder.
func fillFromSeektable(s *source, m *Matroska, table *seektable, segmentStart int64, opts parseOptions, logger *zerolog.Logger) error {
	sections := []struct {
		id    uint32
		apply func([]element)
	}{
		{idInfo, func(c []element) { m.Info = buildInfo(c) }},
		{idTracks, func(c []element) { m.Tracks = buildTracks(c) }},
		{idAttachments, func(c []element) { m.Attachments = buildAttachments(c) }},
		{idChapters, func(c []element) { m.ChapterEditions = buildChapterEditions(c) }},
		{idTags, func(c []element) { m.Tags = buildTags(c) }},
	}

	for _, sec := range sections {
		off, ok := table.get(sec.id)
		if !ok {
			continue
		}
		abs, overflow := addOverflowChecked(segmentStart, off)
		if overflow {
			return newErr(KindCorruptFile, "seek offset overflows")
		}
		if err := s.seekStart(abs); err != nil {
			return err
		}
		id, size, err := s.readHeader()
		if err != nil {
			return err
		}
		if id != sec.id {
			return wrapErrf(KindCorruptFile, nil, "SeekHead entry for 0x%X did not point at that element (found 0x%X)", sec.id, id)
		}
		children, err := parseChildren(s, size, false, 0, opts)
		if err != nil {
			return err
		}
		sec.apply(children)
		logger.Debug().Uint32("id", sec.id).Int64("offset", abs).Msg("filled section from seektable")
	}
	return nil
}

// locateSection walks the Segment the same way Parse does, but stops as
// soon as targetID is located instead of building the whole Matroska:
// following a SeekHead straight to the target when one is present, or
// returning as soon as the target is reached during the sequential
// scan. A nil, nil result means the Segment has no such element, or
// that the element has no children.
func locateSection(rs io.ReadSeeker, targetID uint32, opts ...Option) ([]element, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	s, err := newSource(rs)
	if err != nil {
		return nil, err
	}

	segmentStart, segmentSize, err := locateSegment(s, cfg.parseOptions)
	if err != nil {
		return nil, err
	}

	logger := cfg.log()
	remaining := segmentSize

	for remaining > 0 {
		startOff := s.pos()
		id, size, err := s.readHeader()
		if err != nil {
			return nil, err
		}
		headerLen := uint64(s.pos() - startOff)
		if headerLen+size > remaining {
			return nil, newErr(KindCorruptFile, "segment child overruns segment size")
		}

		if id == idSeekHead {
			logger.Debug().Int64("offset", startOff).Msg("SeekHead found, short-circuiting to requested section")
			table, err := readSeektable(s, size, segmentStart, cfg.seekChainLimit, cfg.parseOptions, logger)
			if err != nil {
				return nil, err
			}
			off, ok := table.get(targetID)
			if !ok {
				return nil, nil
			}
			abs, overflow := addOverflowChecked(segmentStart, off)
			if overflow {
				return nil, newErr(KindCorruptFile, "seek offset overflows")
			}
			if err := s.seekStart(abs); err != nil {
				return nil, err
			}
			foundID, foundSize, err := s.readHeader()
			if err != nil {
				return nil, err
			}
			if foundID != targetID {
				return nil, wrapErrf(KindCorruptFile, nil, "SeekHead entry for 0x%X did not point at that element (found 0x%X)", targetID, foundID)
			}
			return parseChildren(s, foundSize, false, 0, cfg.parseOptions)
		}

		if id == targetID {
			return parseChildren(s, size, false, 0, cfg.parseOptions)
		}

		logger.Debug().Uint32("id", id).Uint64("size", size).Msg("skipping element while locating a single section")
		if err := s.seekCurrent(int64(size)); err != nil {
			return nil, err
		}
		remaining -= headerLen + size
	}

	return nil, nil
}

// GetInfo extracts only the Segment's Info, short-circuiting as soon as
// it is located per spec.md §4.6's partial-extract entry point.
func GetInfo(rs io.ReadSeeker, opts ...Option) (Info, error) {
	children, err := locateSection(rs, idInfo, opts...)
	if err != nil || children == nil {
		return Info{}, err
	}
	return buildInfo(children), nil
}

// GetTracks extracts only the Segment's Tracks, short-circuiting as
// soon as it is located.
func GetTracks(rs io.ReadSeeker, opts ...Option) ([]Track, error) {
	children, err := locateSection(rs, idTracks, opts...)
	if err != nil || children == nil {
		return nil, err
	}
	return buildTracks(children), nil
}

// GetAttachments extracts only the Segment's Attachments, short-
// circuiting as soon as it is located.
func GetAttachments(rs io.ReadSeeker, opts ...Option) ([]Attachment, error) {
	children, err := locateSection(rs, idAttachments, opts...)
	if err != nil || children == nil {
		return nil, err
	}
	return buildAttachments(children), nil
}

// GetChapterEditions extracts only the Segment's Chapters, short-
// circuiting as soon as it is located.
func GetChapterEditions(rs io.ReadSeeker, opts ...Option) ([]ChapterEdition, error) {
	children, err := locateSection(rs, idChapters, opts...)
	if err != nil || children == nil {
		return nil, err
	}
	return buildChapterEditions(children), nil
}

// GetTags extracts only the Segment's Tags, short-circuiting as soon as
// it is located.
func GetTags(rs io.ReadSeeker, opts ...Option) ([]Tag, error) {
	children, err := locateSection(rs, idTags, opts...)
	if err != nil || children == nil {
		return nil, err
	}
	return buildTags(children), nil
}

// Part bounds the types GetPart can be instantiated with: the result
// type of each of the five named Get* functions above.
type Part interface {
	Info | []Track | []Attachment | []ChapterEdition | []Tag
}

// GetPart is sugar over the five Get* functions above, dispatching on
// the requested type parameter instead of the caller naming the
// function directly. Go generics cannot switch on a bare type
// parameter, so the dispatch runs over a type switch on the zero value
// of T boxed in an interface -- this wrapper exists only because
// spec.md §6 documents a single generic get_part<T> entry point; the
// five named functions remain the primary, non-reflective surface.
func GetPart[T Part](rs io.ReadSeeker, opts ...Option) (T, error) {
	var zero T
	switch any(zero).(type) {
	case Info:
		v, err := GetInfo(rs, opts...)
		return any(v).(T), err
	case []Track:
		v, err := GetTracks(rs, opts...)
		return any(v).(T), err
	case []Attachment:
		v, err := GetAttachments(rs, opts...)
		return any(v).(T), err
	case []ChapterEdition:
		v, err := GetChapterEditions(rs, opts...)
		return any(v).(T), err
	case []Tag:
		v, err := GetTags(rs, opts...)
		return any(v).(T), err
	default:
		return zero, newErr(KindCorruptFile, "unsupported Part type")
	}
}
