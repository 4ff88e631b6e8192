package matroska

import "time"

// ChapterDisplay is a single localized title for a Chapter, grounded on
// original_source/src/lib.rs's ChapterDisplay struct.
type ChapterDisplay struct {
	String   string   `json:"string"`
	Language language `json:"language"`
}

func buildChapterDisplay(children []element) ChapterDisplay {
	var d ChapterDisplay
	for _, c := range children {
		switch c.id {
		case idChapString:
			d.String = c.asString()
		case idChapLanguage:
			d.Language.setISO639(c.asString())
		case idChapLanguageIETF:
			d.Language.setIETF(c.asString())
		}
	}
	return d
}

// Chapter is a single ChapterAtom.
type Chapter struct {
	UID                  uint64           `json:"uid,omitempty"`
	HasUID               bool             `json:"has_uid"`
	TimeStart            time.Duration    `json:"time_start"`
	TimeEnd              time.Duration    `json:"time_end,omitempty"`
	HasTimeEnd           bool             `json:"has_time_end"`
	Hidden               bool             `json:"hidden"`
	Enabled              bool             `json:"enabled"`
	SegmentUID           []byte           `json:"segment_uid,omitempty"`
	HasSegmentUID        bool             `json:"has_segment_uid"`
	SegmentEditionUID    uint64           `json:"segment_edition_uid,omitempty"`
	HasSegmentEditionUID bool             `json:"has_segment_edition_uid"`
	Display              []ChapterDisplay `json:"display,omitempty"`
}

func buildChapter(children []element) Chapter {
	ch := Chapter{}
	for _, c := range children {
		switch c.id {
		case idChapterUID:
			ch.UID = c.asUInt()
			ch.HasUID = true
		case idChapterTimeStart:
			ch.TimeStart = time.Duration(c.asUInt())
		case idChapterTimeEnd:
			ch.TimeEnd = time.Duration(c.asUInt())
			ch.HasTimeEnd = true
		case idChapterFlagHidden:
			ch.Hidden = c.asUInt() != 0
		case idChapterFlagEnabled:
			ch.Enabled = c.asUInt() != 0
		case idChapterSegmentUID:
			ch.SegmentUID = c.raw
			ch.HasSegmentUID = true
		case idChapterSegmentEdUID:
			ch.SegmentEditionUID = c.asUInt()
			ch.HasSegmentEditionUID = true
		case idChapterDisplay:
			ch.Display = append(ch.Display, buildChapterDisplay(c.children))
		}
	}
	return ch
}

// ChapterEdition is a single EditionEntry, grounded on
// original_source/src/lib.rs's ChapterEdition struct.
type ChapterEdition struct {
	UID      uint64    `json:"uid,omitempty"`
	HasUID   bool      `json:"has_uid"`
	Hidden   bool      `json:"hidden"`
	Default  bool      `json:"default"`
	Ordered  bool      `json:"ordered"`
	Chapters []Chapter `json:"chapters,omitempty"`
}

func buildChapterEditions(children []element) []ChapterEdition {
	var out []ChapterEdition
	for _, c := range children {
		if c.id == idEditionEntry {
			out = append(out, buildChapterEdition(c.children))
		}
	}
	return out
}

func buildChapterEdition(children []element) ChapterEdition {
	var ed ChapterEdition
	for _, c := range children {
		switch c.id {
		case idEditionUID:
			ed.UID = c.asUInt()
			ed.HasUID = true
		case idEditionFlagHidden:
			ed.Hidden = c.asUInt() != 0
		case idEditionFlagDefault:
			ed.Default = c.asUInt() != 0
		case idEditionFlagOrdered:
			ed.Ordered = c.asUInt() != 0
		case idChapterAtom:
			ed.Chapters = append(ed.Chapters, buildChapter(c.children))
		}
	}
	return ed
}
