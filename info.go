package matroska

import "time"

// defaultTimecodeScale is applied when the Segment's Info omits
// TimecodeScale -- the later, authoritative reading per the Matroska
// specification (see SPEC_FULL.md open-question resolution).
const defaultTimecodeScale = 1_000_000

// Info holds the Segment-level description fields. Grounded on
// _examples/original_source/src/lib.rs's Info struct, extended with the
// UID/family fields the distilled spec restores from the wire format.
type Info struct {
	SegmentUID      []byte        `json:"segment_uid,omitempty"`
	PrevUID         []byte        `json:"prev_uid,omitempty"`
	NextUID         []byte        `json:"next_uid,omitempty"`
	SegmentFamilies [][]byte      `json:"segment_families,omitempty"`
	Title           string        `json:"title,omitempty"`
	HasTitle        bool          `json:"has_title"`
	Duration        time.Duration `json:"duration,omitempty"`
	HasDuration     bool          `json:"has_duration"`
	DateUTC         time.Time     `json:"date_utc,omitempty"`
	HasDateUTC      bool          `json:"has_date_utc"`
	MuxingApp       string        `json:"muxing_app,omitempty"`
	WritingApp      string        `json:"writing_app,omitempty"`
}

func buildInfo(children []element) Info {
	var info Info
	var rawDuration float64
	var hasRawDuration bool
	scale := uint64(defaultTimecodeScale)

	for _, c := range children {
		switch c.id {
		case idSegmentUID:
			info.SegmentUID = c.raw
		case idPrevUID:
			info.PrevUID = c.raw
		case idNextUID:
			info.NextUID = c.raw
		case idSegmentFamily:
			info.SegmentFamilies = append(info.SegmentFamilies, c.raw)
		case idTitle:
			info.Title = c.asString()
			info.HasTitle = true
		case idTimecodeScale:
			scale = c.asUInt()
		case idDuration:
			rawDuration = c.asFloat()
			hasRawDuration = true
		case idDateUTC:
			info.DateUTC = c.asDate()
			info.HasDateUTC = true
		case idMuxingApp:
			info.MuxingApp = c.asString()
		case idWritingApp:
			info.WritingApp = c.asString()
		}
	}

	if hasRawDuration {
		info.Duration = time.Duration(int64(rawDuration*float64(scale) + 0.5))
		info.HasDuration = true
	}
	return info
}
