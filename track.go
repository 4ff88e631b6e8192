package matroska

import "time"

// Tracktype mirrors the raw TrackType byte, grounded on
// original_source/src/lib.rs's Tracktype enum.
type Tracktype int

const (
	TracktypeUnknown Tracktype = iota
	TracktypeVideo
	TracktypeAudio
	TracktypeComplex
	TracktypeLogo
	TracktypeSubtitle
	TracktypeButtons
	TracktypeControl
)

func newTracktype(v uint64) Tracktype {
	switch v {
	case 0x01:
		return TracktypeVideo
	case 0x02:
		return TracktypeAudio
	case 0x03:
		return TracktypeComplex
	case 0x10:
		return TracktypeLogo
	case 0x11:
		return TracktypeSubtitle
	case 0x12:
		return TracktypeButtons
	case 0x20:
		return TracktypeControl
	default:
		return TracktypeUnknown
	}
}

// StereoMode enumerates the fifteen defined 3D layouts a Video settings
// block may declare, per spec.md §3. Layouts parameterized by eye order
// or anaglyph color pair keep that detail in EyeOrder/AnaglyphColors
// rather than a separate enum member per combination.
type StereoMode int

const (
	StereoModeNone StereoMode = iota
	StereoModeSideBySide
	StereoModeTopBottom
	StereoModeCheckboard
	StereoModeRowInterleaved
	StereoModeColumnInterleaved
	StereoModeAnaglyph
	StereoModeInterlaced
)

type EyeOrder int

const (
	EyeOrderNone EyeOrder = iota
	EyeOrderLeftFirst
	EyeOrderRightFirst
)

type AnaglyphColors int

const (
	AnaglyphColorsNone AnaglyphColors = iota
	AnaglyphColorsCyanRed
	AnaglyphColorsGreenMagenta
)

// stereoModeTable maps the raw wire value (0..14) to mode/eye-order/
// anaglyph-color, following the Matroska StereoMode element's defined
// enumeration.
var stereoModeTable = [...]struct {
	mode     StereoMode
	eye      EyeOrder
	anaglyph AnaglyphColors
}{
	0:  {StereoModeNone, EyeOrderNone, AnaglyphColorsNone},
	1:  {StereoModeSideBySide, EyeOrderLeftFirst, AnaglyphColorsNone},
	2:  {StereoModeTopBottom, EyeOrderRightFirst, AnaglyphColorsNone},
	3:  {StereoModeTopBottom, EyeOrderLeftFirst, AnaglyphColorsNone},
	4:  {StereoModeCheckboard, EyeOrderRightFirst, AnaglyphColorsNone},
	5:  {StereoModeCheckboard, EyeOrderLeftFirst, AnaglyphColorsNone},
	6:  {StereoModeRowInterleaved, EyeOrderRightFirst, AnaglyphColorsNone},
	7:  {StereoModeRowInterleaved, EyeOrderLeftFirst, AnaglyphColorsNone},
	8:  {StereoModeColumnInterleaved, EyeOrderRightFirst, AnaglyphColorsNone},
	9:  {StereoModeColumnInterleaved, EyeOrderLeftFirst, AnaglyphColorsNone},
	10: {StereoModeAnaglyph, EyeOrderNone, AnaglyphColorsCyanRed},
	11: {StereoModeSideBySide, EyeOrderRightFirst, AnaglyphColorsNone},
	12: {StereoModeAnaglyph, EyeOrderNone, AnaglyphColorsGreenMagenta},
	13: {StereoModeBothEyesLaced(), EyeOrderLeftFirst, AnaglyphColorsNone},
	14: {StereoModeBothEyesLaced(), EyeOrderRightFirst, AnaglyphColorsNone},
}

// StereoModeBothEyesLaced names the "both eyes laced in one block"
// layouts (wire values 13/14), which share StereoModeInterlaced's
// category in spec.md's eight-way grouping.
func StereoModeBothEyesLaced() StereoMode { return StereoModeInterlaced }

// Tristate represents an optionally-present boolean, used for the
// Video Interlaced flag where 1 means true, 2 means false, and any
// other raw value (including absence) means unknown.
type Tristate int

const (
	TristateUnknown Tristate = iota
	TristateTrue
	TristateFalse
)

func newTristate(v uint64) Tristate {
	switch v {
	case 1:
		return TristateTrue
	case 2:
		return TristateFalse
	default:
		return TristateUnknown
	}
}

// Video holds the settings a Video-type Track carries.
type Video struct {
	PixelWidth       uint64         `json:"pixel_width"`
	PixelHeight      uint64         `json:"pixel_height"`
	DisplayWidth     uint64         `json:"display_width,omitempty"`
	HasDisplayWidth  bool           `json:"has_display_width"`
	DisplayHeight    uint64         `json:"display_height,omitempty"`
	HasDisplayHeight bool           `json:"has_display_height"`
	Interlaced       Tristate       `json:"interlaced"`
	Gamma            float64        `json:"gamma,omitempty"`
	HasGamma         bool           `json:"has_gamma"`
	StereoMode       StereoMode     `json:"stereo_mode"`
	EyeOrder         EyeOrder       `json:"eye_order"`
	AnaglyphColors   AnaglyphColors `json:"anaglyph_colors"`
	HasStereoMode    bool           `json:"has_stereo_mode"`
}

func buildVideo(children []element) Video {
	var v Video
	for _, c := range children {
		switch c.id {
		case idPixelWidth:
			v.PixelWidth = c.asUInt()
		case idPixelHeight:
			v.PixelHeight = c.asUInt()
		case idDisplayWidth:
			v.DisplayWidth = c.asUInt()
			v.HasDisplayWidth = true
		case idDisplayHeight:
			v.DisplayHeight = c.asUInt()
			v.HasDisplayHeight = true
		case idFlagInterlaced:
			v.Interlaced = newTristate(c.asUInt())
		case idGammaValue:
			v.Gamma = c.asFloat()
			v.HasGamma = true
		case idStereoMode:
			raw := c.asUInt()
			if raw < uint64(len(stereoModeTable)) {
				entry := stereoModeTable[raw]
				v.StereoMode = entry.mode
				v.EyeOrder = entry.eye
				v.AnaglyphColors = entry.anaglyph
				v.HasStereoMode = true
			}
		}
	}
	return v
}

// Audio holds the settings an Audio-type Track carries.
type Audio struct {
	SampleRate  float64 `json:"sample_rate"`
	Channels    uint64  `json:"channels"`
	BitDepth    uint64  `json:"bit_depth,omitempty"`
	HasBitDepth bool    `json:"has_bit_depth"`
}

func buildAudio(children []element) Audio {
	var a Audio
	for _, c := range children {
		switch c.id {
		case idSamplingFrequency:
			a.SampleRate = c.asFloat()
		case idChannels:
			a.Channels = c.asUInt()
		case idBitDepth:
			a.BitDepth = c.asUInt()
			a.HasBitDepth = true
		}
	}
	return a
}

// Settings is the tagged None/Video/Audio variant a Track carries,
// selected by its Tracktype-bearing child master (Video or Audio).
type Settings struct {
	Video    Video `json:"video,omitempty"`
	HasVideo bool  `json:"has_video"`
	Audio    Audio `json:"audio,omitempty"`
	HasAudio bool  `json:"has_audio"`
}

// Impairment is the quad-state set of accessibility/intent flags a
// track may declare, each independently optional. Grounded on spec.md
// §3's "hearing-impaired, visual-impaired, text-descriptions, original,
// commentary" list, which the original Rust crate predates.
type Impairment struct {
	HearingImpaired     bool `json:"hearing_impaired"`
	HasHearingImpaired  bool `json:"has_hearing_impaired"`
	VisualImpaired      bool `json:"visual_impaired"`
	HasVisualImpaired   bool `json:"has_visual_impaired"`
	TextDescriptions    bool `json:"text_descriptions"`
	HasTextDescriptions bool `json:"has_text_descriptions"`
	Original            bool `json:"original"`
	HasOriginal         bool `json:"has_original"`
	Commentary          bool `json:"commentary"`
	HasCommentary       bool `json:"has_commentary"`
}

// impairmentFlag decodes a flag that tolerates either a UInt body
// (value != 0 -> true) or a single-byte Binary body (first byte != 0 ->
// true; empty body -> absent), per spec.md §4.7.
func impairmentFlag(e element) (value bool, present bool) {
	switch e.k {
	case kindUInt:
		return e.asUInt() != 0, true
	case kindBinary:
		if len(e.raw) == 0 {
			return false, false
		}
		return e.raw[0] != 0, true
	default:
		return false, false
	}
}

// Track is a single TrackEntry, grounded on
// original_source/src/lib.rs's Track struct and extended with the
// fields spec.md restores (UID-typed offset semantics, IETF language,
// impairment flags, codec-private bytes).
type Track struct {
	Number             uint64          `json:"number"`
	UID                uint64          `json:"uid"`
	Type               Tracktype       `json:"type"`
	Enabled            bool            `json:"enabled"`
	Default            bool            `json:"default"`
	Forced             bool            `json:"forced"`
	LacingInterlaced   bool            `json:"lacing_interlaced"`
	Impairment         Impairment      `json:"impairment"`
	DefaultDuration    time.Duration   `json:"default_duration,omitempty"`
	HasDefaultDuration bool            `json:"has_default_duration"`
	Name               string          `json:"name,omitempty"`
	HasName            bool            `json:"has_name"`
	Language           language        `json:"language"`
	HasLanguage        bool            `json:"has_language"`
	CodecID            string          `json:"codec_id,omitempty"`
	CodecPrivate       []byte          `json:"codec_private,omitempty"`
	HasCodecPrivate    bool            `json:"has_codec_private"`
	CodecName          string          `json:"codec_name,omitempty"`
	HasCodecName       bool            `json:"has_codec_name"`
	Settings           Settings        `json:"settings"`
}

func newTrack() Track {
	return Track{
		Enabled:          true,
		Default:          true,
		LacingInterlaced: true,
	}
}

func buildTracks(children []element) []Track {
	var tracks []Track
	for _, c := range children {
		if c.id == idTrackEntry {
			tracks = append(tracks, buildTrackEntry(c.children))
		}
	}
	return tracks
}

func buildTrackEntry(children []element) Track {
	t := newTrack()
	for _, c := range children {
		switch c.id {
		case idTrackNumber:
			t.Number = c.asUInt()
		case idTrackUID:
			t.UID = c.asUInt()
		case idTrackType:
			t.Type = newTracktype(c.asUInt())
		case idFlagEnabled:
			t.Enabled = c.asUInt() != 0
		case idFlagDefault:
			t.Default = c.asUInt() != 0
		case idFlagForced:
			t.Forced = c.asUInt() != 0
		case idFlagLacing:
			t.LacingInterlaced = c.asUInt() != 0
		case idFlagHearing:
			t.Impairment.HearingImpaired, t.Impairment.HasHearingImpaired = impairmentFlag(c)
		case idFlagVisual:
			t.Impairment.VisualImpaired, t.Impairment.HasVisualImpaired = impairmentFlag(c)
		case idFlagTextDesc:
			t.Impairment.TextDescriptions, t.Impairment.HasTextDescriptions = impairmentFlag(c)
		case idFlagOriginal:
			t.Impairment.Original, t.Impairment.HasOriginal = impairmentFlag(c)
		case idFlagCommentary:
			t.Impairment.Commentary, t.Impairment.HasCommentary = impairmentFlag(c)
		case idDefaultDuration:
			t.DefaultDuration = time.Duration(c.asUInt())
			t.HasDefaultDuration = true
		case idName:
			t.Name = c.asString()
			t.HasName = true
		case idLanguage:
			t.Language.setISO639(c.asString())
			t.HasLanguage = true
		case idLanguageIETF:
			t.Language.setIETF(c.asString())
			t.HasLanguage = true
		case idCodecID:
			t.CodecID = c.asString()
		case idCodecPrivate:
			t.CodecPrivate = c.raw
			t.HasCodecPrivate = true
		case idCodecName:
			t.CodecName = c.asString()
			t.HasCodecName = true
		case idVideo:
			t.Settings.Video = buildVideo(c.children)
			t.Settings.HasVideo = true
		case idAudio:
			t.Settings.Audio = buildAudio(c.children)
			t.Settings.HasAudio = true
		}
	}
	return t
}
