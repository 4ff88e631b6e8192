package matroska

// kind is the declared body type of an EBML element, used to select how
// its bytes are decoded. It mirrors the seven-way partition in spec.md
// §4.3, plus the single Date outlier (DateUTC).
type kind int

const (
	kindBinary kind = iota
	kindMaster
	kindInt
	kindUInt
	kindString
	kindUTF8
	kindFloat
	kindDate
)

// classify maps an element ID to its declared body kind. Unknown IDs
// fall back to kindBinary so the tree parser can always materialize and
// skip/retain an element without failing the parse — this is a closed,
// compile-time table, not rebuilt per call, per spec.md §4.3's
// deterministic-lookup requirement. The partition follows the original
// tuffy/matroska ebml.rs match arms (kept under
// _examples/original_source), extended with the IETF language and
// quad-state track-flag IDs this module adds on top.
var classifyTable = map[uint32]kind{
	idEBMLHeader: kindMaster,
	idSegment:    kindMaster,
	idSeekHead:   kindMaster,
	idSeek:       kindMaster,
	idInfo:       kindMaster,
	idTracks:     kindMaster,
	idTrackEntry: kindMaster,
	idVideo:      kindMaster,
	idAudio:      kindMaster,
	idCluster:    kindMaster,
	idBlockGroup: kindMaster,
	idCues:       kindMaster,
	idAttachments: kindMaster,
	idAttachedFile: kindMaster,
	idChapters:     kindMaster,
	idEditionEntry: kindMaster,
	idChapterAtom:  kindMaster,
	idChapterDisplay: kindMaster,
	idChapterTranslate: kindMaster,
	idTags:       kindMaster,
	idTag:        kindMaster,
	idTargets:    kindMaster,
	idSimpleTag:  kindMaster,

	idEBMLVersion:            kindUInt,
	idEBMLReadVersion:        kindUInt,
	idEBMLMaxIDLength:        kindUInt,
	idEBMLMaxSizeLength:      kindUInt,
	idEBMLDocTypeVersion:     kindUInt,
	idEBMLDocTypeReadVersion: kindUInt,
	idEBMLDocType:            kindString,

	idSeekPos: kindUInt,
	idSeekID:  kindBinary,

	idSegmentUID:      kindBinary,
	idSegmentFilename: kindUTF8,
	idPrevUID:         kindBinary,
	idPrevFilename:    kindUTF8,
	idNextUID:         kindBinary,
	idNextFilename:    kindUTF8,
	idSegmentFamily:   kindBinary,
	idTimecodeScale:   kindUInt,
	idDuration:        kindFloat,
	idDateUTC:         kindDate,
	idTitle:           kindUTF8,
	idMuxingApp:       kindUTF8,
	idWritingApp:      kindUTF8,

	idTrackNumber:     kindUInt,
	idTrackUID:        kindUInt,
	idTrackType:       kindUInt,
	idFlagEnabled:     kindUInt,
	idFlagDefault:     kindUInt,
	idFlagForced:      kindUInt,
	idFlagLacing:      kindUInt,
	idFlagHearing:     kindUInt,
	idFlagVisual:      kindUInt,
	idFlagTextDesc:    kindUInt,
	idFlagOriginal:    kindUInt,
	idFlagCommentary:  kindUInt,
	idDefaultDuration: kindUInt,
	idName:            kindUTF8,
	idLanguage:        kindString,
	idLanguageIETF:    kindString,
	idCodecID:         kindString,
	idCodecPrivate:    kindBinary,
	idCodecName:       kindUTF8,

	idFlagInterlaced:  kindUInt,
	idStereoMode:      kindUInt,
	idPixelWidth:      kindUInt,
	idPixelHeight:     kindUInt,
	idPixelCropBottom: kindUInt,
	idPixelCropTop:    kindUInt,
	idPixelCropLeft:   kindUInt,
	idPixelCropRight:  kindUInt,
	idDisplayWidth:    kindUInt,
	idDisplayHeight:   kindUInt,
	idDisplayUnit:     kindUInt,
	idGammaValue:      kindFloat,

	idSamplingFrequency:       kindFloat,
	idOutputSamplingFrequency: kindFloat,
	idChannels:                kindUInt,
	idBitDepth:                kindUInt,

	idTimecode: kindUInt,

	idFileDescription: kindUTF8,
	idFileName:        kindUTF8,
	idFileMimeType:    kindString,
	idFileData:        kindBinary,
	idFileUID:         kindUInt,

	idEditionUID:         kindUInt,
	idEditionFlagHidden:  kindUInt,
	idEditionFlagDefault: kindUInt,
	idEditionFlagOrdered: kindUInt,
	idChapterUID:         kindUInt,
	idChapterTimeStart:   kindUInt,
	idChapterTimeEnd:     kindUInt,
	idChapterFlagHidden:  kindUInt,
	idChapterFlagEnabled: kindUInt,
	idChapterSegmentUID:  kindBinary,
	idChapterSegmentEdUID: kindUInt,
	idChapString:         kindUTF8,
	idChapLanguage:       kindString,
	idChapLanguageIETF:   kindString,

	idTargetTypeValue:  kindUInt,
	idTargetType:        kindString,
	idTagTrackUID:      kindUInt,
	idTagEditionUID:    kindUInt,
	idTagChapterUID:    kindUInt,
	idTagAttachmentUID: kindUInt,
	idTagName:          kindUTF8,
	idTagLanguage:      kindString,
	idTagLanguageIETF:  kindString,
	idTagDefault:       kindUInt,
	idTagString:        kindUTF8,
	idTagBinary:        kindBinary,
}

// classify looks up the declared kind for id, defaulting to kindBinary
// for anything outside the closed set above.
func classify(id uint32) kind {
	if k, ok := classifyTable[id]; ok {
		return k
	}
	return kindBinary
}
