package matroska

// Element IDs for EBML and Matroska.
//
// These are the canonical, marker-preserving VINT IDs as they appear on
// the wire (so the one-byte ID 0x80 is stored as 0x80, not 0x00). The set
// mirrors the Matroska specification's element tree; IDs not listed here
// default to Binary (classify.go) rather than failing the parse.
const (
	// EBML header
	idEBMLHeader             = 0x1A45DFA3
	idEBMLVersion            = 0x4286
	idEBMLReadVersion        = 0x42F7
	idEBMLMaxIDLength        = 0x42F2
	idEBMLMaxSizeLength      = 0x42F3
	idEBMLDocType            = 0x4282
	idEBMLDocTypeVersion     = 0x4287
	idEBMLDocTypeReadVersion = 0x4285

	// Segment
	idSegment = 0x18538067

	// Meta Seek
	idSeekHead    = 0x114D9B74
	idSeek        = 0x4DBB
	idSeekID      = 0x53AB
	idSeekPos     = 0x53AC

	// Segment information
	idInfo             = 0x1549A966
	idSegmentUID       = 0x73A4
	idSegmentFilename  = 0x7384
	idPrevUID          = 0x3CB923
	idPrevFilename     = 0x3C83AB
	idNextUID          = 0x3EB923
	idNextFilename     = 0x3E83BB
	idSegmentFamily    = 0x4444
	idChapterTranslate = 0x6924
	idTimecodeScale    = 0x2AD7B1
	idDuration         = 0x4489
	idDateUTC          = 0x4461
	idTitle            = 0x7BA9
	idMuxingApp        = 0x4D80
	idWritingApp       = 0x5741

	// Tracks
	idTracks        = 0x1654AE6B
	idTrackEntry    = 0xAE
	idTrackNumber   = 0xD7
	idTrackUID      = 0x73C5
	idTrackType     = 0x83
	idFlagEnabled   = 0xB9
	idFlagDefault   = 0x88
	idFlagForced    = 0x55AA
	idFlagLacing    = 0x9C
	idFlagHearing   = 0x55AB
	idFlagVisual    = 0x55AC
	idFlagTextDesc  = 0x55AD
	idFlagOriginal  = 0x55AE
	idFlagCommentary = 0x55AF
	idDefaultDuration = 0x23E383
	idName          = 0x536E
	idLanguage      = 0x22B59C
	idLanguageIETF  = 0x22B59D
	idCodecID       = 0x86
	idCodecPrivate  = 0x63A2
	idCodecName     = 0x258688
	idVideo         = 0xE0
	idAudio         = 0xE1

	// Video settings
	idFlagInterlaced  = 0x9A
	idStereoMode      = 0x53B8
	idPixelWidth      = 0xB0
	idPixelHeight     = 0xBA
	idPixelCropBottom = 0x54AA
	idPixelCropTop    = 0x54BB
	idPixelCropLeft   = 0x54CC
	idPixelCropRight  = 0x54DD
	idDisplayWidth    = 0x54B0
	idDisplayHeight   = 0x54BA
	idDisplayUnit     = 0x54B2
	idGammaValue      = 0x2FB523

	// Audio settings
	idSamplingFrequency       = 0xB5
	idOutputSamplingFrequency = 0x78B5
	idChannels                = 0x9F
	idBitDepth                = 0x6264

	// Cluster (skipped only — out of scope for metadata extraction)
	idCluster     = 0x1F43B675
	idTimecode    = 0xE7
	idSimpleBlock = 0xA3
	idBlockGroup  = 0xA0
	idBlock       = 0xA1

	// Cues (skipped only)
	idCues = 0x1C53BB6B

	// Attachments
	idAttachments     = 0x1941A469
	idAttachedFile    = 0x61A7
	idFileDescription = 0x467E
	idFileName        = 0x466E
	idFileMimeType    = 0x4660
	idFileData        = 0x465C
	idFileUID         = 0x46AE

	// Chapters
	idChapters           = 0x1043A770
	idEditionEntry       = 0x45B9
	idEditionUID         = 0x45BC
	idEditionFlagHidden  = 0x45BD
	idEditionFlagDefault = 0x45DB
	idEditionFlagOrdered = 0x45DD
	idChapterAtom        = 0xB6
	idChapterUID         = 0x73C4
	idChapterTimeStart   = 0x91
	idChapterTimeEnd     = 0x92
	idChapterFlagHidden  = 0x98
	idChapterFlagEnabled = 0x4598
	idChapterSegmentUID  = 0x6E67
	idChapterSegmentEdUID = 0x6EBC
	idChapterDisplay     = 0x80
	idChapString         = 0x85
	idChapLanguage       = 0x437C
	idChapLanguageIETF   = 0x437D

	// Tags
	idTags             = 0x1254C367
	idTag              = 0x7373
	idTargets          = 0x63C0
	idTargetTypeValue  = 0x68CA
	idTargetType       = 0x63CA
	idTagTrackUID      = 0x63C5
	idTagEditionUID    = 0x63C9
	idTagChapterUID    = 0x63C4
	idTagAttachmentUID = 0x63C6
	idSimpleTag        = 0x67C8
	idTagName          = 0x45A3
	idTagLanguage      = 0x447A
	idTagLanguageIETF  = 0x447B
	idTagDefault       = 0x4484
	idTagString        = 0x4487
	idTagBinary        = 0x4485
)
