package matroska

// Attachment is a single AttachedFile, grounded on
// original_source/src/lib.rs's Attachment struct.
type Attachment struct {
	Description    string `json:"description,omitempty"`
	HasDescription bool   `json:"has_description"`
	Name           string `json:"name"`
	MimeType       string `json:"mime_type"`
	UID            uint64 `json:"uid,omitempty"`
	HasUID         bool   `json:"has_uid"`
	Data           []byte `json:"data,omitempty"`
}

func buildAttachments(children []element) []Attachment {
	var out []Attachment
	for _, c := range children {
		if c.id == idAttachedFile {
			out = append(out, buildAttachment(c.children))
		}
	}
	return out
}

func buildAttachment(children []element) Attachment {
	var a Attachment
	for _, c := range children {
		switch c.id {
		case idFileDescription:
			a.Description = c.asString()
			a.HasDescription = true
		case idFileName:
			a.Name = c.asString()
		case idFileMimeType:
			a.MimeType = c.asString()
		case idFileUID:
			a.UID = c.asUInt()
			a.HasUID = true
		case idFileData:
			a.Data = c.raw
		}
	}
	return a
}
