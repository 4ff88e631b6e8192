package matroska

import (
	"math"
	"time"
	"unicode/utf8"
)

// matroskaEpoch is the Date element's reference instant: 2001-01-01
// 00:00:00 UTC. A Date body is a signed nanosecond offset from this
// instant, per the original tuffy/matroska read_date.
var matroskaEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// element is one node of the parsed EBML tree: a typed value plus the
// bookkeeping (id, absolute body offset, body length) the navigator and
// record builders need to locate and re-read a master's children.
type element struct {
	id       uint32
	bodyOff  int64
	bodySize uint64
	k        kind
	children []element // only populated when k == kindMaster
	raw      []byte    // body bytes for every non-master kind
}

func (e element) asUInt() uint64 {
	var v uint64
	for _, b := range e.raw {
		v = (v << 8) | uint64(b)
	}
	return v
}

func (e element) asInt() int64 {
	if len(e.raw) == 0 {
		return 0
	}
	v := e.asUInt()
	bits := uint(len(e.raw)) * 8
	if bits == 64 || e.raw[0]&0x80 == 0 {
		return int64(v)
	}
	// sign-extend: the value is negative, fill the high bits with 1.
	return int64(v | (^uint64(0) << bits))
}

func (e element) asFloat() float64 {
	switch len(e.raw) {
	case 4:
		bits := uint32(0)
		for _, b := range e.raw {
			bits = (bits << 8) | uint32(b)
		}
		return float64(math.Float32frombits(bits))
	case 8:
		bits := e.asUInt()
		return math.Float64frombits(bits)
	default:
		return 0
	}
}

func (e element) asString() string {
	return string(e.raw)
}

func (e element) asDate() time.Time {
	return matroskaEpoch.Add(time.Duration(e.asInt()))
}

// These widths bound which declared sizes are legal for the fixed-width
// kinds; anything else is a malformed file rather than a silently
// truncated read.
const (
	maxIntSize   = 8
	maxFloatSmall = 4
	maxFloatLarge = 8
	dateSize      = 8
)

// parseOptions groups the ceilings parse honors; built from Option
// values in options.go.
type parseOptions struct {
	maxElementSize uint64
	maxDepth       int
	strictASCII    bool
}

// validateBody checks the bytes already read for a non-master element
// against its declared kind, enforcing width constraints the way
// original_source/src/ebml.rs's read_int/read_uint/read_float/read_date
// do, but returning a typed *Error instead of a language-level panic.
func validateBody(id uint32, k kind, body []byte, strictASCII bool) error {
	switch k {
	case kindInt:
		if len(body) > maxIntSize {
			return wrapErrf(KindInvalidInt, nil, "element 0x%X: int body of %d bytes exceeds %d", id, len(body), maxIntSize)
		}
	case kindUInt:
		if len(body) > maxIntSize {
			return wrapErrf(KindInvalidInt, nil, "element 0x%X: uint body of %d bytes exceeds %d", id, len(body), maxIntSize)
		}
	case kindFloat:
		if len(body) != maxFloatSmall && len(body) != maxFloatLarge {
			return wrapErrf(KindInvalidFloat, nil, "element 0x%X: float body of %d bytes is neither 4 nor 8", id, len(body))
		}
	case kindDate:
		if len(body) != dateSize {
			return wrapErrf(KindInvalidDate, nil, "element 0x%X: date body of %d bytes, want %d", id, len(body), dateSize)
		}
	case kindString:
		if strictASCII {
			if !isASCII(body) {
				return wrapErrf(KindInvalidUTF8, nil, "element 0x%X: string body is not ASCII", id)
			}
		} else if !utf8.Valid(body) {
			return wrapErrf(KindInvalidUTF8, nil, "element 0x%X: string body failed UTF-8 validation", id)
		}
	case kindUTF8:
		if !utf8.Valid(body) {
			return wrapErrf(KindInvalidUTF8, nil, "element 0x%X: UTF-8 body failed validation", id)
		}
	}
	return nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7F {
			return false
		}
	}
	return true
}
