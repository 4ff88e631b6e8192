package matroska

// Variable-length integer decoding, grounded on
// _examples/luispater-matroska-go/ebml.go:readVInt, generalized to the
// stricter width ceilings spec.md draws between IDs and sizes: an ID
// keeps its length-marker bit and tops out at 4 bytes, a size strips the
// marker and tops out at 8 bytes, and running past either ceiling is a
// parse error rather than a silently truncated value.

// vintWidth returns the total encoded width (in bytes, 1..8) implied by
// the unary length-prefix in the first byte, or 0 if the byte is 0x00,
// which is never a valid VINT first byte.
func vintWidth(first byte) int {
	mask := byte(0x80)
	for w := 1; w <= 8; w++ {
		if first&mask != 0 {
			return w
		}
		mask >>= 1
	}
	return 0
}

// readVIntID reads an element ID, preserving its length-marker bit so
// the returned value matches the canonical wire constants in ids.go.
// IDs wider than 4 bytes are rejected as KindInvalidID.
func (s *source) readVIntID() (uint32, error) {
	first, err := s.readByte()
	if err != nil {
		return 0, err
	}
	width := vintWidth(first)
	if width == 0 {
		return 0, newErr(KindInvalidID, "element ID first byte is 0x00")
	}
	if width > 4 {
		return 0, newErr(KindInvalidID, "element ID wider than 4 bytes")
	}
	result := uint64(first)
	for i := 1; i < width; i++ {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		result = (result << 8) | uint64(b)
	}
	return uint32(result), nil
}

// unknownSize is the all-ones value a VINT of width w represents when
// every value bit is set to 1 -- EBML's "size unknown, read until a
// sibling/parent boundary" sentinel. This module does not support
// unknown-size elements (see SPEC_FULL.md open questions); encountering
// one is reported as KindCorruptFile.
func isUnknownSize(value uint64, width int) bool {
	return value == (uint64(1)<<uint(7*width))-1
}

// readVIntSize reads an element size, stripping the length-marker bit.
// Sizes wider than 8 bytes are rejected as KindInvalidSize; an
// unknown-size sentinel is rejected as KindCorruptFile.
func (s *source) readVIntSize() (uint64, error) {
	first, err := s.readByte()
	if err != nil {
		return 0, err
	}
	width := vintWidth(first)
	if width == 0 {
		return 0, newErr(KindInvalidSize, "element size first byte is 0x00")
	}
	if width > 8 {
		return 0, newErr(KindInvalidSize, "element size wider than 8 bytes")
	}
	lengthMask := byte(0xFF) >> uint(width)
	result := uint64(first & lengthMask)
	for i := 1; i < width; i++ {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		result = (result << 8) | uint64(b)
	}
	if isUnknownSize(result, width) {
		return 0, newErr(KindCorruptFile, "unknown-size elements are not supported")
	}
	return result, nil
}
