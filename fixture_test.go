package matroska

import (
	"encoding/binary"
	"math"
)

// Byte-fixture builders used across the test files in this package to
// hand-assemble minimal EBML/Matroska streams, in place of the shipped
// .mkv binaries the table-driven upstream tests relied on.

func vintSize(v uint64, width int) []byte {
	b := make([]byte, width)
	marker := byte(1) << uint(8-width)
	maxPayload := marker - 1
	hi := byte(v >> uint(8*(width-1)))
	b[0] = marker | (hi & maxPayload)
	for i := 1; i < width; i++ {
		shift := uint(8 * (width - 1 - i))
		b[i] = byte(v >> shift)
	}
	return b
}

// widthFor picks the smallest VINT width that can hold v (as a size
// payload, 7 value bits in the first byte).
func widthFor(v uint64) int {
	for w := 1; w <= 8; w++ {
		if v < (uint64(1)<<uint(7*w))-1 {
			return w
		}
	}
	return 8
}

func encElem(id uint32, body []byte) []byte {
	idWidth := widthFor64ID(id)
	idBytes := make([]byte, idWidth)
	for i := 0; i < idWidth; i++ {
		idBytes[idWidth-1-i] = byte(id >> uint(8*i))
	}
	sizeBytes := vintSize(uint64(len(body)), widthFor(uint64(len(body))))
	out := append([]byte{}, idBytes...)
	out = append(out, sizeBytes...)
	out = append(out, body...)
	return out
}

// widthFor64ID returns the byte width implied by an ID constant's own
// marker bit (ids.go constants already carry their canonical marker).
func widthFor64ID(id uint32) int {
	switch {
	case id <= 0xFF:
		return 1
	case id <= 0xFFFF:
		return 2
	case id <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}

func encMaster(id uint32, children ...[]byte) []byte {
	var body []byte
	for _, c := range children {
		body = append(body, c...)
	}
	return encElem(id, body)
}

func encUint(id uint32, v uint64) []byte {
	var body []byte
	if v == 0 {
		return encElem(id, nil)
	}
	tmp := make([]byte, 8)
	binary.BigEndian.PutUint64(tmp, v)
	i := 0
	for i < 7 && tmp[i] == 0 {
		i++
	}
	body = tmp[i:]
	return encElem(id, body)
}

func encString(id uint32, s string) []byte {
	return encElem(id, []byte(s))
}

func encFloat64(id uint32, f float64) []byte {
	body := make([]byte, 8)
	binary.BigEndian.PutUint64(body, math.Float64bits(f))
	return encElem(id, body)
}

func encDateNanos(id uint32, ns int64) []byte {
	body := make([]byte, 8)
	binary.BigEndian.PutUint64(body, uint64(ns))
	return encElem(id, body)
}

func encBin(id uint32, b []byte) []byte {
	return encElem(id, b)
}

func ebmlHeader() []byte {
	return encMaster(idEBMLHeader,
		encUint(idEBMLVersion, 1),
		encUint(idEBMLReadVersion, 1),
		encString(idEBMLDocType, "matroska"),
		encUint(idEBMLDocTypeVersion, 4),
		encUint(idEBMLDocTypeReadVersion, 2),
	)
}

func segment(children ...[]byte) []byte {
	return encMaster(idSegment, children...)
}
