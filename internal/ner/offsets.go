package ner

// CharToByteOffsets converts a sequence of ascending, non-overlapping
// character (rune) offsets into byte offsets within s, in a single pass.
// It is the conversion boundary between the NER contract (character
// offsets) and the rest of the engine, which standardises on byte
// offsets so that redaction and rewriting can slice strings directly.
func CharToByteOffsets(s string, charOffsets []int) []int {
	byteOffsets := make([]int, len(charOffsets))
	if len(charOffsets) == 0 {
		return byteOffsets
	}

	nextIdx := 0
	charPos := 0
	for bytePos := range s {
		for nextIdx < len(charOffsets) && charOffsets[nextIdx] == charPos {
			byteOffsets[nextIdx] = bytePos
			nextIdx++
		}
		if nextIdx >= len(charOffsets) {
			return byteOffsets
		}
		charPos++
	}
	// Any remaining offsets point past the last rune, i.e. at len(s).
	for ; nextIdx < len(charOffsets); nextIdx++ {
		byteOffsets[nextIdx] = len(s)
	}
	return byteOffsets
}

// SpanToByteOffsets converts a Span's character offsets to a byte
// [start, end) pair within s.
func SpanToByteOffsets(s string, span Span) (start, end int) {
	converted := CharToByteOffsets(s, []int{span.StartChar, span.EndChar})
	return converted[0], converted[1]
}
