package agentsmd

import "strings"

// Upsert places block into existing and returns the new document.
//
// An existing start/end pair is replaced in place. Otherwise the block goes
// right before the </INSTRUCTIONS> tag, or at the end of the document when
// there is no tag. Content outside the block is kept; only the whitespace
// touching the block is normalised to a single blank line, and the document
// ends with one newline when the block is last. Feeding the output back in
// with the same block returns it unchanged.
func Upsert(existing, block string) string {
	if start := strings.Index(existing, StartMarker); start >= 0 {
		if rel := strings.Index(existing[start+len(StartMarker):], EndMarker); rel >= 0 {
			end := start + len(StartMarker) + rel + len(EndMarker)
			return join(existing[:start], block, existing[end:])
		}
	}

	if idx := strings.Index(existing, InstructionsCloseTag); idx >= 0 {
		return join(existing[:idx], block, existing[idx:])
	}

	return join(existing, block, "")
}

func join(before, block, after string) string {
	var b strings.Builder
	if before = trimRightSpace(before); before != "" {
		b.WriteString(before)
		b.WriteString("\n\n")
	}
	b.WriteString(block)
	b.WriteString("\n")
	if after = trimLeftSpace(after); after != "" {
		b.WriteString("\n")
		b.WriteString(after)
	}
	return b.String()
}

// MarkerCount reports how many start and end markers text contains.
type MarkerCount struct {
	Start int
	End   int
	// Ordered is false when an end marker appears before the first start.
	Ordered bool
}

// CountMarkers inspects text for generated-block markers.
func CountMarkers(text string) MarkerCount {
	mc := MarkerCount{
		Start:   strings.Count(text, StartMarker),
		End:     strings.Count(text, EndMarker),
		Ordered: true,
	}
	start := strings.Index(text, StartMarker)
	end := strings.Index(text, EndMarker)
	if end >= 0 && (start < 0 || end < start) {
		mc.Ordered = false
	}
	return mc
}

// Valid reports whether the document holds at most one well-ordered pair.
func (m MarkerCount) Valid() bool {
	if m.Start == 0 && m.End == 0 {
		return true
	}
	return m.Start == 1 && m.End == 1 && m.Ordered
}
