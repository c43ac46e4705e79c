package lint

import "sort"

// Position is a resolved source range with 1-based lines and columns.
type Position struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// LineIndex maps byte offsets in a source file to lines and columns.
// Only '\n' terminates a line; a '\r' before it stays part of the line.
type LineIndex struct {
	source []byte
	starts []int // starts[i] is the offset of the first byte of line i+1
}

// NewLineIndex precomputes the line-start table for source.
func NewLineIndex(source []byte) *LineIndex {
	starts := []int{0}
	for idx, char := range source {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return &LineIndex{source: source, starts: starts}
}

// LineCount returns the number of lines in the source.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// Resolve converts a byte offset to a 1-based line and column.
// The line is one more than the number of newlines before offset; the
// column counts bytes from the line start, starting at 1.
// Offsets outside the source are clamped.
func (li *LineIndex) Resolve(offset int) (int, int) {
	offset = max(0, min(offset, len(li.source)))

	// First line start strictly greater than offset, minus one, is the line.
	idx := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1

	return idx + 1, offset - li.starts[idx] + 1
}

// Span resolves both ends of [start, end).
func (li *LineIndex) Span(start, end int) Position {
	line, col := li.Resolve(start)
	endLine, endCol := li.Resolve(end)
	return Position{Line: line, Column: col, EndLine: endLine, EndColumn: endCol}
}

// Snippet returns source[start:end], or "" if the range is invalid.
func (li *LineIndex) Snippet(start, end int) string {
	if start < 0 || end > len(li.source) || start > end {
		return ""
	}
	return string(li.source[start:end])
}

// LineContent returns the text of a 1-based line without its newline.
func (li *LineIndex) LineContent(line int) string {
	if line < 1 || line > len(li.starts) {
		return ""
	}
	start := li.starts[line-1]
	end := len(li.source)
	if line < len(li.starts) {
		end = li.starts[line] - 1
	}
	return string(li.source[start:end])
}
