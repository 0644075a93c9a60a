package parser

// Position represents a line/column position in query text.
// Uses LSP conventions: 1-based line numbers, 0-based character offsets.
// Positions refer to the comment-stripped text handed to the lexer.
type Position struct {
	Line      int `json:"line"`      // 1-based line number
	Character int `json:"character"` // 0-based character offset within line
	Offset    int `json:"offset"`    // 0-based byte offset in entire source
}

// Range represents a source span from start to end position
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// positionTracker maintains line/column/offset state during tokenization
type positionTracker struct {
	line      int // 1-based
	character int // 0-based within line
	offset    int // 0-based in source
}

func newPositionTracker() *positionTracker {
	return &positionTracker{line: 1}
}

// advance updates position after consuming text.
// Handles newlines by incrementing line and resetting character position.
func (pt *positionTracker) advance(text string) {
	for _, ch := range text {
		if ch == '\n' {
			pt.line++
			pt.character = 0
		} else {
			pt.character++
		}
		pt.offset += len(string(ch)) // Handle multi-byte UTF-8
	}
}

// current returns the current position snapshot
func (pt *positionTracker) current() Position {
	return Position{
		Line:      pt.line,
		Character: pt.character,
		Offset:    pt.offset,
	}
}
