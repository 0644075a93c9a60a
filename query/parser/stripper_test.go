package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no markers is a no-op",
			input: "a AND b",
			want:  "a AND b",
		},
		{
			name:  "single block",
			input: "a <<<note>>> AND b",
			want:  "a  AND b",
		},
		{
			name:  "block spanning newlines",
			input: "a <<<line one\nline two>>> OR b",
			want:  "a  OR b",
		},
		{
			name:  "multiple blocks",
			input: "<<<x>>>a<<<y>>>b<<<z>>>",
			want:  "ab",
		},
		{
			name:  "unterminated block deletes to end of input",
			input: "a AND b <<<dangling",
			want:  "a AND b ",
		},
		{
			name:  "close marker without open is kept",
			input: "a >>> b",
			want:  "a >>> b",
		},
		{
			name:  "block closes at first close marker",
			input: "a <<<one>>>two>>> b",
			want:  "a two>>> b",
		},
		{
			name:  "empty block",
			input: "a<<<>>>b",
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.input, "<<<", ">>>"))
		})
	}
}

func TestStripComments_CustomMarkers(t *testing.T) {
	assert.Equal(t, "a  b", StripComments("a /*note*/ b", "/*", "*/"))
	assert.Equal(t, "a ", StripComments("a /*dangling", "/*", "*/"))
}

func TestStripComments_EmptyMarkers(t *testing.T) {
	// Degenerate marker config leaves the text untouched
	assert.Equal(t, "a <<<x>>> b", StripComments("a <<<x>>> b", "", ">>>"))
	assert.Equal(t, "a <<<x>>> b", StripComments("a <<<x>>> b", "<<<", ""))
}
