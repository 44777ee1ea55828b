package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace", "   \n\t", ""},
		{"plain", "The bus was late again", "The bus was late again"},
		{"emphasis", "The park is **really** _lovely_", "The park is really lovely"},
		{"heading and list", "# Roads\n\n- potholes\n- lights", "Roads potholes lights"},
		{"link keeps text", "See [the permit page](https://example.gov/permits) now", "See the permit page now"},
		{"bare url removed", "Report it at https://example.gov/report please", "Report it at please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownToText(tt.input))
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "docs here", RemoveLinks("[docs](https://example.gov) here"))
	assert.Equal(t, "visit ", RemoveLinks("visit www.example.gov"))
}

func TestLower(t *testing.T) {
	assert.Equal(t, "", Lower(""))
	assert.Equal(t, "i need a bus pass", Lower("I Need A BUS Pass"))
	assert.Equal(t, "straße café", Lower("STRAßE CAFÉ"))
	assert.Equal(t, "bus", Lower("ＢＵＳ"))
}
