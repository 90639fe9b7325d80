package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "basic",
			in:   "First one. Second one! Third?",
			want: []string{"First one.", "Second one!", "Third?"},
		},
		{
			name: "newlines split headings",
			in:   "dyno\nruntime polymorphism done right. it works.",
			want: []string{"dyno", "runtime polymorphism done right.", "it works."},
		},
		{
			name: "abbreviations and decimals",
			in:   "Supports formats, e.g. JSON and YAML. Version 1.5 is out.",
			want: []string{"Supports formats, e.g. JSON and YAML.", "Version 1.5 is out."},
		},
		{
			name: "ordinary words before a period",
			in:   "Pick yes or no. Then go on. Cats, dogs and al. Done.",
			want: []string{"Pick yes or no.", "Then go on.", "Cats, dogs and al.", "Done."},
		},
		{
			name: "quotes and ellipsis",
			in:   `He said "stop." Then... nothing.`,
			want: []string{`He said "stop."`, "Then...", "nothing."},
		},
		{
			name: "empty",
			in:   "  \n\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentences(tt.in))
		})
	}
}

func TestFirstSentences(t *testing.T) {
	text := "one. two. three. four. five. six."
	assert.Equal(t, "one. two. three. four.", FirstSentences(text, 4))
	assert.Equal(t, "a.", FirstSentences("a.", 4))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"don't", "panic", "go", "1", "24"}, Tokens("Don't PANIC: go-1.24"))
	assert.Equal(t, []string{"panic", "bring", "towel"}, ContentTokens("Don't panic, and bring the towel 42"))
	assert.Len(t, Words("  a b\tc\n"), 3)
	assert.True(t, IsStopword("the"))
	assert.False(t, IsStopword("golang"))
}
