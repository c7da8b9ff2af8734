package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
	}{
		{"John 3:16", Ref{Book: "John", Chapter: 3, Verse: 16}},
		{"1 John 4:7-8", Ref{Book: "1 John", Chapter: 4, Verse: 7, VerseEnd: 8}},
		{"song of solomon 2:4", Ref{Book: "Song of Solomon", Chapter: 2, Verse: 4}},
		{"Psalm 23", Ref{Book: "Psalms", Chapter: 23}},
		{"  Romans 8 : 28 ", Ref{Book: "Romans", Chapter: 8, Verse: 28}},
		{"Jude", Ref{Book: "Jude"}},
		{"Wisdom 7:26", Ref{Book: "Wisdom", Chapter: 7, Verse: 26}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "3:16", "John 3:16 extra words", "John 3:", "Romans 8:30-28"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "John 3:16", Ref{Book: "John", Chapter: 3, Verse: 16}.String())
	assert.Equal(t, "Romans 8:28-30", Ref{Book: "Romans", Chapter: 8, Verse: 28, VerseEnd: 30}.String())
	assert.Equal(t, "Psalms 23", Ref{Book: "Psalms", Chapter: 23}.String())
	assert.Equal(t, "Jude", Ref{Book: "Jude"}.String())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Hebrews 11:1", Normalize(" hebrews 11:1 "))
	assert.Equal(t, "Psalms 119:105", Normalize("Psalm 119:105"))
	assert.Equal(t, "the beatitudes?", Normalize(" the beatitudes? "))
	assert.Equal(t, "John 3:16", Normalize("John 3:16-16"))
	assert.Equal(t, "Romans 8:30-28", Normalize(" Romans 8:30-28 "))
}

func TestCite(t *testing.T) {
	assert.Equal(t, "Song of Solomon 2:4", Cite("Song of Solomon", 2, 4))
}
