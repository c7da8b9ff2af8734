package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/volume/internal/model"
)

func TestDecodeStructured_Devotional(t *testing.T) {
	raw := `{"title":"Rest","verse":"ignored","content":"Be still.","prayer":"Amen."}`

	var d model.Devotional
	require.NoError(t, decodeStructured(raw, devotionalSchema, &d))
	assert.Equal(t, model.Devotional{Title: "Rest", Verse: "ignored", Content: "Be still.", Prayer: "Amen."}, d)
}

func TestDecodeStructured_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		path string
	}{
		{"empty", "  ", ""},
		{"not json", "Here is your devotional", ""},
		{"missing prayer", `{"title":"a","verse":"b","content":"c"}`, "$.prayer"},
		{"wrong type", `{"title":1,"verse":"b","content":"c","prayer":"d"}`, "$.title"},
		{"array instead of object", `["a"]`, "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d model.Devotional
			err := decodeStructured(tt.raw, devotionalSchema, &d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchema))

			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
			assert.Equal(t, model.Devotional{}, d)
		})
	}
}

func TestDecodeStructured_References(t *testing.T) {
	var refs []string
	require.NoError(t, decodeStructured(`["John 3:16", "Romans 8:28"]`, referencesSchema, &refs))
	assert.Equal(t, []string{"John 3:16", "Romans 8:28"}, refs)

	err := decodeStructured(`["John 3:16", 4]`, referencesSchema, &refs)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "$[1]", se.Path)
}
