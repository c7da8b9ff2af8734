package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/service"
)

type echoAI struct {
	turns []int
}

func (a *echoAI) CompleteText(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func (a *echoAI) CompleteStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return "", nil
}

func (a *echoAI) Converse(ctx context.Context, systemInstruction string, transcript model.Transcript) (string, error) {
	a.turns = append(a.turns, len(transcript))
	return "You asked: " + transcript[len(transcript)-1].Text, nil
}

func TestRunChat(t *testing.T) {
	ai := &echoAI{}
	assistant := service.NewStudyAssistant(ai, "", nil)

	in := strings.NewReader("Who was Melchizedek?\n\n  \nAnd Abraham?\nexit\nignored\n")
	var out bytes.Buffer

	transcript, err := runChat(context.Background(), assistant, in, &out)
	require.NoError(t, err)

	require.Len(t, transcript, 4)
	assert.Equal(t, model.RoleUser, transcript[2].Role)
	assert.Equal(t, "And Abraham?", transcript[2].Text)
	assert.Equal(t, []int{1, 3}, ai.turns)
	assert.Contains(t, out.String(), "You asked: Who was Melchizedek?")
	assert.NotContains(t, out.String(), "ignored")
}

func TestChapterArgs(t *testing.T) {
	book, chapter, err := chapterArgs([]string{"song", "of", "songs", "2"})
	require.NoError(t, err)
	assert.Equal(t, "Song of Solomon", book.Name)
	assert.Equal(t, 2, chapter)

	_, _, err = chapterArgs([]string{"John", "x"})
	assert.Error(t, err)

	_, _, err = chapterArgs([]string{"Jude", "2"})
	assert.ErrorContains(t, err, "chapters 1-1")

	_, _, err = chapterArgs([]string{"Hezekiah", "1"})
	assert.ErrorContains(t, err, "unknown book")
}

func TestPrintSearchResult(t *testing.T) {
	var out bytes.Buffer
	printSearchResult(&out, model.SearchResult{
		IsAIGenerated: true,
		Verses:        []model.Verse{{BookName: "Hebrews", Chapter: 11, Verse: 1, Text: "Now faith"}},
	})
	assert.Equal(t, "(references suggested by AI)\nHebrews 11:1  Now faith\n", out.String())

	out.Reset()
	printSearchResult(&out, model.SearchResult{Error: service.NoResultsMessage})
	assert.Equal(t, service.NoResultsMessage+"\n", out.String())
}

func TestPrintDevotional(t *testing.T) {
	var out bytes.Buffer
	printDevotional(&out, service.FallbackDevotional())

	assert.True(t, strings.HasPrefix(out.String(), "The Lamp of the Word\nPsalms 119:105\n\n"))
	assert.Contains(t, out.String(), "\n\nPrayer: ")
}
