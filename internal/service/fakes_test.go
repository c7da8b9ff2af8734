package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/jjenkins/volume/internal/model"
)

// fakeScripture serves canned chapters and passages
type fakeScripture struct {
	mu       sync.Mutex
	chapters map[string]*model.Chapter
	passages map[string]*model.Chapter
	delays   map[string]time.Duration
	err      error

	chapterCalls []string
	searchCalls  []string
}

func newFakeScripture() *fakeScripture {
	return &fakeScripture{
		chapters: map[string]*model.Chapter{},
		passages: map[string]*model.Chapter{},
		delays:   map[string]time.Duration{},
	}
}

func (f *fakeScripture) GetChapter(ctx context.Context, book string, chapter int) (*model.Chapter, error) {
	key := fmt.Sprintf("%s %d", book, chapter)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.chapterCalls = append(f.chapterCalls, key)

	if f.err != nil {
		return nil, f.err
	}
	ch, ok := f.chapters[key]
	if !ok {
		return nil, &TransportError{Op: "get chapter", URL: key, StatusCode: http.StatusNotFound}
	}
	return ch, nil
}

func (f *fakeScripture) SearchPassage(ctx context.Context, query string) (*model.Chapter, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	delay := f.delays[query]
	p, ok := f.passages[query]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if !ok {
		return nil, &TransportError{Op: "search", URL: query, StatusCode: http.StatusNotFound}
	}
	return p, nil
}

func (f *fakeScripture) searches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchCalls...)
}

// fakeAI returns canned completions and records what it was sent
type fakeAI struct {
	mu sync.Mutex

	text          string
	textErr       error
	structured    string
	structuredErr error
	reply         string
	replyErr      error

	prompts      []string
	schemas      []*genai.Schema
	instructions []string
	transcripts  []model.Transcript
}

func (f *fakeAI) CompleteText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.text, f.textErr
}

func (f *fakeAI) CompleteStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.schemas = append(f.schemas, schema)
	return f.structured, f.structuredErr
}

func (f *fakeAI) Converse(ctx context.Context, systemInstruction string, transcript model.Transcript) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instructions = append(f.instructions, systemInstruction)
	f.transcripts = append(f.transcripts, transcript)
	return f.reply, f.replyErr
}

func verse(book string, chapter, n int, text string) model.Verse {
	return model.Verse{BookName: book, Chapter: chapter, Verse: n, Text: text}
}
