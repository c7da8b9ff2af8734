package service

import (
	"context"

	"google.golang.org/genai"

	"github.com/jjenkins/volume/internal/model"
)

// ScriptureGateway fetches Bible text
type ScriptureGateway interface {
	// GetChapter returns every verse of a chapter in canonical order
	GetChapter(ctx context.Context, book string, chapter int) (*model.Chapter, error)
	// SearchPassage resolves an exact reference or keyword query
	SearchPassage(ctx context.Context, query string) (*model.Chapter, error)
}

// AIGateway sends prompts to a generative model
type AIGateway interface {
	CompleteText(ctx context.Context, prompt string) (string, error)
	// CompleteStructured asks for JSON constrained by schema and returns the
	// raw response text. Callers validate it with decodeStructured.
	CompleteStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// Converse replies to the last user message of transcript
	Converse(ctx context.Context, systemInstruction string, transcript model.Transcript) (string, error)
}
