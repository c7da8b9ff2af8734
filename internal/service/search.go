package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/reference"
)

// NoResultsMessage is shown verbatim when a search finds nothing
const NoResultsMessage = "No results found. Try specific references like 'John 3:16' or keywords like 'faith'."

const defaultMaxReferences = 5

// ResolveStats tracks how the AI-suggested references resolved
type ResolveStats struct {
	Total    int
	Resolved int
	Failed   int
}

// SearchResolver turns free-text queries into verses
type SearchResolver struct {
	scripture     ScriptureGateway
	ai            AIGateway
	maxReferences int
	concurrency   int
	logger        *zap.Logger
}

// SearchOption configures a SearchResolver
type SearchOption func(*SearchResolver)

// WithMaxReferences caps how many AI suggestions are resolved
func WithMaxReferences(n int) SearchOption {
	return func(r *SearchResolver) {
		if n > 0 {
			r.maxReferences = n
		}
	}
}

// WithConcurrency sets how many references are resolved at once.
// Output order does not depend on it.
func WithConcurrency(n int) SearchOption {
	return func(r *SearchResolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewSearchResolver creates a new SearchResolver
func NewSearchResolver(scripture ScriptureGateway, ai AIGateway, logger *zap.Logger, opts ...SearchOption) *SearchResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &SearchResolver{
		scripture:     scripture,
		ai:            ai,
		maxReferences: defaultMaxReferences,
		concurrency:   1,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve searches directly first and falls back to AI reference discovery.
// Failures are returned as an error-shaped result, never as an error.
func (r *SearchResolver) Resolve(ctx context.Context, query string) model.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return noResults(fmt.Errorf("empty query: %w", ErrNoResults))
	}

	// 1. Direct lookup handles exact references and the API's own matching
	direct, err := r.scripture.SearchPassage(ctx, query)
	switch {
	case err != nil:
		r.logger.Debug("Direct search failed, trying AI", zap.String("query", query), zap.Error(err))
	case direct != nil && len(direct.Verses) > 0:
		return model.SearchResult{Verses: direct.Verses}
	default:
		r.logger.Debug("Direct search returned no verses, trying AI", zap.String("query", query))
	}

	// 2. Ask the model for canonical references
	refs, err := r.suggestReferences(ctx, query)
	if err != nil {
		r.logger.Warn("AI reference discovery failed", zap.String("query", query), zap.Error(err))
	}
	if len(refs) == 0 {
		return noResults(fmt.Errorf("no references for %q: %w", query, ErrNoResults))
	}

	// 3. Resolve each suggestion, skipping the ones that fail
	verses, stats := r.resolveAll(ctx, refs)
	r.logger.Info("Resolved AI references",
		zap.String("query", query),
		zap.Int("total", stats.Total),
		zap.Int("resolved", stats.Resolved),
		zap.Int("failed", stats.Failed))

	if len(verses) == 0 {
		return noResults(fmt.Errorf("no suggested reference resolved for %q: %w", query, ErrNoResults))
	}

	return model.SearchResult{Verses: verses, IsAIGenerated: true}
}

func (r *SearchResolver) suggestReferences(ctx context.Context, query string) ([]string, error) {
	prompt := fmt.Sprintf(`The user is searching for something in the Bible: "%s".
Interpret this query (keywords, themes, or partial references) and return a list of the %d most relevant specific Bible references (e.g., "John 3:16", "Romans 8:28").
Return ONLY a JSON array of strings.`, query, r.maxReferences)

	raw, err := r.ai.CompleteStructured(ctx, prompt, referencesSchema)
	if err != nil {
		return nil, err
	}

	var suggested []string
	if err := decodeStructured(raw, referencesSchema, &suggested); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(suggested))
	for _, s := range suggested {
		if len(refs) == r.maxReferences {
			break
		}
		if ref := reference.Normalize(s); ref != "" {
			refs = append(refs, ref)
		}
	}

	return refs, nil
}

// resolveAll looks up every reference and concatenates the results in
// reference order. A failing reference contributes nothing.
func (r *SearchResolver) resolveAll(ctx context.Context, refs []string) ([]model.Verse, ResolveStats) {
	parts := make([][]model.Verse, len(refs))
	failed := make([]bool, len(refs))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			verses, err := r.resolveOne(ctx, ref)
			if err != nil {
				r.logger.Debug("Skipping reference", zap.String("reference", ref), zap.Error(err))
				failed[i] = true
				return nil
			}
			parts[i] = verses
			return nil
		})
	}
	_ = g.Wait()

	stats := ResolveStats{Total: len(refs)}
	var out []model.Verse
	for i, p := range parts {
		if failed[i] {
			stats.Failed++
			continue
		}
		stats.Resolved++
		out = append(out, p...)
	}

	return out, stats
}

func (r *SearchResolver) resolveOne(ctx context.Context, ref string) ([]model.Verse, error) {
	passage, err := r.scripture.SearchPassage(ctx, ref)
	if err != nil {
		return nil, err
	}
	if passage == nil {
		return nil, fmt.Errorf("%s: %w", ref, ErrNoResults)
	}

	if passage.Verses != nil {
		return passage.Verses, nil
	}
	if passage.Text != "" {
		p := passage.Reference
		if p == "" {
			p = ref
		}
		return []model.Verse{{Reference: p, Text: strings.TrimSpace(passage.Text)}}, nil
	}

	return nil, fmt.Errorf("%s: %w", ref, ErrNoResults)
}

func noResults(err error) model.SearchResult {
	return model.SearchResult{Error: NoResultsMessage, Err: err}
}
