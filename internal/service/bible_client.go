package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jjenkins/volume/internal/model"
)

const (
	defaultBibleURL    = "https://bible-api.com"
	defaultTranslation = "kjv"
	defaultTimeout     = 30 * time.Second
)

// BibleClient handles communication with bible-api.com
type BibleClient struct {
	client      *http.Client
	baseURL     string
	translation string
}

// NewBibleClient creates a new bible-api client. Empty arguments fall back
// to the public endpoint and the KJV translation.
func NewBibleClient(baseURL, translation string, timeout time.Duration) *BibleClient {
	if baseURL == "" {
		baseURL = defaultBibleURL
	}
	if translation == "" {
		translation = defaultTranslation
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BibleClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		translation: translation,
	}
}

// verseJSON represents a verse in the API response
type verseJSON struct {
	BookID   string `json:"book_id"`
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

// passageResponse represents the API response for a chapter or passage
type passageResponse struct {
	Reference     string      `json:"reference"`
	Verses        []verseJSON `json:"verses"`
	Text          string      `json:"text"`
	TranslationID string      `json:"translation_id"`
}

// GetChapter retrieves every verse of a chapter
func (c *BibleClient) GetChapter(ctx context.Context, book string, chapter int) (*model.Chapter, error) {
	u := fmt.Sprintf("%s/%s+%d?translation=%s", c.baseURL, url.PathEscape(book), chapter, url.QueryEscape(c.translation))

	ch, err := c.fetchPassage(ctx, "get chapter", u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s %d: %w", book, chapter, err)
	}

	return ch, nil
}

// SearchPassage looks up a reference or keyword query as-is
func (c *BibleClient) SearchPassage(ctx context.Context, query string) (*model.Chapter, error) {
	u := fmt.Sprintf("%s/%s?translation=%s", c.baseURL, url.PathEscape(query), url.QueryEscape(c.translation))

	ch, err := c.fetchPassage(ctx, "search", u)
	if err != nil {
		return nil, fmt.Errorf("search %q failed: %w", query, err)
	}

	return ch, nil
}

func (c *BibleClient) fetchPassage(ctx context.Context, op, u string) (*model.Chapter, error) {
	body, err := c.fetch(ctx, op, u)
	if err != nil {
		return nil, err
	}

	var resp passageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: op, URL: u, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	ch := &model.Chapter{
		Reference:     resp.Reference,
		Text:          resp.Text,
		TranslationID: resp.TranslationID,
	}
	if resp.Verses != nil {
		ch.Verses = make([]model.Verse, len(resp.Verses))
		for i, v := range resp.Verses {
			ch.Verses[i] = model.Verse{
				BookID:   v.BookID,
				BookName: v.BookName,
				Chapter:  v.Chapter,
				Verse:    v.Verse,
				Text:     strings.TrimSpace(v.Text),
			}
		}
	}

	return ch, nil
}

// fetch performs a single HTTP GET. There is no retry: callers fall back
// to another strategy instead.
func (c *BibleClient) fetch(ctx context.Context, op, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, URL: u, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, URL: u, StatusCode: resp.StatusCode}
	}

	return body, nil
}
