package model

// Devotional is the daily reading shown on the home page
type Devotional struct {
	Title   string `json:"title"`
	Verse   string `json:"verse"`
	Content string `json:"content"`
	Prayer  string `json:"prayer"`
}

// SearchKind discriminates the shapes a SearchResult can take
type SearchKind int

const (
	KindVerses SearchKind = iota
	KindPassage
	KindError
)

// SearchResult is the outcome of a smart search. Exactly one shape is
// populated: a verse list, a single passage, or an error message.
type SearchResult struct {
	Verses        []Verse `json:"verses,omitempty"`
	IsAIGenerated bool    `json:"isAiGenerated,omitempty"`

	Text      string `json:"text,omitempty"`
	Reference string `json:"reference,omitempty"`

	Error string `json:"error,omitempty"`
	Err   error  `json:"-"`
}

// Kind reports which shape the result carries
func (r SearchResult) Kind() SearchKind {
	switch {
	case r.Error != "":
		return KindError
	case r.Verses == nil && r.Text != "":
		return KindPassage
	default:
		return KindVerses
	}
}

// Chat roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of a study conversation
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Transcript is an append-only conversation history
type Transcript []ChatMessage

// With returns a copy of the transcript with msgs appended. The receiver
// is never modified.
func (t Transcript) With(msgs ...ChatMessage) Transcript {
	out := make(Transcript, 0, len(t)+len(msgs))
	out = append(out, t...)
	return append(out, msgs...)
}
