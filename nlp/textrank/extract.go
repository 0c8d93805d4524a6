package textrank

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Format selects the shape of the summary.
type Format string

const (
	Joined Format = "joined-string"
	List   Format = "sentence-list"
)

// ParseFormat accepts the canonical names plus the short forms "joined" and "list".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Joined), "joined":
		return Joined, nil
	case string(List), "list":
		return List, nil
	}
	return "", fmt.Errorf("%w: unknown summary format %q", ErrInvalidArgument, s)
}

// Ranked is a selected sentence with its final score.
type Ranked struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Summary is the extracted output. Text is set for Joined, Sentences for List.
type Summary struct {
	Format     Format   `json:"format"`
	Text       string   `json:"text,omitempty"`
	Sentences  []string `json:"sentences,omitempty"`
	Selected   []Ranked `json:"selected"`
	Iterations int      `json:"iterations"`
	Converged  bool     `json:"converged"`
}

// Extract picks the n highest scoring vertices (ties go to the lower ID) and
// returns them in document order.
func Extract(g *Graph, n int, format Format) (*Summary, error) {
	if n < 1 || n > g.Len() {
		return nil, fmt.Errorf("%w: extract amount %d with %d sentences", ErrInvalidArgument, n, g.Len())
	}
	if format != Joined && format != List {
		return nil, fmt.Errorf("%w: unknown summary format %q", ErrInvalidArgument, format)
	}
	byScore := slices.Clone(g.Vertices)
	slices.SortFunc(byScore, func(a, b *Vertex) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	top := byScore[:n]
	slices.SortFunc(top, func(a, b *Vertex) int { return cmp.Compare(a.ID, b.ID) })

	s := &Summary{Format: format, Selected: make([]Ranked, n)}
	texts := make([]string, n)
	for i, v := range top {
		s.Selected[i] = Ranked{ID: v.ID, Text: v.Text, Score: v.Score}
		texts[i] = v.Text
	}
	if format == List {
		s.Sentences = texts
	} else {
		s.Text = strings.Join(texts, " ")
	}
	return s, nil
}
