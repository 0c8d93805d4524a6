package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/textrank/nlp/textrank"
)

type Format string

const (
	Text    Format = "text"
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return Text, nil
	case Text, JSON, YAML, MsgPack:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// ContentType is the MIME type served for f.
func ContentType(f Format) string {
	switch f {
	case JSON:
		return "application/json"
	case YAML:
		return "application/yaml"
	case MsgPack:
		return "application/msgpack"
	}
	return "text/plain; charset=utf-8"
}

type Sentence struct {
	ID    int     `json:"id" yaml:"id" msgpack:"id"`
	Text  string  `json:"text" yaml:"text" msgpack:"text"`
	Score float64 `json:"score" yaml:"score" msgpack:"score"`
}

// Document is the serialized form of a summary.
type Document struct {
	Format     string     `json:"format" yaml:"format" msgpack:"format"`
	Summary    string     `json:"summary,omitempty" yaml:"summary,omitempty" msgpack:"summary,omitempty"`
	Sentences  []string   `json:"sentences,omitempty" yaml:"sentences,omitempty" msgpack:"sentences,omitempty"`
	Selected   []Sentence `json:"selected" yaml:"selected" msgpack:"selected"`
	Iterations int        `json:"iterations" yaml:"iterations" msgpack:"iterations"`
	Converged  bool       `json:"converged" yaml:"converged" msgpack:"converged"`
}

func FromSummary(s *textrank.Summary) *Document {
	d := &Document{
		Format:     string(s.Format),
		Summary:    s.Text,
		Sentences:  s.Sentences,
		Selected:   make([]Sentence, len(s.Selected)),
		Iterations: s.Iterations,
		Converged:  s.Converged,
	}
	for i, r := range s.Selected {
		d.Selected[i] = Sentence{ID: r.ID, Text: r.Text, Score: r.Score}
	}
	return d
}

// Encode writes d to w. Text writes the joined summary, or one sentence per
// line for a sentence list.
func Encode(w io.Writer, f Format, d *Document) error {
	switch f {
	case Text:
		var err error
		if d.Format == string(textrank.List) {
			_, err = io.WriteString(w, strings.Join(d.Sentences, "\n")+"\n")
		} else {
			_, err = io.WriteString(w, d.Summary+"\n")
		}
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(d)
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(d)
	}
	return fmt.Errorf("unknown output format %q", f)
}

func ToJSON(d *Document) (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
