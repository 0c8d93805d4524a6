package segmenter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/oarkflow/textrank/nlp/normalizer"
	"github.com/oarkflow/textrank/nlp/textrank"
	"github.com/oarkflow/textrank/nlp/tokenizer"
)

// ParagraphSplit splits text into paragraphs separated by ≥2 newlines.
var reParagraph = regexp.MustCompile(`\r?\n\s*\r?\n`)

func ParagraphSplit(text string) []string {
	var out []string
	for _, p := range reParagraph.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SentenceSplit splits a paragraph after '.', '!' or '?' when the next word
// starts with an uppercase letter or an opening quote. Closing quotes and
// brackets right after the terminator stay with the sentence.
func SentenceSplit(text string) []string {
	rs := []rune(strings.Join(strings.Fields(text), " "))
	var out []string
	start := 0
	for i := 0; i < len(rs); i++ {
		if !isTerminal(rs[i]) {
			continue
		}
		end := i + 1
		for end < len(rs) && isClosing(rs[end]) {
			end++
		}
		if end >= len(rs) || rs[end] != ' ' || end+1 >= len(rs) || !startsSentence(rs[end+1]) {
			continue
		}
		out = appendSentence(out, string(rs[start:end]))
		start = end + 1
		i = end
	}
	if start < len(rs) {
		out = appendSentence(out, string(rs[start:]))
	}
	return out
}

// Segment turns raw text into sentences with their word tokens.
func Segment(text string, fold bool) []textrank.Sentence {
	var out []textrank.Sentence
	for _, p := range ParagraphSplit(normalizer.CollapseSpaces(text)) {
		for _, s := range SentenceSplit(p) {
			out = append(out, textrank.Sentence{Text: s, Tokens: tokenizer.WordsFolded(s, fold)})
		}
	}
	return out
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimLeft(s, " .")
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', ')', ']':
		return true
	}
	return false
}

func startsSentence(r rune) bool {
	switch r {
	case '"', '“', '‘', '\'':
		return true
	}
	return unicode.IsUpper(r)
}
