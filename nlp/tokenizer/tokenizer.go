package tokenizer

import (
	"regexp"

	"github.com/oarkflow/textrank/nlp/normalizer"
)

// A word is a run of letters, combining marks and digits. Everything else,
// apostrophes and hyphens included, separates words.
var reWord = regexp.MustCompile(`[\pL\pM\pN]+`)

// Words lowercases a sentence and splits it into word tokens with the
// punctuation removed.
func Words(sentence string) []string {
	return WordsFolded(sentence, false)
}

// WordsFolded is Words with optional diacritic folding.
func WordsFolded(sentence string, fold bool) []string {
	return reWord.FindAllString(normalizer.Normalize(sentence, fold), -1)
}
