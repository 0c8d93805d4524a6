package tfidf

import (
	"math"

	"github.com/oarkflow/textrank/nlp/textrank"
)

// Corpus holds document frequencies over the sentences of one document.
type Corpus struct {
	Docs [][]string
	DF   map[string]int
	IDF  map[string]float64
}

func NewCorpus(docs [][]string) *Corpus {
	c := &Corpus{Docs: docs, DF: make(map[string]int)}
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, w := range doc {
			if !seen[w] {
				c.DF[w]++
				seen[w] = true
			}
		}
	}
	N := float64(len(docs))
	c.IDF = make(map[string]float64, len(c.DF))
	for w, df := range c.DF {
		c.IDF[w] = math.Log(N/float64(df)) + 1.0
	}
	return c
}

// FromSentences builds a corpus where every sentence is one document.
func FromSentences(sentences []textrank.Sentence) *Corpus {
	docs := make([][]string, len(sentences))
	for i, s := range sentences {
		docs[i] = s.Tokens
	}
	return NewCorpus(docs)
}

// Vector returns the TF-IDF weights of tokens. Unknown words are ignored.
func (c *Corpus) Vector(tokens []string) map[string]float64 {
	tf := make(map[string]int)
	for _, w := range tokens {
		tf[w]++
	}
	v := make(map[string]float64, len(tf))
	for w, cnt := range tf {
		if idf, ok := c.IDF[w]; ok {
			v[w] = float64(cnt) / float64(len(tokens)) * idf
		}
	}
	return v
}

// Similarity is the cosine of the TF-IDF vectors of a and b. Empty vectors
// score 0.
func (c *Corpus) Similarity(a, b textrank.Sentence) float64 {
	va, vb := c.Vector(a.Tokens), c.Vector(b.Tokens)
	num, denA, denB := 0.0, 0.0, 0.0
	for w, x := range va {
		num += x * vb[w]
		denA += x * x
	}
	for _, y := range vb {
		denB += y * y
	}
	if denA == 0 || denB == 0 {
		return 0
	}
	return num / (math.Sqrt(denA) * math.Sqrt(denB))
}
