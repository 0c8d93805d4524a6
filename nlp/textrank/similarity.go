package textrank

import "math"

// Similarity scores the lexical relation between two sentences. The result is
// used as the weight of the directed edge a -> b and must be finite and >= 0.
type Similarity interface {
	Similarity(a, b Sentence) float64
}

// SimilarityFunc adapts a plain function to Similarity.
type SimilarityFunc func(a, b Sentence) float64

func (f SimilarityFunc) Similarity(a, b Sentence) float64 {
	return f(a, b)
}

// Overlap counts the distinct words shared by both sentences and divides by
// ln|a| + ln|b|. Sentences with fewer than two tokens score 0.
type Overlap struct{}

func (Overlap) Similarity(a, b Sentence) float64 {
	if len(a.Tokens) < 2 || len(b.Tokens) < 2 {
		return 0
	}
	seen := make(map[string]struct{}, len(a.Tokens))
	for _, w := range a.Tokens {
		seen[w] = struct{}{}
	}
	shared := 0
	for _, w := range b.Tokens {
		if _, ok := seen[w]; ok {
			shared++
			delete(seen, w)
		}
	}
	logLengths := math.Log(float64(len(a.Tokens))) + math.Log(float64(len(b.Tokens)))
	return float64(shared) / logLengths
}
