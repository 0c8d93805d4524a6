package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/textrank/nlp/textrank"
)

var doc = []textrank.Sentence{
	{Text: "Cats are great.", Tokens: []string{"cats", "are", "great"}},
	{Text: "Dogs are great too.", Tokens: []string{"dogs", "are", "great", "too"}},
	{Text: "Birds sing.", Tokens: []string{"birds", "sing"}},
}

func TestNewCorpus(t *testing.T) {
	c := FromSentences(doc)
	assert.Equal(t, 2, c.DF["are"])
	assert.Equal(t, 1, c.DF["birds"])
	assert.InDelta(t, math.Log(3.0/2.0)+1, c.IDF["great"], 1e-12)
	assert.InDelta(t, math.Log(3.0)+1, c.IDF["sing"], 1e-12)
}

func TestVector(t *testing.T) {
	c := FromSentences(doc)
	v := c.Vector([]string{"cats", "cats", "unknown"})
	require.Len(t, v, 1)
	assert.InDelta(t, 2.0/3.0*c.IDF["cats"], v["cats"], 1e-12)
}

func TestSimilarity(t *testing.T) {
	c := FromSentences(doc)

	self := c.Similarity(doc[0], doc[0])
	assert.InDelta(t, 1, self, 1e-12)

	ab := c.Similarity(doc[0], doc[1])
	assert.Greater(t, ab, 0.0)
	assert.Less(t, ab, 1.0)
	assert.InDelta(t, ab, c.Similarity(doc[1], doc[0]), 1e-12)

	assert.Zero(t, c.Similarity(doc[0], doc[2]))
	assert.Zero(t, c.Similarity(doc[0], textrank.Sentence{Text: "..."}))
}

func TestSummarizeWithCosine(t *testing.T) {
	opts := textrank.DefaultOptions()
	opts.ExtractAmount = 2
	opts.Similarity = FromSentences(doc)
	s, err := textrank.Summarize(doc, opts)
	require.NoError(t, err)
	assert.Equal(t, "Cats are great. Dogs are great too.", s.Text)
}
