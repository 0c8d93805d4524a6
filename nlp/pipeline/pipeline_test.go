package pipeline

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/textrank/nlp/config"
	"github.com/oarkflow/textrank/nlp/summarization"
	"github.com/oarkflow/textrank/nlp/textrank"
)

func newSummarizer(t *testing.T) *summarization.Summarizer {
	t.Helper()
	cfg := config.Default().Summarizer
	cfg.ExtractAmount = 2
	s, err := summarization.New(cfg, nil, nil)
	require.NoError(t, err)
	return s
}

var docs = []string{
	"Cats are great. Dogs are great too. Cats and dogs are pets.",
	"Too short.",
	"The quick fox runs. A quick brown fox jumps. Lazy dogs sleep all day.",
}

func TestBatch(t *testing.T) {
	out, err := Batch(context.Background(), newSummarizer(t), docs, 2)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i, o := range out {
		assert.Equal(t, i, o.Index)
	}
	require.NoError(t, out[0].Err)
	assert.Equal(t, "Cats are great. Dogs are great too.", out[0].Summary.Text)
	assert.ErrorIs(t, out[1].Err, textrank.ErrInvalidArgument)
	require.NoError(t, out[2].Err)
	assert.Len(t, out[2].Summary.Selected, 2)
}

func TestBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Batch(ctx, newSummarizer(t), docs, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStream(t *testing.T) {
	in := make(chan string)
	go func() {
		defer close(in)
		for _, d := range docs {
			in <- d
		}
	}()

	var got []Outcome
	for o := range Stream(context.Background(), newSummarizer(t), in, 3) {
		got = append(got, o)
	}
	require.Len(t, got, 3)
	sort.Slice(got, func(i, j int) bool { return got[i].Index < got[j].Index })
	assert.NoError(t, got[0].Err)
	assert.Error(t, got[1].Err)
	assert.NoError(t, got[2].Err)
}
