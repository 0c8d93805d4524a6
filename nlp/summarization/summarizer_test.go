package summarization

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/textrank/nlp/config"
	"github.com/oarkflow/textrank/nlp/textrank"
	"github.com/oarkflow/textrank/nlp/tfidf"
)

const article = "Cats are great. Dogs are great too. Cats and dogs are pets."

func newSummarizer(t *testing.T, mutate func(*config.Summarizer)) (*Summarizer, *prometheus.Registry, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default().Summarizer
	cfg.ExtractAmount = 2
	if mutate != nil {
		mutate(&cfg)
	}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := prometheus.NewRegistry()
	s, err := New(cfg, log, reg)
	require.NoError(t, err)
	return s, reg, &buf
}

func TestSummarize(t *testing.T) {
	s, _, buf := newSummarizer(t, nil)
	sum, err := s.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.Equal(t, "Cats are great. Dogs are great too.", sum.Text)
	assert.True(t, sum.Converged)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.summaries.WithLabelValues("ok")))
	assert.Contains(t, buf.String(), "summarized")
}

func TestSummarizeList(t *testing.T) {
	s, _, _ := newSummarizer(t, func(c *config.Summarizer) {
		c.SummaryFormat = "list"
		c.Similarity = "cosine"
	})
	sum, err := s.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.Len(t, sum.Sentences, 2)
	assert.Equal(t, textrank.List, sum.Format)
}

func TestSummarizeErrors(t *testing.T) {
	s, _, _ := newSummarizer(t, nil)

	_, err := s.Summarize(context.Background(), "   ")
	assert.ErrorIs(t, err, textrank.ErrInvalidInput)

	_, err = s.Summarize(context.Background(), "Only one sentence.")
	assert.ErrorIs(t, err, textrank.ErrInvalidArgument)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.summaries.WithLabelValues("invalid")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Summarize(ctx, article)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNonConvergence(t *testing.T) {
	s, _, buf := newSummarizer(t, func(c *config.Summarizer) { c.MaxIterations = 1 })
	sum, err := s.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.False(t, sum.Converged)
	assert.Equal(t, 1, sum.Iterations)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.nonConverged))
	assert.Contains(t, buf.String(), "iteration cap")
}

func TestSetConfig(t *testing.T) {
	s, _, _ := newSummarizer(t, nil)

	bad := s.Config()
	bad.DampingFactor = 1.5
	assert.ErrorIs(t, s.SetConfig(bad), textrank.ErrInvalidArgument)
	assert.Equal(t, 0.85, s.Config().DampingFactor)

	good := s.Config()
	good.ExtractAmount = 1
	require.NoError(t, s.SetConfig(good))
	sum, err := s.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.Len(t, sum.Selected, 1)

	_, err = New(bad, nil, nil)
	assert.Error(t, err)
}

func TestConcurrentUse(t *testing.T) {
	s, _, _ := newSummarizer(t, nil)
	want, err := s.Summarize(context.Background(), article)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Summarize(context.Background(), article)
			if assert.NoError(t, err) {
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestOptions(t *testing.T) {
	cfg := config.Default().Summarizer
	cfg.SummaryFormat = "sentence-list"
	cfg.UpdateMode = "jacobi"
	cfg.Similarity = "cosine"
	opts, err := Options(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, textrank.List, opts.SummaryFormat)
	assert.Equal(t, textrank.Jacobi, opts.UpdateMode)
	assert.IsType(t, &tfidf.Corpus{}, opts.Similarity)

	for _, mutate := range []func(*config.Summarizer){
		func(c *config.Summarizer) { c.Similarity = "jaccard" },
		func(c *config.Summarizer) { c.SummaryFormat = "html" },
		func(c *config.Summarizer) { c.UpdateMode = "async" },
		func(c *config.Summarizer) { c.ConvergenceThreshold = -0.1 },
	} {
		c := config.Default().Summarizer
		mutate(&c)
		_, err := Options(c, nil)
		assert.ErrorIs(t, err, textrank.ErrInvalidArgument)
	}
}
