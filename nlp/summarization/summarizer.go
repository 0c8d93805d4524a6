// Package summarization wires segmentation, configuration, logging and
// metrics around the textrank engine.
package summarization

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oarkflow/textrank/nlp/config"
	"github.com/oarkflow/textrank/nlp/segmenter"
	"github.com/oarkflow/textrank/nlp/textrank"
	"github.com/oarkflow/textrank/nlp/tfidf"
)

// Summarizer is safe for concurrent use. Every call builds its own graph; the
// shared configuration is swapped atomically.
type Summarizer struct {
	cfg     atomic.Pointer[config.Summarizer]
	log     *slog.Logger
	metrics *Metrics
}

func New(cfg config.Summarizer, log *slog.Logger, reg prometheus.Registerer) (*Summarizer, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Summarizer{log: log, metrics: NewMetrics(reg)}
	if err := s.SetConfig(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// SetConfig replaces the defaults used by Summarize after validating them.
func (s *Summarizer) SetConfig(cfg config.Summarizer) error {
	if _, err := Options(cfg, nil); err != nil {
		return err
	}
	s.cfg.Store(&cfg)
	return nil
}

func (s *Summarizer) Config() config.Summarizer {
	return *s.cfg.Load()
}

// Summarize segments text and summarizes it with the current configuration.
func (s *Summarizer) Summarize(ctx context.Context, text string) (*textrank.Summary, error) {
	return s.SummarizeWith(ctx, text, s.Config())
}

// SummarizeWith is Summarize with an explicit configuration.
func (s *Summarizer) SummarizeWith(ctx context.Context, text string, cfg config.Summarizer) (*textrank.Summary, error) {
	sentences := segmenter.Segment(text, cfg.FoldDiacritics)
	if len(sentences) == 0 {
		s.metrics.summaries.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: no sentences found", textrank.ErrInvalidInput)
	}
	return s.SummarizeSentences(ctx, sentences, cfg)
}

// SummarizeSentences ranks sentences that were segmented elsewhere.
func (s *Summarizer) SummarizeSentences(ctx context.Context, sentences []textrank.Sentence, cfg config.Summarizer) (*textrank.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts, err := Options(cfg, sentences)
	if err != nil {
		s.metrics.summaries.WithLabelValues("invalid").Inc()
		return nil, err
	}
	start := time.Now()
	sum, err := textrank.Summarize(sentences, opts)
	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.metrics.sentences.Observe(float64(len(sentences)))
	if err != nil {
		status := "error"
		if errors.Is(err, textrank.ErrInvalidInput) || errors.Is(err, textrank.ErrInvalidArgument) {
			status = "invalid"
		}
		s.metrics.summaries.WithLabelValues(status).Inc()
		s.log.DebugContext(ctx, "summarize rejected", slog.Int("sentences", len(sentences)), slog.String("err", err.Error()))
		return nil, err
	}
	s.metrics.summaries.WithLabelValues("ok").Inc()
	s.metrics.iterations.Observe(float64(sum.Iterations))
	if !sum.Converged {
		s.metrics.nonConverged.Inc()
		s.log.WarnContext(ctx, "ranking stopped at iteration cap",
			slog.Int("iterations", sum.Iterations),
			slog.Int("sentences", len(sentences)))
	}
	s.log.DebugContext(ctx, "summarized",
		slog.Int("sentences", len(sentences)),
		slog.Int("selected", len(sum.Selected)),
		slog.Int("iterations", sum.Iterations),
		slog.Bool("converged", sum.Converged),
		slog.Duration("took", time.Since(start)))
	return sum, nil
}

// Options turns a configuration into engine options. sentences is needed by
// scorers that look at the whole document, such as cosine.
func Options(cfg config.Summarizer, sentences []textrank.Sentence) (textrank.Options, error) {
	opts := textrank.DefaultOptions()
	format, err := textrank.ParseFormat(cfg.SummaryFormat)
	if err != nil {
		return opts, err
	}
	mode, err := textrank.ParseUpdateMode(cfg.UpdateMode)
	if err != nil {
		return opts, err
	}
	sim, err := SimilarityFor(cfg.Similarity, sentences)
	if err != nil {
		return opts, err
	}
	opts.ExtractAmount = cfg.ExtractAmount
	opts.DampingFactor = cfg.DampingFactor
	opts.ConvergenceThreshold = cfg.ConvergenceThreshold
	opts.MaxIterations = cfg.MaxIterations
	opts.SummaryFormat = format
	opts.UpdateMode = mode
	opts.Similarity = sim
	return opts, opts.Validate()
}

// SimilarityFor resolves a scorer by name: "overlap" (default) or "cosine".
func SimilarityFor(name string, sentences []textrank.Sentence) (textrank.Similarity, error) {
	switch strings.ToLower(name) {
	case "", "overlap":
		return textrank.Overlap{}, nil
	case "cosine", "tfidf":
		return tfidf.FromSentences(sentences), nil
	}
	return nil, fmt.Errorf("%w: unknown similarity %q", textrank.ErrInvalidArgument, name)
}
