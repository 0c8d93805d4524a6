// Package textrank ranks the sentences of a document with a weighted
// PageRank over the complete sentence graph and extracts the best ones in
// their original order.
package textrank

import (
	"fmt"
	"math"
)

const (
	DefaultExtractAmount        = 5
	DefaultDampingFactor        = 0.85
	DefaultConvergenceThreshold = 0.0001
	DefaultMaxIterations        = 100
)

// Options controls one summarization.
type Options struct {
	ExtractAmount        int
	DampingFactor        float64
	Similarity           Similarity
	SummaryFormat        Format
	ConvergenceThreshold float64
	MaxIterations        int
	UpdateMode           UpdateMode
	Seed                 Seeder
}

// DefaultOptions returns the documented defaults with the Overlap scorer and
// a uniform seed of 1.
func DefaultOptions() Options {
	return Options{
		ExtractAmount:        DefaultExtractAmount,
		DampingFactor:        DefaultDampingFactor,
		Similarity:           Overlap{},
		SummaryFormat:        Joined,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		MaxIterations:        DefaultMaxIterations,
		UpdateMode:           GaussSeidel,
		Seed:                 UniformSeed(1),
	}
}

// Validate reports the first option that is out of range.
func (o Options) Validate() error {
	switch {
	case o.ExtractAmount < 1:
		return fmt.Errorf("%w: extract amount must be positive, got %d", ErrInvalidArgument, o.ExtractAmount)
	case math.IsNaN(o.DampingFactor) || o.DampingFactor <= 0 || o.DampingFactor >= 1:
		return fmt.Errorf("%w: damping factor must be in (0,1), got %v", ErrInvalidArgument, o.DampingFactor)
	case math.IsNaN(o.ConvergenceThreshold) || o.ConvergenceThreshold < 0:
		return fmt.Errorf("%w: convergence threshold must be >= 0, got %v", ErrInvalidArgument, o.ConvergenceThreshold)
	case o.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidArgument, o.MaxIterations)
	case o.SummaryFormat != Joined && o.SummaryFormat != List:
		return fmt.Errorf("%w: unknown summary format %q", ErrInvalidArgument, o.SummaryFormat)
	case o.UpdateMode != GaussSeidel && o.UpdateMode != Jacobi:
		return fmt.Errorf("%w: unknown update mode %q", ErrInvalidArgument, o.UpdateMode)
	}
	return nil
}

// Summarize builds the sentence graph, ranks it and extracts the summary.
// Each call owns its graph, so concurrent calls need no locking.
func Summarize(sentences []Sentence, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: no sentences", ErrInvalidInput)
	}
	if opts.ExtractAmount > len(sentences) {
		return nil, fmt.Errorf("%w: extract amount %d exceeds %d sentences", ErrInvalidArgument, opts.ExtractAmount, len(sentences))
	}
	g, err := Build(sentences, opts.Similarity, opts.Seed)
	if err != nil {
		return nil, err
	}
	stats := g.Rank(opts.DampingFactor, opts.ConvergenceThreshold, opts.MaxIterations, opts.UpdateMode)
	s, err := Extract(g, opts.ExtractAmount, opts.SummaryFormat)
	if err != nil {
		return nil, err
	}
	s.Iterations = stats.Iterations
	s.Converged = stats.Converged
	return s, nil
}
