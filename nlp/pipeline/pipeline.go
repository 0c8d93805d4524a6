package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/oarkflow/textrank/nlp/textrank"
)

// Summarizer is the part of summarization.Summarizer the pipeline needs.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*textrank.Summary, error)
}

// Outcome is the result for one document. Err is per document and does not
// stop the batch.
type Outcome struct {
	Index   int
	Summary *textrank.Summary
	Err     error
}

// Batch summarizes docs with at most workers goroutines and returns outcomes
// in input order. It only fails as a whole when ctx is cancelled.
func Batch(ctx context.Context, s Summarizer, docs []string, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := s.Summarize(gctx, doc)
			out[i] = Outcome{Index: i, Summary: sum, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stream summarizes documents as they arrive on docs and emits outcomes on the
// returned channel, which is closed once docs is drained or ctx is done.
// Outcomes may arrive out of order; Index identifies the document.
func Stream(ctx context.Context, s Summarizer, docs <-chan string, workers int) <-chan Outcome {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	outC := make(chan Outcome)
	type job struct {
		i   int
		doc string
	}
	jobs := make(chan job)

	go func() {
		defer close(jobs)
		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case doc, ok := <-docs:
				if !ok {
					return
				}
				select {
				case jobs <- job{i, doc}:
					i++
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				sum, err := s.Summarize(ctx, j.doc)
				select {
				case outC <- Outcome{Index: j.i, Summary: sum, Err: err}:
				case <-ctx.Done():
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		g.Wait()
		close(outC)
	}()
	return outC
}
