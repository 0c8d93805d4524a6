package summarization

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	summaries    *prometheus.CounterVec
	nonConverged prometheus.Counter
	iterations   prometheus.Histogram
	sentences    prometheus.Histogram
	duration     prometheus.Histogram
}

// NewMetrics creates the summarizer collectors and registers them on reg
// when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		summaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textrank_summaries_total",
				Help: "Summaries produced, by outcome.",
			},
			[]string{"status"},
		),
		nonConverged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "textrank_nonconverged_total",
				Help: "Rankings that hit the iteration cap before converging.",
			},
		),
		iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "textrank_iterations",
				Help:    "Sweeps run per ranking.",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
			},
		),
		sentences: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "textrank_sentences",
				Help:    "Sentences per summarized document.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "textrank_summarize_seconds",
				Help:    "Time spent building, ranking and extracting.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.summaries, m.nonConverged, m.iterations, m.sentences, m.duration)
	}
	return m
}
