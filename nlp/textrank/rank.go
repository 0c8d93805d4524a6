package textrank

import (
	"fmt"
	"math"
)

// UpdateMode selects how a sweep reads neighbour scores.
type UpdateMode string

const (
	// GaussSeidel writes each new score in place, so later vertices in the
	// same sweep see the scores already updated.
	GaussSeidel UpdateMode = "gauss-seidel"
	// Jacobi computes the whole sweep from the previous sweep's scores.
	Jacobi UpdateMode = "jacobi"
)

// ParseUpdateMode accepts "gauss-seidel" and "jacobi"; empty means GaussSeidel.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch UpdateMode(s) {
	case "", GaussSeidel:
		return GaussSeidel, nil
	case Jacobi:
		return Jacobi, nil
	}
	return "", fmt.Errorf("%w: unknown update mode %q", ErrInvalidArgument, s)
}

// RankStats describes how ranking ended.
type RankStats struct {
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
	MaxDelta   float64 `json:"max_delta"`
}

// Sweep runs one pass of the weighted recurrence over all vertices in ID order
// and returns the largest absolute score change.
//
//	WS(Vi) = (1-d) + d * sum_j w(j,i) / sum_k w(j,k) * WS(Vj)
func (g *Graph) Sweep(d float64, mode UpdateMode) float64 {
	prev := g.Scores()
	read := func(j int) float64 { return g.Vertices[j].Score }
	if mode == Jacobi {
		read = func(j int) float64 { return prev[j] }
	}
	next := make([]float64, len(g.Vertices))
	maxDelta := 0.0
	for i, v := range g.Vertices {
		sum := 0.0
		for j := range g.Vertices {
			if j == i || g.outSum[j] == 0 {
				continue
			}
			sum += g.weights[j][i] / g.outSum[j] * read(j)
		}
		score := (1 - d) + d*sum
		if delta := math.Abs(score - prev[i]); delta > maxDelta {
			maxDelta = delta
		}
		if mode == Jacobi {
			next[i] = score
		} else {
			v.Score = score
		}
	}
	if mode == Jacobi {
		for i, v := range g.Vertices {
			v.Score = next[i]
		}
	}
	return maxDelta
}

// Rank sweeps until a full sweep changes no score by more than threshold, or
// until maxIterations sweeps have run.
func (g *Graph) Rank(d, threshold float64, maxIterations int, mode UpdateMode) RankStats {
	var stats RankStats
	for stats.Iterations < maxIterations {
		stats.MaxDelta = g.Sweep(d, mode)
		stats.Iterations++
		if stats.MaxDelta <= threshold {
			stats.Converged = true
			break
		}
	}
	return stats
}
