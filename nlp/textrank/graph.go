package textrank

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Sentence is one unit of input: the raw text and its word tokens.
type Sentence struct {
	Text   string   `json:"text"`
	Tokens []string `json:"tokens"`
}

// Vertex is a sentence inside a Graph. ID is the zero-based position of the
// sentence in the document.
type Vertex struct {
	ID     int
	Text   string
	Tokens []string
	Score  float64
}

// Seeder returns the initial score of a vertex.
type Seeder func(id int) float64

// UniformSeed gives every vertex the same starting score.
func UniformSeed(v float64) Seeder {
	return func(int) float64 { return v }
}

// RandomSeed draws starting scores from [1, 11).
func RandomSeed(r *rand.Rand) Seeder {
	return func(int) float64 { return r.Float64()*10 + 1 }
}

// Graph is the complete directed graph over the sentences of one document.
// Weights are fixed after Build; only vertex scores change.
type Graph struct {
	Vertices []*Vertex
	weights  [][]float64
	outSum   []float64
}

// Build creates a vertex per sentence and weighs every ordered pair of
// distinct vertices with sim.
func Build(sentences []Sentence, sim Similarity, seed Seeder) (*Graph, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: no sentences", ErrInvalidInput)
	}
	if sim == nil {
		sim = Overlap{}
	}
	if seed == nil {
		seed = UniformSeed(1)
	}
	n := len(sentences)
	g := &Graph{
		Vertices: make([]*Vertex, n),
		weights:  make([][]float64, n),
		outSum:   make([]float64, n),
	}
	for i, s := range sentences {
		if strings.TrimSpace(s.Text) == "" {
			return nil, fmt.Errorf("%w: sentence %d has no text", ErrInvalidInput, i)
		}
		g.Vertices[i] = &Vertex{ID: i, Text: s.Text, Tokens: s.Tokens, Score: seed(i)}
	}
	for i := range sentences {
		g.weights[i] = make([]float64, n)
		for j := range sentences {
			if i == j {
				continue
			}
			w := sim.Similarity(sentences[i], sentences[j])
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: similarity(%d, %d) = %v", ErrInvalidArgument, i, j, w)
			}
			g.weights[i][j] = w
			g.outSum[i] += w
		}
	}
	return g, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.Vertices)
}

// Weight returns the weight of the edge from -> to. Self edges weigh 0.
func (g *Graph) Weight(from, to int) float64 {
	return g.weights[from][to]
}

// Scores returns a copy of the current vertex scores indexed by ID.
func (g *Graph) Scores() []float64 {
	out := make([]float64, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Score
	}
	return out
}
