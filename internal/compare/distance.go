// Package compare scores how far apart two hands are.
package compare

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/heartmarshall/signphon/internal/domain"
)

// Weights maps attribute names to positive weights.
type Weights map[string]float64

// DefaultWeights returns the standard attribute weights.
func DefaultWeights() Weights {
	return Weights{
		domain.AttrShape:       5,
		domain.AttrOrientation: 3,
		domain.AttrLocation:    2,
		domain.AttrMovement:    1,
		domain.AttrContact:     2,
		domain.AttrRepetition:  2,
	}
}

// Scorer returns the dissimilarity of two attribute values. Results are
// expected in [0, 1] so the weighted mean stays in that range.
type Scorer func(a, b domain.Attribute) float64

// ExactScorer scores equal attributes 0 and anything else 1, including
// change lists that differ only in order.
func ExactScorer(a, b domain.Attribute) float64 {
	if a.Equal(b) {
		return 0
	}
	return 1
}

// Metric is a weighted attribute distance between hands.
type Metric struct {
	names   []string
	weights Weights
	score   Scorer
	total   float64
}

// NewMetric validates the weights and builds a metric. A nil scorer means
// ExactScorer.
func NewMetric(weights Weights, score Scorer) (*Metric, error) {
	if len(weights) == 0 {
		return nil, domain.NewValidationError("weights", "at least one weight is required")
	}

	var errs []domain.FieldError
	m := &Metric{weights: make(Weights, len(weights)), score: score}
	for name, w := range weights {
		field := "weights." + name
		if !slices.Contains(domain.AttributeNames, name) {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown attribute"})
			continue
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("must be positive, got %v", w)})
			continue
		}
		m.names = append(m.names, name)
		m.weights[name] = w
	}
	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b domain.FieldError) int {
			return cmp.Compare(a.Field, b.Field)
		})
		return nil, domain.NewValidationErrors(errs)
	}

	// summed in name order so the total does not depend on map iteration
	slices.Sort(m.names)
	for _, name := range m.names {
		m.total += m.weights[name]
	}
	if m.score == nil {
		m.score = ExactScorer
	}
	return m, nil
}

// Distance returns the weighted mean of attribute scores, visiting
// attributes in lexicographic order.
func (m *Metric) Distance(a, b domain.Hand) float64 {
	var sum float64
	for _, name := range m.names {
		av, _ := a.Attribute(name)
		bv, _ := b.Attribute(name)
		sum += m.score(av, bv) * m.weights[name]
	}
	return sum / m.total
}

// Weights returns a copy of the metric's weights.
func (m *Metric) Weights() Weights {
	out := make(Weights, len(m.weights))
	for k, v := range m.weights {
		out[k] = v
	}
	return out
}

var defaultMetric = func() *Metric {
	m, err := NewMetric(DefaultWeights(), nil)
	if err != nil {
		panic(err)
	}
	return m
}()

// Distance compares two hands with the default weights and scorer.
func Distance(a, b domain.Hand) float64 {
	return defaultMetric.Distance(a, b)
}
