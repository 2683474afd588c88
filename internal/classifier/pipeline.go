package classifier

import (
	"errors"
	"fmt"
	"math"

	"github.com/spec-kit/churn-service/internal/domain"
)

var (
	// ErrSchemaMismatch means a row's columns differ from what the pipeline was fitted on.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrUnknownCategory means a categorical value was not seen at fit time.
	ErrUnknownCategory = errors.New("unknown category")
)

type scaler struct {
	mean  []float64
	scale []float64
}

type encoder struct {
	categories []map[string]int
	widths     []int
}

// Pipeline scores customer rows. It is immutable once built and safe for concurrent use.
type Pipeline struct {
	name      string
	algorithm string
	columns   []string
	numeric   int
	scaler    scaler
	encoder   encoder
	coef      []float64
	intercept float64
}

// NewPipeline builds a pipeline from a decoded artifact.
func NewPipeline(art Artifact) (*Pipeline, error) {
	if err := art.validate(); err != nil {
		return nil, err
	}

	enc := encoder{
		categories: make([]map[string]int, len(art.Categorical.Categories)),
		widths:     make([]int, len(art.Categorical.Categories)),
	}
	for i, cats := range art.Categorical.Categories {
		idx := make(map[string]int, len(cats))
		for j, c := range cats {
			idx[c] = j
		}
		enc.categories[i] = idx
		enc.widths[i] = len(cats)
	}

	name := art.Name
	if name == "" {
		name = "unnamed"
	}
	return &Pipeline{
		name:      name,
		algorithm: art.Algorithm,
		columns:   append(append([]string{}, art.Numeric.Columns...), art.Categorical.Columns...),
		numeric:   len(art.Numeric.Columns),
		scaler: scaler{
			mean:  append([]float64{}, art.Numeric.Mean...),
			scale: append([]float64{}, art.Numeric.Scale...),
		},
		encoder:   enc,
		coef:      append([]float64{}, art.Coefficients...),
		intercept: art.Intercept,
	}, nil
}

// Name identifies the loaded model.
func (p *Pipeline) Name() string { return p.name }

// Algorithm is the estimator name recorded in the artifact.
func (p *Pipeline) Algorithm() string { return p.algorithm }

// Columns returns the expected input columns in order.
func (p *Pipeline) Columns() []string {
	return append([]string{}, p.columns...)
}

// Predict returns the class label (0 or 1) for the row.
func (p *Pipeline) Predict(row domain.Row) (int, error) {
	z, err := p.decision(row)
	if err != nil {
		return 0, err
	}
	if z > 0 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [P(class 0), P(class 1)] for the row.
func (p *Pipeline) PredictProba(row domain.Row) ([2]float64, error) {
	z, err := p.decision(row)
	if err != nil {
		return [2]float64{}, err
	}
	p1 := sigmoid(z)
	return [2]float64{1 - p1, p1}, nil
}

func (p *Pipeline) decision(row domain.Row) (float64, error) {
	x, err := p.transform(row)
	if err != nil {
		return 0, err
	}
	z := p.intercept
	for i, v := range x {
		z += v * p.coef[i]
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, fmt.Errorf("%w: non-finite decision value", ErrSchemaMismatch)
	}
	return z, nil
}

// transform applies standard scaling and one-hot encoding, producing the
// vector the coefficients were fitted on.
func (p *Pipeline) transform(row domain.Row) ([]float64, error) {
	if len(row) != len(p.columns) {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(row), len(p.columns))
	}
	x := make([]float64, 0, len(p.coef))
	for i, cell := range row {
		if cell.Column != p.columns[i] {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i, cell.Column, p.columns[i])
		}
		if i < p.numeric {
			if cell.Categorical {
				return nil, fmt.Errorf("%w: %q must be numeric", ErrSchemaMismatch, cell.Column)
			}
			x = append(x, (cell.Number-p.scaler.mean[i])/p.scaler.scale[i])
			continue
		}
		if !cell.Categorical {
			return nil, fmt.Errorf("%w: %q must be categorical", ErrSchemaMismatch, cell.Column)
		}
		k := i - p.numeric
		hot, ok := p.encoder.categories[k][cell.Text]
		if !ok {
			return nil, fmt.Errorf("%w: %q for %q", ErrUnknownCategory, cell.Text, cell.Column)
		}
		for j := 0; j < p.encoder.widths[k]; j++ {
			if j == hot {
				x = append(x, 1)
			} else {
				x = append(x, 0)
			}
		}
	}
	return x, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
