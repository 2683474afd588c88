package classifier

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/spec-kit/churn-service/internal/domain"
)

// Artifact is the on-disk form of a fitted scaler + one-hot encoder +
// logistic regression pipeline. The training job owns the format.
type Artifact struct {
	Name         string      `json:"name"`
	Algorithm    string      `json:"algorithm"`
	TrainedAt    time.Time   `json:"trained_at"`
	Classes      []int       `json:"classes"`
	Numeric      ScalerSpec  `json:"numeric"`
	Categorical  EncoderSpec `json:"categorical"`
	Coefficients []float64   `json:"coefficients"`
	Intercept    float64     `json:"intercept"`
}

// ScalerSpec holds the fitted StandardScaler parameters per numeric column.
type ScalerSpec struct {
	Columns []string  `json:"columns"`
	Mean    []float64 `json:"mean"`
	Scale   []float64 `json:"scale"`
}

// EncoderSpec holds the fitted OneHotEncoder categories per categorical column.
type EncoderSpec struct {
	Columns    []string   `json:"columns"`
	Categories [][]string `json:"categories"`
}

// Load reads and validates the artifact at path.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	var art Artifact
	if err := sonic.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("classifier: decode %s: %w", path, err)
	}
	p, err := NewPipeline(art)
	if err != nil {
		return nil, fmt.Errorf("classifier: %s: %w", path, err)
	}
	return p, nil
}

func (a Artifact) validate() error {
	num, cat := a.Numeric, a.Categorical
	if len(num.Mean) != len(num.Columns) || len(num.Scale) != len(num.Columns) {
		return fmt.Errorf("scaler has %d columns, %d means, %d scales", len(num.Columns), len(num.Mean), len(num.Scale))
	}
	for i, s := range num.Scale {
		if s == 0 {
			return fmt.Errorf("scaler: zero scale for %q", num.Columns[i])
		}
	}
	if len(cat.Categories) != len(cat.Columns) {
		return fmt.Errorf("encoder has %d columns, %d category lists", len(cat.Columns), len(cat.Categories))
	}

	columns := append(append([]string{}, num.Columns...), cat.Columns...)
	if !equalColumns(columns, domain.Columns) {
		return fmt.Errorf("%w: artifact expects %v, service builds %v", ErrSchemaMismatch, columns, domain.Columns)
	}

	width := len(num.Columns)
	for i, cats := range cat.Categories {
		if len(cats) == 0 {
			return fmt.Errorf("encoder: no categories for %q", cat.Columns[i])
		}
		width += len(cats)
	}
	if len(a.Coefficients) != width {
		return fmt.Errorf("model has %d coefficients, encoded width is %d", len(a.Coefficients), width)
	}
	if len(a.Classes) != 0 && (len(a.Classes) != 2 || a.Classes[0] != 0 || a.Classes[1] != 1) {
		return errors.New("model must be binary with classes [0, 1]")
	}
	return nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
