package dto

import (
	"time"

	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/presentation"
)

// PredictionRequest is the JSON form of a customer record. Absent fields take the form defaults.
type PredictionRequest = domain.CustomerRecord

// PredictionResponse is returned by POST /api/v1/predictions.
type PredictionResponse struct {
	ID              string              `json:"id"`
	Churn           int                 `json:"churn"`
	Probability     float64             `json:"probability"`
	ProbabilityText string              `json:"probability_text"`
	Verdict         string              `json:"verdict"`
	Headline        string              `json:"headline"`
	Advice          presentation.Advice `json:"advice"`
	Model           string              `json:"model"`
	CreatedAt       time.Time           `json:"created_at"`
}

// SchemaResponse describes the record fields.
type SchemaResponse struct {
	Columns     []string                  `json:"columns"`
	Numeric     []domain.NumericField     `json:"numeric"`
	Categorical []domain.CategoricalField `json:"categorical"`
}

// ModelResponse describes the loaded model.
type ModelResponse struct {
	Name      string                    `json:"name"`
	Algorithm string                    `json:"algorithm"`
	Columns   []string                  `json:"columns"`
	Details   presentation.ModelDetails `json:"details"`
}
