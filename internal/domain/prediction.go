package domain

import "time"

// ChurnFlag is the model's class output.
type ChurnFlag int

const (
	Retained ChurnFlag = 0
	Churn    ChurnFlag = 1
)

// Prediction is the outcome of scoring one customer record. It is never stored.
type Prediction struct {
	ID          string
	Churn       ChurnFlag
	Probability float64
	ModelName   string
	CreatedAt   time.Time
}

// LikelyToChurn reports whether the model predicted the churn class.
func (p Prediction) LikelyToChurn() bool {
	return p.Churn == Churn
}
