package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPredictionCompleted EventType = "prediction_completed"
	EventModelReloaded       EventType = "model_reloaded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PredictionCompletedPayload payload.
type PredictionCompletedPayload struct {
	PredictionID string  `json:"prediction_id"`
	Churn        int     `json:"churn"`
	Probability  float64 `json:"probability"`
	ModelName    string  `json:"model_name"`
	Source       string  `json:"source"`
}

// ModelReloadedPayload payload.
type ModelReloadedPayload struct {
	PreviousModel string `json:"previous_model"`
	CurrentModel  string `json:"current_model"`
	Operator      string `json:"operator"`
}
