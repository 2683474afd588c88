package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/churn-service/internal/events"
	"github.com/spec-kit/churn-service/internal/observability"
)

// PredictionAuditor logs prediction and model events and feeds the verdict counters.
// Nothing is persisted.
type PredictionAuditor struct {
	logger  *zap.Logger
	metrics *observability.Metrics
}

// StartPredictionAuditor registers the auditor's handlers on the dispatcher.
func StartPredictionAuditor(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *PredictionAuditor {
	a := &PredictionAuditor{logger: logger, metrics: metrics}
	if dispatcher == nil {
		return a
	}
	dispatcher.Subscribe(events.EventPredictionCompleted, a.handlePredictionCompleted)
	dispatcher.Subscribe(events.EventModelReloaded, a.handleModelReloaded)
	return a
}

func (a *PredictionAuditor) handlePredictionCompleted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PredictionCompletedPayload)
	if !ok {
		a.logger.Warn("unexpected prediction payload", zap.String("event_id", event.ID))
		return nil
	}
	verdict := "retained"
	if payload.Churn == 1 {
		verdict = "churn"
	}
	a.metrics.RecordPrediction(verdict)
	a.logger.Info("PredictionCompleted",
		zap.String("prediction_id", payload.PredictionID),
		zap.String("verdict", verdict),
		zap.Float64("probability", payload.Probability),
		zap.String("model", payload.ModelName),
		zap.String("source", payload.Source),
	)
	return nil
}

func (a *PredictionAuditor) handleModelReloaded(_ context.Context, event events.Event) error {
	a.logger.Info("ModelReloaded", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}
