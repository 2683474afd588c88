package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/churn-service/internal/classifier"
	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/events"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

// Model is the pair of operations the service needs from a classifier.
type Model interface {
	Name() string
	Predict(row domain.Row) (int, error)
	PredictProba(row domain.Row) ([2]float64, error)
}

// Prediction sources recorded on emitted events.
const (
	SourceForm = "form"
	SourceAPI  = "api"
)

// PredictionService scores customer records against the loaded model.
type PredictionService struct {
	model      func() Model
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewPredictionService builds the service around the process-wide model handle.
func NewPredictionService(handle *classifier.Handle, dispatcher events.Dispatcher, logger *zap.Logger) *PredictionService {
	return newPredictionService(func() Model {
		if p := handle.Current(); p != nil {
			return p
		}
		return nil
	}, dispatcher, logger)
}

func newPredictionService(model func() Model, dispatcher events.Dispatcher, logger *zap.Logger) *PredictionService {
	return &PredictionService{
		model:      model,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Predict runs class prediction and positive-class probability on one record.
// There is no retry and no caching.
func (s *PredictionService) Predict(ctx context.Context, record domain.CustomerRecord, source string) (*domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model := s.model()
	if model == nil {
		return nil, apperrors.NewServiceUnavailable("model not loaded", nil)
	}

	row := record.Row()
	flag, err := model.Predict(row)
	if err != nil {
		return nil, s.scoringError(err, model)
	}
	proba, err := model.PredictProba(row)
	if err != nil {
		return nil, s.scoringError(err, model)
	}

	if flag != 0 && flag != 1 {
		return nil, apperrors.NewInternalError(fmt.Errorf("model returned class %d", flag))
	}
	p := proba[1]
	if p < 0 || p > 1 {
		return nil, apperrors.NewInternalError(fmt.Errorf("model returned probability %v", p))
	}

	prediction := &domain.Prediction{
		ID:          uuid.NewString(),
		Churn:       domain.ChurnFlag(flag),
		Probability: p,
		ModelName:   model.Name(),
		CreatedAt:   s.now().UTC(),
	}
	s.publish(ctx, prediction, source)
	return prediction, nil
}

func (s *PredictionService) scoringError(err error, model Model) error {
	s.logger.Error("prediction failed", zap.String("model", model.Name()), zap.Error(err))
	if errors.Is(err, classifier.ErrSchemaMismatch) || errors.Is(err, classifier.ErrUnknownCategory) {
		return apperrors.NewSchemaMismatch(err)
	}
	return apperrors.NewInternalError(err)
}

func (s *PredictionService) publish(ctx context.Context, p *domain.Prediction, source string) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPredictionCompleted,
		Timestamp: p.CreatedAt,
		Payload: events.PredictionCompletedPayload{
			PredictionID: p.ID,
			Churn:        int(p.Churn),
			Probability:  p.Probability,
			ModelName:    p.ModelName,
			Source:       source,
		},
	})
	if err != nil {
		s.logger.Warn("prediction event handlers failed", zap.String("prediction_id", p.ID), zap.Error(err))
	}
}
