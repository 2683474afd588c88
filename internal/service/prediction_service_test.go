package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/churn-service/internal/classifier"
	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/events"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

const testArtifactPath = "../../models/churn_model.json"

type fakeModel struct {
	flag     int
	proba    [2]float64
	err      error
	probaErr error
	rows     []domain.Row
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) Predict(row domain.Row) (int, error) {
	f.rows = append(f.rows, row)
	return f.flag, f.err
}

func (f *fakeModel) PredictProba(row domain.Row) ([2]float64, error) {
	return f.proba, f.probaErr
}

func newTestService(m Model, d events.Dispatcher) *PredictionService {
	return newPredictionService(func() Model { return m }, d, zap.NewNop())
}

func TestPredictWithBundledModel(t *testing.T) {
	handle, err := classifier.Open(testArtifactPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventPredictionCompleted, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	svc := NewPredictionService(handle, dispatcher, zap.NewNop())
	pred, err := svc.Predict(context.Background(), domain.DefaultCustomerRecord(), SourceForm)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if pred.Churn != domain.Retained || pred.Probability > 1e-5 {
		t.Errorf("prediction = %+v", pred)
	}
	if pred.ID == "" || pred.ModelName != "churn-logreg-v1" {
		t.Errorf("prediction metadata = %+v", pred)
	}
	if len(published) != 1 {
		t.Fatalf("published %d events", len(published))
	}
	payload := published[0].Payload.(events.PredictionCompletedPayload)
	if payload.PredictionID != pred.ID || payload.Source != SourceForm {
		t.Errorf("payload = %+v", payload)
	}
}

func TestPredictPassesOrderedRow(t *testing.T) {
	m := &fakeModel{flag: 1, proba: [2]float64{0.2, 0.8}}
	svc := newTestService(m, nil)

	pred, err := svc.Predict(context.Background(), domain.DefaultCustomerRecord(), SourceAPI)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.Churn != domain.Churn || pred.Probability != 0.8 {
		t.Errorf("prediction = %+v", pred)
	}
	got := m.rows[0].ColumnNames()
	for i, c := range domain.Columns {
		if got[i] != c {
			t.Fatalf("row columns = %v", got)
		}
	}
}

func TestPredictErrors(t *testing.T) {
	tests := []struct {
		name       string
		model      Model
		wantCode   string
		wantStatus int
	}{
		{"no model", nil, "DEPENDENCY_UNAVAILABLE", http.StatusServiceUnavailable},
		{"schema mismatch", &fakeModel{err: classifier.ErrSchemaMismatch}, "SCHEMA_MISMATCH", http.StatusInternalServerError},
		{"unknown category", &fakeModel{probaErr: classifier.ErrUnknownCategory}, "SCHEMA_MISMATCH", http.StatusInternalServerError},
		{"other failure", &fakeModel{err: errors.New("boom")}, "INTERNAL_ERROR", http.StatusInternalServerError},
		{"bad class", &fakeModel{flag: 2, proba: [2]float64{0.5, 0.5}}, "INTERNAL_ERROR", http.StatusInternalServerError},
		{"bad probability", &fakeModel{flag: 1, proba: [2]float64{-0.5, 1.5}}, "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.model, nil)
			_, err := svc.Predict(context.Background(), domain.DefaultCustomerRecord(), SourceAPI)
			de := apperrors.ToDomainError(err)
			if de == nil || de.Code != tt.wantCode || de.HTTPStatus != tt.wantStatus {
				t.Errorf("err = %v (%+v)", err, de)
			}
		})
	}
}

func TestPredictHonoursCancelledContext(t *testing.T) {
	svc := newTestService(&fakeModel{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Predict(ctx, domain.DefaultCustomerRecord(), SourceAPI); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
