package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/churn-service/internal/api/dto"
	"github.com/spec-kit/churn-service/internal/classifier"
	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/presentation"
	"github.com/spec-kit/churn-service/internal/service"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

// PredictionsHandler exposes the JSON prediction API.
type PredictionsHandler struct {
	service   *service.PredictionService
	validator *service.RecordValidator
	model     *classifier.Handle
}

// NewPredictionsHandler constructs handler.
func NewPredictionsHandler(predictions *service.PredictionService, validator *service.RecordValidator, model *classifier.Handle) *PredictionsHandler {
	return &PredictionsHandler{service: predictions, validator: validator, model: model}
}

// Create POST /api/v1/predictions.
func (h *PredictionsHandler) Create(c *fiber.Ctx) error {
	req := domain.DefaultCustomerRecord()
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	pred, err := h.service.Predict(c.UserContext(), req, service.SourceAPI)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": predictionResponse(pred)})
}

// Schema GET /api/v1/schema.
func (h *PredictionsHandler) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.SchemaResponse{
		Columns:     domain.Columns,
		Numeric:     domain.NumericFields,
		Categorical: domain.CategoricalFields,
	}})
}

// Model GET /api/v1/model.
func (h *PredictionsHandler) Model(c *fiber.Ctx) error {
	p := h.model.Current()
	if p == nil {
		return apperrors.NewServiceUnavailable("model not loaded", nil)
	}
	return c.JSON(fiber.Map{"data": modelResponse(p)})
}

func predictionResponse(p *domain.Prediction) dto.PredictionResponse {
	res := presentation.Present(p.Churn, p.Probability)
	verdict := "retained"
	if p.LikelyToChurn() {
		verdict = "churn"
	}
	return dto.PredictionResponse{
		ID:              p.ID,
		Churn:           int(p.Churn),
		Probability:     p.Probability,
		ProbabilityText: res.ProbabilityText,
		Verdict:         verdict,
		Headline:        res.Headline,
		Advice:          res.Advice,
		Model:           p.ModelName,
		CreatedAt:       p.CreatedAt,
	}
}

func modelResponse(p *classifier.Pipeline) dto.ModelResponse {
	return dto.ModelResponse{
		Name:      p.Name(),
		Algorithm: p.Algorithm(),
		Columns:   p.Columns(),
		Details:   presentation.Details(p.Algorithm()),
	}
}
