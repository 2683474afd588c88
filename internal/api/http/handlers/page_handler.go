package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/churn-service/internal/api/web"
	"github.com/spec-kit/churn-service/internal/classifier"
	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/presentation"
	"github.com/spec-kit/churn-service/internal/service"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

// PageHandler serves the HTML form and its result.
type PageHandler struct {
	renderer  *web.Renderer
	service   *service.PredictionService
	validator *service.RecordValidator
	model     *classifier.Handle
	logger    *zap.Logger
}

// NewPageHandler constructs handler.
func NewPageHandler(renderer *web.Renderer, predictions *service.PredictionService, validator *service.RecordValidator, model *classifier.Handle, logger *zap.Logger) *PageHandler {
	return &PageHandler{renderer: renderer, service: predictions, validator: validator, model: model, logger: logger}
}

// Index GET / renders the form with default values.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, h.page(domain.DefaultCustomerRecord()))
}

// Predict POST /predict runs one prediction for the submitted form.
func (h *PageHandler) Predict(c *fiber.Ctx) error {
	record := domain.DefaultCustomerRecord()
	if err := c.BodyParser(&record); err != nil {
		page := h.page(domain.DefaultCustomerRecord())
		page.Error = "The form could not be read: every numeric field needs a number."
		return h.render(c, fiber.StatusBadRequest, page)
	}
	record = record.Clamp()

	page := h.page(record)
	if err := h.validator.Validate(record); err != nil {
		de := apperrors.ToDomainError(err)
		page.Error = de.Message
		page.ErrorDetails = de.Details
		return h.render(c, de.HTTPStatus, page)
	}

	pred, err := h.service.Predict(c.UserContext(), record, service.SourceForm)
	if err != nil {
		de := apperrors.ToDomainError(err)
		page.Error = de.Message
		return h.render(c, de.HTTPStatus, page)
	}

	res := presentation.Present(pred.Churn, pred.Probability)
	page.Result = &res
	page.PredictionID = pred.ID
	return h.render(c, fiber.StatusOK, page)
}

func (h *PageHandler) page(record domain.CustomerRecord) web.Page {
	name, algorithm := "", ""
	if p := h.model.Current(); p != nil {
		name, algorithm = p.Name(), p.Algorithm()
	}
	return web.NewPage(record, name, presentation.Details(algorithm))
}

func (h *PageHandler) render(c *fiber.Ctx, status int, page web.Page) error {
	body, err := h.renderer.RenderBytes(page)
	if err != nil {
		h.logger.Error("render page", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(body)
}
