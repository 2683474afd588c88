package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/churn-service/internal/api/dto"
	"github.com/spec-kit/churn-service/internal/auth"
	"github.com/spec-kit/churn-service/internal/service"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

// OperatorHandler exposes operator login and model administration.
type OperatorHandler struct {
	auth *service.AuthService
}

// NewOperatorHandler constructs handler.
func NewOperatorHandler(authService *service.AuthService) *OperatorHandler {
	return &OperatorHandler{auth: authService}
}

// Login handles POST /auth/operator/login.
func (h *OperatorHandler) Login(c *fiber.Ctx) error {
	var req dto.OperatorLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	token, exp, err := h.auth.LoginOperator(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: token, ExpiresAt: exp}})
}

// ReloadModel handles POST /admin/model/reload.
func (h *OperatorHandler) ReloadModel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("operator required")
	}
	p, err := h.auth.ReloadModel(c.UserContext(), principal.Subject)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": modelResponse(p)})
}
