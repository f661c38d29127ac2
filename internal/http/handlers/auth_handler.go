package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	log         *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if !parseBody(c, &req) {
		return nil
	}

	user, token, err := h.authService.Register(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	user, token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, err := h.authService.Refresh(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{"token": token}})
}

// Logout is an acknowledgement only: tokens are stateless, the client
// discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	me, err := h.authService.Me(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: me})
}
