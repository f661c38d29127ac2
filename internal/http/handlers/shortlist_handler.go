package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShortlistHandler struct {
	shortlistService *services.ShortlistService
	log              *zap.Logger
}

func NewShortlistHandler(shortlistService *services.ShortlistService, log *zap.Logger) *ShortlistHandler {
	return &ShortlistHandler{shortlistService: shortlistService, log: log}
}

func (h *ShortlistHandler) Add(c *fiber.Ctx) error {
	var req dto.AddShortlistRequest
	if !parseBody(c, &req) {
		return nil
	}
	creatorID, _ := uuid.Parse(req.CreatorID)

	entry, err := h.shortlistService.Add(c.Context(), middleware.GetUserID(c), creatorID, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: entry})
}

func (h *ShortlistHandler) Remove(c *fiber.Ctx) error {
	creatorID, ok := paramUUID(c, "creatorId")
	if !ok {
		return nil
	}
	if err := h.shortlistService.Remove(c.Context(), middleware.GetUserID(c), creatorID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ShortlistHandler) UpdateNotes(c *fiber.Ctx) error {
	creatorID, ok := paramUUID(c, "creatorId")
	if !ok {
		return nil
	}
	var req dto.UpdateShortlistNotesRequest
	if !parseBody(c, &req) {
		return nil
	}
	if err := h.shortlistService.UpdateNotes(c.Context(), middleware.GetUserID(c), creatorID, req.Notes); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ShortlistHandler) List(c *fiber.Ctx) error {
	entries, err := h.shortlistService.List(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}
