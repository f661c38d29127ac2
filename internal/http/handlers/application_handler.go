package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	log                *zap.Logger
}

func NewApplicationHandler(applicationService *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, log: log}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if !parseBody(c, &req) {
		return nil
	}
	campaignID, _ := uuid.Parse(req.CampaignID)

	app, err := h.applicationService.Apply(c.Context(), middleware.GetUserID(c),
		campaignID, req.ProposedPrice, req.Message, req.Portfolio)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: app})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	app, err := h.applicationService.GetByID(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: app})
}

func applicationFilterFromQuery(c *fiber.Ctx) (repositories.ApplicationFilter, int, int) {
	page, pageSize, limit, offset := pagination(c)
	return repositories.ApplicationFilter{
		Status:    queryStr(c, "status"),
		Responded: queryBool(c, "responded"),
		Limit:     limit,
		Offset:    offset,
	}, page, pageSize
}

// ListForCampaign serves a campaign's applications to its brand.
func (h *ApplicationHandler) ListForCampaign(c *fiber.Ctx) error {
	campaignID, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	filter, page, pageSize := applicationFilterFromQuery(c)
	apps, total, err := h.applicationService.ListForCampaign(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), campaignID, filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: apps, Total: total,
		Page: page, PageSize: pageSize})
}

// ListMine serves the acting creator's applications.
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	filter, page, pageSize := applicationFilterFromQuery(c)
	apps, total, err := h.applicationService.ListForCreator(c.Context(),
		middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: apps, Total: total,
		Page: page, PageSize: pageSize})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateApplicationStatusRequest
	if !parseBody(c, &req) {
		return nil
	}

	app, err := h.applicationService.UpdateStatus(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id,
		services.ApplicationUpdate{
			Status:        req.Status,
			ProposedPrice: req.ProposedPrice,
			Message:       req.Message,
			Portfolio:     req.Portfolio,
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: app})
}

func (h *ApplicationHandler) Respond(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.RespondRequest
	if !parseBody(c, &req) {
		return nil
	}

	result, err := h.applicationService.Respond(c.Context(),
		middleware.GetUserID(c), id, req.Response)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: result})
}

func (h *ApplicationHandler) Invite(c *fiber.Ctx) error {
	campaignID, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.InviteRequest
	if !parseBody(c, &req) {
		return nil
	}
	creatorID, _ := uuid.Parse(req.CreatorID)

	app, err := h.applicationService.Invite(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c),
		campaignID, creatorID, req.ProposedPrice, req.Message, req.Portfolio)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: app})
}
