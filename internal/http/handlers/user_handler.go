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

// UserHandler is the admin user-management surface.
type UserHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

func NewUserHandler(userService *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.UserFilter{
		Role:   queryStr(c, "role"),
		Search: queryStr(c, "search"),
		Limit:  limit,
		Offset: offset,
	}
	users, total, err := h.userService.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: users, Total: total,
		Page: page, PageSize: pageSize})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	user, err := h.userService.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateUserRoleRequest
	if !parseBody(c, &req) {
		return nil
	}

	user, err := h.userService.UpdateRole(c.Context(), middleware.GetUserID(c), id, req.Role)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.userService.Delete(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *UserHandler) AuditLogs(c *fiber.Ctx) error {
	_, _, limit, offset := pagination(c)
	filter := repositories.AuditFilter{
		EntityType: queryStr(c, "entity_type"),
		Action:     queryStr(c, "action"),
		Limit:      limit,
		Offset:     offset,
	}
	if v := c.Query("entity_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.EntityID = &id
		}
	}
	if v := c.Query("actor_user_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.ActorUserID = &id
		}
	}

	logs, err := h.userService.AuditLogs(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: logs})
}
