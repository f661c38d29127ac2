package handlers

import (
	"time"

	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ToolkitHandler serves the creator CRM surface: deals, invoices, ideas,
// calendar, analytics, media kit.
type ToolkitHandler struct {
	toolkitService *services.ToolkitService
	log            *zap.Logger
}

func NewToolkitHandler(toolkitService *services.ToolkitService, log *zap.Logger) *ToolkitHandler {
	return &ToolkitHandler{toolkitService: toolkitService, log: log}
}

// Deals

func (h *ToolkitHandler) CreateDeal(c *fiber.Ctx) error {
	var req dto.CreateDealRequest
	if !parseBody(c, &req) {
		return nil
	}

	deal := &models.Deal{
		Title:  req.Title,
		Brand:  req.Brand,
		Value:  req.Value,
		Status: req.Status,
		Notes:  req.Notes,
	}
	deal, err := h.toolkitService.CreateDeal(c.Context(), middleware.GetUserID(c), deal)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: deal})
}

func (h *ToolkitHandler) UpdateDeal(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateDealRequest
	if !parseBody(c, &req) {
		return nil
	}

	deal, err := h.toolkitService.UpdateDeal(c.Context(), middleware.GetUserID(c), id,
		func(d *models.Deal) {
			if req.Title != nil {
				d.Title = *req.Title
			}
			if req.Brand != nil {
				d.Brand = req.Brand
			}
			if req.Value != nil {
				d.Value = req.Value
			}
			if req.Status != nil {
				d.Status = *req.Status
			}
			if req.Notes != nil {
				d.Notes = req.Notes
			}
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: deal})
}

func (h *ToolkitHandler) DeleteDeal(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.toolkitService.DeleteDeal(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ToolkitHandler) ListDeals(c *fiber.Ctx) error {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.DealFilter{
		Status: queryStr(c, "status"),
		Search: queryStr(c, "search"),
		Limit:  limit,
		Offset: offset,
	}
	deals, total, err := h.toolkitService.ListDeals(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: deals, Total: total,
		Page: page, PageSize: pageSize})
}

// Invoices

func (h *ToolkitHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if !parseBody(c, &req) {
		return nil
	}

	inv := &models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		DueDate:       req.DueDate,
		Status:        req.Status,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientCompany: req.ClientCompany,
		ClientAddress: req.ClientAddress,
		ClientTaxID:   req.ClientTaxID,
		PaymentTerms:  req.PaymentTerms,
		Currency:      req.Currency,
		Tax:           req.Tax,
		Notes:         req.Notes,
	}
	if req.IssueDate != nil {
		inv.IssueDate = *req.IssueDate
	}
	if req.DealID != nil {
		if dealID, err := uuid.Parse(*req.DealID); err == nil {
			inv.DealID = &dealID
		}
	}

	items := make([]models.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	saved, err := h.toolkitService.CreateInvoice(c.Context(), middleware.GetUserID(c), inv, items)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: saved})
}

func (h *ToolkitHandler) GetInvoice(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	inv, err := h.toolkitService.GetInvoice(c.Context(), middleware.GetUserID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: inv})
}

func (h *ToolkitHandler) UpdateInvoiceStatus(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateInvoiceStatusRequest
	if !parseBody(c, &req) {
		return nil
	}
	inv, err := h.toolkitService.UpdateInvoiceStatus(c.Context(), middleware.GetUserID(c), id, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: inv})
}

func (h *ToolkitHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.toolkitService.DeleteInvoice(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ToolkitHandler) ListInvoices(c *fiber.Ctx) error {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.InvoiceFilter{
		Status: queryStr(c, "status"),
		Limit:  limit,
		Offset: offset,
	}
	invoices, total, err := h.toolkitService.ListInvoices(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: invoices, Total: total,
		Page: page, PageSize: pageSize})
}

// Ideas

func (h *ToolkitHandler) CreateIdea(c *fiber.Ctx) error {
	var req dto.CreateIdeaRequest
	if !parseBody(c, &req) {
		return nil
	}

	idea := &models.Idea{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Status:      req.Status,
		Priority:    req.Priority,
		Attachments: req.Attachments,
	}
	idea, err := h.toolkitService.CreateIdea(c.Context(), middleware.GetUserID(c), idea)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: idea})
}

func (h *ToolkitHandler) UpdateIdea(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateIdeaRequest
	if !parseBody(c, &req) {
		return nil
	}

	idea, err := h.toolkitService.UpdateIdea(c.Context(), middleware.GetUserID(c), id,
		func(i *models.Idea) {
			if req.Title != nil {
				i.Title = *req.Title
			}
			if req.Description != nil {
				i.Description = req.Description
			}
			if req.Tags != nil {
				i.Tags = req.Tags
			}
			if req.Status != nil {
				i.Status = *req.Status
			}
			if req.Priority != nil {
				i.Priority = *req.Priority
			}
			if req.Attachments != nil {
				i.Attachments = req.Attachments
			}
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: idea})
}

func (h *ToolkitHandler) DeleteIdea(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.toolkitService.DeleteIdea(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ToolkitHandler) ListIdeas(c *fiber.Ctx) error {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.IdeaFilter{
		Status:   queryStr(c, "status"),
		Priority: queryStr(c, "priority"),
		Tag:      queryStr(c, "tag"),
		Limit:    limit,
		Offset:   offset,
	}
	ideas, total, err := h.toolkitService.ListIdeas(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: ideas, Total: total,
		Page: page, PageSize: pageSize})
}

// Calendar events

func (h *ToolkitHandler) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if !parseBody(c, &req) {
		return nil
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Location:    req.Location,
	}
	event, err := h.toolkitService.CreateEvent(c.Context(), middleware.GetUserID(c), event)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: event})
}

func (h *ToolkitHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateEventRequest
	if !parseBody(c, &req) {
		return nil
	}

	event, err := h.toolkitService.UpdateEvent(c.Context(), middleware.GetUserID(c), id,
		func(e *models.Event) {
			if req.Title != nil {
				e.Title = *req.Title
			}
			if req.Description != nil {
				e.Description = req.Description
			}
			if req.StartAt != nil {
				e.StartAt = *req.StartAt
			}
			if req.EndAt != nil {
				e.EndAt = req.EndAt
			}
			if req.Location != nil {
				e.Location = req.Location
			}
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: event})
}

func (h *ToolkitHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.toolkitService.DeleteEvent(c.Context(), middleware.GetUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *ToolkitHandler) ListEvents(c *fiber.Ctx) error {
	_, _, limit, offset := pagination(c)
	filter := repositories.EventFilter{
		Limit:  limit,
		Offset: offset,
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.To = &t
		}
	}

	events, err := h.toolkitService.ListEvents(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: events})
}

// Analytics

func (h *ToolkitHandler) RecordSnapshot(c *fiber.Ctx) error {
	var req dto.RecordSnapshotRequest
	if !parseBody(c, &req) {
		return nil
	}

	snap := &models.AnalyticsSnapshot{
		Platform:       req.Platform,
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		Reach:          req.Reach,
		Impressions:    req.Impressions,
	}
	if req.Date != nil {
		snap.Date = *req.Date
	}

	snap, err := h.toolkitService.RecordSnapshot(c.Context(), middleware.GetUserID(c), snap)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: snap})
}

func (h *ToolkitHandler) ListSnapshots(c *fiber.Ctx) error {
	filter := repositories.AnalyticsFilter{
		Platform: queryStr(c, "platform"),
		Limit:    queryInt(c, "limit", 90),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.To = &t
		}
	}

	snapshots, err := h.toolkitService.ListSnapshots(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snapshots})
}

// Media kit

func (h *ToolkitHandler) SaveMediaKit(c *fiber.Ctx) error {
	var req dto.SaveMediaKitRequest
	if !parseBody(c, &req) {
		return nil
	}
	kit, err := h.toolkitService.SaveMediaKit(c.Context(), middleware.GetUserID(c), req.Data)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: kit})
}

// GetMediaKit is public by creator id.
func (h *ToolkitHandler) GetMediaKit(c *fiber.Ctx) error {
	creatorID, ok := paramUUID(c, "creatorId")
	if !ok {
		return nil
	}
	kit, err := h.toolkitService.GetMediaKit(c.Context(), creatorID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: kit})
}
