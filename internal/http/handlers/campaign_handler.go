package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if !parseBody(c, &req) {
		return nil
	}

	campaign := &models.Campaign{
		Title:               req.Title,
		Description:         req.Description,
		Budget:              req.Budget,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Deliverables:        req.Deliverables,
		Requirements:        req.Requirements,
		TargetAudience:      req.TargetAudience,
		PreferredCategories: req.PreferredCategories,
		MinFollowers:        req.MinFollowers,
		MaxFollowers:        req.MaxFollowers,
		Status:              req.Status,
	}
	campaign, err := h.campaignService.Create(c.Context(), middleware.GetUserID(c), campaign)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	campaign, err := h.campaignService.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func campaignFilterFromQuery(c *fiber.Ctx) (repositories.CampaignFilter, int, int) {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.CampaignFilter{
		Status:    queryStr(c, "status"),
		Category:  queryStr(c, "category"),
		MinBudget: queryFloat(c, "min_budget"),
		MaxBudget: queryFloat(c, "max_budget"),
		Search:    queryStr(c, "search"),
		Limit:     limit,
		Offset:    offset,
	}
	if brandID, err := uuid.Parse(c.Query("brand_id")); err == nil {
		filter.BrandID = &brandID
	}
	return filter, page, pageSize
}

// List is the public browse endpoint across all campaign statuses;
// status, category, budget and brand filters narrow it.
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	filter, page, pageSize := campaignFilterFromQuery(c)

	campaigns, total, err := h.campaignService.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: campaigns, Total: total,
		Page: page, PageSize: pageSize})
}

// ListMine scopes to the acting brand's campaigns in any status.
func (h *CampaignHandler) ListMine(c *fiber.Ctx) error {
	filter, page, pageSize := campaignFilterFromQuery(c)
	campaigns, total, err := h.campaignService.ListForBrand(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: campaigns, Total: total,
		Page: page, PageSize: pageSize})
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateCampaignRequest
	if !parseBody(c, &req) {
		return nil
	}

	campaign, err := h.campaignService.Update(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id,
		func(cp *models.Campaign) {
			if req.Title != nil {
				cp.Title = *req.Title
			}
			if req.Description != nil {
				cp.Description = *req.Description
			}
			if req.Budget != nil {
				cp.Budget = *req.Budget
			}
			if req.StartDate != nil {
				cp.StartDate = *req.StartDate
			}
			if req.EndDate != nil {
				cp.EndDate = *req.EndDate
			}
			if req.Deliverables != nil {
				cp.Deliverables = req.Deliverables
			}
			if req.Requirements != nil {
				cp.Requirements = req.Requirements
			}
			if req.TargetAudience != nil {
				cp.TargetAudience = req.TargetAudience
			}
			if req.PreferredCategories != nil {
				cp.PreferredCategories = req.PreferredCategories
			}
			if req.MinFollowers != nil {
				cp.MinFollowers = req.MinFollowers
			}
			if req.MaxFollowers != nil {
				cp.MaxFollowers = req.MaxFollowers
			}
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateCampaignStatusRequest
	if !parseBody(c, &req) {
		return nil
	}

	campaign, err := h.campaignService.UpdateStatus(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.campaignService.Delete(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *CampaignHandler) RecommendCreators(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	ranked, err := h.campaignService.RecommendCreators(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id, queryInt(c, "limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: ranked})
}

// RecommendByCategory ranks creators by reach without a campaign.
func (h *CampaignHandler) RecommendByCategory(c *fiber.Ctx) error {
	ranked, err := h.campaignService.RecommendByCategory(c.Context(),
		c.Query("category"), queryInt(c, "limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: ranked})
}
