package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/importer"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreatorHandler struct {
	creatorService *services.CreatorService
	importer       *importer.Importer
	log            *zap.Logger
}

func NewCreatorHandler(creatorService *services.CreatorService, imp *importer.Importer, log *zap.Logger) *CreatorHandler {
	return &CreatorHandler{creatorService: creatorService, importer: imp, log: log}
}

func (h *CreatorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCreatorRequest
	if !parseBody(c, &req) {
		return nil
	}

	creator := &models.Creator{
		Username:           req.Username,
		DisplayName:        req.DisplayName,
		Bio:                req.Bio,
		Avatar:             req.Avatar,
		InstagramHandle:    req.InstagramHandle,
		InstagramFollowers: req.InstagramFollowers,
		TiktokHandle:       req.TiktokHandle,
		TiktokFollowers:    req.TiktokFollowers,
		YoutubeHandle:      req.YoutubeHandle,
		YoutubeFollowers:   req.YoutubeFollowers,
		AvgEngagementRate:  req.AvgEngagementRate,
		BasePrice:          req.BasePrice,
		Age:                req.Age,
		Gender:             req.Gender,
		Location:           req.Location,
		Categories:         req.Categories,
	}

	creator, err := h.creatorService.CreateProfile(c.Context(), middleware.GetUserID(c), creator)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: creator})
}

func (h *CreatorHandler) Get(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	creator, err := h.creatorService.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: creator})
}

func (h *CreatorHandler) GetByUsername(c *fiber.Ctx) error {
	creator, err := h.creatorService.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: creator})
}

func (h *CreatorHandler) Update(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateCreatorRequest
	if !parseBody(c, &req) {
		return nil
	}

	creator, err := h.creatorService.UpdateProfile(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id,
		func(cr *models.Creator) {
			if req.Username != nil {
				cr.Username = *req.Username
			}
			if req.DisplayName != nil {
				cr.DisplayName = *req.DisplayName
			}
			if req.Bio != nil {
				cr.Bio = req.Bio
			}
			if req.Avatar != nil {
				cr.Avatar = req.Avatar
			}
			if req.InstagramHandle != nil {
				cr.InstagramHandle = req.InstagramHandle
			}
			if req.InstagramFollowers != nil {
				cr.InstagramFollowers = req.InstagramFollowers
			}
			if req.TiktokHandle != nil {
				cr.TiktokHandle = req.TiktokHandle
			}
			if req.TiktokFollowers != nil {
				cr.TiktokFollowers = req.TiktokFollowers
			}
			if req.YoutubeHandle != nil {
				cr.YoutubeHandle = req.YoutubeHandle
			}
			if req.YoutubeFollowers != nil {
				cr.YoutubeFollowers = req.YoutubeFollowers
			}
			if req.AvgEngagementRate != nil {
				cr.AvgEngagementRate = req.AvgEngagementRate
			}
			if req.BasePrice != nil {
				cr.BasePrice = req.BasePrice
			}
			if req.Age != nil {
				cr.Age = req.Age
			}
			if req.Gender != nil {
				cr.Gender = req.Gender
			}
			if req.Location != nil {
				cr.Location = req.Location
			}
			if req.Categories != nil {
				cr.Categories = req.Categories
			}
			if req.IsActive != nil {
				cr.IsActive = *req.IsActive
			}
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: creator})
}

func (h *CreatorHandler) List(c *fiber.Ctx) error {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.CreatorFilter{
		Category:     queryStr(c, "category"),
		Location:     queryStr(c, "location"),
		Gender:       queryStr(c, "gender"),
		MinFollowers: queryIntPtr(c, "min_followers"),
		MaxFollowers: queryIntPtr(c, "max_followers"),
		Verified:     queryBool(c, "verified"),
		Active:       queryBool(c, "active"),
		Search:       queryStr(c, "search"),
		Sort:         c.Query("sort"),
		Limit:        limit,
		Offset:       offset,
	}

	creators, total, err := h.creatorService.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list creators failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: creators, Total: total,
		Page: page, PageSize: pageSize})
}

func (h *CreatorHandler) Stats(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	stats, err := h.creatorService.Stats(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: stats})
}

func (h *CreatorHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.creatorService.DeleteProfile(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *CreatorHandler) SetVerified(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.SetVerifiedRequest
	if !parseBody(c, &req) {
		return nil
	}

	creator, err := h.creatorService.SetVerified(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id, req.Verified)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: creator})
}

func (h *CreatorHandler) Import(c *fiber.Ctx) error {
	var req dto.ImportCreatorsRequest
	if !parseBody(c, &req) {
		return nil
	}

	result, err := h.importer.Import(c.Context(), req.Creators)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: result})
}
