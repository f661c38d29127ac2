package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BrandHandler struct {
	brandService *services.BrandService
	log          *zap.Logger
}

func NewBrandHandler(brandService *services.BrandService, log *zap.Logger) *BrandHandler {
	return &BrandHandler{brandService: brandService, log: log}
}

func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBrandRequest
	if !parseBody(c, &req) {
		return nil
	}

	brand := &models.Brand{
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		Logo:         req.Logo,
		Website:      req.Website,
		Industry:     req.Industry,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	brand, err := h.brandService.CreateProfile(c.Context(), middleware.GetUserID(c), brand)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *BrandHandler) Get(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	brand, err := h.brandService.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *BrandHandler) Update(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var req dto.UpdateBrandRequest
	if !parseBody(c, &req) {
		return nil
	}

	brand, err := h.brandService.UpdateProfile(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id,
		func(b *models.Brand) {
			if req.CompanyName != nil {
				b.CompanyName = *req.CompanyName
			}
			if req.Description != nil {
				b.Description = req.Description
			}
			if req.Logo != nil {
				b.Logo = req.Logo
			}
			if req.Website != nil {
				b.Website = req.Website
			}
			if req.Industry != nil {
				b.Industry = req.Industry
			}
			if req.ContactEmail != nil {
				b.ContactEmail = req.ContactEmail
			}
			if req.ContactPhone != nil {
				b.ContactPhone = req.ContactPhone
			}
		})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *BrandHandler) List(c *fiber.Ctx) error {
	page, pageSize, limit, offset := pagination(c)
	filter := repositories.BrandFilter{
		Search:   queryStr(c, "search"),
		Industry: queryStr(c, "industry"),
		Limit:    limit,
		Offset:   offset,
	}
	brands, total, err := h.brandService.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list brands failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(dto.PagedResponse{OK: true, Data: brands, Total: total,
		Page: page, PageSize: pageSize})
}

func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.brandService.DeleteProfile(c.Context(),
		middleware.GetUserID(c), middleware.GetRole(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// Stats serves the acting brand's own aggregates.
func (h *BrandHandler) Stats(c *fiber.Ctx) error {
	brand, err := h.brandService.GetByUserID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	stats, err := h.brandService.Stats(c.Context(), brand.ID)
	if err != nil {
		h.log.Error("brand stats failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: stats})
}

func (h *BrandHandler) Dashboard(c *fiber.Ctx) error {
	brand, err := h.brandService.GetByUserID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	dashboard, err := h.brandService.Dashboard(c.Context(), brand.ID)
	if err != nil {
		h.log.Error("brand dashboard failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dashboard})
}
