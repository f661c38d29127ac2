package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedCategories = []MetaCategory{
	{ID: "fashion", Label: "Fashion & Style"},
	{ID: "beauty", Label: "Beauty & Makeup"},
	{ID: "fitness", Label: "Health & Fitness"},
	{ID: "food", Label: "Food & Cooking"},
	{ID: "travel", Label: "Travel"},
	{ID: "tech", Label: "Technology"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "lifestyle", Label: "Lifestyle"},
	{ID: "parenting", Label: "Parenting & Family"},
	{ID: "education", Label: "Education"},
	{ID: "finance", Label: "Finance"},
	{ID: "music", Label: "Music"},
	{ID: "art", Label: "Art & Design"},
	{ID: "sports", Label: "Sports"},
	{ID: "comedy", Label: "Comedy & Entertainment"},
	{ID: "pets", Label: "Pets & Animals"},
	{ID: "diy", Label: "DIY & Crafts"},
	{ID: "automotive", Label: "Automotive"},
	{ID: "business", Label: "Business"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedCategories})
}

func (h *MetaHandler) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: []string{
		models.PlatformInstagram, models.PlatformTiktok, models.PlatformYoutube,
	}})
}

func (h *MetaHandler) GetCampaignStatuses(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllCampaignStatuses})
}

func (h *MetaHandler) GetApplicationStatuses(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllApplicationStatuses})
}
