package http

import (
	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/http/handlers"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/rbac"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Cfg        *config.Config
	Log        *zap.Logger
	Redis      *redis.Client
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Creators   *handlers.CreatorHandler
	Brands     *handlers.BrandHandler
	Campaigns  *handlers.CampaignHandler
	Apps       *handlers.ApplicationHandler
	Shortlists *handlers.ShortlistHandler
	Toolkit    *handlers.ToolkitHandler
	Meta       *handlers.MetaHandler
	WSHub      *handlers.WSHub
}

func SetupRouter(app *fiber.App, d RouterDeps) {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(d.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(d.Redis, d.Cfg.RateLimitRequests, d.Cfg.RateLimitWindow))

	authMW := middleware.AuthMiddleware(d.Cfg, d.Log)

	// Public routes. The "mine" route is registered before ":id" so the
	// wildcard does not swallow it.
	api.Post("/auth/register", d.Auth.Register)
	api.Post("/auth/login", d.Auth.Login)

	api.Get("/campaigns", d.Campaigns.List)
	api.Get("/campaigns/mine", authMW, middleware.RequireRole(models.RoleBrand), d.Campaigns.ListMine)
	api.Get("/campaigns/recommend-creators", authMW, middleware.RequirePermission(rbac.PermManageCampaign), d.Campaigns.RecommendByCategory)
	api.Get("/campaigns/:id", d.Campaigns.Get)
	api.Get("/creators", d.Creators.List)
	api.Get("/creators/username/:username", d.Creators.GetByUsername)
	api.Get("/creators/:id", d.Creators.Get)
	api.Get("/creators/:id/stats", d.Creators.Stats)
	api.Get("/brands", d.Brands.List)
	api.Get("/brands/stats", authMW, middleware.RequireRole(models.RoleBrand), d.Brands.Stats)
	api.Get("/brands/dashboard", authMW, middleware.RequireRole(models.RoleBrand), d.Brands.Dashboard)
	api.Get("/brands/:id", d.Brands.Get)
	api.Get("/media-kits/:creatorId", d.Toolkit.GetMediaKit)

	api.Get("/meta/categories", d.Meta.GetCategories)
	api.Get("/meta/platforms", d.Meta.GetPlatforms)
	api.Get("/meta/campaign-statuses", d.Meta.GetCampaignStatuses)
	api.Get("/meta/application-statuses", d.Meta.GetApplicationStatuses)

	// Authenticated routes.
	protected := api.Group("", authMW)

	protected.Post("/auth/refresh", d.Auth.Refresh)
	protected.Post("/auth/logout", d.Auth.Logout)
	protected.Get("/me", d.Auth.Me)

	protected.Post("/creators", middleware.RequireRole(models.RoleCreator), d.Creators.Create)
	protected.Put("/creators/:id", d.Creators.Update)
	protected.Delete("/creators/:id", d.Creators.Delete)
	protected.Patch("/creators/:id/verify", middleware.RequireRole(models.RoleAdmin), d.Creators.SetVerified)
	protected.Post("/creators/import", middleware.RequirePermission(rbac.PermImportCreators), d.Creators.Import)

	protected.Post("/brands", middleware.RequireRole(models.RoleBrand), d.Brands.Create)
	protected.Put("/brands/:id", d.Brands.Update)
	protected.Delete("/brands/:id", d.Brands.Delete)

	protected.Post("/campaigns", middleware.RequirePermission(rbac.PermManageCampaign), d.Campaigns.Create)
	protected.Put("/campaigns/:id", middleware.RequirePermission(rbac.PermManageCampaign), d.Campaigns.Update)
	protected.Patch("/campaigns/:id/status", middleware.RequirePermission(rbac.PermManageCampaign), d.Campaigns.UpdateStatus)
	protected.Delete("/campaigns/:id", middleware.RequirePermission(rbac.PermManageCampaign), d.Campaigns.Delete)
	protected.Get("/campaigns/:id/applications", d.Apps.ListForCampaign)
	protected.Post("/campaigns/:id/invite", middleware.RequirePermission(rbac.PermInviteCreator), d.Apps.Invite)
	protected.Get("/campaigns/:id/recommend-creators", middleware.RequirePermission(rbac.PermManageCampaign), d.Campaigns.RecommendCreators)

	protected.Post("/applications", middleware.RequirePermission(rbac.PermApplyToCampaign), d.Apps.Apply)
	protected.Get("/applications/my", middleware.RequireRole(models.RoleCreator), d.Apps.ListMine)
	protected.Get("/applications/:id", d.Apps.Get)
	protected.Patch("/applications/:id/status", middleware.RequirePermission(rbac.PermReviewApplication), d.Apps.UpdateStatus)
	protected.Post("/applications/:id/respond", middleware.RequirePermission(rbac.PermRespondApplication), d.Apps.Respond)

	shortlists := protected.Group("/shortlists", middleware.RequirePermission(rbac.PermManageShortlist))
	shortlists.Post("", d.Shortlists.Add)
	shortlists.Get("", d.Shortlists.List)
	shortlists.Put("/:creatorId", d.Shortlists.UpdateNotes)
	shortlists.Delete("/:creatorId", d.Shortlists.Remove)

	toolkit := protected.Group("/toolkit", middleware.RequirePermission(rbac.PermManageToolkit))
	toolkit.Post("/deals", d.Toolkit.CreateDeal)
	toolkit.Get("/deals", d.Toolkit.ListDeals)
	toolkit.Put("/deals/:id", d.Toolkit.UpdateDeal)
	toolkit.Delete("/deals/:id", d.Toolkit.DeleteDeal)

	toolkit.Post("/invoices", d.Toolkit.CreateInvoice)
	toolkit.Get("/invoices", d.Toolkit.ListInvoices)
	toolkit.Get("/invoices/:id", d.Toolkit.GetInvoice)
	toolkit.Patch("/invoices/:id/status", d.Toolkit.UpdateInvoiceStatus)
	toolkit.Delete("/invoices/:id", d.Toolkit.DeleteInvoice)

	toolkit.Post("/ideas", d.Toolkit.CreateIdea)
	toolkit.Get("/ideas", d.Toolkit.ListIdeas)
	toolkit.Put("/ideas/:id", d.Toolkit.UpdateIdea)
	toolkit.Delete("/ideas/:id", d.Toolkit.DeleteIdea)

	toolkit.Post("/events", d.Toolkit.CreateEvent)
	toolkit.Get("/events", d.Toolkit.ListEvents)
	toolkit.Put("/events/:id", d.Toolkit.UpdateEvent)
	toolkit.Delete("/events/:id", d.Toolkit.DeleteEvent)

	toolkit.Post("/analytics", d.Toolkit.RecordSnapshot)
	toolkit.Get("/analytics", d.Toolkit.ListSnapshots)

	toolkit.Put("/media-kit", d.Toolkit.SaveMediaKit)

	admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.Get("/users", d.Users.List)
	admin.Get("/users/:id", d.Users.Get)
	admin.Patch("/users/:id/role", d.Users.UpdateRole)
	admin.Delete("/users/:id", d.Users.Delete)
	admin.Get("/audit-logs", d.Users.AuditLogs)

	// Websocket endpoint, mounted outside the api group.
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(d.WSHub.HandleWS))
}
