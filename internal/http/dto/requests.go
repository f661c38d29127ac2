package dto

import (
	"time"

	"github.com/creator-marketplace/backend/internal/importer"
)

// Auth

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"required,oneof=CREATOR BRAND creator brand"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Creators

type CreateCreatorRequest struct {
	Username           string   `json:"username" validate:"required,min=2,max=100"`
	DisplayName        string   `json:"display_name" validate:"required,max=100"`
	Bio                *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	Avatar             *string  `json:"avatar,omitempty" validate:"omitempty,url"`
	InstagramHandle    *string  `json:"instagram_handle,omitempty" validate:"omitempty,max=100"`
	InstagramFollowers *int     `json:"instagram_followers,omitempty" validate:"omitempty,min=0"`
	TiktokHandle       *string  `json:"tiktok_handle,omitempty" validate:"omitempty,max=100"`
	TiktokFollowers    *int     `json:"tiktok_followers,omitempty" validate:"omitempty,min=0"`
	YoutubeHandle      *string  `json:"youtube_handle,omitempty" validate:"omitempty,max=100"`
	YoutubeFollowers   *int     `json:"youtube_followers,omitempty" validate:"omitempty,min=0"`
	AvgEngagementRate  *float64 `json:"avg_engagement_rate,omitempty" validate:"omitempty,min=0,max=100"`
	BasePrice          *float64 `json:"base_price,omitempty" validate:"omitempty,min=0"`
	Age                *int     `json:"age,omitempty" validate:"omitempty,min=13,max=120"`
	Gender             *string  `json:"gender,omitempty" validate:"omitempty,max=50"`
	Location           *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Categories         []string `json:"categories,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

type UpdateCreatorRequest struct {
	Username           *string  `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
	DisplayName        *string  `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Bio                *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	Avatar             *string  `json:"avatar,omitempty" validate:"omitempty,url"`
	InstagramHandle    *string  `json:"instagram_handle,omitempty" validate:"omitempty,max=100"`
	InstagramFollowers *int     `json:"instagram_followers,omitempty" validate:"omitempty,min=0"`
	TiktokHandle       *string  `json:"tiktok_handle,omitempty" validate:"omitempty,max=100"`
	TiktokFollowers    *int     `json:"tiktok_followers,omitempty" validate:"omitempty,min=0"`
	YoutubeHandle      *string  `json:"youtube_handle,omitempty" validate:"omitempty,max=100"`
	YoutubeFollowers   *int     `json:"youtube_followers,omitempty" validate:"omitempty,min=0"`
	AvgEngagementRate  *float64 `json:"avg_engagement_rate,omitempty" validate:"omitempty,min=0,max=100"`
	BasePrice          *float64 `json:"base_price,omitempty" validate:"omitempty,min=0"`
	Age                *int     `json:"age,omitempty" validate:"omitempty,min=13,max=120"`
	Gender             *string  `json:"gender,omitempty" validate:"omitempty,max=50"`
	Location           *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Categories         []string `json:"categories,omitempty" validate:"omitempty,max=20,dive,max=50"`
	IsActive           *bool    `json:"is_active,omitempty"`
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

type ImportCreatorsRequest struct {
	Creators []importer.Row `json:"creators" validate:"required,min=1,max=1000,dive"`
}

// Brands

type CreateBrandRequest struct {
	CompanyName  string  `json:"company_name" validate:"required,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Logo         *string `json:"logo,omitempty" validate:"omitempty,url"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
	Industry     *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
}

type UpdateBrandRequest struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Logo         *string `json:"logo,omitempty" validate:"omitempty,url"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
	Industry     *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
}

// Campaigns

type CreateCampaignRequest struct {
	Title               string    `json:"title" validate:"required,max=200"`
	Description         string    `json:"description" validate:"required,max=2000"`
	Budget              float64   `json:"budget" validate:"gte=0"`
	StartDate           time.Time `json:"start_date" validate:"required"`
	EndDate             time.Time `json:"end_date" validate:"required"`
	Deliverables        []string  `json:"deliverables" validate:"required,min=1,max=50,dive,max=500"`
	Requirements        []string  `json:"requirements,omitempty" validate:"omitempty,max=50,dive,max=500"`
	TargetAudience      *string   `json:"target_audience,omitempty" validate:"omitempty,max=1000"`
	PreferredCategories []string  `json:"preferred_categories,omitempty" validate:"omitempty,max=20,dive,max=50"`
	MinFollowers        *int      `json:"min_followers,omitempty" validate:"omitempty,min=0"`
	MaxFollowers        *int      `json:"max_followers,omitempty" validate:"omitempty,min=0"`
	Status              string    `json:"status,omitempty"`
}

type UpdateCampaignRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Budget              *float64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	Deliverables        []string   `json:"deliverables,omitempty" validate:"omitempty,max=50,dive,max=500"`
	Requirements        []string   `json:"requirements,omitempty" validate:"omitempty,max=50,dive,max=500"`
	TargetAudience      *string    `json:"target_audience,omitempty" validate:"omitempty,max=1000"`
	PreferredCategories []string   `json:"preferred_categories,omitempty" validate:"omitempty,max=20,dive,max=50"`
	MinFollowers        *int       `json:"min_followers,omitempty" validate:"omitempty,min=0"`
	MaxFollowers        *int       `json:"max_followers,omitempty" validate:"omitempty,min=0"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Applications

type ApplyRequest struct {
	CampaignID    string   `json:"campaign_id" validate:"required,uuid"`
	ProposedPrice *float64 `json:"proposed_price,omitempty" validate:"omitempty,min=0"`
	Message       *string  `json:"message,omitempty" validate:"omitempty,max=1000"`
	Portfolio     []string `json:"portfolio,omitempty" validate:"omitempty,max=20,dive,url"`
}

type UpdateApplicationStatusRequest struct {
	Status        string   `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
	ProposedPrice *float64 `json:"proposed_price,omitempty" validate:"omitempty,min=0"`
	Message       *string  `json:"message,omitempty" validate:"omitempty,max=1000"`
	Portfolio     []string `json:"portfolio,omitempty" validate:"omitempty,max=20,dive,url"`
}

type RespondRequest struct {
	Response string `json:"response" validate:"required,oneof=ACCEPTED DECLINED"`
}

type InviteRequest struct {
	CreatorID     string   `json:"creator_id" validate:"required,uuid"`
	ProposedPrice *float64 `json:"proposed_price,omitempty" validate:"omitempty,min=0"`
	Message       *string  `json:"message,omitempty" validate:"omitempty,max=1000"`
	Portfolio     []string `json:"portfolio,omitempty" validate:"omitempty,max=20,dive,url"`
}

// Shortlists

type AddShortlistRequest struct {
	CreatorID string  `json:"creator_id" validate:"required,uuid"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type UpdateShortlistNotesRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Toolkit

type CreateDealRequest struct {
	Title  string   `json:"title" validate:"required,max=200"`
	Brand  *string  `json:"brand,omitempty" validate:"omitempty,max=200"`
	Value  *float64 `json:"value,omitempty" validate:"omitempty,min=0"`
	Status string   `json:"status,omitempty" validate:"omitempty,max=50"`
	Notes  *string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateDealRequest struct {
	Title  *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Brand  *string  `json:"brand,omitempty" validate:"omitempty,max=200"`
	Value  *float64 `json:"value,omitempty" validate:"omitempty,min=0"`
	Status *string  `json:"status,omitempty" validate:"omitempty,max=50"`
	Notes  *string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type InvoiceItemRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"min=0"`
}

type CreateInvoiceRequest struct {
	DealID        *string              `json:"deal_id,omitempty" validate:"omitempty,uuid"`
	InvoiceNumber string               `json:"invoice_number,omitempty" validate:"omitempty,max=50"`
	IssueDate     *time.Time           `json:"issue_date,omitempty"`
	DueDate       *time.Time           `json:"due_date,omitempty"`
	Status        string               `json:"status,omitempty" validate:"omitempty,max=50"`
	ClientName    *string              `json:"client_name,omitempty" validate:"omitempty,max=200"`
	ClientEmail   *string              `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientCompany *string              `json:"client_company,omitempty" validate:"omitempty,max=200"`
	ClientAddress *string              `json:"client_address,omitempty" validate:"omitempty,max=500"`
	ClientTaxID   *string              `json:"client_tax_id,omitempty" validate:"omitempty,max=100"`
	PaymentTerms  *string              `json:"payment_terms,omitempty" validate:"omitempty,max=500"`
	Currency      string               `json:"currency,omitempty" validate:"omitempty,len=3"`
	Tax           *float64             `json:"tax,omitempty" validate:"omitempty,min=0"`
	Notes         *string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type CreateIdeaRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Status      string   `json:"status,omitempty" validate:"omitempty,max=50"`
	Priority    string   `json:"priority,omitempty" validate:"omitempty,max=50"`
	Attachments []string `json:"attachments,omitempty" validate:"omitempty,max=20,dive,url"`
}

type UpdateIdeaRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,max=50"`
	Priority    *string  `json:"priority,omitempty" validate:"omitempty,max=50"`
	Attachments []string `json:"attachments,omitempty" validate:"omitempty,max=20,dive,url"`
}

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartAt     time.Time  `json:"start_at" validate:"required"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=200"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=200"`
}

type RecordSnapshotRequest struct {
	Platform       string     `json:"platform" validate:"required,oneof=instagram tiktok youtube"`
	Date           *time.Time `json:"date,omitempty"`
	Followers      *int       `json:"followers,omitempty" validate:"omitempty,min=0"`
	EngagementRate *float64   `json:"engagement_rate,omitempty" validate:"omitempty,min=0,max=100"`
	Reach          *int       `json:"reach,omitempty" validate:"omitempty,min=0"`
	Impressions    *int       `json:"impressions,omitempty" validate:"omitempty,min=0"`
}

type SaveMediaKitRequest struct {
	Data any `json:"data" validate:"required"`
}

// Admin

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=CREATOR BRAND ADMIN"`
}
