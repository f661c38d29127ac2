package services

import (
	"context"
	"fmt"
	"time"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ToolkitService backs the creator-side CRM: deals, invoices, content
// ideas, calendar events, analytics and the media kit. Everything is
// scoped to the acting creator's own records.
type ToolkitService struct {
	creatorRepo   *repositories.CreatorRepo
	dealRepo      *repositories.DealRepo
	invoiceRepo   *repositories.InvoiceRepo
	ideaRepo      *repositories.IdeaRepo
	eventRepo     *repositories.EventRepo
	analyticsRepo *repositories.AnalyticsRepo
	mediaKitRepo  *repositories.MediaKitRepo
	log           *zap.Logger
}

func NewToolkitService(
	creatorRepo *repositories.CreatorRepo,
	dealRepo *repositories.DealRepo,
	invoiceRepo *repositories.InvoiceRepo,
	ideaRepo *repositories.IdeaRepo,
	eventRepo *repositories.EventRepo,
	analyticsRepo *repositories.AnalyticsRepo,
	mediaKitRepo *repositories.MediaKitRepo,
	log *zap.Logger,
) *ToolkitService {
	return &ToolkitService{
		creatorRepo:   creatorRepo,
		dealRepo:      dealRepo,
		invoiceRepo:   invoiceRepo,
		ideaRepo:      ideaRepo,
		eventRepo:     eventRepo,
		analyticsRepo: analyticsRepo,
		mediaKitRepo:  mediaKitRepo,
		log:           log,
	}
}

func (s *ToolkitService) creatorFor(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	return s.creatorRepo.GetByUserID(ctx, userID)
}

// Deals

func (s *ToolkitService) CreateDeal(ctx context.Context, userID uuid.UUID, d *models.Deal) (*models.Deal, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	if d.Value != nil && *d.Value < 0 {
		return nil, apperr.Validationf("value cannot be negative")
	}
	d.CreatorID = creator.ID
	d.Status = models.NormalizeDealStatus(d.Status)
	if err := s.dealRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ToolkitService) UpdateDeal(ctx context.Context, userID, id uuid.UUID, patch func(*models.Deal)) (*models.Deal, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal.CreatorID != creator.ID {
		return nil, apperr.Forbiddenf("not your deal")
	}

	patch(deal)
	if deal.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	deal.Status = models.NormalizeDealStatus(deal.Status)
	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *ToolkitService) DeleteDeal(ctx context.Context, userID, id uuid.UUID) error {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return err
	}
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if deal.CreatorID != creator.ID {
		return apperr.Forbiddenf("not your deal")
	}
	return s.dealRepo.Delete(ctx, id)
}

func (s *ToolkitService) ListDeals(ctx context.Context, userID uuid.UUID, f repositories.DealFilter) ([]models.Deal, int, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	f.CreatorID = creator.ID
	return s.dealRepo.List(ctx, f)
}

// Invoices

func (s *ToolkitService) CreateInvoice(ctx context.Context, userID uuid.UUID, inv *models.Invoice, items []models.InvoiceItem) (*models.InvoiceWithItems, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv.CreatorID = creator.ID
	inv.Status = models.NormalizeInvoiceStatus(inv.Status)
	if inv.Currency == "" {
		inv.Currency = "USD"
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = time.Now()
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = fmt.Sprintf("INV-%s-%d", creator.ID.String()[:8], time.Now().Unix())
	}

	// Totals are derived server-side from the line items.
	var subtotal float64
	for i, item := range items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, apperr.Validationf("invalid line item %d", i+1)
		}
		subtotal += item.Quantity * item.UnitPrice
	}
	inv.Subtotal = &subtotal
	tax := 0.0
	if inv.Tax != nil {
		tax = *inv.Tax
	}
	total := subtotal + tax
	inv.Total = &total

	saved, err := s.invoiceRepo.Create(ctx, inv, items)
	if err != nil {
		return nil, err
	}
	return &models.InvoiceWithItems{Invoice: *inv, Items: saved}, nil
}

func (s *ToolkitService) GetInvoice(ctx context.Context, userID, id uuid.UUID) (*models.InvoiceWithItems, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.CreatorID != creator.ID {
		return nil, apperr.Forbiddenf("not your invoice")
	}
	return inv, nil
}

func (s *ToolkitService) UpdateInvoiceStatus(ctx context.Context, userID, id uuid.UUID, status string) (*models.InvoiceWithItems, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.CreatorID != creator.ID {
		return nil, apperr.Forbiddenf("not your invoice")
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, id, models.NormalizeInvoiceStatus(status)); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *ToolkitService) DeleteInvoice(ctx context.Context, userID, id uuid.UUID) error {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return err
	}
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.CreatorID != creator.ID {
		return apperr.Forbiddenf("not your invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

func (s *ToolkitService) ListInvoices(ctx context.Context, userID uuid.UUID, f repositories.InvoiceFilter) ([]models.Invoice, int, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	f.CreatorID = creator.ID
	return s.invoiceRepo.List(ctx, f)
}

// Ideas

func (s *ToolkitService) CreateIdea(ctx context.Context, userID uuid.UUID, i *models.Idea) (*models.Idea, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if i.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	i.CreatorID = creator.ID
	i.Status = models.NormalizeIdeaStatus(i.Status)
	i.Priority = models.NormalizeIdeaPriority(i.Priority)
	if err := s.ideaRepo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *ToolkitService) UpdateIdea(ctx context.Context, userID, id uuid.UUID, patch func(*models.Idea)) (*models.Idea, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.CreatorID != creator.ID {
		return nil, apperr.Forbiddenf("not your idea")
	}

	patch(idea)
	if idea.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	idea.Status = models.NormalizeIdeaStatus(idea.Status)
	idea.Priority = models.NormalizeIdeaPriority(idea.Priority)
	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (s *ToolkitService) DeleteIdea(ctx context.Context, userID, id uuid.UUID) error {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return err
	}
	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if idea.CreatorID != creator.ID {
		return apperr.Forbiddenf("not your idea")
	}
	return s.ideaRepo.Delete(ctx, id)
}

func (s *ToolkitService) ListIdeas(ctx context.Context, userID uuid.UUID, f repositories.IdeaFilter) ([]models.Idea, int, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	f.CreatorID = creator.ID
	return s.ideaRepo.List(ctx, f)
}

// Calendar events

func (s *ToolkitService) CreateEvent(ctx context.Context, userID uuid.UUID, e *models.Event) (*models.Event, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if e.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	if e.StartAt.IsZero() {
		return nil, apperr.Validationf("start time is required")
	}
	if e.EndAt != nil && e.EndAt.Before(e.StartAt) {
		return nil, apperr.Validationf("end time is before start time")
	}
	e.CreatorID = creator.ID
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ToolkitService) UpdateEvent(ctx context.Context, userID, id uuid.UUID, patch func(*models.Event)) (*models.Event, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.CreatorID != creator.ID {
		return nil, apperr.Forbiddenf("not your event")
	}

	patch(event)
	if event.Title == "" {
		return nil, apperr.Validationf("title is required")
	}
	if event.EndAt != nil && event.EndAt.Before(event.StartAt) {
		return nil, apperr.Validationf("end time is before start time")
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *ToolkitService) DeleteEvent(ctx context.Context, userID, id uuid.UUID) error {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return err
	}
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.CreatorID != creator.ID {
		return apperr.Forbiddenf("not your event")
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *ToolkitService) ListEvents(ctx context.Context, userID uuid.UUID, f repositories.EventFilter) ([]models.Event, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	f.CreatorID = creator.ID
	return s.eventRepo.List(ctx, f)
}

// Analytics

func (s *ToolkitService) RecordSnapshot(ctx context.Context, userID uuid.UUID, snap *models.AnalyticsSnapshot) (*models.AnalyticsSnapshot, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch snap.Platform {
	case models.PlatformInstagram, models.PlatformTiktok, models.PlatformYoutube:
	default:
		return nil, apperr.Validationf("unknown platform %s", snap.Platform)
	}
	snap.CreatorID = creator.ID
	if snap.Date.IsZero() {
		snap.Date = time.Now().Truncate(24 * time.Hour)
	}
	if snap.Source == "" {
		snap.Source = "manual"
	}
	if err := s.analyticsRepo.Record(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *ToolkitService) ListSnapshots(ctx context.Context, userID uuid.UUID, f repositories.AnalyticsFilter) ([]models.AnalyticsSnapshot, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	f.CreatorID = creator.ID
	return s.analyticsRepo.List(ctx, f)
}

// Media kit

func (s *ToolkitService) SaveMediaKit(ctx context.Context, userID uuid.UUID, data any) (*models.MediaKit, error) {
	creator, err := s.creatorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	kit := &models.MediaKit{CreatorID: creator.ID, Data: data}
	if err := s.mediaKitRepo.Upsert(ctx, kit); err != nil {
		return nil, err
	}
	return kit, nil
}

// GetMediaKit is public: anyone can view a creator's media kit.
func (s *ToolkitService) GetMediaKit(ctx context.Context, creatorID uuid.UUID) (*models.MediaKit, error) {
	return s.mediaKitRepo.GetByCreator(ctx, creatorID)
}
