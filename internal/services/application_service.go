package services

import (
	"context"
	"time"

	"github.com/creator-marketplace/backend/internal/apperr"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepo
	campaignRepo    *repositories.CampaignRepo
	creatorRepo     *repositories.CreatorRepo
	brandRepo       *repositories.BrandRepo
	eventRepo       *repositories.EventRepo
	auditRepo       *repositories.AuditRepo
	publisher       events.Publisher
	log             *zap.Logger
}

func NewApplicationService(
	applicationRepo *repositories.ApplicationRepo,
	campaignRepo *repositories.CampaignRepo,
	creatorRepo *repositories.CreatorRepo,
	brandRepo *repositories.BrandRepo,
	eventRepo *repositories.EventRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		campaignRepo:    campaignRepo,
		creatorRepo:     creatorRepo,
		brandRepo:       brandRepo,
		eventRepo:       eventRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		log:             log,
	}
}

// Apply submits a creator's application to an active campaign.
func (s *ApplicationService) Apply(ctx context.Context, userID uuid.UUID, campaignID uuid.UUID, proposedPrice *float64, message *string, portfolio []string) (*models.CampaignApplication, error) {
	creator, err := s.creatorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, apperr.InvalidStatef("campaign is not accepting applications")
	}
	if proposedPrice != nil && *proposedPrice < 0 {
		return nil, apperr.Validationf("proposed price cannot be negative")
	}

	app := &models.CampaignApplication{
		CampaignID:    campaignID,
		CreatorID:     creator.ID,
		Status:        models.ApplicationStatusPending,
		ProposedPrice: proposedPrice,
		Message:       message,
		Portfolio:     portfolio,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "application_submitted",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String()},
	})
	s.publish(ctx, events.EventApplicationSubmitted, app, nil)
	return app, nil
}

func (s *ApplicationService) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*models.CampaignApplication, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorID, actorRole, app); err != nil {
		return nil, err
	}
	return app, nil
}

// authorize passes for the applying creator, the campaign's brand, and
// admins.
func (s *ApplicationService) authorize(ctx context.Context, actorID uuid.UUID, actorRole string, app *models.CampaignApplication) error {
	switch actorRole {
	case models.RoleAdmin:
		return nil
	case models.RoleCreator:
		creator, err := s.creatorRepo.GetByUserID(ctx, actorID)
		if err != nil {
			return err
		}
		if creator.ID != app.CreatorID {
			return apperr.Forbiddenf("not your application")
		}
		return nil
	case models.RoleBrand:
		campaign, err := s.campaignRepo.GetByID(ctx, app.CampaignID)
		if err != nil {
			return err
		}
		brand, err := s.brandRepo.GetByUserID(ctx, actorID)
		if err != nil {
			return err
		}
		if campaign.BrandID != brand.ID {
			return apperr.Forbiddenf("not your campaign")
		}
		return nil
	default:
		return apperr.ErrForbidden
	}
}

// ListForCampaign returns a campaign's applications to its owning brand.
func (s *ApplicationService) ListForCampaign(ctx context.Context, actorID uuid.UUID, actorRole string, campaignID uuid.UUID, f repositories.ApplicationFilter) ([]models.ApplicationWithDetails, int, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, 0, err
	}
	if actorRole != models.RoleAdmin {
		brand, err := s.brandRepo.GetByUserID(ctx, actorID)
		if err != nil {
			return nil, 0, err
		}
		if campaign.BrandID != brand.ID {
			return nil, 0, apperr.Forbiddenf("not your campaign")
		}
	}
	f.CampaignID = &campaignID
	return s.applicationRepo.List(ctx, f)
}

// ListForCreator returns the acting creator's own applications.
func (s *ApplicationService) ListForCreator(ctx context.Context, userID uuid.UUID, f repositories.ApplicationFilter) ([]models.ApplicationWithDetails, int, error) {
	creator, err := s.creatorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	f.CreatorID = &creator.ID
	return s.applicationRepo.List(ctx, f)
}

// ApplicationUpdate carries the brand's review: the new status plus any
// revised proposal fields. Nil fields stay untouched.
type ApplicationUpdate struct {
	Status        string
	ProposedPrice *float64
	Message       *string
	Portfolio     []string
}

// UpdateStatus records the brand's decision, optionally revising the
// proposed price, message and portfolio with it. The decision may be
// revised in any direction until the creator has responded.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, upd ApplicationUpdate) (*models.CampaignApplication, error) {
	if !models.IsValidApplicationStatus(upd.Status) {
		return nil, apperr.Validationf("unknown application status %s", upd.Status)
	}
	if upd.ProposedPrice != nil && *upd.ProposedPrice < 0 {
		return nil, apperr.Validationf("proposed price cannot be negative")
	}
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != models.RoleAdmin && actorRole != models.RoleBrand {
		return nil, apperr.Forbiddenf("only the brand can review applications")
	}
	if err := s.authorize(ctx, actorID, actorRole, app); err != nil {
		return nil, err
	}
	if app.IsResponded() {
		return nil, apperr.InvalidStatef("creator has already responded")
	}

	old := app.Status
	app, err = s.applicationRepo.UpdateByBrand(ctx, id, upd.Status, upd.ProposedPrice, upd.Message, upd.Portfolio)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "application_status_changed",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"old_status": old, "new_status": upd.Status},
	})
	s.publish(ctx, events.EventApplicationStatusChanged, app, map[string]any{
		"old_status": old,
	})
	return app, nil
}

// RespondResult carries the updated application plus a warning when the
// calendar side effect failed. The response itself still stands.
type RespondResult struct {
	Application     *models.CampaignApplication `json:"application"`
	CalendarWarning *string                     `json:"calendar_warning,omitempty"`
}

// Respond records the creator's terminal ACCEPTED/DECLINED answer. Only
// approved, unresponded applications qualify. Accepting schedules a
// calendar event for the campaign window; a failure there is reported
// as a warning, not an error.
func (s *ApplicationService) Respond(ctx context.Context, userID uuid.UUID, id uuid.UUID, response string) (*RespondResult, error) {
	if !models.IsValidCreatorResponse(response) {
		return nil, apperr.Validationf("response must be ACCEPTED or DECLINED")
	}

	creator, err := s.creatorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.CreatorID != creator.ID {
		return nil, apperr.Forbiddenf("not your application")
	}
	if !app.CanRespond() {
		return nil, apperr.InvalidStatef("can only respond to approved applications")
	}

	app, err = s.applicationRepo.RecordResponse(ctx, id, response, time.Now())
	if err != nil {
		return nil, err
	}

	result := &RespondResult{Application: app}
	if response == models.CreatorResponseAccepted {
		if warn := s.scheduleCampaignEvent(ctx, creator.ID, app.CampaignID); warn != "" {
			result.CalendarWarning = &warn
		}
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "application_responded",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"response": response},
	})
	s.publish(ctx, events.EventApplicationResponded, app, map[string]any{
		"response": response,
	})
	return result, nil
}

// scheduleCampaignEvent creates the calendar entry for an accepted
// campaign. Returns a warning message instead of an error: the
// acceptance must not roll back over a calendar hiccup.
func (s *ApplicationService) scheduleCampaignEvent(ctx context.Context, creatorID, campaignID uuid.UUID) string {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		s.log.Warn("calendar event skipped, campaign lookup failed",
			zap.String("campaign_id", campaignID.String()), zap.Error(err))
		return "calendar event could not be created"
	}

	event := &models.Event{
		CreatorID:   creatorID,
		Title:       "Campaign: " + campaign.Title,
		Description: &campaign.Description,
		StartAt:     campaign.StartDate,
		EndAt:       &campaign.EndDate,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.log.Warn("calendar event creation failed",
			zap.String("campaign_id", campaignID.String()), zap.Error(err))
		return "calendar event could not be created"
	}
	return ""
}

// Invite lets a brand pull a creator into a campaign: the application is
// created pre-approved, or an existing one is forced to APPROVED while
// keeping whatever the creator already submitted. Returns the
// application with its campaign and creator nested.
func (s *ApplicationService) Invite(ctx context.Context, actorID uuid.UUID, actorRole string, campaignID, creatorID uuid.UUID, proposedPrice *float64, message *string, portfolio []string) (*models.ApplicationWithDetails, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if actorRole != models.RoleAdmin {
		brand, err := s.brandRepo.GetByUserID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if campaign.BrandID != brand.ID {
			return nil, apperr.Forbiddenf("not your campaign")
		}
	}
	creator, err := s.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if proposedPrice != nil && *proposedPrice < 0 {
		return nil, apperr.Validationf("proposed price cannot be negative")
	}

	app := &models.CampaignApplication{
		CampaignID:    campaignID,
		CreatorID:     creatorID,
		Status:        models.ApplicationStatusApproved,
		ProposedPrice: proposedPrice,
		Message:       message,
		Portfolio:     portfolio,
	}
	if err := s.applicationRepo.Upsert(ctx, app); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorLabel(actorRole),
		Action:      "creator_invited",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta: map[string]any{
			"campaign_id": campaignID.String(),
			"creator_id":  creatorID.String(),
		},
	})
	s.publish(ctx, events.EventCreatorInvited, app, nil)

	return &models.ApplicationWithDetails{
		CampaignApplication: *app,
		Campaign:            campaign,
		Creator:             creator,
	}, nil
}

func (s *ApplicationService) publish(ctx context.Context, eventType string, app *models.CampaignApplication, extra map[string]any) {
	payload := map[string]any{
		"application_id": app.ID.String(),
		"campaign_id":    app.CampaignID.String(),
		"creator_id":     app.CreatorID.String(),
		"status":         app.Status,
	}
	for k, v := range extra {
		payload[k] = v
	}

	creatorUserID, brandUserID, err := s.applicationRepo.RecipientUserIDs(ctx, app.ID)
	if err != nil {
		s.log.Warn("event recipients lookup failed",
			zap.String("application_id", app.ID.String()), zap.Error(err))
	} else {
		payload["recipients"] = []string{creatorUserID.String(), brandUserID.String()}
	}

	_ = s.publisher.Publish(ctx, events.ChannelApplications, events.Event{
		Type:    eventType,
		Payload: payload,
	})
}
