package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignUseCase provides the campaign lifecycle business logic. It
// enforces the DRAFT -> PUBLISHED -> ENABLED <-> PAUSED state machine and
// bridges the store, the publish workflow and the ads gateway. Remote calls
// always run before the local commit, so a crash between remote success and
// local persistence leaves local state stale; that is an accepted
// limitation, not hidden behaviour.
type CampaignUseCase struct {
	repo port.CampaignRepository
	gw   port.AdsGateway
	pub  *Publisher
}

// NewCampaignUseCase creates a new usecase with the provided repository and
// gateway.
func NewCampaignUseCase(repo port.CampaignRepository, gw port.AdsGateway) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, gw: gw, pub: NewPublisher(gw)}
}

// Create persists a new campaign in DRAFT status with a server-generated id
// and timestamps. Input validation happens at the HTTP boundary.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:                uuid.New(),
		Name:              req.Name,
		Objective:         req.Objective,
		CampaignType:      req.CampaignType,
		DailyBudgetMicros: req.DailyBudgetMicros,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Status:            domain.StatusDraft,
		AdGroupName:       req.AdGroupName,
		AdHeadline:        req.AdHeadline,
		AdDescription:     req.AdDescription,
		FinalURL:          req.FinalURL,
		AssetURL:          req.AssetURL,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns campaigns newest first, optionally filtered by status.
func (u *CampaignUseCase) List(ctx context.Context, status *domain.Status) ([]domain.Campaign, error) {
	return u.repo.List(ctx, status)
}

// Get returns a campaign by id, or nil when it does not exist.
func (u *CampaignUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}

// Delete removes a campaign and reports whether it existed.
func (u *CampaignUseCase) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return u.repo.Delete(ctx, id)
}

// Publish runs the remote publish workflow for a DRAFT campaign. On success
// the google campaign id is recorded exactly once, the status moves to
// PUBLISHED, and the campaign is persisted. A fatal workflow failure leaves
// the stored campaign untouched.
func (u *CampaignUseCase) Publish(ctx context.Context, id uuid.UUID, customerID string) (*domain.Campaign, []string, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}
	if c.Published() || c.Status != domain.StatusDraft {
		return nil, nil, &domain.InvalidTransitionError{Op: "publish", From: c.Status}
	}

	res, err := u.pub.Publish(ctx, c, customerID)
	if err != nil {
		return nil, nil, err
	}

	googleID := res.GoogleCampaignID
	c.GoogleCampaignID = &googleID
	c.Status = domain.StatusPublished
	c.UpdatedAt = time.Now().UTC()
	if err = u.repo.Update(ctx, c); err != nil {
		// The remote campaign exists at this point; surface the stale
		// local state instead of pretending the publish failed remotely.
		return nil, res.Warnings, err
	}
	return c, res.Warnings, nil
}

// Enable moves a previously published campaign to ENABLED. Billing becomes
// active on the platform once this succeeds.
func (u *CampaignUseCase) Enable(ctx context.Context, id uuid.UUID, customerID string) (*domain.Campaign, error) {
	return u.setStatus(ctx, id, customerID, "enable", domain.StatusEnabled)
}

// Pause moves a previously published campaign to PAUSED.
func (u *CampaignUseCase) Pause(ctx context.Context, id uuid.UUID, customerID string) (*domain.Campaign, error) {
	return u.setStatus(ctx, id, customerID, "pause", domain.StatusPaused)
}

func (u *CampaignUseCase) setStatus(ctx context.Context, id uuid.UUID, customerID, op string, target domain.Status) (*domain.Campaign, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.Published() || c.Status == target {
		return nil, &domain.InvalidTransitionError{Op: op, From: c.Status}
	}

	if err = u.gw.SetCampaignStatus(ctx, customerID, *c.GoogleCampaignID, target); err != nil {
		return nil, err
	}

	c.Status = target
	c.UpdatedAt = time.Now().UTC()
	if err = u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
