package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// manager. This interface is the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
//
// No two lifecycle operations on the same campaign id may run concurrently:
// there is no idempotency key protecting duplicate remote resource creation,
// so the caller must serialize per-campaign access.
type CampaignUseCase interface {
	// Create validates nothing itself; it persists a new DRAFT campaign
	// built from the already-validated input.
	Create(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// List returns campaigns, optionally filtered by status, newest first.
	List(ctx context.Context, status *domain.Status) ([]domain.Campaign, error)

	// Get returns a campaign by id, or nil when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// Delete removes a campaign and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Publish runs the multi-step remote publish workflow for a DRAFT
	// campaign and, on success, records the new google campaign id and
	// moves the campaign to PUBLISHED. The returned warnings describe
	// non-fatal step failures (asset or ad group/ad); they never change
	// the success of the call.
	Publish(ctx context.Context, id uuid.UUID, customerID string) (*domain.Campaign, []string, error)

	// Enable sets a previously published campaign to ENABLED, remotely
	// first and locally after the remote call succeeds.
	Enable(ctx context.Context, id uuid.UUID, customerID string) (*domain.Campaign, error)

	// Pause sets a previously published campaign to PAUSED, remotely
	// first and locally after the remote call succeeds.
	Pause(ctx context.Context, id uuid.UUID, customerID string) (*domain.Campaign, error)
}

// CreateCampaignReq carries validated input for campaign creation. It is a
// DTO used by the HTTP layer and does not contain domain behaviour.
type CreateCampaignReq struct {
	Name              string
	Objective         string
	CampaignType      string
	DailyBudgetMicros int64
	StartDate         time.Time
	EndDate           *time.Time
	AdGroupName       string
	AdHeadline        string
	AdDescription     string
	FinalURL          string
	AssetURL          *string
}

// PublishResult is the outcome of one publish workflow run. Warnings are
// informational and ordered by the step that produced them.
type PublishResult struct {
	GoogleCampaignID  string
	AssetResourceName string
	Warnings          []string
}
