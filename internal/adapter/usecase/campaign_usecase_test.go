package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

const customerID = "1234567890"

func storedDraft(id uuid.UUID) *domain.Campaign {
	c := draftCampaign(nil)
	c.ID = id
	c.CreatedAt = time.Now().UTC().Add(-time.Hour)
	c.UpdatedAt = c.CreatedAt
	return c
}

// TestCreateStartsAsDraft verifies Create assigns an id, timestamps and the
// DRAFT status before persisting.
func TestCreateStartsAsDraft(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)

	var persisted *domain.Campaign
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { persisted = c }).
		Return(nil)

	svc := NewCampaignUseCase(repo, gw)
	c, err := svc.Create(context.Background(), port.CreateCampaignReq{
		Name:              "Spring Sale",
		Objective:         "Sales",
		CampaignType:      "Search",
		DailyBudgetMicros: 5_000_000,
		StartDate:         time.Now().UTC().AddDate(0, 0, 1),
		AdGroupName:       "Spring Sale Ad Group",
		AdHeadline:        "Big Spring Savings",
		AdDescription:     "Save big this spring.",
		FinalURL:          "https://example.com/spring",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Status != domain.StatusDraft {
		t.Fatalf("expected DRAFT, got %s", c.Status)
	}
	if c.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if c.CreatedAt.IsZero() || !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Fatalf("unexpected timestamps: %v / %v", c.CreatedAt, c.UpdatedAt)
	}
	if persisted != c {
		t.Fatal("Create must persist the campaign it returns")
	}
}

// TestPublishCommitsAfterRemoteSuccess: a successful remote workflow records
// the google id once and moves the campaign to PUBLISHED.
func TestPublishCommitsAfterRemoteSuccess(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)
	gw.EXPECT().
		CreateBudget(mock.Anything, customerID, "Spring Sale", int64(5_000_000)).
		Return("budgets/1", nil)
	gw.EXPECT().
		CreateCampaign(mock.Anything, customerID, c, "budgets/1").
		Return("customers/1234567890/campaigns/9001", nil)
	gw.EXPECT().
		CreateAdGroupWithAd(mock.Anything, customerID, c, "customers/1234567890/campaigns/9001").
		Return(nil)
	repo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignUseCase(repo, gw)
	out, warnings, err := svc.Publish(context.Background(), id, customerID)
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if out.Status != domain.StatusPublished {
		t.Fatalf("expected PUBLISHED, got %s", out.Status)
	}
	if out.GoogleCampaignID == nil || *out.GoogleCampaignID != "9001" {
		t.Fatalf("unexpected google campaign id: %v", out.GoogleCampaignID)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if !out.UpdatedAt.After(out.CreatedAt) {
		t.Fatal("expected updated_at to advance")
	}
}

// TestPublishFatalFailureLeavesDraft: on a fatal step failure the campaign
// must not be updated locally.
func TestPublishFatalFailureLeavesDraft(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)
	gw.EXPECT().
		CreateBudget(mock.Anything, customerID, "Spring Sale", int64(5_000_000)).
		Return("", &domain.RemoteAPIError{Code: "401", Message: "unauthenticated"})

	svc := NewCampaignUseCase(repo, gw)
	out, _, err := svc.Publish(context.Background(), id, customerID)
	if out != nil {
		t.Fatalf("expected nil campaign, got %+v", out)
	}
	var pubErr *domain.PublishError
	if !errors.As(err, &pubErr) {
		t.Fatalf("expected PublishError, got %v", err)
	}
	if c.Status != domain.StatusDraft || c.GoogleCampaignID != nil {
		t.Fatalf("stored campaign mutated: %s %v", c.Status, c.GoogleCampaignID)
	}
	// repo.Update was never registered, so the mock fails the test if the
	// usecase tried to persist anything.
}

// TestPublishRejectsRepublish: a campaign with a recorded google id can never
// be published again, whatever its status.
func TestPublishRejectsRepublish(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)
	googleID := "9001"
	c.GoogleCampaignID = &googleID
	c.Status = domain.StatusPaused

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)

	svc := NewCampaignUseCase(repo, gw)
	_, _, err := svc.Publish(context.Background(), id, customerID)
	var transErr *domain.InvalidTransitionError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if transErr.Op != "publish" || transErr.From != domain.StatusPaused {
		t.Fatalf("unexpected transition error: %+v", transErr)
	}
}

func TestPublishNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()

	repo.EXPECT().GetByID(mock.Anything, id).Return(nil, nil)

	svc := NewCampaignUseCase(repo, gw)
	_, _, err := svc.Publish(context.Background(), id, customerID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestPublishSurfacesWarningsOnUpdateFailure: when the local commit fails
// after a successful remote publish, the warnings still reach the caller.
func TestPublishSurfacesWarningsOnUpdateFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)
	gw.EXPECT().
		CreateBudget(mock.Anything, customerID, "Spring Sale", int64(5_000_000)).
		Return("budgets/1", nil)
	gw.EXPECT().
		CreateCampaign(mock.Anything, customerID, c, "budgets/1").
		Return("customers/1234567890/campaigns/9001", nil)
	gw.EXPECT().
		CreateAdGroupWithAd(mock.Anything, customerID, c, "customers/1234567890/campaigns/9001").
		Return(errors.New("quota exceeded"))
	dbErr := errors.New("connection reset")
	repo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(dbErr)

	svc := NewCampaignUseCase(repo, gw)
	out, warnings, err := svc.Publish(context.Background(), id, customerID)
	if out != nil {
		t.Fatalf("expected nil campaign, got %+v", out)
	}
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected ad group warning, got %v", warnings)
	}
}

// TestEnableAfterPublish covers the PUBLISHED -> ENABLED transition including
// the remote status mutation.
func TestEnableAfterPublish(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)
	googleID := "9001"
	c.GoogleCampaignID = &googleID
	c.Status = domain.StatusPublished

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)
	gw.EXPECT().
		SetCampaignStatus(mock.Anything, customerID, "9001", domain.StatusEnabled).
		Return(nil)
	repo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignUseCase(repo, gw)
	out, err := svc.Enable(context.Background(), id, customerID)
	if err != nil {
		t.Fatalf("Enable error: %v", err)
	}
	if out.Status != domain.StatusEnabled {
		t.Fatalf("expected ENABLED, got %s", out.Status)
	}
}

// TestPauseEnableRoundTrip checks ENABLED -> PAUSED and that a no-op
// transition to the current status is rejected.
func TestPauseEnableRoundTrip(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)
	googleID := "9001"
	c.GoogleCampaignID = &googleID
	c.Status = domain.StatusEnabled

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)
	gw.EXPECT().
		SetCampaignStatus(mock.Anything, customerID, "9001", domain.StatusPaused).
		Return(nil)
	repo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignUseCase(repo, gw)
	out, err := svc.Pause(context.Background(), id, customerID)
	if err != nil {
		t.Fatalf("Pause error: %v", err)
	}
	if out.Status != domain.StatusPaused {
		t.Fatalf("expected PAUSED, got %s", out.Status)
	}

	// Pausing again is an invalid transition and must not hit the gateway.
	// The GetByID expectation above matches this second lookup too.
	_, err = svc.Pause(context.Background(), id, customerID)
	var transErr *domain.InvalidTransitionError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

// TestEnableNeverPublished rejects lifecycle calls on campaigns without a
// google id.
func TestEnableNeverPublished(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)

	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)

	svc := NewCampaignUseCase(repo, gw)
	_, err := svc.Enable(context.Background(), id, customerID)
	var transErr *domain.InvalidTransitionError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if transErr.From != domain.StatusDraft {
		t.Fatalf("unexpected source status %s", transErr.From)
	}
}

// TestEnableRemoteFailureKeepsLocalStatus: a remote mutate error must leave
// the stored status untouched.
func TestEnableRemoteFailureKeepsLocalStatus(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	gw := mocks.NewMockAdsGateway(t)
	id := uuid.New()
	c := storedDraft(id)
	googleID := "9001"
	c.GoogleCampaignID = &googleID
	c.Status = domain.StatusPublished

	remoteErr := &domain.RemoteAPIError{Code: "500", Message: "internal error"}
	repo.EXPECT().GetByID(mock.Anything, id).Return(c, nil)
	gw.EXPECT().
		SetCampaignStatus(mock.Anything, customerID, "9001", domain.StatusEnabled).
		Return(remoteErr)

	svc := NewCampaignUseCase(repo, gw)
	_, err := svc.Enable(context.Background(), id, customerID)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if c.Status != domain.StatusPublished {
		t.Fatalf("stored status mutated to %s", c.Status)
	}
}
