package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

func draftCampaign(assetURL *string) *domain.Campaign {
	return &domain.Campaign{
		Name:              "Spring Sale",
		Objective:         "Sales",
		CampaignType:      "Search",
		DailyBudgetMicros: 5_000_000,
		Status:            domain.StatusDraft,
		AdGroupName:       "Spring Sale Ad Group",
		AdHeadline:        "Big Spring Savings",
		AdDescription:     "Save big this spring on everything in store.",
		FinalURL:          "https://example.com/spring",
		AssetURL:          assetURL,
	}
}

// TestPublishFullSequence walks the complete happy path: asset, budget,
// campaign and ad group all succeed and no warnings are produced.
func TestPublishFullSequence(t *testing.T) {
	gw := mocks.NewMockAdsGateway(t)
	asset := "https://cdn.example.com/banner.png"
	c := draftCampaign(&asset)

	gw.EXPECT().
		CreateImageAsset(mock.Anything, "1234567890", asset, "Asset Spring Sale").
		Return("customers/1234567890/assets/42", nil)
	gw.EXPECT().
		CreateBudget(mock.Anything, "1234567890", "Spring Sale", int64(5_000_000)).
		Return("customers/1234567890/campaignBudgets/77", nil)
	gw.EXPECT().
		CreateCampaign(mock.Anything, "1234567890", c, "customers/1234567890/campaignBudgets/77").
		Return("customers/1234567890/campaigns/9001", nil)
	gw.EXPECT().
		CreateAdGroupWithAd(mock.Anything, "1234567890", c, "customers/1234567890/campaigns/9001").
		Return(nil)

	res, err := NewPublisher(gw).Publish(context.Background(), c, "1234567890")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if res.GoogleCampaignID != "9001" {
		t.Fatalf("expected campaign id 9001, got %q", res.GoogleCampaignID)
	}
	if res.AssetResourceName != "customers/1234567890/assets/42" {
		t.Fatalf("unexpected asset resource name %q", res.AssetResourceName)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", res.Warnings)
	}
}

// TestPublishWithoutAsset ensures the asset step is skipped entirely when no
// asset URL is set.
func TestPublishWithoutAsset(t *testing.T) {
	gw := mocks.NewMockAdsGateway(t)
	c := draftCampaign(nil)

	gw.EXPECT().
		CreateBudget(mock.Anything, "1", "Spring Sale", int64(5_000_000)).
		Return("budgets/1", nil)
	gw.EXPECT().
		CreateCampaign(mock.Anything, "1", c, "budgets/1").
		Return("customers/1/campaigns/5", nil)
	gw.EXPECT().
		CreateAdGroupWithAd(mock.Anything, "1", c, "customers/1/campaigns/5").
		Return(nil)

	res, err := NewPublisher(gw).Publish(context.Background(), c, "1")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if res.AssetResourceName != "" {
		t.Fatalf("expected no asset, got %q", res.AssetResourceName)
	}
}

// TestPublishAssetFailureIsWarning: a failed asset fetch must not abort the
// publish, only add a warning.
func TestPublishAssetFailureIsWarning(t *testing.T) {
	gw := mocks.NewMockAdsGateway(t)
	asset := "https://cdn.example.com/missing.png"
	c := draftCampaign(&asset)

	gw.EXPECT().
		CreateImageAsset(mock.Anything, "1", asset, "Asset Spring Sale").
		Return("", &domain.AssetFetchError{URL: asset, Err: errors.New("status 404")})
	gw.EXPECT().
		CreateBudget(mock.Anything, "1", "Spring Sale", int64(5_000_000)).
		Return("budgets/1", nil)
	gw.EXPECT().
		CreateCampaign(mock.Anything, "1", c, "budgets/1").
		Return("customers/1/campaigns/5", nil)
	gw.EXPECT().
		CreateAdGroupWithAd(mock.Anything, "1", c, "customers/1/campaigns/5").
		Return(nil)

	res, err := NewPublisher(gw).Publish(context.Background(), c, "1")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.HasPrefix(res.Warnings[0], "Image asset creation failed:") {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if res.AssetResourceName != "" {
		t.Fatalf("expected no asset resource name, got %q", res.AssetResourceName)
	}
	if res.GoogleCampaignID != "5" {
		t.Fatalf("expected campaign id 5, got %q", res.GoogleCampaignID)
	}
}

// TestPublishBudgetFailureIsFatal: budget creation failure stops the whole
// workflow before any campaign is created.
func TestPublishBudgetFailureIsFatal(t *testing.T) {
	gw := mocks.NewMockAdsGateway(t)
	c := draftCampaign(nil)

	remoteErr := &domain.RemoteAPIError{Code: "403", Message: "developer token not approved"}
	gw.EXPECT().
		CreateBudget(mock.Anything, "1", "Spring Sale", int64(5_000_000)).
		Return("", remoteErr)

	res, err := NewPublisher(gw).Publish(context.Background(), c, "1")
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
	var pubErr *domain.PublishError
	if !errors.As(err, &pubErr) {
		t.Fatalf("expected PublishError, got %v", err)
	}
	if pubErr.Step != "budget" {
		t.Fatalf("expected budget step, got %q", pubErr.Step)
	}
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
}

// TestPublishAdGroupFailureIsWarning: once the campaign exists the ad group
// step may fail without failing the publish.
func TestPublishAdGroupFailureIsWarning(t *testing.T) {
	gw := mocks.NewMockAdsGateway(t)
	c := draftCampaign(nil)

	gw.EXPECT().
		CreateBudget(mock.Anything, "1", "Spring Sale", int64(5_000_000)).
		Return("budgets/1", nil)
	gw.EXPECT().
		CreateCampaign(mock.Anything, "1", c, "budgets/1").
		Return("customers/1/campaigns/5", nil)
	gw.EXPECT().
		CreateAdGroupWithAd(mock.Anything, "1", c, "customers/1/campaigns/5").
		Return(&domain.RemoteAPIError{Code: "400", Message: "too few headlines"})

	res, err := NewPublisher(gw).Publish(context.Background(), c, "1")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if res.GoogleCampaignID != "5" {
		t.Fatalf("expected campaign id 5, got %q", res.GoogleCampaignID)
	}
	if len(res.Warnings) != 1 || !strings.HasPrefix(res.Warnings[0], "Ad group/ad creation failed:") {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestCampaignIDFromRef(t *testing.T) {
	cases := map[string]string{
		"customers/123/campaigns/456": "456",
		"456":                         "456",
		"":                            "",
	}
	for ref, want := range cases {
		if got := campaignIDFromRef(ref); got != want {
			t.Errorf("campaignIDFromRef(%q) = %q, want %q", ref, got, want)
		}
	}
}
