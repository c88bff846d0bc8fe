package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// AdsGateway translates typed local intents into Google Ads API calls. It is
// an outbound port; the production implementation lives in
// adapter/googleads. None of the create operations are idempotent, so
// callers must not invoke them twice for the same logical resource. Remote
// rejections surface as *domain.RemoteAPIError; asset download failures as
// *domain.AssetFetchError.
type AdsGateway interface {
	// CreateBudget creates a campaign budget with a globally-unique name
	// derived from the campaign name and returns its resource name.
	CreateBudget(ctx context.Context, customerID, campaignName string, dailyBudgetMicros int64) (string, error)
	// CreateCampaign creates the remote campaign in a paused, non-billing
	// state and returns its resource name.
	CreateCampaign(ctx context.Context, customerID string, c *domain.Campaign, budgetRef string) (string, error)
	// CreateImageAsset downloads the image at assetURL and registers it as
	// an image asset, returning its resource name.
	CreateImageAsset(ctx context.Context, customerID, assetURL, assetName string) (string, error)
	// CreateAdGroupWithAd creates an ad group under the campaign and a
	// responsive search ad attached to it.
	CreateAdGroupWithAd(ctx context.Context, customerID string, c *domain.Campaign, campaignRef string) error
	// SetCampaignStatus updates exactly the status field of an existing
	// remote campaign to ENABLED or PAUSED.
	SetCampaignStatus(ctx context.Context, customerID, googleCampaignID string, status domain.Status) error
}
