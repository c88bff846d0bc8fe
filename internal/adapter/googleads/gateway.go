package googleads

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// remoteDateLayout is the date format the Google Ads API expects for
// campaign start and end dates.
const remoteDateLayout = "20060102"

type budgetMutateRequest struct {
	Operations []budgetOperation `json:"operations"`
}

type budgetOperation struct {
	Create campaignBudget `json:"create"`
}

type campaignBudget struct {
	Name             string `json:"name"`
	AmountMicros     int64  `json:"amountMicros,string"`
	DeliveryMethod   string `json:"deliveryMethod"`
	ExplicitlyShared bool   `json:"explicitlyShared"`
}

// CreateBudget creates a campaign budget and returns its resource name. The
// budget name carries a fresh random suffix so retries and concurrent
// publishes of differently-named campaigns never collide on the platform's
// unique-name constraint.
func (g *Gateway) CreateBudget(ctx context.Context, customerID, campaignName string, dailyBudgetMicros int64) (string, error) {
	payload := budgetMutateRequest{Operations: []budgetOperation{{
		Create: campaignBudget{
			Name:             fmt.Sprintf("Budget %s %s", campaignName, uuid.NewString()),
			AmountMicros:     dailyBudgetMicros,
			DeliveryMethod:   "STANDARD",
			ExplicitlyShared: false,
		},
	}}}

	var out mutateResponse
	if err := g.mutate(ctx, customerID, "campaignBudgets", payload, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", &domain.RemoteAPIError{Code: "EMPTY_MUTATE_RESPONSE", Message: "campaign budget mutate returned no results"}
	}
	return out.Results[0].ResourceName, nil
}

type campaignMutateRequest struct {
	Operations []campaignOperation `json:"operations"`
}

type campaignOperation struct {
	Create *remoteCampaign `json:"create,omitempty"`
	Update *campaignUpdate `json:"update,omitempty"`
	// UpdateMask limits an update to the named fields.
	UpdateMask string `json:"updateMask,omitempty"`
}

type remoteCampaign struct {
	Name                           string          `json:"name"`
	CampaignBudget                 string          `json:"campaignBudget"`
	Status                         string          `json:"status"`
	AdvertisingChannelType         string          `json:"advertisingChannelType"`
	ManualCpc                      struct{}        `json:"manualCpc"`
	NetworkSettings                networkSettings `json:"networkSettings"`
	ContainsEuPoliticalAdvertising string          `json:"containsEuPoliticalAdvertising"`
	StartDate                      string          `json:"startDate"`
	EndDate                        string          `json:"endDate,omitempty"`
}

type networkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetSearchNetwork        bool `json:"targetSearchNetwork"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

type campaignUpdate struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
}

// CreateCampaign creates the remote campaign and returns its resource name.
// The campaign is always created PAUSED: a campaign must never come into
// existence in an active-billing state, regardless of the status the
// operator moves it to afterwards.
func (g *Gateway) CreateCampaign(ctx context.Context, customerID string, c *domain.Campaign, budgetRef string) (string, error) {
	create := &remoteCampaign{
		Name:                   c.Name,
		CampaignBudget:         budgetRef,
		Status:                 "PAUSED",
		AdvertisingChannelType: "SEARCH",
		NetworkSettings: networkSettings{
			TargetGoogleSearch:         true,
			TargetSearchNetwork:        true,
			TargetContentNetwork:       true,
			TargetPartnerSearchNetwork: false,
		},
		ContainsEuPoliticalAdvertising: "DOES_NOT_CONTAIN_EU_POLITICAL_ADVERTISING",
		StartDate:                      c.StartDate.Format(remoteDateLayout),
	}
	if c.EndDate != nil {
		create.EndDate = c.EndDate.Format(remoteDateLayout)
	}

	var out mutateResponse
	if err := g.mutate(ctx, customerID, "campaigns", campaignMutateRequest{Operations: []campaignOperation{{Create: create}}}, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", &domain.RemoteAPIError{Code: "EMPTY_MUTATE_RESPONSE", Message: "campaign mutate returned no results"}
	}
	return out.Results[0].ResourceName, nil
}

// SetCampaignStatus updates exactly the status field of an existing remote
// campaign to ENABLED or PAUSED. The platform reporting zero applied
// mutations is treated as a rejection.
func (g *Gateway) SetCampaignStatus(ctx context.Context, customerID, googleCampaignID string, status domain.Status) error {
	if status != domain.StatusEnabled && status != domain.StatusPaused {
		return fmt.Errorf("unsupported remote campaign status %q", status)
	}

	payload := campaignMutateRequest{Operations: []campaignOperation{{
		Update: &campaignUpdate{
			ResourceName: fmt.Sprintf("customers/%s/campaigns/%s", customerID, googleCampaignID),
			Status:       string(status),
		},
		UpdateMask: "status",
	}}}

	var out mutateResponse
	if err := g.mutate(ctx, customerID, "campaigns", payload, &out); err != nil {
		return err
	}
	if len(out.Results) == 0 {
		return &domain.RemoteAPIError{Code: "EMPTY_MUTATE_RESPONSE", Message: "campaign status mutate returned no results"}
	}
	return nil
}
