package usecase

import (
	"context"
	"fmt"
	"strings"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Publisher runs the ordered, partially-failable publish sequence for one
// campaign. Budget and campaign creation are the minimum viable remote
// artifact and fail hard; the image asset and ad group/ad steps are
// enhancements whose failure is recorded as a warning on an otherwise
// successful result. Once the remote campaign exists the operation is
// committed: no compensating delete is ever attempted.
type Publisher struct {
	gw port.AdsGateway
}

// NewPublisher creates a publisher over the given gateway.
func NewPublisher(gw port.AdsGateway) *Publisher {
	return &Publisher{gw: gw}
}

// Publish executes the workflow and returns the result carrying the new
// google campaign id, the asset resource name when one was registered, and
// any warnings in step order. The caller must not retry a failed publish
// automatically: the remote create calls are not idempotent.
func (p *Publisher) Publish(ctx context.Context, c *domain.Campaign, customerID string) (*port.PublishResult, error) {
	res := &port.PublishResult{}

	if c.AssetURL != nil && *c.AssetURL != "" {
		assetRef, err := p.gw.CreateImageAsset(ctx, customerID, *c.AssetURL, "Asset "+c.Name)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Image asset creation failed: %v", err))
		} else {
			res.AssetResourceName = assetRef
		}
	}

	budgetRef, err := p.gw.CreateBudget(ctx, customerID, c.Name, c.DailyBudgetMicros)
	if err != nil {
		return nil, &domain.PublishError{Step: "budget", Err: err}
	}

	campaignRef, err := p.gw.CreateCampaign(ctx, customerID, c, budgetRef)
	if err != nil {
		return nil, &domain.PublishError{Step: "campaign", Err: err}
	}
	res.GoogleCampaignID = campaignIDFromRef(campaignRef)

	if err = p.gw.CreateAdGroupWithAd(ctx, customerID, c, campaignRef); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Ad group/ad creation failed: %v", err))
	}
	return res, nil
}

// campaignIDFromRef extracts the numeric campaign id from a resource name
// of the form customers/{cid}/campaigns/{id}.
func campaignIDFromRef(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
