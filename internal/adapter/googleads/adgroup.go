package googleads

import (
	"context"

	"adpilot/internal/core/domain"
)

const (
	// defaultCPCBidMicros is the fixed per-click bid new ad groups start
	// with: one currency unit.
	defaultCPCBidMicros int64 = 1_000_000

	maxHeadlineLen    = 30
	maxDescriptionLen = 90
)

type adGroupMutateRequest struct {
	Operations []adGroupOperation `json:"operations"`
}

type adGroupOperation struct {
	Create adGroupCreate `json:"create"`
}

type adGroupCreate struct {
	Name         string `json:"name"`
	Campaign     string `json:"campaign"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	CpcBidMicros int64  `json:"cpcBidMicros,string"`
}

type adGroupAdMutateRequest struct {
	Operations []adGroupAdOperation `json:"operations"`
}

type adGroupAdOperation struct {
	Create adGroupAdCreate `json:"create"`
}

type adGroupAdCreate struct {
	AdGroup string   `json:"adGroup"`
	Status  string   `json:"status"`
	Ad      remoteAd `json:"ad"`
}

type remoteAd struct {
	FinalURLs          []string           `json:"finalUrls"`
	ResponsiveSearchAd responsiveSearchAd `json:"responsiveSearchAd"`
}

type responsiveSearchAd struct {
	Headlines    []adText `json:"headlines"`
	Descriptions []adText `json:"descriptions"`
}

type adText struct {
	Text string `json:"text"`
}

// CreateAdGroupWithAd creates an enabled standard-search ad group under the
// campaign and attaches a responsive search ad to it.
func (g *Gateway) CreateAdGroupWithAd(ctx context.Context, customerID string, c *domain.Campaign, campaignRef string) error {
	groupPayload := adGroupMutateRequest{Operations: []adGroupOperation{{
		Create: adGroupCreate{
			Name:         c.AdGroupName,
			Campaign:     campaignRef,
			Status:       "ENABLED",
			Type:         "SEARCH_STANDARD",
			CpcBidMicros: defaultCPCBidMicros,
		},
	}}}

	var groupOut mutateResponse
	if err := g.mutate(ctx, customerID, "adGroups", groupPayload, &groupOut); err != nil {
		return err
	}
	if len(groupOut.Results) == 0 {
		return &domain.RemoteAPIError{Code: "EMPTY_MUTATE_RESPONSE", Message: "ad group mutate returned no results"}
	}
	adGroupRef := groupOut.Results[0].ResourceName

	adPayload := adGroupAdMutateRequest{Operations: []adGroupAdOperation{{
		Create: adGroupAdCreate{
			AdGroup: adGroupRef,
			Status:  "ENABLED",
			Ad: remoteAd{
				FinalURLs: []string{c.FinalURL},
				ResponsiveSearchAd: responsiveSearchAd{
					Headlines:    adTexts(headlines(c)),
					Descriptions: adTexts(descriptions(c)),
				},
			},
		},
	}}}

	var adOut mutateResponse
	if err := g.mutate(ctx, customerID, "adGroupAds", adPayload, &adOut); err != nil {
		return err
	}
	if len(adOut.Results) == 0 {
		return &domain.RemoteAPIError{Code: "EMPTY_MUTATE_RESPONSE", Message: "ad group ad mutate returned no results"}
	}
	return nil
}

// headlines builds the three headline variants a responsive search ad
// requires, each capped at the platform limit. The campaign name fills in
// when no explicit headline was provided.
func headlines(c *domain.Campaign) []string {
	primary := c.AdHeadline
	if primary == "" {
		primary = c.Name
	}
	return []string{
		truncate(primary, maxHeadlineLen),
		truncate("Discover "+c.Name, maxHeadlineLen),
		truncate(c.Name+" - Official Site", maxHeadlineLen),
	}
}

// descriptions builds the two description variants, capped at the platform
// limit, with a filler when the campaign has none.
func descriptions(c *domain.Campaign) []string {
	primary := c.AdDescription
	if primary == "" {
		primary = "Learn more about " + c.Name + " and what we offer."
	}
	return []string{
		truncate(primary, maxDescriptionLen),
		truncate("Visit our site today to find out more.", maxDescriptionLen),
	}
}

func adTexts(texts []string) []adText {
	out := make([]adText, 0, len(texts))
	for _, t := range texts {
		out = append(out, adText{Text: t})
	}
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
