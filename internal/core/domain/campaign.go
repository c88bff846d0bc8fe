package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the local lifecycle state of a campaign. A campaign starts as
// DRAFT, becomes PUBLISHED exactly once when it is created remotely, and
// from there may be toggled between ENABLED and PAUSED any number of times.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusEnabled   Status = "ENABLED"
	StatusPaused    Status = "PAUSED"
)

// Statuses lists every valid campaign status.
func Statuses() []Status {
	return []Status{StatusDraft, StatusPublished, StatusEnabled, StatusPaused}
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusEnabled, StatusPaused:
		return true
	}
	return false
}

// Campaign objectives accepted on creation.
const (
	ObjectiveSales          = "Sales"
	ObjectiveLeads          = "Leads"
	ObjectiveWebsiteTraffic = "Website Traffic"
	ObjectiveBrandAwareness = "Brand Awareness"
)

// Objectives lists the accepted campaign objectives.
func Objectives() []string {
	return []string{ObjectiveSales, ObjectiveLeads, ObjectiveWebsiteTraffic, ObjectiveBrandAwareness}
}

// Campaign types accepted on creation. Only Search is exercised by the
// Google Ads gateway; the rest are stored as-is.
const (
	TypeDemandGen = "Demand Gen"
	TypeSearch    = "Search"
	TypeDisplay   = "Display"
	TypeVideo     = "Video"
	TypeShopping  = "Shopping"
)

// CampaignTypes lists the accepted campaign types.
func CampaignTypes() []string {
	return []string{TypeDemandGen, TypeSearch, TypeDisplay, TypeVideo, TypeShopping}
}

// MinDailyBudgetMicros is the smallest accepted daily budget: one currency
// unit expressed in micros.
const MinDailyBudgetMicros int64 = 1_000_000

// Campaign represents an advertising campaign.
// Budgets are stored in micros (1,000,000 micros = 1 currency unit).
type Campaign struct {
	ID                uuid.UUID
	Name              string
	Objective         string
	CampaignType      string
	DailyBudgetMicros int64
	StartDate         time.Time
	EndDate           *time.Time
	Status            Status
	AdGroupName       string
	AdHeadline        string
	AdDescription     string
	FinalURL          string
	AssetURL          *string
	GoogleCampaignID  *string // set once on first successful publish, never changed
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Published reports whether the campaign has ever been created remotely.
func (c *Campaign) Published() bool {
	return c.GoogleCampaignID != nil && *c.GoogleCampaignID != ""
}
