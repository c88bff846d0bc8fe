package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// Seed inserts demo DRAFT campaigns into the database. Intended for local
// development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	objectives := domain.Objectives()
	types := domain.CampaignTypes()

	for i := 1; i <= 5; i++ {
		id := uuid.New()
		name := fmt.Sprintf("Demo Campaign %d", i)
		start := time.Now().UTC().AddDate(0, 0, i)
		end := start.AddDate(0, 1, 0)
		dailyBudget := int64(2_000_000) * int64(i) // 2, 4, ... currency units
		objective := objectives[(i-1)%len(objectives)]
		campaignType := types[(i-1)%len(types)]
		finalURL := fmt.Sprintf("https://example.com/landing/%d", i)

		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, objective, campaign_type, daily_budget_micros, start_date, end_date,
     status, ad_group_name, ad_headline, ad_description, final_url, asset_url,
     google_campaign_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NULL,NULL,now(),now()) ON CONFLICT DO NOTHING`,
			id, name, objective, campaignType, dailyBudget, start, end,
			domain.StatusDraft,
			fmt.Sprintf("Ad Group %d", i),
			fmt.Sprintf("Great Deals %d", i),
			"Everything you need, in one place. Limited time offers every week.",
			finalURL)
		if err != nil {
			return err
		}
	}
	return nil
}
