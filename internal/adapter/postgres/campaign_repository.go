package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, objective, campaign_type, daily_budget_micros, start_date, end_date,
	status, ad_group_name, ad_headline, ad_description, final_url, asset_url, google_campaign_id,
	created_at, updated_at`

// Create inserts a new campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		c.ID, c.Name, c.Objective, c.CampaignType, c.DailyBudgetMicros, c.StartDate, c.EndDate,
		c.Status, c.AdGroupName, c.AdHeadline, c.AdDescription, c.FinalURL, c.AssetURL,
		c.GoogleCampaignID, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetByID returns a campaign by id, or nil when no row exists.
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns campaigns ordered by creation time descending, optionally
// filtered by status.
func (r *CampaignRepository) List(ctx context.Context, status *domain.Status) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// Update persists the lifecycle fields the service is allowed to mutate.
// Everything else is immutable after creation.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns
		SET status = $1, google_campaign_id = $2, updated_at = $3
		WHERE id = $4`,
		c.Status, c.GoogleCampaignID, c.UpdatedAt, c.ID)
	return err
}

// Delete removes a campaign row and reports whether one was deleted.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Objective,
		&c.CampaignType,
		&c.DailyBudgetMicros,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.AdGroupName,
		&c.AdHeadline,
		&c.AdDescription,
		&c.FinalURL,
		&c.AssetURL,
		&c.GoogleCampaignID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
