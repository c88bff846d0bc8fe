package port

import (
	"context"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Implementations must provide
// read-your-writes consistency for the calling goroutine.
type CampaignRepository interface {
	// Create inserts a new campaign record.
	Create(ctx context.Context, c *domain.Campaign) error
	// GetByID returns a campaign by id, or nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// List returns campaigns ordered by creation time descending. When
	// status is non-nil only campaigns in that status are returned.
	List(ctx context.Context, status *domain.Status) ([]domain.Campaign, error)
	// Update persists the mutable lifecycle fields of an existing campaign
	// (status, google campaign id, updated_at).
	Update(ctx context.Context, c *domain.Campaign) error
	// Delete removes a campaign and reports whether a row was deleted.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
