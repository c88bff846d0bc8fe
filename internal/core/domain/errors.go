package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a campaign does not exist in the store.
var ErrNotFound = errors.New("campaign not found")

// InvalidTransitionError reports an attempt to move a campaign through the
// status state machine in an order it does not allow, e.g. enabling a
// campaign that was never published.
type InvalidTransitionError struct {
	Op   string
	From Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s campaign in status %s", e.Op, e.From)
}

// RemoteAPIError is a rejection reported by the Google Ads API. Code carries
// the remote status or error code when the response included one.
type RemoteAPIError struct {
	Code    string
	Message string
}

func (e *RemoteAPIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("google ads api error: %s", e.Message)
	}
	return fmt.Sprintf("google ads api error: %s - %s", e.Code, e.Message)
}

// AssetFetchError reports a failure to download image bytes from an asset
// URL. It is recoverable: the publish workflow records it as a warning.
type AssetFetchError struct {
	URL string
	Err error
}

func (e *AssetFetchError) Error() string {
	return fmt.Sprintf("failed to fetch asset %s: %v", e.URL, e.Err)
}

func (e *AssetFetchError) Unwrap() error { return e.Err }

// PublishError aggregates a fatal failure of the budget or campaign creation
// step of the publish workflow. Callers must not retry automatically since
// the remote create calls are not idempotent.
type PublishError struct {
	Step string
	Err  error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish failed at %s step: %v", e.Step, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
