package httpadapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
)

func publishedCampaign() *domain.Campaign {
	c := sampleCampaign()
	googleID := "9001"
	c.GoogleCampaignID = &googleID
	c.Status = domain.StatusPublished
	return c
}

func TestPublishCampaignEndpoint(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	c := publishedCampaign()
	svc.EXPECT().
		Publish(mock.Anything, c.ID, "123").
		Return(c, []string{"Image asset creation failed: status 404"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+c.ID.String()+"/publish", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	if out["message"] != "Campaign published successfully" {
		t.Fatalf("unexpected message %v", out["message"])
	}
	warnings := out["warnings"].([]any)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v", warnings)
	}
	campaign := out["campaign"].(map[string]any)
	if campaign["google_campaign_id"] != "9001" {
		t.Fatalf("google_campaign_id = %v", campaign["google_campaign_id"])
	}
}

// TestPublishCampaignEmptyWarnings: a nil warning slice from the service must
// serialize as [] rather than null.
func TestPublishCampaignEmptyWarnings(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	c := publishedCampaign()
	svc.EXPECT().Publish(mock.Anything, c.ID, "123").Return(c, nil, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+c.ID.String()+"/publish", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	warnings, ok := decodeBody(t, rec)["warnings"].([]any)
	if !ok {
		t.Fatalf("warnings not an array: %s", rec.Body.String())
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestPublishCampaignInvalidTransition(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	id := uuid.New()
	svc.EXPECT().
		Publish(mock.Anything, id, "123").
		Return(nil, nil, &domain.InvalidTransitionError{Op: "publish", From: domain.StatusEnabled})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/publish", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPublishCampaignRemoteFailure(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	id := uuid.New()
	svc.EXPECT().
		Publish(mock.Anything, id, "123").
		Return(nil, nil, &domain.PublishError{
			Step: "budget",
			Err:  &domain.RemoteAPIError{Code: "401", Message: "unauthenticated"},
		})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/publish", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPublishCampaignNotFound(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	id := uuid.New()
	svc.EXPECT().Publish(mock.Anything, id, "123").Return(nil, nil, domain.ErrNotFound)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/publish", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

// TestLifecycleRequiresCustomerID: all remote operations refuse to run when
// no Google Ads customer id is configured.
func TestLifecycleRequiresCustomerID(t *testing.T) {
	_, router := newTestHandler(t, "")
	id := uuid.New().String()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/campaigns/" + id + "/publish"},
		{http.MethodPut, "/api/v1/campaigns/" + id + "/enable"},
		{http.MethodPut, "/api/v1/campaigns/" + id + "/pause"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, nil)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: status = %d", tc.method, tc.path, rec.Code)
		}
		if decodeBody(t, rec)["error"] != "Google Ads customer ID not configured" {
			t.Errorf("%s %s: body = %s", tc.method, tc.path, rec.Body.String())
		}
	}
}

func TestEnableCampaignEndpoint(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	c := publishedCampaign()
	c.Status = domain.StatusEnabled
	svc.EXPECT().Enable(mock.Anything, c.ID, "123").Return(c, nil)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/campaigns/"+c.ID.String()+"/enable", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	out := decodeBody(t, rec)
	if out["message"] != "Campaign enabled successfully" {
		t.Fatalf("unexpected message %v", out["message"])
	}
	campaign := out["campaign"].(map[string]any)
	if campaign["status"] != string(domain.StatusEnabled) {
		t.Fatalf("status = %v", campaign["status"])
	}
}

func TestPauseCampaignEndpoint(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	c := publishedCampaign()
	c.Status = domain.StatusPaused
	svc.EXPECT().Pause(mock.Anything, c.ID, "123").Return(c, nil)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/campaigns/"+c.ID.String()+"/pause", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["message"] != "Campaign paused successfully" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestEnableCampaignRemoteFailure(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	id := uuid.New()
	svc.EXPECT().
		Enable(mock.Anything, id, "123").
		Return(nil, &domain.RemoteAPIError{Code: "500", Message: "internal error"})

	rec := doJSON(t, router, http.MethodPut, "/api/v1/campaigns/"+id.String()+"/enable", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPauseCampaignUnexpectedError(t *testing.T) {
	svc, router := newTestHandler(t, "123")
	id := uuid.New()
	svc.EXPECT().Pause(mock.Anything, id, "123").Return(nil, errors.New("connection reset"))

	rec := doJSON(t, router, http.MethodPut, "/api/v1/campaigns/"+id.String()+"/pause", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "internal error" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
