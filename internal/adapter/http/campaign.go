package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const dateLayout = "2006-01-02"

// createCampaignRequest is the JSON body accepted by POST /campaigns.
// Dates are plain YYYY-MM-DD strings; the daily budget is in micros.
type createCampaignRequest struct {
	Name          string  `json:"name"`
	Objective     string  `json:"objective"`
	CampaignType  string  `json:"campaign_type"`
	DailyBudget   int64   `json:"daily_budget"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	AdGroupName   string  `json:"ad_group_name"`
	AdHeadline    string  `json:"ad_headline"`
	AdDescription string  `json:"ad_description"`
	FinalURL      string  `json:"final_url"`
	AssetURL      *string `json:"asset_url"`
}

// validate checks every field and collects per-field messages. Validation
// lives here on purpose: nothing invalid may reach the core.
func (req *createCampaignRequest) validate() (port.CreateCampaignReq, map[string]string) {
	problems := map[string]string{}

	if req.Name == "" || utf8.RuneCountInString(req.Name) > 255 {
		problems["name"] = "must be between 1 and 255 characters"
	}
	if !slices.Contains(domain.Objectives(), req.Objective) {
		problems["objective"] = "must be one of: " + strings.Join(domain.Objectives(), ", ")
	}
	if !slices.Contains(domain.CampaignTypes(), req.CampaignType) {
		problems["campaign_type"] = "must be one of: " + strings.Join(domain.CampaignTypes(), ", ")
	}
	if req.DailyBudget < domain.MinDailyBudgetMicros {
		problems["daily_budget"] = fmt.Sprintf("must be at least %d micros", domain.MinDailyBudgetMicros)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var startDate time.Time
	if t, err := time.Parse(dateLayout, req.StartDate); err != nil {
		problems["start_date"] = "must be a date in YYYY-MM-DD format"
	} else if t.Before(today) {
		problems["start_date"] = "cannot be in the past"
	} else {
		startDate = t
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		if t, err := time.Parse(dateLayout, *req.EndDate); err != nil {
			problems["end_date"] = "must be a date in YYYY-MM-DD format"
		} else if !startDate.IsZero() && t.Before(startDate) {
			problems["end_date"] = "cannot be before start_date"
		} else {
			endDate = &t
		}
	}

	if req.AdGroupName == "" || utf8.RuneCountInString(req.AdGroupName) > 255 {
		problems["ad_group_name"] = "must be between 1 and 255 characters"
	}
	if req.AdHeadline == "" || utf8.RuneCountInString(req.AdHeadline) > 255 {
		problems["ad_headline"] = "must be between 1 and 255 characters"
	}
	if req.AdDescription == "" || utf8.RuneCountInString(req.AdDescription) > 500 {
		problems["ad_description"] = "must be between 1 and 500 characters"
	}
	if !validHTTPURL(req.FinalURL) {
		problems["final_url"] = "must be a valid http(s) URL"
	}

	var assetURL *string
	if req.AssetURL != nil && *req.AssetURL != "" {
		if !validHTTPURL(*req.AssetURL) {
			problems["asset_url"] = "must be a valid http(s) URL"
		} else {
			assetURL = req.AssetURL
		}
	}

	if len(problems) > 0 {
		return port.CreateCampaignReq{}, problems
	}
	return port.CreateCampaignReq{
		Name:              req.Name,
		Objective:         req.Objective,
		CampaignType:      req.CampaignType,
		DailyBudgetMicros: req.DailyBudget,
		StartDate:         startDate,
		EndDate:           endDate,
		AdGroupName:       req.AdGroupName,
		AdHeadline:        req.AdHeadline,
		AdDescription:     req.AdDescription,
		FinalURL:          req.FinalURL,
		AssetURL:          assetURL,
	}, nil
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// campaignResponse is the JSON representation of a campaign.
type campaignResponse struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Objective        string        `json:"objective"`
	CampaignType     string        `json:"campaign_type"`
	DailyBudget      int64         `json:"daily_budget"`
	StartDate        string        `json:"start_date"`
	EndDate          *string       `json:"end_date,omitempty"`
	Status           domain.Status `json:"status"`
	AdGroupName      string        `json:"ad_group_name"`
	AdHeadline       string        `json:"ad_headline"`
	AdDescription    string        `json:"ad_description"`
	FinalURL         string        `json:"final_url"`
	AssetURL         *string       `json:"asset_url,omitempty"`
	GoogleCampaignID *string       `json:"google_campaign_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:               c.ID.String(),
		Name:             c.Name,
		Objective:        c.Objective,
		CampaignType:     c.CampaignType,
		DailyBudget:      c.DailyBudgetMicros,
		StartDate:        c.StartDate.Format(dateLayout),
		Status:           c.Status,
		AdGroupName:      c.AdGroupName,
		AdHeadline:       c.AdHeadline,
		AdDescription:    c.AdDescription,
		FinalURL:         c.FinalURL,
		AssetURL:         c.AssetURL,
		GoogleCampaignID: c.GoogleCampaignID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	return resp
}

// handleCreateCampaign validates the request body and stores a new DRAFT
// campaign. Validation problems produce HTTP 400 with per-field messages.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input, problems := req.validate()
	if problems != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "Validation error",
			"messages": problems,
		})
		return
	}

	c, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Campaign created successfully",
		"campaign": toCampaignResponse(c),
	})
}

// handleListCampaigns returns all campaigns, optionally filtered with the
// `status` query parameter. Unknown statuses produce HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var status *domain.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.Status(s)
		if !st.Valid() {
			writeError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
		status = &st
	}

	campaigns, err := h.svc.List(r.Context(), status)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": out,
		"count":     len(out),
	})
}

// handleGetCampaign returns a single campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleDeleteCampaign removes a campaign.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("delete campaign error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// campaignID extracts and parses the {id} path parameter. On failure it
// writes HTTP 400 and reports false.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return uuid.Nil, false
	}
	return id, true
}
