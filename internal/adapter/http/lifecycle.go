package httpadapter

import (
	"net/http"
)

// handlePublishCampaign runs the remote publish workflow for a DRAFT
// campaign. Warnings from the non-fatal steps (asset, ad group/ad) are
// returned alongside the published campaign; they never turn the response
// into a failure.
func (h *Handler) handlePublishCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if h.customerID == "" {
		writeError(w, http.StatusInternalServerError, "Google Ads customer ID not configured")
		return
	}

	c, warnings, err := h.svc.Publish(r.Context(), id, h.customerID)
	if err != nil {
		h.respondServiceError(w, "publish campaign", err)
		return
	}
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Campaign published successfully",
		"campaign": toCampaignResponse(c),
		"warnings": warnings,
	})
}

// handleEnableCampaign sets a published campaign to ENABLED. Billing becomes
// active on the platform once this succeeds.
func (h *Handler) handleEnableCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if h.customerID == "" {
		writeError(w, http.StatusInternalServerError, "Google Ads customer ID not configured")
		return
	}

	c, err := h.svc.Enable(r.Context(), id, h.customerID)
	if err != nil {
		h.respondServiceError(w, "enable campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Campaign enabled successfully",
		"campaign": toCampaignResponse(c),
	})
}

// handlePauseCampaign sets a published campaign to PAUSED.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if h.customerID == "" {
		writeError(w, http.StatusInternalServerError, "Google Ads customer ID not configured")
		return
	}

	c, err := h.svc.Pause(r.Context(), id, h.customerID)
	if err != nil {
		h.respondServiceError(w, "pause campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Campaign paused successfully",
		"campaign": toCampaignResponse(c),
	})
}
