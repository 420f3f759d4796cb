package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogem/keysubmit/models"
	"github.com/blogem/keysubmit/services"
)

// SubmissionController exposes the submission audit trail
type SubmissionController struct {
	history services.HistoryService
}

// NewSubmissionController creates a new submission controller. A nil
// history means the audit is disabled.
func NewSubmissionController(history services.HistoryService) *SubmissionController {
	return &SubmissionController{
		history: history,
	}
}

// Index handles GET /submissions
func (c *SubmissionController) Index(w http.ResponseWriter, r *http.Request) {
	if c.history == nil {
		renderError(w, http.StatusNotFound, "Submission audit is disabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			renderError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := c.history.GetRecent(r.Context(), limit)
	if err != nil {
		renderError(w, http.StatusInternalServerError, "Failed to load submissions: "+err.Error())
		return
	}

	if records == nil {
		records = []models.SubmissionRecord{}
	}

	renderJSON(w, http.StatusOK, records)
}

// Summary handles GET /submissions/summary
func (c *SubmissionController) Summary(w http.ResponseWriter, r *http.Request) {
	if c.history == nil {
		renderError(w, http.StatusNotFound, "Submission audit is disabled")
		return
	}

	summary, err := c.history.GetSummary(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "Failed to load summary: "+err.Error())
		return
	}

	renderJSON(w, http.StatusOK, summary)
}
