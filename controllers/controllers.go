package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/blogem/keysubmit/dom"
	"github.com/blogem/keysubmit/services"
)

// renderJSON writes data as a JSON response with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}

// renderError writes a JSON error body
func renderError(w http.ResponseWriter, statusCode int, message string) {
	renderJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Page        *PageController
	Submissions *SubmissionController
}

// NewControllers creates and initializes all controller instances.
// srvs may be nil when the submission audit is disabled.
func NewControllers(doc *dom.Document, handler *services.SubmitHandler, srvs *services.Services) *Controllers {
	var history services.HistoryService
	if srvs != nil {
		history = srvs.History
	}
	return &Controllers{
		Page:        NewPageController(doc, handler),
		Submissions: NewSubmissionController(history),
	}
}
