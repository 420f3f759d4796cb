package controllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/blogem/keysubmit/dom"
	"github.com/blogem/keysubmit/services"
)

// PageController serves the hosted page and raises submit events on its form
type PageController struct {
	doc     *dom.Document
	handler *services.SubmitHandler

	// held from filling the form until its submit event has been handled so
	// concurrent requests never serialize each other's values
	submitMu sync.Mutex
}

// NewPageController creates a new page controller
func NewPageController(doc *dom.Document, handler *services.SubmitHandler) *PageController {
	return &PageController{
		doc:     doc,
		handler: handler,
	}
}

// Index handles GET /
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.doc.Render(w); err != nil {
		http.Error(w, "Failed to render page: "+err.Error(), http.StatusInternalServerError)
	}
}

// Submit handles POST /submit
func (c *PageController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}

	form := c.handler.Form()

	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	// the posted values are the only input; fields left out keep their markup defaults
	if err := form.Fill(r.PostForm); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dom.ErrFieldNotFound) || errors.Is(err, dom.ErrInvalidValue) {
			status = http.StatusBadRequest
		}
		renderError(w, status, err.Error())
		return
	}

	event, err := form.Submit()
	if err != nil {
		renderError(w, http.StatusInternalServerError, "Failed to submit form: "+err.Error())
		return
	}

	status := "dispatched"
	if !event.DefaultPrevented() {
		status = "navigated"
	}

	renderJSON(w, http.StatusAccepted, map[string]string{
		"status":   status,
		"form":     form.ID,
		"endpoint": c.handler.Endpoint(),
	})
}
