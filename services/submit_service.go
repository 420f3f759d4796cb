package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/blogem/keysubmit/dom"
	"github.com/blogem/keysubmit/models"
	"github.com/blogem/keysubmit/repositories"
)

// SuccessMarker is the first console entry written for a successful submission
const SuccessMarker = "Submission was successful."

const (
	DefaultFormID   = "submit_key"
	DefaultEndpoint = "/poloniex/balance/"
)

var (
	// ErrUnexpectedStatus marks a response outside 2xx and 304
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedResponse marks a success status with a body that is not JSON
	ErrMalformedResponse = errors.New("malformed response")
)

var timeNow = func() time.Time {
	return time.Now()
}

// Outcome describes how one dispatched submission ended
type Outcome struct {
	FormID     string
	Endpoint   string
	Payload    models.Payload
	StatusCode int
	Body       []byte
	Err        error
	Duration   time.Duration
}

// Options configures a SubmitHandler
type Options struct {
	FormID   string
	Endpoint string
	// BaseURL resolves a relative Endpoint, playing the part of the page origin
	BaseURL string
	Client  *http.Client
	Console Console
	// Submissions receives an audit record for every dispatched request
	Submissions repositories.SubmissionRepository
	// OnFailure is called for network errors, unexpected statuses and
	// malformed responses. The console never sees failures.
	OnFailure func(Outcome)
}

// SubmitHandler intercepts a form's submit events and posts the serialized
// fields to a fixed endpoint without waiting for the response.
type SubmitHandler struct {
	form        *dom.Form
	endpoint    string
	client      *http.Client
	console     Console
	submissions repositories.SubmissionRepository
	onFailure   func(Outcome)

	bind     sync.Once
	inflight sync.WaitGroup
}

// Init is the page bootstrap: once doc is ready it looks up the configured
// form and binds a SubmitHandler to it.
func Init(doc *dom.Document, opts Options) (*SubmitHandler, error) {
	var handler *SubmitHandler
	err := doc.Ready(func(d *dom.Document) error {
		form, err := d.Form(formID(opts))
		if err != nil {
			return err
		}

		handler, err = NewSubmitHandler(form, opts)
		if err != nil {
			return err
		}

		handler.Bind()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize submit handler: %w", err)
	}
	return handler, nil
}

// NewSubmitHandler creates a handler for form. It does not bind it.
func NewSubmitHandler(form *dom.Form, opts Options) (*SubmitHandler, error) {
	if form == nil {
		return nil, errors.New("form is required")
	}

	endpoint, err := resolveEndpoint(opts.BaseURL, opts.Endpoint)
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}

	console := opts.Console
	if console == nil {
		console = NewLogConsole(nil)
	}

	return &SubmitHandler{
		form:        form,
		endpoint:    endpoint,
		client:      client,
		console:     console,
		submissions: opts.Submissions,
		onFailure:   opts.OnFailure,
	}, nil
}

func formID(opts Options) string {
	if opts.FormID == "" {
		return DefaultFormID
	}
	return opts.FormID
}

func resolveEndpoint(baseURL, endpoint string) (string, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	if baseURL == "" {
		return "", fmt.Errorf("base URL is required for relative endpoint %q", endpoint)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !base.IsAbs() {
		return "", fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	return base.ResolveReference(ref).String(), nil
}

// Form returns the bound form
func (h *SubmitHandler) Form() *dom.Form {
	return h.form
}

// Endpoint returns the absolute URL submissions are posted to
func (h *SubmitHandler) Endpoint() string {
	return h.endpoint
}

// Bind attaches the submit listener. Calling it again has no effect.
func (h *SubmitHandler) Bind() {
	h.bind.Do(func() {
		h.form.OnSubmit(h.HandleSubmit)
	})
}

// HandleSubmit suppresses the default navigation, serializes the form and
// dispatches the POST on its own goroutine.
func (h *SubmitHandler) HandleSubmit(e *dom.SubmitEvent) {
	e.PreventDefault()

	payload := dom.Serialize(h.form)

	h.inflight.Add(1)
	go h.dispatch(payload)
}

// Wait blocks until every dispatched submission has completed
func (h *SubmitHandler) Wait() {
	h.inflight.Wait()
}

// dispatch only writes the console on success. A failed submission is
// silent there (known limitation); OnFailure and the audit trail see it.
func (h *SubmitHandler) dispatch(payload models.Payload) {
	defer h.inflight.Done()

	start := timeNow()
	outcome := h.post(context.Background(), payload)
	outcome.Duration = timeNow().Sub(start)

	if outcome.Err == nil {
		h.console.Log(SuccessMarker)
		h.console.Log(strings.TrimSpace(string(outcome.Body)))
	} else if h.onFailure != nil {
		h.onFailure(outcome)
	}

	h.record(start, outcome)
}

func (h *SubmitHandler) post(ctx context.Context, payload models.Payload) Outcome {
	outcome := Outcome{
		FormID:   h.form.ID,
		Endpoint: h.endpoint,
		Payload:  payload,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, strings.NewReader(payload.Encode()))
	if err != nil {
		outcome.Err = fmt.Errorf("failed to build request: %w", err)
		return outcome
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := h.client.Do(req)
	if err != nil {
		outcome.Err = fmt.Errorf("failed to post submission: %w", err)
		return outcome
	}
	defer resp.Body.Close()

	outcome.StatusCode = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome.Err = fmt.Errorf("failed to read response: %w", err)
		return outcome
	}
	outcome.Body = body

	if !isSuccessStatus(resp.StatusCode) {
		outcome.Err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		return outcome
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && !json.Valid([]byte(trimmed)) {
		outcome.Err = fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
		return outcome
	}

	return outcome
}

func isSuccessStatus(code int) bool {
	return (code >= 200 && code < 300) || code == http.StatusNotModified
}

func (h *SubmitHandler) record(at time.Time, outcome Outcome) {
	if h.submissions == nil {
		return
	}

	entry := &models.SubmissionRecord{
		Timestamp:  at,
		FormID:     outcome.FormID,
		Endpoint:   outcome.Endpoint,
		FieldNames: outcome.Payload.Names(),
		StatusCode: outcome.StatusCode,
		Outcome:    models.OutcomeSuccess,
		Duration:   outcome.Duration,
	}
	if outcome.Err != nil {
		entry.Outcome = models.OutcomeFailure
		entry.Error = outcome.Err.Error()
	}

	if err := h.submissions.Create(context.Background(), entry); err != nil {
		log.Printf("Failed to record submission: %v", err)
	}
}
