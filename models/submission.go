package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Outcome values stored with each submission record
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// SubmissionRecord is the audit entry for one dispatched form submission.
// Field values are never stored, only their names.
type SubmissionRecord struct {
	ID         int64         `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	FormID     string        `json:"form_id"`
	Endpoint   string        `json:"endpoint"`
	FieldNames []string      `json:"field_names"`
	StatusCode int           `json:"status_code"`
	Outcome    string        `json:"outcome"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

// Succeeded reports whether the submission was classified as a success
func (r *SubmissionRecord) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// EncodeFieldNames stores field names as a JSON array. No names encode to
// the empty string.
func EncodeFieldNames(names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	b, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("failed to encode field names: %w", err)
	}
	return string(b), nil
}

// DecodeFieldNames is the inverse of EncodeFieldNames
func DecodeFieldNames(stored string) ([]string, error) {
	if stored == "" {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal([]byte(stored), &names); err != nil {
		return nil, fmt.Errorf("failed to decode field names: %w", err)
	}
	return names, nil
}
