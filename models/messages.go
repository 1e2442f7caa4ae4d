// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServiceMessage is a structured message returned by the document service when
// it rejects data. Target names the offending field, empty for global messages.
type ServiceMessage struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Target  string `json:"target,omitempty"`

	// LongtextURL is used as the text when Message is empty.
	LongtextURL string `json:"longtext_url,omitempty"`
}

// Text returns the human-readable text of the message.
func (m ServiceMessage) Text() string {
	if m.Message != "" {
		return m.Message
	}
	if m.LongtextURL != "" {
		return m.LongtextURL
	}
	return "Unknown error"
}

// ErrorEnvelope is the OData error response body.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the top-level error and its details. Some services put the
// details under innererror.errordetails instead.
type ErrorBody struct {
	Code       string           `json:"code"`
	Message    string           `json:"message"`
	Target     string           `json:"target,omitempty"`
	Details    []ServiceMessage `json:"details,omitempty"`
	InnerError *InnerError      `json:"innererror,omitempty"`
}

// InnerError is the legacy location of detail messages.
type InnerError struct {
	ErrorDetails []ServiceMessage `json:"errordetails,omitempty"`
}

// Messages returns the detail messages of the envelope, preferring details over
// innererror.errordetails.
func (e ErrorEnvelope) Messages() []ServiceMessage {
	if len(e.Error.Details) > 0 {
		return e.Error.Details
	}
	if e.Error.InnerError != nil && len(e.Error.InnerError.ErrorDetails) > 0 {
		return e.Error.InnerError.ErrorDetails
	}
	return nil
}
