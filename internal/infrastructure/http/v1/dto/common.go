// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"kontora/internal/core/id"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// FormatTimestamp renders a timestamp in the API's canonical form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// FormatTimestampPtr renders an optional timestamp, nil stays nil.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := FormatTimestamp(*t)
	return &v
}

// FormatDatePtr renders an optional date, nil stays nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(dateLayout)
	return &v
}

// ParseDate parses a date in the API's canonical form.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// UIDResponse for create operations.
type UIDResponse struct {
	UID string `json:"uid"`
}

// NewUIDResponse creates a UID response.
func NewUIDResponse(i id.ID) UIDResponse {
	return UIDResponse{UID: i.String()}
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse documents the error body shape rendered by the error
// middleware.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ListResponse wraps list results.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse creates a list response; Items is never null.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// UIDString renders an optional id in canonical string form.
func UIDString(i *id.ID) *string {
	if i == nil {
		return nil
	}
	v := i.String()
	return &v
}
