// Package models contains the client-side data model for the user directory:
// queries, read-only user projections, and the new-user request with its
// local validation rules.
package models

import (
	"fmt"
	"time"
)

// UserQuery selects a page of the user directory. Ordering is fixed
// (descending by user id) and is not part of the query value.
type UserQuery struct {
	GroupID int
	Limit   int
	Offset  int
}

// UserRecord is a read-only projection of a directory user as returned by
// the server. Only user_id is guaranteed to be present.
type UserRecord struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

// UserCollectionResult is one page of the directory. Total reflects the full
// matching set on the server, independent of len(Rows).
type UserCollectionResult struct {
	Rows  []UserRecord
	Total int
}

// NewUserRequest describes a user to be created. Optional fields are
// pointers: nil means "absent" and the field is omitted from the payload
// entirely. Secret is the exception: the server schema requires the field
// even when empty, so it is always serialized.
type NewUserRequest struct {
	UserID     string
	GroupID    int
	StartTime  time.Time
	ExpiryTime time.Time
	Secret     string

	Name           *string
	Email          *string
	Department     *string
	Title          *string
	Photo          *string
	Phone          *string
	LoginID        *string
	SourceIP       *string
	PermissionID   *int
	AccessGroupIDs []int
}

// Validate checks the request locally, before any network call.
// It returns a FieldError naming the first violated field.
func (r *NewUserRequest) Validate() error {
	if r.UserID == "" {
		return &FieldError{Field: "user_id", Reason: "must not be empty"}
	}
	if r.GroupID <= 0 {
		return &FieldError{Field: "user_group_id", Reason: "must be a positive group id"}
	}
	if r.StartTime.IsZero() {
		return &FieldError{Field: "start_datetime", Reason: "must be set"}
	}
	if r.ExpiryTime.IsZero() {
		return &FieldError{Field: "expiry_datetime", Reason: "must be set"}
	}
	if r.ExpiryTime.Before(r.StartTime) {
		return &FieldError{Field: "expiry_datetime", Reason: "must not precede start_datetime"}
	}
	return nil
}

// FieldError reports a locally-detected invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}
