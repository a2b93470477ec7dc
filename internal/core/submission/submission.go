// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package submission implements the manager dashboard over artist applications.

Managers list submissions, narrow them by status, and set a new status on a
single record. Status changes live in memory only and are lost on restart.
*/
package submission

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/taibuivan/artistly/internal/platform/validate"
)

// Status is the review state of an application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReview   Status = "review"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// statusAll selects every submission in a list filter.
const statusAll = "all"

// Statuses lists every valid status in dashboard order.
var Statuses = []Status{StatusPending, StatusReview, StatusApproved, StatusRejected}

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Label is the capitalised badge text.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusReview:
		return "Review"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// Submission is an artist application awaiting review.
type Submission struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    []string  `json:"category"`
	City        string    `json:"city"`
	FeeRange    string    `json:"feeRange"`
	SubmittedAt Timestamp `json:"submittedAt"`
	Status      Status    `json:"status"`
}

// Timestamp is a submission time decoded from either an RFC 3339 timestamp
// or a plain date. Dates are taken as midnight UTC. It encodes as RFC 3339.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("submittedAt: %w", err)
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("submittedAt: %q is neither an RFC 3339 timestamp nor a date", raw)
}

// Stats are the dashboard summary cards.
type Stats struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	ThisMonth int `json:"thisMonth"`
}

// StatusChange is the body of a status update.
type StatusChange struct {
	Status Status `json:"status"`
}

// ParseStatusFilter turns the dashboard's status select into a filter.
//
// "all" and "" return the zero Status, meaning no constraint.
func ParseStatusFilter(raw string) (Status, error) {
	if raw == "" || raw == statusAll {
		return "", nil
	}
	status := Status(raw)
	if !status.IsValid() {
		return "", validate.RequiredError("status", "Must be one of: all, pending, review, approved, rejected")
	}
	return status, nil
}

func validateStatus(status Status) error {
	v := &validate.Validator{}
	if v.Required("status", string(status)).HasErrors() {
		return v.Err()
	}
	v.OneOf("status", string(status),
		string(StatusPending), string(StatusReview), string(StatusApproved), string(StatusRejected))
	return v.Err()
}
