// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package onboard implements the four-step "Join as Artist" wizard.

A [Draft] carries the form values, the current step and optional image
metadata. Each forward move validates only the current step's fields; moving
back never loses data. Submitting re-validates everything, waits a simulated
latency and lands on the terminal success step.

Drafts are kept in a [DraftStore] with a TTL. Nothing is persisted beyond
that and submitted applications are only logged.
*/
package onboard

import (
	"math"
	"slices"
	"time"

	"github.com/taibuivan/artistly/pkg/pointer"
)

// Step is a wizard position. Steps 1 to 4 are form pages; 5 is terminal.
type Step int

const (
	StepBasicInfo  Step = 1
	StepCategories Step = 2
	StepDetails    Step = 3
	StepImage      Step = 4
	StepSuccess    Step = 5
)

// TotalSteps is the number of form pages shown in the progress bar.
const TotalSteps = 4

// Title is the card heading of the step.
func (s Step) Title() string {
	switch s {
	case StepBasicInfo:
		return "Basic Information"
	case StepCategories:
		return "Performance Categories"
	case StepDetails:
		return "Additional Details"
	case StepImage:
		return "Profile Image"
	case StepSuccess:
		return "Application Submitted!"
	}
	return ""
}

// Progress is the rounded completion percentage ("25% Complete").
func (s Step) Progress() int {
	return int(math.Round(float64(s) / TotalSteps * 100))
}

// Form holds the applicant's answers.
type Form struct {
	Name      string   `json:"name"`
	Bio       string   `json:"bio"`
	Category  []string `json:"category"`
	Languages []string `json:"languages"`
	FeeRange  string   `json:"feeRange"`
	Location  string   `json:"location"`
}

// FormPatch is a partial update; nil fields are left untouched.
type FormPatch struct {
	Name      *string   `json:"name,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Category  *[]string `json:"category,omitempty"`
	Languages *[]string `json:"languages,omitempty"`
	FeeRange  *string   `json:"feeRange,omitempty"`
	Location  *string   `json:"location,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p FormPatch) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.Category == nil &&
		p.Languages == nil && p.FeeRange == nil && p.Location == nil
}

// Merge returns f with every set field of p applied.
func (f Form) Merge(p FormPatch) Form {
	f.Name = pointer.Fallback(p.Name, f.Name)
	f.Bio = pointer.Fallback(p.Bio, f.Bio)
	if p.Category != nil {
		f.Category = dedupe(*p.Category)
	}
	if p.Languages != nil {
		f.Languages = dedupe(*p.Languages)
	}
	f.FeeRange = pointer.Fallback(p.FeeRange, f.FeeRange)
	f.Location = pointer.Fallback(p.Location, f.Location)
	return f
}

// ImageMeta describes an uploaded profile image. The bytes are not kept.
type ImageMeta struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// Draft is an in-progress (or finished) application.
type Draft struct {
	ID          string     `json:"id"`
	Step        Step       `json:"step"`
	Form        Form       `json:"form"`
	Image       *ImageMeta `json:"image,omitempty"`
	Submitting  bool       `json:"submitting"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// Done reports whether the draft reached the success step.
func (d Draft) Done() bool {
	return d.Step == StepSuccess
}

// Locked reports whether the draft no longer accepts edits.
func (d Draft) Locked() bool {
	return d.Submitting || d.Done()
}

// Clone returns a copy that shares no slices or pointers with d.
func (d Draft) Clone() Draft {
	d.Form.Category = slices.Clone(d.Form.Category)
	d.Form.Languages = slices.Clone(d.Form.Languages)
	if d.Image != nil {
		image := *d.Image
		d.Image = &image
	}
	if d.SubmittedAt != nil {
		at := *d.SubmittedAt
		d.SubmittedAt = &at
	}
	return d
}

// newDraft starts a draft at step 1 with empty multi-selects.
func newDraft(id string, now time.Time) Draft {
	return Draft{
		ID:   id,
		Step: StepBasicInfo,
		Form: Form{
			Category:  []string{},
			Languages: []string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// dedupe drops repeated entries, keeping first occurrences in order.
// Checkbox toggles are set-like.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
