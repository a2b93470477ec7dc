package onboard

import (
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
)

// Field names as they appear in form payloads and error details.
const (
	FieldName      = "name"
	FieldBio       = "bio"
	FieldCategory  = "category"
	FieldLanguages = "languages"
	FieldFeeRange  = "feeRange"
	FieldLocation  = "location"
	FieldImage     = "profileImage"
)

// Validation messages shown under each field.
const (
	MsgName      = "Name must be at least 2 characters"
	MsgBio       = "Bio must be at least 50 characters"
	MsgCategory  = "Please select at least one category"
	MsgLanguages = "Please select at least one language"
	MsgFeeRange  = "Please select a fee range"
	MsgLocation  = "Location is required"
)

// Minimum lengths, counted in Unicode characters without trimming.
const (
	minNameLen     = 2
	minBioLen      = 50
	minLocationLen = 2
)

// StepFields lists the fields a step is responsible for.
func StepFields(step Step) []string {
	switch step {
	case StepBasicInfo:
		return []string{FieldName, FieldBio}
	case StepCategories:
		return []string{FieldCategory}
	case StepDetails:
		return []string{FieldLanguages, FieldFeeRange, FieldLocation}
	}
	return nil
}

// ValidateStep checks only the fields belonging to step.
func ValidateStep(form Form, step Step) error {
	v := &validate.Validator{}
	checkStep(v, form, step)
	return v.Err()
}

// ValidateAll checks the whole form, as done before submission.
func ValidateAll(form Form) error {
	v := &validate.Validator{}
	for step := StepBasicInfo; step <= StepImage; step++ {
		checkStep(v, form, step)
	}
	return v.Err()
}

func checkStep(v *validate.Validator, form Form, step Step) {
	switch step {
	case StepBasicInfo:
		v.MinLen(FieldName, form.Name, minNameLen, MsgName).
			MinLen(FieldBio, form.Bio, minBioLen, MsgBio)
	case StepCategories:
		v.MinItems(FieldCategory, len(form.Category), 1, MsgCategory)
	case StepDetails:
		v.MinItems(FieldLanguages, len(form.Languages), 1, MsgLanguages).
			Custom(FieldFeeRange, form.FeeRange == "", MsgFeeRange).
			MinLen(FieldLocation, form.Location, minLocationLen, MsgLocation)
	}
}

// Next validates the current step and advances on success.
//
// On failure the draft is returned unchanged together with a
// VALIDATION_ERROR carrying one detail per failing field.
func Next(draft Draft) (Draft, error) {
	if err := guardEditable(draft); err != nil {
		return draft, err
	}
	if draft.Step >= StepImage {
		return draft, apperr.Unprocessable("The last step is submitted, not advanced")
	}
	if err := ValidateStep(draft.Form, draft.Step); err != nil {
		return draft, err
	}
	draft.Step++
	return draft, nil
}

// Back moves one step back without touching form values. Step 1 stays put.
func Back(draft Draft) (Draft, error) {
	if err := guardEditable(draft); err != nil {
		return draft, err
	}
	if draft.Step > StepBasicInfo {
		draft.Step--
	}
	return draft, nil
}

func guardEditable(draft Draft) error {
	switch {
	case draft.Submitting:
		return apperr.Conflict("Application is being submitted")
	case draft.Done():
		return apperr.Conflict("Application has already been submitted")
	}
	return nil
}
