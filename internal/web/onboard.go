package web

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/taibuivan/artistly/internal/core/onboard"
	"github.com/taibuivan/artistly/internal/core/reference"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/notice"
	"github.com/taibuivan/artistly/pkg/pointer"
)

// Wizard form actions.
const (
	actionNext   = "next"
	actionBack   = "back"
	actionSubmit = "submit"
	actionSave   = "save"
)

// wizardView is what the onboarding page renders.
type wizardView struct {
	Draft   onboard.Draft
	Options reference.OnboardingCatalogue
	Errors  *apperr.AppError

	// FeeBounds spells out the chosen fee range, empty when none matches.
	FeeBounds string
}

func (view wizardView) fieldError(field string) string {
	if view.Errors == nil {
		return ""
	}
	return view.Errors.FieldMessage(field)
}

func (handler *Handler) onboard(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.currentDraft(writer, request)
	if err != nil {
		handler.writeError(writer, request, "/onboard", err)
		return
	}
	handler.renderWizard(writer, request, draft, nil)
}

// onboardStep saves the current step's fields, then applies the action.
func (handler *Handler) onboardStep(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	draft, err := handler.currentDraft(writer, request)
	if err != nil {
		handler.writeError(writer, request, "/onboard", err)
		return
	}
	if err := request.ParseForm(); err != nil {
		handler.writeError(writer, request, "/onboard", apperr.ValidationError("Invalid form submission"))
		return
	}

	if patch := patchFromForm(draft.Step, request); !patch.Empty() {
		draft, err = handler.Wizard.Update(ctx, draft.ID, patch)
		if err != nil {
			handler.wizardFailure(writer, request, draft, err)
			return
		}
	}

	switch request.PostFormValue("action") {
	case actionBack:
		_, err = handler.Wizard.Back(ctx, draft.ID)
	case actionNext:
		_, err = handler.Wizard.Next(ctx, draft.ID)
	case actionSubmit:
		n, submitErr := handler.submit(ctx, draft.ID)
		if submitErr == nil {
			writeFlash(writer, n, handler.secureCookies)
		}
		err = submitErr
	case actionSave, "":
	default:
		err = apperr.ValidationError("Unknown wizard action")
	}
	if err != nil {
		handler.wizardFailure(writer, request, draft, err)
		return
	}

	redirect(writer, request, "/onboard")
}

func (handler *Handler) submit(ctx context.Context, id string) (notice.Notice, error) {
	_, n, err := handler.Wizard.Submit(ctx, id)
	return n, err
}

func (handler *Handler) onboardImage(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.currentDraft(writer, request)
	if err != nil {
		handler.writeError(writer, request, "/onboard", err)
		return
	}

	image, err := onboard.ReadImageUpload(writer, request)
	if err == nil {
		_, err = handler.Wizard.AttachImage(request.Context(), draft.ID, image)
	}
	if err != nil {
		handler.wizardFailure(writer, request, draft, err)
		return
	}

	redirect(writer, request, "/onboard")
}

// onboardRestart drops the current draft and starts over.
func (handler *Handler) onboardRestart(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.DraftCookieName); err == nil && cookie.Value != "" {
		if err := handler.Wizard.Discard(request.Context(), cookie.Value); err != nil {
			handler.writeError(writer, request, "/onboard", err)
			return
		}
	}

	if _, err := handler.startDraft(writer, request); err != nil {
		handler.writeError(writer, request, "/onboard", err)
		return
	}
	redirect(writer, request, "/onboard")
}

// wizardFailure re-renders the step with field errors, or falls back to
// the error page for anything that is not a validation failure.
func (handler *Handler) wizardFailure(writer http.ResponseWriter, request *http.Request, draft onboard.Draft, err error) {
	appError := apperr.As(err)
	if appError == nil || appError.Code != "VALIDATION_ERROR" {
		handler.writeError(writer, request, "/onboard", err)
		return
	}

	// Show the stored values, which include what was just typed.
	if stored, getErr := handler.Wizard.Get(request.Context(), draft.ID); getErr == nil {
		draft = stored
	}
	handler.renderWizard(writer, request, draft, appError)
}

// currentDraft resolves the draft named by the cookie, starting a new one
// when the cookie is missing or the draft expired.
func (handler *Handler) currentDraft(writer http.ResponseWriter, request *http.Request) (onboard.Draft, error) {
	cookie, err := request.Cookie(constants.DraftCookieName)
	if err != nil || cookie.Value == "" {
		return handler.startDraft(writer, request)
	}

	draft, err := handler.Wizard.Get(request.Context(), cookie.Value)
	var appError *apperr.AppError
	if errors.As(err, &appError) && appError.Code == "NOT_FOUND" {
		return handler.startDraft(writer, request)
	}
	return draft, err
}

func (handler *Handler) startDraft(writer http.ResponseWriter, request *http.Request) (onboard.Draft, error) {
	draft, err := handler.Wizard.Start(request.Context())
	if err != nil {
		return onboard.Draft{}, err
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.DraftCookieName,
		Value:    draft.ID,
		Path:     "/onboard",
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return draft, nil
}

// patchFromForm reads only the fields owned by step. An unticked checkbox
// group arrives as no values and clears the list.
func patchFromForm(step onboard.Step, request *http.Request) onboard.FormPatch {
	form := request.PostForm
	switch step {
	case onboard.StepBasicInfo:
		return onboard.FormPatch{
			Name: pointer.To(form.Get(onboard.FieldName)),
			Bio:  pointer.To(form.Get(onboard.FieldBio)),
		}
	case onboard.StepCategories:
		return onboard.FormPatch{Category: pointer.To(nonNil(form[onboard.FieldCategory]))}
	case onboard.StepDetails:
		return onboard.FormPatch{
			Languages: pointer.To(nonNil(form[onboard.FieldLanguages])),
			FeeRange:  pointer.To(form.Get(onboard.FieldFeeRange)),
			Location:  pointer.To(form.Get(onboard.FieldLocation)),
		}
	}
	return onboard.FormPatch{}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (handler *Handler) renderWizard(writer http.ResponseWriter, request *http.Request, draft onboard.Draft, appError *apperr.AppError) {
	view := wizardView{Draft: draft, Options: handler.Reference.Onboarding(), Errors: appError}
	if fee, ok := handler.Reference.FeeRange(draft.Form.FeeRange); ok {
		view.FeeBounds = fee.Bounds()
	}

	status := http.StatusOK
	if appError != nil {
		status = appError.HTTPStatus
	}

	handler.writePage(writer, request, page{
		Title:  "Join as Artist",
		Active: "/onboard",
		Status: status,
		Body:   wizardBody(view),
	})
}

func wizardBody(view wizardView) templ.Component {
	return component(func(_ context.Context, out *printer) {
		draft := view.Draft
		if draft.Done() {
			out.raw(`<section class="success"><h1>Application Submitted!</h1>` +
				`<p>Thank you for joining Artistly. We'll review your application and get back to you within 2-3 business days.</p>` +
				`<p><a class="button" href="/">Return to Home</a></p>` +
				`<form method="post" action="/onboard/restart"><button type="submit">Start a new application</button></form></section>`)
			return
		}

		out.raw(`<section class="wizard"><h1>Join as an Artist</h1>` +
			`<p>Share your talent with the world and connect with event planners</p>`)
		out.f(`<div class="progress"><span>Step %d of %d</span><span>%d%% Complete</span>`+
			`<progress max="100" value="%d"></progress></div>`,
			int(draft.Step), onboard.TotalSteps, draft.Step.Progress(), draft.Step.Progress())

		if view.Errors != nil && len(view.Errors.Details) == 0 {
			out.f(`<p class="error">%s</p>`, esc(view.Errors.Message))
		}

		if draft.Step == onboard.StepImage {
			writeImageStep(out, view)
		}

		out.f(`<form method="post" action="/onboard"><fieldset><legend>%s</legend>`, esc(draft.Step.Title()))
		switch draft.Step {
		case onboard.StepBasicInfo:
			writeBasicInfo(out, view)
		case onboard.StepCategories:
			writeCheckboxes(out, onboard.FieldCategory, "Select your performance categories *", view.Options.Categories, draft.Form.Category, view.fieldError(onboard.FieldCategory))
		case onboard.StepDetails:
			writeDetails(out, view)
		case onboard.StepImage:
			writeSummary(out, view)
		}
		out.raw(`</fieldset><div class="wizard-actions">`)

		if draft.Submitting {
			out.raw(`<p class="submitting">Submitting...</p></div></form></section>`)
			return
		}

		disabled := ""
		if draft.Step == onboard.StepBasicInfo {
			disabled = " disabled"
		}
		out.f(`<button type="submit" name="action" value="%s"%s>Previous</button>`, actionBack, disabled)
		if draft.Step == onboard.StepImage {
			out.f(`<button type="submit" name="action" value="%s">Submit Application</button>`, actionSubmit)
		} else {
			out.f(`<button type="submit" name="action" value="%s">Next</button>`, actionNext)
		}
		out.raw(`</div></form></section>`)
	})
}

func writeFieldError(out *printer, message string) {
	if message != "" {
		out.f(`<p class="field-error">%s</p>`, esc(message))
	}
}

func writeBasicInfo(out *printer, view wizardView) {
	form := view.Draft.Form
	out.f(`<label for="name">Full Name *</label><input id="name" name="%s" placeholder="Enter your full name" value="%s">`,
		onboard.FieldName, esc(form.Name))
	writeFieldError(out, view.fieldError(onboard.FieldName))
	out.f(`<label for="bio">Bio *</label><textarea id="bio" name="%s" rows="5" `+
		`placeholder="Tell us about yourself, your experience, and what makes you unique...">%s</textarea>`,
		onboard.FieldBio, esc(form.Bio))
	writeFieldError(out, view.fieldError(onboard.FieldBio))
}

func writeCheckboxes(out *printer, field, legend string, options, current []string, errorMessage string) {
	out.f(`<p>%s</p><div class="checkboxes">`, esc(legend))
	for _, option := range options {
		out.f(`<label><input type="checkbox" name="%s" value="%s"%s> %s</label>`,
			esc(field), esc(option), checked(slices.Contains(current, option)), esc(option))
	}
	out.raw(`</div>`)
	writeFieldError(out, errorMessage)
}

func writeDetails(out *printer, view wizardView) {
	form := view.Draft.Form
	writeCheckboxes(out, onboard.FieldLanguages, "Languages Spoken *", view.Options.Languages, form.Languages, view.fieldError(onboard.FieldLanguages))

	out.f(`<label for="feeRange">Fee Range *</label><select id="feeRange" name="%s">`, onboard.FieldFeeRange)
	out.f(`<option value=""%s>Select your fee range</option>`, selected(form.FeeRange == ""))
	for _, r := range view.Options.FeeRanges {
		out.f(`<option value="%s" data-min="%s"%s%s>%s</option>`,
			esc(r.Label), r.Min.String(), feeMaxAttr(r), selected(r.Label == form.FeeRange), esc(r.Label))
	}
	out.raw(`</select>`)
	if view.FeeBounds != "" {
		out.f(`<p class="hint">%s per event</p>`, esc(view.FeeBounds))
	}
	writeFieldError(out, view.fieldError(onboard.FieldFeeRange))

	out.f(`<label for="location">Location *</label><input id="location" name="%s" placeholder="City, State" value="%s">`,
		onboard.FieldLocation, esc(form.Location))
	writeFieldError(out, view.fieldError(onboard.FieldLocation))
}

func writeImageStep(out *printer, view wizardView) {
	out.raw(`<form class="upload" method="post" action="/onboard/image" enctype="multipart/form-data">` +
		`<label for="profileImage">Profile Image (optional)</label>` +
		`<input id="profileImage" type="file" name="profileImage" accept="image/*">` +
		`<p class="hint">PNG, JPG up to 10MB</p><button type="submit">Upload</button>`)
	if image := view.Draft.Image; image != nil {
		out.f(`<p class="uploaded">Selected: %s</p>`, esc(image.Filename))
	}
	writeFieldError(out, view.fieldError(onboard.FieldImage))
	out.raw(`</form>`)
}

func feeMaxAttr(r reference.FeeRange) string {
	if r.OpenEnded() {
		return ""
	}
	return ` data-max="` + r.Max.Decimal.String() + `"`
}

func writeSummary(out *printer, view wizardView) {
	form := view.Draft.Form
	fee := form.FeeRange
	if view.FeeBounds != "" {
		fee += " (" + view.FeeBounds + ")"
	}
	out.raw(`<dl class="summary">`)
	for _, row := range [][2]string{
		{"Name", form.Name},
		{"Categories", strings.Join(form.Category, ", ")},
		{"Languages", strings.Join(form.Languages, ", ")},
		{"Fee Range", fee},
		{"Location", form.Location},
	} {
		out.f(`<dt>%s</dt><dd>%s</dd>`, esc(row[0]), esc(row[1]))
	}
	out.raw(`</dl>`)
}
