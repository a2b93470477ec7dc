package onboard

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/ctxutil"
	"github.com/taibuivan/artistly/internal/platform/metrics"
	"github.com/taibuivan/artistly/internal/platform/notice"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/pointer"
	"github.com/taibuivan/artistly/pkg/uuidv7"
)

// Options tunes a [Service]. Zero values select the defaults.
type Options struct {
	// SubmitDelay is the simulated submission latency. Negative means none.
	SubmitDelay time.Duration

	// Clock stamps drafts. Defaults to [time.Now].
	Clock func() time.Time
}

type Service struct {
	store  DraftStore
	logger *slog.Logger
	delay  time.Duration
	now    func() time.Time

	// mu serialises read-modify-write cycles on drafts.
	mu       sync.Mutex
	submits  singleflight.Group
	inflight sync.WaitGroup
}

type submitResult struct {
	draft  Draft
	notice notice.Notice
}

func NewService(store DraftStore, logger *slog.Logger, opts Options) *Service {
	delay := opts.SubmitDelay
	switch {
	case delay == 0:
		delay = constants.DefaultSubmitDelay
	case delay < 0:
		delay = 0
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		store:  store,
		logger: logger,
		delay:  delay,
		now:    clock,
	}
}

// Start opens a new draft at step 1.
func (service *Service) Start(ctx context.Context) (Draft, error) {
	draft := newDraft(uuidv7.New(), service.now())
	if err := service.store.Save(ctx, draft); err != nil {
		return Draft{}, err
	}

	service.logger.DebugContext(ctx, "onboard_draft_started",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("draft_id", draft.ID),
	)
	return draft, nil
}

func (service *Service) Get(ctx context.Context, id string) (Draft, error) {
	return service.store.Get(ctx, id)
}

// Update merges patch into the draft's form. Values persist across steps.
func (service *Service) Update(ctx context.Context, id string, patch FormPatch) (Draft, error) {
	return service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		if err := guardEditable(draft); err != nil {
			return draft, err
		}
		draft.Form = draft.Form.Merge(patch)
		return draft, nil
	})
}

// Next validates the current step and advances the draft.
func (service *Service) Next(ctx context.Context, id string) (Draft, error) {
	return service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		next, err := Next(draft)
		if err != nil && !draft.Locked() && draft.Step < StepImage {
			metrics.StepRejected(int(draft.Step))
		}
		return next, err
	})
}

// Back returns the draft to the previous step.
func (service *Service) Back(ctx context.Context, id string) (Draft, error) {
	return service.mutate(ctx, id, Back)
}

// AttachImage records profile image metadata on a draft at the image step.
func (service *Service) AttachImage(ctx context.Context, id string, image ImageMeta) (Draft, error) {
	if err := ValidateImage(image); err != nil {
		return Draft{}, err
	}

	return service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		if err := guardImageStep(draft); err != nil {
			return draft, err
		}
		draft.Image = &image
		return draft, nil
	})
}

// RemoveImage clears the profile image metadata.
func (service *Service) RemoveImage(ctx context.Context, id string) (Draft, error) {
	return service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		if err := guardImageStep(draft); err != nil {
			return draft, err
		}
		draft.Image = nil
		return draft, nil
	})
}

// Discard drops a draft. Unknown ids are not an error.
func (service *Service) Discard(ctx context.Context, id string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	if err := service.store.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.DebugContext(ctx, "onboard_draft_discarded",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("draft_id", id),
	)
	return nil
}

/*
Submit finalises the application.

Concurrent calls for the same draft share one in-flight run, so the draft
reaches the success step exactly once. The simulated latency is detached
from ctx: a caller that goes away does not abort the submission. Submitting
a finished draft returns it unchanged with an empty notice.
*/
func (service *Service) Submit(ctx context.Context, id string) (Draft, notice.Notice, error) {
	detached := context.WithoutCancel(ctx)

	// Every caller is tracked until the shared run delivers, so Wait covers
	// runs whose callers already left.
	service.inflight.Add(1)
	results := service.submits.DoChan(id, func() (interface{}, error) {
		return service.submit(detached, id)
	})

	select {
	case <-ctx.Done():
		go func() {
			<-results
			service.inflight.Done()
		}()
		return Draft{}, notice.Notice{}, ctx.Err()
	case result := <-results:
		service.inflight.Done()
		if result.Err != nil {
			return Draft{}, notice.Notice{}, result.Err
		}
		out := result.Val.(submitResult)
		return out.draft.Clone(), out.notice, nil
	}
}

// Wait blocks until in-flight submissions finish or ctx is done.
func (service *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		service.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (service *Service) submit(ctx context.Context, id string) (submitResult, error) {
	draft, err := service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		if draft.Done() {
			return draft, nil
		}
		if draft.Submitting {
			return draft, apperr.Conflict("Application is being submitted")
		}
		if draft.Step != StepImage {
			return draft, apperr.Unprocessable("Complete every step before submitting")
		}
		if err := ValidateAll(draft.Form); err != nil {
			return draft, err
		}
		draft.Submitting = true
		return draft, nil
	})
	if err != nil {
		return submitResult{}, err
	}
	if draft.Done() {
		return submitResult{draft: draft}, nil
	}

	metrics.SubmissionStarted()
	defer metrics.SubmissionFinished()

	time.Sleep(service.delay)

	draft, err = service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		at := service.now()
		draft.Submitting = false
		draft.Step = StepSuccess
		draft.SubmittedAt = &at
		return draft, nil
	})
	if err != nil {
		service.release(ctx, id)
		return submitResult{}, err
	}

	service.logApplication(ctx, draft)

	return submitResult{
		draft: draft,
		notice: notice.Success(
			"Application submitted successfully!",
			"We will review your application and get back to you within 2-3 business days.",
		),
	}, nil
}

// release clears the submitting flag after a failed finish so the
// applicant can retry. Best effort: a draft that is gone stays gone.
func (service *Service) release(ctx context.Context, id string) {
	_, err := service.mutate(ctx, id, func(draft Draft) (Draft, error) {
		draft.Submitting = false
		return draft, nil
	})
	if err != nil {
		service.logger.WarnContext(ctx, "onboard_submit_release_failed",
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.String("draft_id", id),
			slog.Any("error", err),
		)
	}
}

func (service *Service) logApplication(ctx context.Context, draft Draft) {
	image := slog.String("image", "")
	if draft.Image != nil {
		image = slog.Group("image",
			slog.String("filename", draft.Image.Filename),
			slog.Int64("size", draft.Image.Size),
			slog.String("content_type", draft.Image.ContentType),
		)
	}

	service.logger.InfoContext(ctx, "onboard_application_submitted",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("draft_id", draft.ID),
		slog.Time("submitted_at", pointer.Val(draft.SubmittedAt)),
		slog.Group("form",
			slog.String("name", draft.Form.Name),
			slog.String("bio", draft.Form.Bio),
			slog.Any("category", draft.Form.Category),
			slog.Any("languages", draft.Form.Languages),
			slog.String("fee_range", draft.Form.FeeRange),
			slog.String("location", draft.Form.Location),
		),
		image,
	)
}

// mutate loads a draft, applies change and saves the result.
// A failing change leaves the stored draft untouched.
func (service *Service) mutate(ctx context.Context, id string, change func(Draft) (Draft, error)) (Draft, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	draft, err := service.store.Get(ctx, id)
	if err != nil {
		return Draft{}, err
	}

	updated, err := change(draft.Clone())
	if err != nil {
		return draft, err
	}
	if updated.Done() && draft.Done() {
		return draft, nil
	}

	updated.UpdatedAt = service.now()
	if err := service.store.Save(ctx, updated); err != nil {
		return Draft{}, err
	}
	return updated, nil
}

// ValidateImage checks an upload's declared type and size.
func ValidateImage(image ImageMeta) error {
	v := &validate.Validator{}
	v.Custom(FieldImage, !strings.HasPrefix(image.ContentType, "image/"), "Profile image must be an image file").
		Custom(FieldImage, image.Size > constants.MaxProfileImageBytes, "Profile image must be 10MB or smaller")
	return v.Err()
}

func guardImageStep(draft Draft) error {
	if err := guardEditable(draft); err != nil {
		return err
	}
	if draft.Step != StepImage {
		return apperr.Unprocessable("Profile image is set on step 4")
	}
	return nil
}
