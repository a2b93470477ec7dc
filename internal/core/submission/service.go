package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/artistly/internal/platform/ctxutil"
	"github.com/taibuivan/artistly/internal/platform/metrics"
	"github.com/taibuivan/artistly/internal/platform/notice"
	"github.com/taibuivan/artistly/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the dashboard service. A nil clock falls back to [time.Now].
func NewService(repo Repository, logger *slog.Logger, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    clock,
	}
}

// ListSubmissions returns submissions whose status equals status, or all of
// them when status is empty.
func (service *Service) ListSubmissions(ctx context.Context, status Status) ([]Submission, error) {
	submissions, err := service.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return submissions, nil
	}

	return slice.Filter(submissions, func(s Submission) bool {
		return s.Status == status
	}), nil
}

// UpdateStatus assigns status to the submission with the given id.
//
// Any status may follow any other; only that record changes.
func (service *Service) UpdateStatus(ctx context.Context, id int, status Status) (Submission, notice.Notice, error) {
	if err := validateStatus(status); err != nil {
		return Submission{}, notice.Notice{}, err
	}

	previous, updated, err := service.repo.SetStatus(ctx, id, status)
	if err != nil {
		return Submission{}, notice.Notice{}, err
	}

	metrics.StatusChanged(string(previous), string(status))
	service.logger.InfoContext(ctx, "submission_status_updated",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.Int("submission_id", id),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	return updated, notice.Success("Status updated successfully"), nil
}

// Stats summarises the dashboard. ThisMonth counts submissions made in the
// current calendar month of the injected clock's location.
func (service *Service) Stats(ctx context.Context) (Stats, error) {
	submissions, err := service.repo.ListSubmissions(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := service.now()
	year, month, _ := now.Date()

	return Stats{
		Total:    len(submissions),
		Approved: slice.Count(submissions, func(s Submission) bool { return s.Status == StatusApproved }),
		Pending:  slice.Count(submissions, func(s Submission) bool { return s.Status == StatusPending }),
		ThisMonth: slice.Count(submissions, func(s Submission) bool {
			y, m, _ := s.SubmittedAt.In(now.Location()).Date()
			return y == year && m == month
		}),
	}, nil
}
