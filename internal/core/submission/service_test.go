package submission_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/fixture"
)

var october = func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) }

func newService(t *testing.T) (*submission.Service, *submission.MemoryRepository) {
	t.Helper()
	repo, err := submission.LoadRepository(fixture.Embedded())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return submission.NewService(repo, logger, october), repo
}

func statusesByID(submissions []submission.Submission) map[int]submission.Status {
	out := make(map[int]submission.Status, len(submissions))
	for _, s := range submissions {
		out[s.ID] = s.Status
	}
	return out
}

func TestListSubmissions_FiltersByStatus(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	all, err := service.ListSubmissions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	for _, status := range submission.Statuses {
		got, err := service.ListSubmissions(ctx, status)
		require.NoError(t, err)
		assert.NotNil(t, got)
		for _, s := range got {
			assert.Equal(t, status, s.Status)
		}
	}

	pending, err := service.ListSubmissions(ctx, submission.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestParseStatusFilter(t *testing.T) {
	for _, raw := range []string{"", "all"} {
		status, err := submission.ParseStatusFilter(raw)
		require.NoError(t, err)
		assert.Empty(t, status)
	}

	status, err := submission.ParseStatusFilter("review")
	require.NoError(t, err)
	assert.Equal(t, submission.StatusReview, status)

	for _, raw := range []string{"Pending", "archived", "ALL"} {
		_, err := submission.ParseStatusFilter(raw)
		appError := apperr.As(err)
		require.NotNil(t, appError, raw)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	}
}

func TestUpdateStatus_ChangesOnlyTarget(t *testing.T) {
	service, repo := newService(t)
	ctx := context.Background()

	before, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)

	updated, n, err := service.UpdateStatus(ctx, 3, submission.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusRejected, updated.Status)
	assert.Equal(t, "Status updated successfully", n.Title)

	after, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)

	want := statusesByID(before)
	want[3] = submission.StatusRejected
	if diff := cmp.Diff(want, statusesByID(after)); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	// approved -> pending -> rejected -> approved
	for _, status := range []submission.Status{submission.StatusPending, submission.StatusRejected, submission.StatusApproved, submission.StatusApproved} {
		updated, _, err := service.UpdateStatus(ctx, 4, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, _, err := service.UpdateStatus(ctx, 1, "archived")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, _, err = service.UpdateStatus(ctx, 1, "")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "This field is required", apperr.As(err).FieldMessage("status"))
	assert.Len(t, apperr.As(err).Details, 1)

	_, _, err = service.UpdateStatus(ctx, 404, submission.StatusApproved)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestUpdateStatus_ReturnedCopyIsDetached(t *testing.T) {
	service, repo := newService(t)
	ctx := context.Background()

	updated, _, err := service.UpdateStatus(ctx, 1, submission.StatusReview)
	require.NoError(t, err)
	updated.Category[0] = "Mutated"

	stored, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutated", stored[0].Category[0])
}

func TestUpdateStatus_Concurrent(t *testing.T) {
	service, repo := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := submission.Statuses[i%len(submission.Statuses)]
			_, _, err := service.UpdateStatus(ctx, 1+i%8, status)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := repo.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestStats(t *testing.T) {
	service, _ := newService(t)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, submission.Stats{Total: 8, Approved: 2, Pending: 3, ThisMonth: 3}, stats)
}

func TestStats_FollowsStatusChanges(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	_, _, err := service.UpdateStatus(ctx, 1, submission.StatusApproved)
	require.NoError(t, err)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Approved)
	assert.Equal(t, 2, stats.Pending)
}
