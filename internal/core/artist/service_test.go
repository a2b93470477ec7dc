package artist_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/fixture"
	"github.com/taibuivan/artistly/internal/platform/notice"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixtureService(t *testing.T) *artist.Service {
	t.Helper()
	repo, err := artist.LoadRepository(fixture.Embedded())
	require.NoError(t, err)
	return artist.NewService(repo, discardLogger())
}

type failingRepository struct{ err error }

func (r failingRepository) ListArtists(context.Context) ([]artist.Artist, error) { return nil, r.err }
func (r failingRepository) GetArtist(context.Context, int) (artist.Artist, error) {
	return artist.Artist{}, r.err
}

func TestService_ListArtists(t *testing.T) {
	service := newFixtureService(t)
	ctx := context.Background()

	all, err := service.ListArtists(ctx, artist.Filter{})
	require.NoError(t, err)
	assert.Len(t, all.Artists, 12)
	assert.Equal(t, 12, all.Total)

	filtered, err := service.ListArtists(ctx, artist.Filter{Options: artist.FilterOptions{Location: "maharashtra"}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 12}, ids(filtered.Artists))
	assert.Equal(t, 12, filtered.Total, "total stays the catalogue size")

	none, err := service.ListArtists(ctx, artist.Filter{Query: "no such performer"})
	require.NoError(t, err)
	assert.NotNil(t, none.Artists)
	assert.Empty(t, none.Artists)
}

func TestService_ListArtists_RepositoryError(t *testing.T) {
	boom := errors.New("boom")
	service := artist.NewService(failingRepository{err: boom}, discardLogger())

	_, err := service.ListArtists(context.Background(), artist.Filter{})
	assert.ErrorIs(t, err, boom)
}

func TestService_GetArtist(t *testing.T) {
	service := newFixtureService(t)

	got, err := service.GetArtist(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Rita Sharma", got.Name)

	_, err = service.GetArtist(context.Background(), 999)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

func TestService_RequestQuote(t *testing.T) {
	service := newFixtureService(t)

	n, err := service.RequestQuote(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, notice.Notice{
		Kind:        notice.KindSuccess,
		Title:       "Quote request sent to Rita Sharma!",
		Description: "You will receive a response within 24 hours.",
	}, n)

	_, err = service.RequestQuote(context.Background(), 0)
	assert.True(t, apperr.IsAppError(err))
}
