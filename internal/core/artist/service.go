package artist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/artistly/internal/platform/ctxutil"
	"github.com/taibuivan/artistly/internal/platform/metrics"
	"github.com/taibuivan/artistly/internal/platform/notice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListArtists applies filter to the catalogue and reports the catalogue size.
func (service *Service) ListArtists(ctx context.Context, filter Filter) (ListResult, error) {
	artists, err := service.repo.ListArtists(ctx)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Artists: Apply(artists, filter.Options, filter.Query),
		Total:   len(artists),
	}, nil
}

func (service *Service) GetArtist(ctx context.Context, id int) (Artist, error) {
	return service.repo.GetArtist(ctx, id)
}

// RequestQuote raises the local confirmation for a quote request.
//
// Nothing is sent to the artist; the request is logged and counted only.
func (service *Service) RequestQuote(ctx context.Context, id int) (notice.Notice, error) {
	a, err := service.repo.GetArtist(ctx, id)
	if err != nil {
		return notice.Notice{}, err
	}

	metrics.QuoteRequested(a.ID)
	service.logger.InfoContext(ctx, "artist_quote_requested",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.Int("artist_id", a.ID),
		slog.String("artist_name", a.Name),
	)

	return notice.Success(
		fmt.Sprintf("Quote request sent to %s!", a.Name),
		"You will receive a response within 24 hours.",
	), nil
}
