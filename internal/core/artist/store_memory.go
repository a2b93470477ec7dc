package artist

import (
	"context"
	"slices"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/fixture"
)

// MemoryRepository serves the catalogue from the loaded fixture.
//
// The backing slice is never written after construction, so no locking is needed.
type MemoryRepository struct {
	artists []Artist
}

// NewMemoryRepository copies artists into a read-only repository.
func NewMemoryRepository(artists []Artist) *MemoryRepository {
	return &MemoryRepository{artists: slices.Clone(artists)}
}

// LoadRepository builds a [MemoryRepository] from the artists fixture.
func LoadRepository(src fixture.Source) (*MemoryRepository, error) {
	artists, err := fixture.Load[Artist](src, fixture.ArtistsFile)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(artists), nil
}

// ListArtists returns the full catalogue in fixture order.
func (repository *MemoryRepository) ListArtists(_ context.Context) ([]Artist, error) {
	if repository.artists == nil {
		return []Artist{}, nil
	}
	return slices.Clone(repository.artists), nil
}

// GetArtist returns a single artist or NOT_FOUND.
func (repository *MemoryRepository) GetArtist(_ context.Context, id int) (Artist, error) {
	for _, a := range repository.artists {
		if a.ID == id {
			return a, nil
		}
	}
	return Artist{}, apperr.NotFound("Artist")
}
