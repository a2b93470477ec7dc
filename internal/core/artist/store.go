package artist

import "context"

// Repository defines read access to the artist catalogue.
type Repository interface {
	ListArtists(ctx context.Context) ([]Artist, error)
	GetArtist(ctx context.Context, id int) (Artist, error)
}
