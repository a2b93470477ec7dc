package submission

import "context"

// Repository holds the dashboard's submissions.
type Repository interface {
	// ListSubmissions returns every submission in fixture order.
	ListSubmissions(ctx context.Context) ([]Submission, error)

	// SetStatus assigns status to one submission and returns the previous value
	// alongside the updated record.
	SetStatus(ctx context.Context, id int, status Status) (Status, Submission, error)
}
