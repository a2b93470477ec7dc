package onboard

import "context"

// DraftStore keeps wizard drafts for a limited time.
//
// Save refreshes the draft's TTL. Get returns NOT_FOUND for unknown or
// expired ids. Implementations return copies; callers own what they get.
type DraftStore interface {
	Get(ctx context.Context, id string) (Draft, error)
	Save(ctx context.Context, draft Draft) error
	Delete(ctx context.Context, id string) error
}
