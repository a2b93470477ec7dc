package submission

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/fixture"
)

// MemoryRepository keeps submissions in process memory.
type MemoryRepository struct {
	mu          sync.RWMutex
	submissions []Submission
}

func NewMemoryRepository(submissions []Submission) *MemoryRepository {
	cloned := make([]Submission, len(submissions))
	for i, s := range submissions {
		cloned[i] = clone(s)
	}
	return &MemoryRepository{submissions: cloned}
}

// LoadRepository builds a [MemoryRepository] from the submissions fixture.
func LoadRepository(src fixture.Source) (*MemoryRepository, error) {
	submissions, err := fixture.Load[Submission](src, fixture.SubmissionsFile)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(submissions), nil
}

func (repository *MemoryRepository) ListSubmissions(_ context.Context) ([]Submission, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	out := make([]Submission, len(repository.submissions))
	for i, s := range repository.submissions {
		out[i] = clone(s)
	}
	return out, nil
}

func (repository *MemoryRepository) SetStatus(_ context.Context, id int, status Status) (Status, Submission, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for i := range repository.submissions {
		if repository.submissions[i].ID != id {
			continue
		}
		previous := repository.submissions[i].Status
		repository.submissions[i].Status = status
		return previous, clone(repository.submissions[i]), nil
	}
	return "", Submission{}, apperr.NotFound("Submission")
}

func clone(s Submission) Submission {
	s.Category = slices.Clone(s.Category)
	return s
}
