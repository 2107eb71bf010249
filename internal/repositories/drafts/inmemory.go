package drafts

import (
	"context"
	"sync"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the draft
// repository, used when Redis is not configured and in tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string]*onboarding.Draft
}

// NewInMemoryRepository creates a new in-memory draft repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		drafts: make(map[string]*onboarding.Draft),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*onboarding.Draft, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("draft ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exists := r.drafts[id]
	if !exists {
		return nil, apperr.NotFoundf("draft '%s' not found", id).
			WithMeta("draft_id", id)
	}

	copied := *draft
	return &copied, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, draft *onboarding.Draft) error {
	if draft == nil {
		return apperr.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return apperr.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *draft
	r.drafts[draft.ID] = &copied

	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, id)

	return nil
}
