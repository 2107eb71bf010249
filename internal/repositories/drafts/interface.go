package drafts

//go:generate mockgen -destination=mock/mock.go -package=mockdrafts -source=interface.go

import (
	"context"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
)

// Repository persists in-progress wizard drafts for the duration of a
// browser session. One session cookie maps to one draft.
type Repository interface {
	// Get retrieves a draft by ID
	Get(ctx context.Context, id string) (*onboarding.Draft, error)

	// Save upserts a draft. The wizard store calls this after every
	// mutation so state survives reloads.
	Save(ctx context.Context, draft *onboarding.Draft) error

	// Delete removes a draft
	Delete(ctx context.Context, id string) error
}
