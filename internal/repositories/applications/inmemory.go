package applications

import (
	"context"
	"sync"
	"time"

	apperr "github.com/incorpora/onboarding-api/internal/errors"
	"github.com/incorpora/onboarding-api/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the application
// repository, used when Redis is not configured and in tests.
type InMemoryRepository struct {
	mu            sync.RWMutex
	records       map[string]*Application
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory application repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records:       make(map[string]*Application),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// WithUUIDGenerator overrides the ID generator, for deterministic tests
func (r *InMemoryRepository) WithUUIDGenerator(generator uuid.Generator) *InMemoryRepository {
	r.uuidGenerator = generator
	return r
}

func (r *InMemoryRepository) Create(ctx context.Context, app *Application) (*Application, error) {
	if app == nil {
		return nil, apperr.InvalidArgument("application cannot be nil")
	}
	if app.Email == "" {
		return nil, apperr.InvalidArgument("application email is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if app.ID == "" {
		app.ID = r.uuidGenerator.New()
	}
	if _, exists := r.records[app.ID]; exists {
		return nil, apperr.AlreadyExistsf("application '%s' already exists", app.ID)
	}

	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	copied := *app
	r.records[app.ID] = &copied

	return app, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Application, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("application ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	app, exists := r.records[id]
	if !exists {
		return nil, apperr.NotFoundf("application '%s' not found", id).
			WithMeta("application_id", id)
	}

	copied := *app
	return &copied, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, app *Application) (*Application, error) {
	if app == nil {
		return nil, apperr.InvalidArgument("application cannot be nil")
	}
	if app.ID == "" {
		return nil, apperr.InvalidArgument("application ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.records[app.ID]
	if !exists {
		return nil, apperr.NotFoundf("application '%s' not found", app.ID)
	}

	app.CreatedAt = existing.CreatedAt
	app.UpdatedAt = time.Now().UTC()

	copied := *app
	r.records[app.ID] = &copied

	return app, nil
}

func (r *InMemoryRepository) GetLeadByEmail(ctx context.Context, email string) (*Application, error) {
	if email == "" {
		return nil, apperr.InvalidArgument("email is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, app := range r.records {
		if app.Email == email && app.Status == StatusLead {
			copied := *app
			return &copied, nil
		}
	}

	return nil, apperr.NotFoundf("no lead found for email '%s'", email)
}
