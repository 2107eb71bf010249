package applications_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/incorpora/onboarding-api/internal/errors"
	"github.com/incorpora/onboarding-api/internal/repositories/applications"
)

func leadRecord(email string) *applications.Application {
	return &applications.Application{
		Status: applications.StatusLead,
		Name:   "Jane Doe",
		Email:  email,
		Phone:  "+12025551234",
	}
}

func TestInMemoryRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an ID and stamps timestamps", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()

		created, err := repo.Create(ctx, leadRecord("jane@x.com"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		retrieved, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, applications.StatusLead, retrieved.Status)
	})

	t.Run("requires an email", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()

		_, err := repo.Create(ctx, &applications.Application{Status: applications.StatusLead})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
	})

	t.Run("rejects nil", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()

		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
}

func TestInMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields and keeps created at", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()
		created, err := repo.Create(ctx, leadRecord("jane@x.com"))
		require.NoError(t, err)

		price := 700
		created.Status = applications.StatusCompleted
		created.EntityType = "LLC"
		created.MembershipType = "SINGLE"
		created.State = "WY"
		created.Price = &price

		updated, err := repo.Update(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)

		retrieved, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, applications.StatusCompleted, retrieved.Status)
		require.NotNil(t, retrieved.Price)
		assert.Equal(t, 700, *retrieved.Price)
	})

	t.Run("unknown record returns not found", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()

		app := leadRecord("jane@x.com")
		app.ID = "missing"
		_, err := repo.Update(ctx, app)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

func TestInMemoryRepository_GetLeadByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a lead", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()
		created, err := repo.Create(ctx, leadRecord("jane@x.com"))
		require.NoError(t, err)

		lead, err := repo.GetLeadByEmail(ctx, "jane@x.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, lead.ID)
	})

	t.Run("completed records do not match", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()
		created, err := repo.Create(ctx, leadRecord("jane@x.com"))
		require.NoError(t, err)

		created.Status = applications.StatusCompleted
		_, err = repo.Update(ctx, created)
		require.NoError(t, err)

		_, err = repo.GetLeadByEmail(ctx, "jane@x.com")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("no match returns not found", func(t *testing.T) {
		repo := applications.NewInMemoryRepository()

		_, err := repo.GetLeadByEmail(ctx, "nobody@x.com")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}
