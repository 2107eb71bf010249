package drafts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
	"github.com/incorpora/onboarding-api/internal/repositories/drafts"
)

func TestInMemoryRepository(t *testing.T) {
	setup := func(t *testing.T) (drafts.Repository, context.Context) {
		t.Helper()
		return drafts.NewInMemoryRepository(), context.Background()
	}

	t.Run("save and get round trip", func(t *testing.T) {
		repo, ctx := setup(t)
		draft := onboarding.NewDraft("draft-1")
		draft.SetContact(&onboarding.ContactData{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "+12025551234"})

		require.NoError(t, repo.Save(ctx, draft))

		retrieved, err := repo.Get(ctx, "draft-1")
		require.NoError(t, err)
		assert.Equal(t, draft.ID, retrieved.ID)
		require.NotNil(t, retrieved.Contact)
		assert.Equal(t, "jane@x.com", retrieved.Contact.Email)
		assert.Equal(t, []int{1}, retrieved.CompletedSteps)
	})

	t.Run("save is an upsert", func(t *testing.T) {
		repo, ctx := setup(t)
		draft := onboarding.NewDraft("draft-1")
		require.NoError(t, repo.Save(ctx, draft))

		draft.SetEntityType(&onboarding.EntityTypeData{EntityType: onboarding.EntityTypeLLC})
		require.NoError(t, repo.Save(ctx, draft))

		retrieved, err := repo.Get(ctx, "draft-1")
		require.NoError(t, err)
		require.NotNil(t, retrieved.Entity)
	})

	t.Run("get unknown draft returns not found", func(t *testing.T) {
		repo, ctx := setup(t)

		_, err := repo.Get(ctx, "missing")
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("nil draft is rejected", func(t *testing.T) {
		repo, ctx := setup(t)

		err := repo.Save(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "draft cannot be nil")
	})

	t.Run("draft without ID is rejected", func(t *testing.T) {
		repo, ctx := setup(t)

		err := repo.Save(ctx, &onboarding.Draft{})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
	})

	t.Run("delete removes the draft", func(t *testing.T) {
		repo, ctx := setup(t)
		draft := onboarding.NewDraft("draft-1")
		require.NoError(t, repo.Save(ctx, draft))

		require.NoError(t, repo.Delete(ctx, "draft-1"))

		_, err := repo.Get(ctx, "draft-1")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("stored drafts are isolated from caller mutation", func(t *testing.T) {
		repo, ctx := setup(t)
		draft := onboarding.NewDraft("draft-1")
		require.NoError(t, repo.Save(ctx, draft))

		draft.CurrentStep = 5

		retrieved, err := repo.Get(ctx, "draft-1")
		require.NoError(t, err)
		assert.Equal(t, 1, retrieved.CurrentStep)
	})
}
