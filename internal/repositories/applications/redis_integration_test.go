//go:build integration

package applications_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/incorpora/onboarding-api/internal/errors"
	"github.com/incorpora/onboarding-api/internal/repositories/applications"
	"github.com/incorpora/onboarding-api/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	ctx := context.Background()

	repo := applications.NewRedisRepository(&applications.RedisRepoConfig{Client: client})

	t.Run("lead lifecycle", func(t *testing.T) {
		created, err := repo.Create(ctx, &applications.Application{
			Status: applications.StatusLead,
			Name:   "Jane Doe",
			Email:  "jane@lifecycle.test",
			Phone:  "+12025551234",
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		lead, err := repo.GetLeadByEmail(ctx, "jane@lifecycle.test")
		require.NoError(t, err)
		assert.Equal(t, created.ID, lead.ID)

		price := 700
		lead.Status = applications.StatusCompleted
		lead.EntityType = "LLC"
		lead.MembershipType = "SINGLE"
		lead.State = "WY"
		lead.Price = &price

		updated, err := repo.Update(ctx, lead)
		require.NoError(t, err)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)

		retrieved, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, applications.StatusCompleted, retrieved.Status)
		require.NotNil(t, retrieved.Price)
		assert.Equal(t, 700, *retrieved.Price)

		// Completing the application drops the lead index entry.
		_, err = repo.GetLeadByEmail(ctx, "jane@lifecycle.test")
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("update of unknown application fails", func(t *testing.T) {
		_, err := repo.Update(ctx, &applications.Application{
			ID:     "does-not-exist",
			Status: applications.StatusLead,
			Email:  "ghost@lifecycle.test",
		})
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}
