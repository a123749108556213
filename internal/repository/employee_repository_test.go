package repository_test

import (
	"context"
	"testing"

	"circus-admin/internal/repository"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Delete(t *testing.T) {
	repo := repository.NewEmployeeRepository(getTestDB(t))
	ctx := context.Background()

	t.Run("Failed - still the main artist", func(t *testing.T) {
		artistID := createTestEmployee(t, "Clown Bob")
		createTestPerformance(t, "Grand Opening", future, artistID, false)

		err := repo.Delete(ctx, artistID)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		_, err = repo.FindByID(ctx, artistID)
		assert.NoError(t, err)
	})

	t.Run("Success", func(t *testing.T) {
		id := createTestEmployee(t, "Juggler Joe")

		require.NoError(t, repo.Delete(ctx, id))

		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
	})
}
