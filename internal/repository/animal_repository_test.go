package repository_test

import (
	"context"
	"testing"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalRepository_CreateAndUpdate(t *testing.T) {
	repo := repository.NewAnimalRepository(getTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Animal{Name: "Dumbo", Species: "elephant", Age: 4})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	created.Age = 5
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Age)

	_, err = repo.Update(ctx, &model.Animal{ID: 99999, Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrAnimalNotFound)
}

func TestAnimalRepository_Delete(t *testing.T) {
	repo := repository.NewAnimalRepository(getTestDB(t))
	ctx := context.Background()

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		createTestAnimal(t, "Leo")

		assert.NoError(t, repo.Delete(ctx, 99999))
		assertRowCount(t, "animals", 1)
	})

	t.Run("Animal used by an act is kept", func(t *testing.T) {
		trainerID := createTestEmployee(t, "Trainer Tom")
		performanceID := createTestPerformance(t, "Gala", future, trainerID, false)
		animalID := createTestAnimal(t, "Rex")
		createTestAnimalAct(t, performanceID, animalID, trainerID)

		err := repo.Delete(ctx, animalID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = repo.FindByID(ctx, animalID)
		assert.NoError(t, err)
	})
}
