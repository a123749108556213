package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"circus-admin/internal/model"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *model.Animal) (*model.Animal, error)
	Update(ctx context.Context, animal *model.Animal) (*model.Animal, error)
	FindByID(ctx context.Context, id int64) (*model.Animal, error)
	List(ctx context.Context) ([]*model.Animal, error)
	Delete(ctx context.Context, id int64) error
}

type AnimalRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAnimalRepository(pool *pgxpool.Pool) AnimalRepository {
	return &AnimalRepositoryImpl{
		pool: pool,
	}
}

const animalColumns = `id, name, species, age, created_at, updated_at`

func scanAnimal(row pgx.Row) (*model.Animal, error) {
	var animal model.Animal
	err := row.Scan(
		&animal.ID,
		&animal.Name,
		&animal.Species,
		&animal.Age,
		&animal.CreatedAt,
		&animal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *AnimalRepositoryImpl) Create(ctx context.Context, animal *model.Animal) (*model.Animal, error) {
	query := `
		INSERT INTO animals (name, species, age)
		VALUES ($1, $2, $3)
		RETURNING ` + animalColumns

	return scanAnimal(r.pool.QueryRow(ctx, query, animal.Name, animal.Species, animal.Age))
}

func (r *AnimalRepositoryImpl) Update(ctx context.Context, animal *model.Animal) (*model.Animal, error) {
	query := `
		UPDATE animals
		SET name = $1, species = $2, age = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + animalColumns

	updated, err := scanAnimal(r.pool.QueryRow(ctx, query,
		animal.Name, animal.Species, animal.Age, time.Now().UTC(), animal.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *AnimalRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Animal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM animals
		WHERE id = $1
	`

	animal, err := scanAnimal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, err
	}
	return animal, nil
}

func (r *AnimalRepositoryImpl) List(ctx context.Context) ([]*model.Animal, error) {
	query := `
		SELECT ` + animalColumns + `
		FROM animals
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	animals := make([]*model.Animal, 0)
	for rows.Next() {
		animal, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		animals = append(animals, animal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return animals, nil
}

// Delete 刪除不存在的 id 不視為錯誤
func (r *AnimalRepositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: animal %d is still used by an animal act", apperrors.ErrInvalidInput, id)
	}
	return err
}
