package repository

import (
	"context"
	"errors"
	"time"

	"circus-admin/internal/model"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HumanActRepository interface {
	Create(ctx context.Context, act *model.HumanAct) (*model.HumanAct, error)
	Update(ctx context.Context, act *model.HumanAct) (*model.HumanAct, error)
	FindByID(ctx context.Context, id int64) (*model.HumanAct, error)
	List(ctx context.Context) ([]*model.HumanAct, error)
	ListByMainPerformerID(ctx context.Context, performerID int64) ([]*model.HumanAct, error)
	Delete(ctx context.Context, id int64) error
}

type HumanActRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewHumanActRepository(pool *pgxpool.Pool) HumanActRepository {
	return &HumanActRepositoryImpl{
		pool: pool,
	}
}

const humanActColumns = `id, title, type, performance_id, main_performer_id, created_at, updated_at`

func scanHumanAct(row pgx.Row) (*model.HumanAct, error) {
	var act model.HumanAct
	err := row.Scan(
		&act.ID,
		&act.Title,
		&act.Type,
		&act.PerformanceID,
		&act.MainPerformerID,
		&act.CreatedAt,
		&act.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *HumanActRepositoryImpl) Create(ctx context.Context, act *model.HumanAct) (*model.HumanAct, error) {
	query := `
		INSERT INTO human_acts (title, type, performance_id, main_performer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + humanActColumns

	created, err := scanHumanAct(r.pool.QueryRow(ctx, query,
		act.Title, act.Type, act.PerformanceID, act.MainPerformerID,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrInvalidInput
		}
		return nil, err
	}
	return created, nil
}

func (r *HumanActRepositoryImpl) Update(ctx context.Context, act *model.HumanAct) (*model.HumanAct, error) {
	query := `
		UPDATE human_acts
		SET title = $1, type = $2, performance_id = $3, main_performer_id = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + humanActColumns

	updated, err := scanHumanAct(r.pool.QueryRow(ctx, query,
		act.Title, act.Type, act.PerformanceID, act.MainPerformerID, time.Now().UTC(), act.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHumanActNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrInvalidInput
		}
		return nil, err
	}
	return updated, nil
}

func (r *HumanActRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.HumanAct, error) {
	query := `
		SELECT ` + humanActColumns + `
		FROM human_acts
		WHERE id = $1
	`

	act, err := scanHumanAct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHumanActNotFound
		}
		return nil, err
	}
	return act, nil
}

func (r *HumanActRepositoryImpl) List(ctx context.Context) ([]*model.HumanAct, error) {
	query := `
		SELECT ` + humanActColumns + `
		FROM human_acts
		ORDER BY id
	`
	return r.list(ctx, query)
}

func (r *HumanActRepositoryImpl) ListByMainPerformerID(ctx context.Context, performerID int64) ([]*model.HumanAct, error) {
	query := `
		SELECT ` + humanActColumns + `
		FROM human_acts
		WHERE main_performer_id = $1
		ORDER BY id
	`
	return r.list(ctx, query, performerID)
}

func (r *HumanActRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]*model.HumanAct, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := make([]*model.HumanAct, 0)
	for rows.Next() {
		act, err := scanHumanAct(rows)
		if err != nil {
			return nil, err
		}
		acts = append(acts, act)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return acts, nil
}

// Delete 刪除不存在的 id 不視為錯誤
func (r *HumanActRepositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM human_acts WHERE id = $1`, id)
	return err
}

type AnimalActRepository interface {
	Create(ctx context.Context, act *model.AnimalAct) (*model.AnimalAct, error)
	Update(ctx context.Context, act *model.AnimalAct) (*model.AnimalAct, error)
	FindByID(ctx context.Context, id int64) (*model.AnimalAct, error)
	List(ctx context.Context) ([]*model.AnimalAct, error)
	Delete(ctx context.Context, id int64) error
}

type AnimalActRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAnimalActRepository(pool *pgxpool.Pool) AnimalActRepository {
	return &AnimalActRepositoryImpl{
		pool: pool,
	}
}

const animalActColumns = `id, performance_id, animal_id, trainer_id, created_at, updated_at`

func scanAnimalAct(row pgx.Row) (*model.AnimalAct, error) {
	var act model.AnimalAct
	err := row.Scan(
		&act.ID,
		&act.PerformanceID,
		&act.AnimalID,
		&act.TrainerID,
		&act.CreatedAt,
		&act.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *AnimalActRepositoryImpl) Create(ctx context.Context, act *model.AnimalAct) (*model.AnimalAct, error) {
	query := `
		INSERT INTO animal_acts (performance_id, animal_id, trainer_id)
		VALUES ($1, $2, $3)
		RETURNING ` + animalActColumns

	created, err := scanAnimalAct(r.pool.QueryRow(ctx, query, act.PerformanceID, act.AnimalID, act.TrainerID))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrInvalidInput
		}
		return nil, err
	}
	return created, nil
}

func (r *AnimalActRepositoryImpl) Update(ctx context.Context, act *model.AnimalAct) (*model.AnimalAct, error) {
	query := `
		UPDATE animal_acts
		SET performance_id = $1, animal_id = $2, trainer_id = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + animalActColumns

	updated, err := scanAnimalAct(r.pool.QueryRow(ctx, query,
		act.PerformanceID, act.AnimalID, act.TrainerID, time.Now().UTC(), act.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnimalActNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrInvalidInput
		}
		return nil, err
	}
	return updated, nil
}

func (r *AnimalActRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.AnimalAct, error) {
	query := `
		SELECT ` + animalActColumns + `
		FROM animal_acts
		WHERE id = $1
	`

	act, err := scanAnimalAct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnimalActNotFound
		}
		return nil, err
	}
	return act, nil
}

func (r *AnimalActRepositoryImpl) List(ctx context.Context) ([]*model.AnimalAct, error) {
	query := `
		SELECT ` + animalActColumns + `
		FROM animal_acts
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := make([]*model.AnimalAct, 0)
	for rows.Next() {
		act, err := scanAnimalAct(rows)
		if err != nil {
			return nil, err
		}
		acts = append(acts, act)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return acts, nil
}

// Delete 刪除不存在的 id 不視為錯誤
func (r *AnimalActRepositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM animal_acts WHERE id = $1`, id)
	return err
}
