package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"circus-admin/internal/model"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PerformanceFilter 演出查詢條件，零值代表不過濾
type PerformanceFilter struct {
	UpcomingOnly bool
	From         *time.Time
	To           *time.Time
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *model.Performance) (*model.Performance, error)
	Update(ctx context.Context, performance *model.Performance) (*model.Performance, error)
	FindByID(ctx context.Context, id int64) (*model.Performance, error)
	// List 依 date_time DESC 排序，revenue 於查詢時計算
	List(ctx context.Context, filter PerformanceFilter) ([]*model.Performance, error)
	// MarkPastAsDone 將 date_time 早於 now 且仍為 scheduled 的演出標記為 done
	MarkPastAsDone(ctx context.Context, now time.Time) (int64, error)
	// Delete 連同 tickets、human_acts、animal_acts 一起刪除
	Delete(ctx context.Context, id int64) error
}

type PerformanceRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPerformanceRepository(pool *pgxpool.Pool) PerformanceRepository {
	return &PerformanceRepositoryImpl{
		pool: pool,
	}
}

const performanceColumns = `p.id, p.name, p.date_time, p.duration_minutes, p.main_artist_id,
		p.status, p.description, p.created_at, p.updated_at,
		COALESCE((SELECT SUM(t.total_price) FROM tickets t WHERE t.performance_id = p.id), 0)::BIGINT AS revenue`

func scanPerformance(row pgx.Row) (*model.Performance, error) {
	var performance model.Performance
	err := row.Scan(
		&performance.ID,
		&performance.Name,
		&performance.DateTime,
		&performance.DurationMinutes,
		&performance.MainArtistID,
		&performance.Status,
		&performance.Description,
		&performance.CreatedAt,
		&performance.UpdatedAt,
		&performance.Revenue,
	)
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

func (r *PerformanceRepositoryImpl) Create(ctx context.Context, performance *model.Performance) (*model.Performance, error) {
	query := `
		WITH p AS (
			INSERT INTO performances (name, date_time, duration_minutes, main_artist_id, status, description)
			VALUES ($1, $2, $3, $4, FALSE, $5)
			RETURNING *
		)
		SELECT ` + performanceColumns + `
		FROM p
	`

	created, err := scanPerformance(r.pool.QueryRow(ctx, query,
		performance.Name, performance.DateTime, performance.DurationMinutes,
		performance.MainArtistID, performance.Description,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return created, nil
}

// Update 不會修改 status：狀態只能由 MarkPastAsDone 推進
func (r *PerformanceRepositoryImpl) Update(ctx context.Context, performance *model.Performance) (*model.Performance, error) {
	query := `
		WITH p AS (
			UPDATE performances
			SET name = $1, date_time = $2, duration_minutes = $3, main_artist_id = $4,
				description = $5, updated_at = $6
			WHERE id = $7
			RETURNING *
		)
		SELECT ` + performanceColumns + `
		FROM p
	`

	updated, err := scanPerformance(r.pool.QueryRow(ctx, query,
		performance.Name, performance.DateTime, performance.DurationMinutes,
		performance.MainArtistID, performance.Description, time.Now().UTC(), performance.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *PerformanceRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Performance, error) {
	query := `
		SELECT ` + performanceColumns + `
		FROM performances p
		WHERE p.id = $1
	`

	performance, err := scanPerformance(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, err
	}
	return performance, nil
}

func (r *PerformanceRepositoryImpl) List(ctx context.Context, filter PerformanceFilter) ([]*model.Performance, error) {
	conds := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.UpcomingOnly {
		conds = append(conds, "p.status = FALSE")
	}

	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("p.date_time >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}

	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("p.date_time <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM performances p
		%s
		ORDER BY p.date_time DESC, p.id DESC
	`, performanceColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := make([]*model.Performance, 0)
	for rows.Next() {
		performance, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		performances = append(performances, performance)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

func (r *PerformanceRepositoryImpl) MarkPastAsDone(ctx context.Context, now time.Time) (int64, error) {
	// 條件式更新：併發呼叫時結果相同，不會先讀後寫
	query := `
		UPDATE performances
		SET status = TRUE, updated_at = $1
		WHERE status = FALSE AND date_time < $2
	`

	result, err := r.pool.Exec(ctx, query, time.Now().UTC(), now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *PerformanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		`DELETE FROM tickets WHERE performance_id = $1`,
		`DELETE FROM human_acts WHERE performance_id = $1`,
		`DELETE FROM animal_acts WHERE performance_id = $1`,
		`DELETE FROM performances WHERE id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, id); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
