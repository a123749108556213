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

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	Update(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	FindByID(ctx context.Context, id int64) (*model.Ticket, error)
	List(ctx context.Context) ([]*model.Ticket, error)
	ListByPerformanceID(ctx context.Context, performanceID int64) ([]*model.Ticket, error)
	// SumTotalPriceByPerformance 沒有票券時回傳 0
	SumTotalPriceByPerformance(ctx context.Context, performanceID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, performance_id, customer_name, viewers_count, total_price, created_at, updated_at`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.PerformanceID,
		&ticket.CustomerName,
		&ticket.ViewersCount,
		&ticket.TotalPrice,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (performance_id, customer_name, viewers_count, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + ticketColumns

	created, err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.PerformanceID, ticket.CustomerName, ticket.ViewersCount, ticket.TotalPrice,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, err
	}
	return created, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET performance_id = $1, customer_name = $2, viewers_count = $3, total_price = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + ticketColumns

	updated, err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.PerformanceID, ticket.CustomerName, ticket.ViewersCount, ticket.TotalPrice,
		time.Now().UTC(), ticket.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1
	`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		ORDER BY id DESC
	`
	return r.list(ctx, query)
}

func (r *TicketRepositoryImpl) ListByPerformanceID(ctx context.Context, performanceID int64) ([]*model.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE performance_id = $1
		ORDER BY id DESC
	`
	return r.list(ctx, query, performanceID)
}

func (r *TicketRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]*model.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) SumTotalPriceByPerformance(ctx context.Context, performanceID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(total_price), 0)::BIGINT
		FROM tickets
		WHERE performance_id = $1
	`

	var sum int64
	if err := r.pool.QueryRow(ctx, query, performanceID).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// Delete 刪除不存在的 id 不視為錯誤
func (r *TicketRepositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	return err
}
