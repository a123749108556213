package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	apperrors "circus-admin/pkg/app_errors"
)

type TicketService interface {
	List(ctx context.Context) ([]*model.Ticket, error)
	ListByPerformanceID(ctx context.Context, performanceID int64) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id int64) (*model.Ticket, error)
	Save(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	Delete(ctx context.Context, id int64) error
}

type TicketServiceImpl struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) TicketService {
	return &TicketServiceImpl{repo: repo}
}

func (s *TicketServiceImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketServiceImpl) ListByPerformanceID(ctx context.Context, performanceID int64) ([]*model.Ticket, error) {
	return s.repo.ListByPerformanceID(ctx, performanceID)
}

func (s *TicketServiceImpl) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

func validateTicket(t *model.Ticket) error {
	switch {
	case t.PerformanceID <= 0:
		return fmt.Errorf("%w: performance is required", apperrors.ErrInvalidInput)
	case strings.TrimSpace(t.CustomerName) == "":
		return fmt.Errorf("%w: customer name is required", apperrors.ErrInvalidInput)
	case t.ViewersCount < 1:
		return fmt.Errorf("%w: viewers count must be at least 1", apperrors.ErrInvalidInput)
	case t.TotalPrice < 0:
		return fmt.Errorf("%w: total price must not be negative", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *TicketServiceImpl) Save(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if err := validateTicket(ticket); err != nil {
		return nil, err
	}

	var (
		saved *model.Ticket
		err   error
	)
	if ticket.ID == 0 {
		saved, err = s.repo.Create(ctx, ticket)
	} else {
		saved, err = s.repo.Update(ctx, ticket)
	}
	if errors.Is(err, apperrors.ErrPerformanceNotFound) {
		return nil, fmt.Errorf("%w: performance %d does not exist", apperrors.ErrInvalidInput, ticket.PerformanceID)
	}
	return saved, err
}

func (s *TicketServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
