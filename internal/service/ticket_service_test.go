package service_test

import (
	"context"
	"testing"

	"circus-admin/internal/model"
	"circus-admin/internal/repository/mocks"
	"circus-admin/internal/service"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		repo := mocks.NewMockTicketRepository(t)
		svc := service.NewTicketService(repo)
		ticket := &model.Ticket{PerformanceID: 1, CustomerName: "Ann", ViewersCount: 2, TotalPrice: 500}

		repo.EXPECT().Create(ctx, ticket).Return(&model.Ticket{ID: 3}, nil).Once()

		saved, err := svc.Save(ctx, ticket)
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.ID)
	})

	t.Run("Rejects invalid counts", func(t *testing.T) {
		svc := service.NewTicketService(mocks.NewMockTicketRepository(t))

		_, err := svc.Save(ctx, &model.Ticket{PerformanceID: 1, CustomerName: "Ann", ViewersCount: 0})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = svc.Save(ctx, &model.Ticket{PerformanceID: 1, CustomerName: "Ann", ViewersCount: 1, TotalPrice: -1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Unknown performance is a validation failure", func(t *testing.T) {
		repo := mocks.NewMockTicketRepository(t)
		svc := service.NewTicketService(repo)

		repo.EXPECT().Create(ctx, ticketWith(42)).Return(nil, apperrors.ErrPerformanceNotFound).Once()

		_, err := svc.Save(ctx, ticketWith(42))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Update of a missing ticket stays not found", func(t *testing.T) {
		repo := mocks.NewMockTicketRepository(t)
		svc := service.NewTicketService(repo)
		ticket := ticketWith(1)
		ticket.ID = 77

		repo.EXPECT().Update(ctx, ticket).Return(nil, apperrors.ErrTicketNotFound).Once()

		_, err := svc.Save(ctx, ticket)
		assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
	})
}

func ticketWith(performanceID int64) *model.Ticket {
	return &model.Ticket{PerformanceID: performanceID, CustomerName: "Ann", ViewersCount: 1, TotalPrice: 100}
}
