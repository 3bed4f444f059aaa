package unit

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocked By Active Reservation", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		reservationRepo := new(MockReservationRepo)
		svc := service.NewCustomerService(customerRepo, reservationRepo)

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("HasActiveByCustomer", ctx, int32(2), domain.ActiveReservationStatuses).Return(true, nil)

		err := svc.Delete(ctx, 2)
		assert.Error(t, err)
		assert.True(t, domain.IsConflict(err))
		customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		reservationRepo := new(MockReservationRepo)
		svc := service.NewCustomerService(customerRepo, reservationRepo)

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("HasActiveByCustomer", ctx, int32(2), domain.ActiveReservationStatuses).Return(false, nil)
		customerRepo.On("Delete", ctx, int32(2)).Return(nil)

		err := svc.Delete(ctx, 2)
		assert.NoError(t, err)
		customerRepo.AssertExpectations(t)
	})
}

func TestCustomerService_ListReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		reservationRepo := new(MockReservationRepo)
		svc := service.NewCustomerService(customerRepo, reservationRepo)

		customerRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NotFound("customer not found"))

		got, err := svc.ListReservations(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Success", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		reservationRepo := new(MockReservationRepo)
		svc := service.NewCustomerService(customerRepo, reservationRepo)

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("ListByCustomer", ctx, int32(2)).Return([]domain.Reservation{{ID: 5, CustomerID: 2}}, nil)

		got, err := svc.ListReservations(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
