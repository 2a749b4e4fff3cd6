package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/mocks"
)

func TestOrderService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	svc := NewOrderService(OrderServiceOptions{Repo: mockRepo})

	ctx := context.Background()
	req := &model.CreateOrderRequest{
		CustomerName:  "Pat Doe",
		CustomerEmail: "pat@example.com",
		Items: []model.OrderItem{
			{ProductID: "prod-1", Name: "Mug", Quantity: 2, PriceCents: 1250},
		},
	}
	expected := &model.Order{ID: "order-1", Status: model.OrderStatusPending, TotalCents: 2500}

	mockRepo.EXPECT().
		Create(ctx, req).
		Return(expected, nil).
		Times(1)

	got, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOrderService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	svc := NewOrderService(OrderServiceOptions{Repo: mockRepo})

	ctx := context.Background()
	shipped := &model.Order{ID: "order-1", Status: model.OrderStatusShipped}

	mockRepo.EXPECT().
		SetStatus(ctx, "order-1", model.OrderStatusShipped).
		Return(shipped, nil).
		Times(1)

	got, err := svc.SetStatus(ctx, "order-1", model.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, shipped, got)
}

func TestOrderService_GetByID_PassesThroughError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	svc := NewOrderService(OrderServiceOptions{Repo: mockRepo})

	repoErr := errors.New("order not found")
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, repoErr).
		Times(1)

	got, err := svc.GetByID(ctx, "missing")

	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, got)
}

func TestOrderService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockOrderRepository(ctrl)
	svc := NewOrderService(OrderServiceOptions{Repo: mockRepo})

	ctx := context.Background()
	orders := []*model.Order{{ID: "order-1"}}

	mockRepo.EXPECT().List(ctx, 50, 0).Return(orders, nil)
	mockRepo.EXPECT().Delete(ctx, "order-1").Return(nil)

	got, err := svc.List(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	assert.NoError(t, svc.Delete(ctx, "order-1"))
}
