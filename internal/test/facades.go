package test

import (
	"context"

	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	ListFn   func(context.Context) ([]model.Order, error)
	ReadFn   func(context.Context, string) (*model.Order, error)
	CreateFn func(context.Context, usecase.OrderInput) (*model.Order, error)
	UpdateFn func(context.Context, usecase.OrderInput) (*model.Order, error)
	DeleteFn func(context.Context, string) error
}

// ListOrders delegates to provided function or returns a single order.
func (s OrderFacadeStub) ListOrders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Order{{ID: "1", Status: model.OrderStatusPending}}, nil
}

// ReadOrder returns configured order or echoes the id.
func (s OrderFacadeStub) ReadOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.ReadFn != nil {
		return s.ReadFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending}, nil
}

// CreateOrder returns configured order or builds one from input.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Order{ID: "new", DeliverTo: asString(in.DeliverTo), MobileNumber: asString(in.MobileNumber), Status: model.OrderStatusOutForDelivery}, nil
}

// UpdateOrder returns configured order or builds one from input.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, in)
	}
	return &model.Order{ID: in.OrderID, DeliverTo: asString(in.DeliverTo), MobileNumber: asString(in.MobileNumber), Status: model.OrderStatus(asString(in.Status))}, nil
}

// DeleteOrder executes configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, orderID string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
