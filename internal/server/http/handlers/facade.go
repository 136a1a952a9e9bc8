package handlers

import (
	"context"

	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*model.Order, error)
	CreateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error)
	UpdateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
