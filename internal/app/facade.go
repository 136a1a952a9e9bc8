package app

import (
	"context"
	"log/slog"

	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/usecase"
)

// OrderFacade exposes order operations to transports and records lifecycle events.
type OrderFacade struct {
	orders *usecase.OrderUseCase
	logger *slog.Logger
}

func NewOrderFacade(orders *usecase.OrderUseCase, logger *slog.Logger) *OrderFacade {
	return &OrderFacade{orders: orders, logger: logger}
}

func (f *OrderFacade) ListOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *OrderFacade) ReadOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *OrderFacade) CreateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	order, err := f.orders.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	f.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
		slog.Int("dishes", len(order.Dishes)),
	)
	return order, nil
}

func (f *OrderFacade) UpdateOrder(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
	order, err := f.orders.Update(ctx, in)
	if err != nil {
		return nil, err
	}
	f.logger.InfoContext(ctx, "order updated",
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
	)
	return order, nil
}

func (f *OrderFacade) DeleteOrder(ctx context.Context, orderID string) error {
	if err := f.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	f.logger.InfoContext(ctx, "order deleted", slog.String("order_id", orderID))
	return nil
}
