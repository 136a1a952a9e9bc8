package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/grubdash/internal/config"
	"github.com/polkiloo/grubdash/internal/domain/repository"
	"github.com/polkiloo/grubdash/internal/pkg/ids"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(newOrderUseCase)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	IDs    ids.Generator
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.IDs, p.Config.DefaultOrderStatus)
}
