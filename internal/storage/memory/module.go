package memory

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/grubdash/internal/config"
	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	var seed []model.Order
	if p.Config.SeedFile != "" {
		orders, err := LoadSeed(p.Config.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = orders
	}
	return New(seed, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			storage.Logger().Info("order storage ready", slog.Int("orders", storage.Len()))
			return nil
		},
	})
}
