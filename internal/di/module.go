package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/grubdash/internal/app"
	"github.com/polkiloo/grubdash/internal/config"
	"github.com/polkiloo/grubdash/internal/logger"
	"github.com/polkiloo/grubdash/internal/pkg/ids"
	"github.com/polkiloo/grubdash/internal/server/http/handlers"
	"github.com/polkiloo/grubdash/internal/server/http/router"
	"github.com/polkiloo/grubdash/internal/storage/memory"
	"github.com/polkiloo/grubdash/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		memory.Module,
		ids.Module,
		usecase.Module,
		fx.Provide(func(f *app.OrderFacade) handlers.OrderFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
