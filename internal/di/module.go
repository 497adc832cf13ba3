package di

import (
	"go.uber.org/fx"

	"github.com/rmehra/stitchbook/internal/app"
	"github.com/rmehra/stitchbook/internal/config"
	"github.com/rmehra/stitchbook/internal/logger"
	"github.com/rmehra/stitchbook/internal/server/http/handlers"
	"github.com/rmehra/stitchbook/internal/server/http/router"
	"github.com/rmehra/stitchbook/internal/storage/postgres"
	"github.com/rmehra/stitchbook/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.TailorFacade) handlers.ReceiptFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
