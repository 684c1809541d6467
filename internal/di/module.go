package di

import (
	"go.uber.org/fx"

	"github.com/tezcart/tezcart/internal/app"
	"github.com/tezcart/tezcart/internal/config"
	"github.com/tezcart/tezcart/internal/logger"
	"github.com/tezcart/tezcart/internal/pkg/auth"
	"github.com/tezcart/tezcart/internal/server/http/handlers"
	"github.com/tezcart/tezcart/internal/server/http/router"
	"github.com/tezcart/tezcart/internal/storage/postgres"
	"github.com/tezcart/tezcart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.CommerceFacade) handlers.CommerceFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
