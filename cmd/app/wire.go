//go:build wireinject
// +build wireinject

package main

import (
	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/command"
	"github.com/jainam30/mohil-enterprise/internal/cron"
	"github.com/jainam30/mohil-enterprise/internal/database"
	"github.com/jainam30/mohil-enterprise/internal/handler"
	"github.com/jainam30/mohil-enterprise/internal/middleware"
	"github.com/jainam30/mohil-enterprise/internal/router"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init command.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(
		database.ProviderSet,
		telemetry.ProviderSet,
		service.ProviderSet,
		command.ProviderSet,
	))
}
