package main

import (
	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"

	"github.com/doworks-png/road-monitor/internal/config"
	"github.com/doworks-png/road-monitor/internal/handlers"
	"github.com/doworks-png/road-monitor/internal/logger"
	"github.com/doworks-png/road-monitor/internal/server"
	"github.com/doworks-png/road-monitor/internal/service"
	"github.com/doworks-png/road-monitor/internal/store"
	"github.com/doworks-png/road-monitor/internal/tracker"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			store.NewStore,
			server.NewServer,
		),
		fx.Invoke(
			server.Lifecycle,
		),
		handlers.Module,
		service.Module,
		tracker.Module,
	)
	app.Run()
}
