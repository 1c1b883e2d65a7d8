package fx

import (
	"go.uber.org/fx"
	"majsoul-tracker/internal/api"
	"majsoul-tracker/internal/config"
	"majsoul-tracker/internal/logger"
	"majsoul-tracker/internal/server"
	"majsoul-tracker/internal/service"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(api.NewClient),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewHistoryService),
	// server
	fx.Provide(server.NewStatsServer),
)
