package app

import (
	"context"
	"net/http"
	"wager_backend/internal/config"
	"wager_backend/internal/logger"

	"go.uber.org/zap"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	logger.Init()
	defer logger.Sync()

	err := config.Load(".env")
	if err != nil {
		logger.Log.Warn("error loading .env file", zap.Error(err))
	}
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	logger.Log.Info("starting server", zap.String("address", s.ServiceProvider.HTTPCfg().Address()))
	return http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
}
