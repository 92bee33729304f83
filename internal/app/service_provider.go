package app

import (
	"context"
	wagerAPI "wager_backend/internal/api/wager"
	"wager_backend/internal/config"
	"wager_backend/internal/config/env"
	"wager_backend/internal/middleware"
	"wager_backend/internal/repository"
	"wager_backend/internal/repository/round_repo"
	"wager_backend/internal/repository/stats_repo"
	"wager_backend/internal/repository/totals_repo"
	"wager_backend/internal/service"
	"wager_backend/internal/service/wager"
	"wager_backend/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Wager bits
	wagerCfg   config.WagerConfig
	randomSrc  rng.Source
	roundRepo  repository.RoundRepository
	totalsRepo repository.TotalsRepository
	statsRepo  repository.StatsRepository
	wagerServ  service.WagerService
	wagerHand  *wagerAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) WagerCfg() config.WagerConfig {
	if sp.wagerCfg == nil {
		cfg, err := env.NewWagerConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get wager config: " + err.Error())
		}

		sp.wagerCfg = cfg
	}
	return sp.wagerCfg
}

func (sp *ServiceProvider) RandomSource() rng.Source {
	if sp.randomSrc == nil {
		sp.randomSrc = rng.NewCryptoSource()
	}
	return sp.randomSrc
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) TotalsRepository(ctx context.Context) repository.TotalsRepository {
	if sp.totalsRepo == nil {
		sp.totalsRepo = totals_repo.NewTotalsRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.totalsRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) WagerService(ctx context.Context) service.WagerService {
	if sp.wagerServ == nil {
		sp.wagerServ = wager.NewWagerService(
			sp.WagerCfg(),
			sp.RoundRepository(ctx),
			sp.TotalsRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.RandomSource(),
		)
	}
	return sp.wagerServ
}

func (sp *ServiceProvider) WagerHandler(ctx context.Context) *wagerAPI.Handler {
	if sp.wagerHand == nil {
		sp.wagerHand = wagerAPI.NewHandler(wagerAPI.HandlerDeps{
			Serv: sp.WagerService(ctx),
		})
	}
	return sp.wagerHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.Use(middleware.RequestLogger)

		// Wager endpoints
		wagerHandler := sp.WagerHandler(ctx)
		r.Route("/wager", func(rr chi.Router) {
			rr.Post("/resolve", wagerHandler.Resolve)
			rr.Get("/rounds/{roundID}", wagerHandler.Round)
			rr.Get("/stats", wagerHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
