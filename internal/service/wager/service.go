package wager

import (
	"wager_backend/internal/config"
	"wager_backend/internal/repository"
	"wager_backend/internal/service"
	"wager_backend/pkg/rng"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        config.WagerConfig
	roundRepo  repository.RoundRepository
	totalsRepo repository.TotalsRepository
	statsRepo  repository.StatsRepository
	txManager  trm.Manager
	src        rng.Source
}

// NewWagerService Создать движок расчёта ставок
func NewWagerService(
	cfg config.WagerConfig,
	roundRepo repository.RoundRepository,
	totalsRepo repository.TotalsRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	src rng.Source,
) service.WagerService {
	return &serv{
		cfg:        cfg,
		roundRepo:  roundRepo,
		totalsRepo: totalsRepo,
		statsRepo:  statsRepo,
		txManager:  txManager,
		src:        src,
	}
}
