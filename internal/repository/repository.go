package repository

import (
	"context"
	"wager_backend/internal/model"
	repoModel "wager_backend/internal/repository/stats_repo/model"
)

type RoundRepository interface {
	SaveRound(ctx context.Context, round *model.Round) error
	GetRoundByID(ctx context.Context, roundID string) (*model.Round, error)
}

type TotalsRepository interface {
	AddRound(ctx context.Context, gameType model.GameType, stake, payout int64, win bool) error
	Totals(ctx context.Context) ([]model.GameTotals, error)
}

// StatsRepository — живая статистика в памяти процесса.
type StatsRepository interface {
	Record(stake, payout int64)
	State() repoModel.EngineState
}
