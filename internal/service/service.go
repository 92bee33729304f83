package service

import (
	"context"
	"wager_backend/internal/model"
)

type WagerService interface {
	Resolve(ctx context.Context, req model.BetRequest) (*model.Round, error)
	Round(ctx context.Context, roundID string) (*model.Round, error)
	Stats(ctx context.Context) (*model.EngineStats, error)
}
