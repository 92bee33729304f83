package wager

import (
	"context"
	"fmt"
	"time"
	"wager_backend/internal/logger"
	"wager_backend/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resolve проверяет ставку, разыгрывает её и сохраняет раунд вместе с
// агрегатами. Валидация всегда отрабатывает до первого броска.
func (s *serv) Resolve(ctx context.Context, req model.BetRequest) (*model.Round, error) {
	// Валидация ставки
	if err := validateBet(req); err != nil {
		return nil, err
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Розыгрыш: после валидации он уже не может отказать
	res := s.resolveBet(req)

	round := &model.Round{
		ID:        uuid.NewString(),
		GameType:  req.GameType,
		Stake:     req.Stake,
		Result:    res,
		CreatedAt: time.Now().UTC(),
	}

	// Раунд и накопительные счётчики пишутся в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.roundRepo.SaveRound(txCtx, round); err != nil {
			return fmt.Errorf("save round: %w", err)
		}
		if err := s.totalsRepo.AddRound(txCtx, req.GameType, req.Stake, res.Amount, res.Win); err != nil {
			return fmt.Errorf("update totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Скользящее окно живёт в памяти, транзакция ему не нужна
	s.statsRepo.Record(req.Stake, res.Amount)

	logger.Log.Info("round resolved",
		zap.String("round_id", round.ID),
		zap.String("game_type", string(round.GameType)),
		zap.Int64("stake", round.Stake),
		zap.Bool("win", res.Win),
		zap.Int64("amount", res.Amount),
	)

	return round, nil
}

// resolveBet — чистый розыгрыш без побочных эффектов. Ставка уже прошла
// валидацию, любое несоответствие дальше — нарушение инварианта.
func (s *serv) resolveBet(req model.BetRequest) model.Result {
	switch req.GameType {
	case model.GameDice:
		return resolveDice(*req.Dice, req.Stake, s.src, s.cfg.DiceMultipliers())
	case model.GameRoulette:
		return resolveRoulette(*req.Roulette, req.Stake, s.src, s.cfg.RouletteMultipliers())
	case model.GameSlot:
		return resolveSlot(*req.Slot, req.Stake, s.src, s.cfg.SlotSymbols())
	default:
		panic(fmt.Sprintf("game type %q passed validation", req.GameType))
	}
}
