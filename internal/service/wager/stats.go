package wager

import (
	"context"
	"fmt"
	"wager_backend/internal/model"
)

// Stats собирает живые счётчики процесса и накопительные итоги по играм.
func (s *serv) Stats(ctx context.Context) (*model.EngineStats, error) {
	totals, err := s.totalsRepo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load totals: %w", err)
	}

	// В ответе присутствуют все игры движка, в том числе ещё не сыгранные.
	byGame := make(map[model.GameType]model.GameTotals, len(totals))
	for _, t := range totals {
		byGame[t.GameType] = t
	}

	games := make([]model.GameTotals, 0, len(model.GameTypes))
	for _, gt := range model.GameTypes {
		t, ok := byGame[gt]
		if !ok {
			t = model.GameTotals{GameType: gt}
		}
		games = append(games, t)
	}

	state := s.statsRepo.State()

	return &model.EngineStats{
		TotalRounds:  state.TotalRounds,
		TotalWagered: state.TotalWagered,
		TotalPaid:    state.TotalPaid,
		OverallRTP:   state.OverallRTP,
		WindowRTP:    state.WindowRTP,
		WindowSize:   len(state.RoundWindow),
		Games:        games,
	}, nil
}
