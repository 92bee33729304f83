package converter

import (
	"wager_backend/internal/api/dto/wager"
	"wager_backend/internal/model"
)

// ToBetRequest переводит тело запроса в доменную ставку.
// Валидацией занимается сервис.
func ToBetRequest(req wager.ResolveRequest) model.BetRequest {
	bet := model.BetRequest{
		GameType: model.GameType(req.GameType),
		Stake:    req.Stake,
	}
	if req.Dice != nil {
		bet.Dice = &model.DiceParams{
			Prediction: model.DicePrediction(req.Dice.Prediction),
			Target:     req.Dice.Target,
		}
	}
	if req.Roulette != nil {
		bet.Roulette = &model.RouletteParams{
			BetType: model.RouletteBetType(req.Roulette.BetType),
			Numbers: req.Roulette.Numbers,
		}
	}
	if req.Slot != nil {
		bet.Slot = &model.SlotParams{
			Lines: req.Slot.Lines,
		}
	}
	return bet
}

func ToRoundResponse(round model.Round) wager.RoundResponse {
	resp := wager.RoundResponse{
		RoundID:   round.ID,
		GameType:  string(round.GameType),
		Stake:     round.Stake,
		Win:       round.Result.Win,
		Amount:    round.Result.Amount,
		CreatedAt: round.CreatedAt,
	}

	if d := round.Result.Dice; d != nil {
		resp.Dice = &wager.DiceDetails{
			Prediction: string(d.Prediction),
			Target:     d.Target,
			Roll:       d.Roll,
			Multiplier: d.Multiplier.String(),
		}
	}
	if d := round.Result.Roulette; d != nil {
		resp.Roulette = &wager.RouletteDetails{
			BetType:    string(d.BetType),
			Numbers:    d.Numbers,
			Pocket:     d.Pocket,
			Color:      string(d.Color),
			Multiplier: d.Multiplier,
		}
	}
	if d := round.Result.Slot; d != nil {
		resp.Slot = &wager.SlotDetails{
			Lines:    d.Lines,
			Grid:     d.Grid,
			LineWins: toSlotLineWins(d.LineWins),
		}
	}

	return resp
}

func toSlotLineWins(wins []model.SlotLineWin) []wager.SlotLineWin {
	result := make([]wager.SlotLineWin, len(wins))
	for i, w := range wins {
		result[i] = wager.SlotLineWin{
			Line:   w.Line,
			Symbol: w.Symbol,
			Value:  w.Value,
		}
	}
	return result
}

func ToStatsResponse(stats model.EngineStats) wager.StatsResponse {
	games := make([]wager.GameTotals, len(stats.Games))
	for i, g := range stats.Games {
		games[i] = wager.GameTotals{
			GameType: string(g.GameType),
			Rounds:   g.Rounds,
			Wagered:  g.Wagered,
			Paid:     g.Paid,
			Wins:     g.Wins,
		}
	}

	return wager.StatsResponse{
		TotalRounds:  stats.TotalRounds,
		TotalWagered: stats.TotalWagered,
		TotalPaid:    stats.TotalPaid,
		OverallRTP:   stats.OverallRTP,
		WindowRTP:    stats.WindowRTP,
		WindowSize:   stats.WindowSize,
		Games:        games,
	}
}
