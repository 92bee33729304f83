package wager

import (
	"testing"
	"wager_backend/internal/model"
)

func diceBet(stake int64, pred model.DicePrediction, target int) model.BetRequest {
	return model.BetRequest{
		GameType: model.GameDice,
		Stake:    stake,
		Dice:     &model.DiceParams{Prediction: pred, Target: target},
	}
}

func rouletteBet(stake int64, bt model.RouletteBetType, numbers ...int) model.BetRequest {
	return model.BetRequest{
		GameType: model.GameRoulette,
		Stake:    stake,
		Roulette: &model.RouletteParams{BetType: bt, Numbers: numbers},
	}
}

func slotBet(stake int64, lines int) model.BetRequest {
	return model.BetRequest{
		GameType: model.GameSlot,
		Stake:    stake,
		Slot:     &model.SlotParams{Lines: lines},
	}
}

func TestValidateBetRejects(t *testing.T) {
	tcs := []struct {
		name      string
		req       model.BetRequest
		wantCode  model.ErrorCode
		wantField string
	}{
		{
			name:      "empty game type",
			req:       model.BetRequest{Stake: 10},
			wantCode:  model.CodeMissingField,
			wantField: "game_type",
		},
		{
			name:      "unknown game type",
			req:       model.BetRequest{GameType: "poker", Stake: 10},
			wantCode:  model.CodeInvalidEnum,
			wantField: "game_type",
		},
		{
			name:      "zero stake",
			req:       diceBet(0, model.PredictionExact, 3),
			wantCode:  model.CodeOutOfRange,
			wantField: "stake",
		},
		{
			name:      "negative stake",
			req:       diceBet(-5, model.PredictionExact, 3),
			wantCode:  model.CodeOutOfRange,
			wantField: "stake",
		},
		{
			name:      "dice without params",
			req:       model.BetRequest{GameType: model.GameDice, Stake: 10},
			wantCode:  model.CodeMissingField,
			wantField: "dice",
		},
		{
			name:      "dice without prediction",
			req:       diceBet(10, "", 3),
			wantCode:  model.CodeMissingField,
			wantField: "dice.prediction",
		},
		{
			name:      "dice unknown prediction",
			req:       diceBet(10, "between", 3),
			wantCode:  model.CodeInvalidEnum,
			wantField: "dice.prediction",
		},
		{
			name:      "dice target zero",
			req:       diceBet(10, model.PredictionExact, 0),
			wantCode:  model.CodeOutOfRange,
			wantField: "dice.target",
		},
		{
			name:      "dice target above six",
			req:       diceBet(10, model.PredictionExact, 7),
			wantCode:  model.CodeOutOfRange,
			wantField: "dice.target",
		},
		{
			name: "dice with roulette params attached",
			req: model.BetRequest{
				GameType: model.GameDice,
				Stake:    10,
				Dice:     &model.DiceParams{Prediction: model.PredictionExact, Target: 3},
				Roulette: &model.RouletteParams{BetType: model.RouletteRed},
			},
			wantCode:  model.CodeInvalidBet,
			wantField: "params",
		},
		{
			name:      "roulette without params",
			req:       model.BetRequest{GameType: model.GameRoulette, Stake: 10},
			wantCode:  model.CodeMissingField,
			wantField: "roulette",
		},
		{
			name:      "roulette without bet type",
			req:       rouletteBet(10, ""),
			wantCode:  model.CodeMissingField,
			wantField: "roulette.bet_type",
		},
		{
			name:      "roulette unknown bet type",
			req:       rouletteBet(10, "basket", 0, 1, 2, 3),
			wantCode:  model.CodeInvalidEnum,
			wantField: "roulette.bet_type",
		},
		{
			name:      "straight with two numbers",
			req:       rouletteBet(10, model.RouletteStraight, 7, 8),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "straight without numbers",
			req:       rouletteBet(10, model.RouletteStraight),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "split with duplicate",
			req:       rouletteBet(10, model.RouletteSplit, 5, 5),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "corner short one number",
			req:       rouletteBet(10, model.RouletteCorner, 1, 2, 4),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "straight beyond wheel",
			req:       rouletteBet(10, model.RouletteStraight, 37),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "straight negative number",
			req:       rouletteBet(10, model.RouletteStraight, -1),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "column cannot cover zero",
			req:       rouletteBet(10, model.RouletteColumn, 0, 1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 31),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "column short of twelve",
			req:       rouletteBet(10, model.RouletteColumn, 1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 31),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "red does not take numbers",
			req:       rouletteBet(10, model.RouletteRed, 1),
			wantCode:  model.CodeInvalidBet,
			wantField: "roulette.numbers",
		},
		{
			name:      "slot without params",
			req:       model.BetRequest{GameType: model.GameSlot, Stake: 10},
			wantCode:  model.CodeMissingField,
			wantField: "slot",
		},
		{
			name:      "slot zero lines",
			req:       slotBet(10, 0),
			wantCode:  model.CodeOutOfRange,
			wantField: "slot.lines",
		},
		{
			name:      "slot six lines",
			req:       slotBet(10, 6),
			wantCode:  model.CodeOutOfRange,
			wantField: "slot.lines",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBet(tc.req)
			wantValidationError(t, err, tc.wantCode, tc.wantField)
		})
	}
}

func TestValidateBetAccepts(t *testing.T) {
	tcs := []struct {
		name string
		req  model.BetRequest
	}{
		{"dice higher", diceBet(1, model.PredictionHigher, 3)},
		{"dice lower edge target", diceBet(10, model.PredictionLower, 1)},
		{"dice exact six", diceBet(10, model.PredictionExact, 6)},
		{"straight on zero", rouletteBet(10, model.RouletteStraight, 0)},
		{"split covering zero", rouletteBet(10, model.RouletteSplit, 0, 1)},
		{"street", rouletteBet(10, model.RouletteStreet, 7, 8, 9)},
		{"corner", rouletteBet(10, model.RouletteCorner, 1, 2, 4, 5)},
		{"line", rouletteBet(10, model.RouletteLine, 1, 2, 3, 4, 5, 6)},
		{"column", rouletteBet(10, model.RouletteColumn, 1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 31, 34)},
		{"dozen", rouletteBet(10, model.RouletteDozen, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24)},
		{"red without numbers", rouletteBet(10, model.RouletteRed)},
		{"even without numbers", rouletteBet(10, model.RouletteEven)},
		{"slot one line", slotBet(10, 1)},
		{"slot five lines", slotBet(10, 5)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateBet(tc.req); err != nil {
				t.Fatalf("valid bet rejected: %v", err)
			}
		})
	}
}
