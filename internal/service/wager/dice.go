package wager

import (
	"fmt"
	"wager_backend/internal/model"
	"wager_backend/pkg/rng"

	"github.com/shopspring/decimal"
)

// resolveDice бросает один шестигранный кубик и сверяет результат с
// прогнозом. Выплата stake * multiplier округляется вниз до целого.
func resolveDice(p model.DiceParams, stake int64, src rng.Source, mults map[model.DicePrediction]decimal.Decimal) model.Result {
	roll := src.IntN(diceFaceMin, diceFaceMax)

	var win bool
	switch p.Prediction {
	case model.PredictionHigher:
		win = roll > p.Target
	case model.PredictionLower:
		win = roll < p.Target
	case model.PredictionExact:
		win = roll == p.Target
	default:
		panic(fmt.Sprintf("dice: prediction %q passed validation", p.Prediction))
	}

	mult, ok := mults[p.Prediction]
	if !ok {
		panic(fmt.Sprintf("dice: no multiplier for prediction %q", p.Prediction))
	}

	var amount int64
	if win {
		amount = decimal.NewFromInt(stake).Mul(mult).Floor().IntPart()
	}

	return model.Result{
		Win:    win,
		Amount: amount,
		Dice: &model.DiceDetails{
			Prediction: p.Prediction,
			Target:     p.Target,
			Roll:       roll,
			Multiplier: mult,
		},
	}
}
