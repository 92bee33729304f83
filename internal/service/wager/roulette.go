package wager

import (
	"fmt"
	"wager_backend/internal/model"
	"wager_backend/pkg/rng"
)

// Красные номера европейского колеса, остальные 18 чёрные, зеро зелёный.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

func pocketColor(n int) model.RouletteColor {
	switch {
	case n == 0:
		return model.ColorGreen
	case redNumbers[n]:
		return model.ColorRed
	default:
		return model.ColorBlack
	}
}

// resolveRoulette крутит колесо (0..36) и оценивает ставку. Зеро
// выигрывает только позиционные ставки, в покрытие которых он входит
// явно; колонны, дюжины и ставки на полполя при зеро проигрывают.
func resolveRoulette(p model.RouletteParams, stake int64, src rng.Source, mults map[model.RouletteBetType]int64) model.Result {
	pocket := src.IntN(0, roulettePocketMax)
	color := pocketColor(pocket)

	var win bool
	switch p.BetType {
	case model.RouletteStraight, model.RouletteSplit, model.RouletteStreet,
		model.RouletteCorner, model.RouletteLine:
		win = containsNumber(p.Numbers, pocket)
	case model.RouletteColumn, model.RouletteDozen:
		win = pocket != 0 && containsNumber(p.Numbers, pocket)
	case model.RouletteRed:
		win = color == model.ColorRed
	case model.RouletteBlack:
		win = color == model.ColorBlack
	case model.RouletteEven:
		win = pocket != 0 && pocket%2 == 0
	case model.RouletteOdd:
		win = pocket%2 == 1
	case model.RouletteLow:
		win = pocket >= 1 && pocket <= 18
	case model.RouletteHigh:
		win = pocket >= 19
	default:
		panic(fmt.Sprintf("roulette: bet type %q passed validation", p.BetType))
	}

	mult, ok := mults[p.BetType]
	if !ok {
		panic(fmt.Sprintf("roulette: no multiplier for bet type %q", p.BetType))
	}

	var amount int64
	if win {
		amount = stake * mult
	}

	return model.Result{
		Win:    win,
		Amount: amount,
		Roulette: &model.RouletteDetails{
			BetType:    p.BetType,
			Numbers:    p.Numbers,
			Pocket:     pocket,
			Color:      color,
			Multiplier: mult,
		},
	}
}

func containsNumber(numbers []int, n int) bool {
	for _, v := range numbers {
		if v == n {
			return true
		}
	}
	return false
}
