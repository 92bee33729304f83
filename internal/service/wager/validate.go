package wager

import (
	"fmt"
	"wager_backend/internal/model"
)

const (
	// Грани кубика
	diceFaceMin = 1
	diceFaceMax = 6
	// Европейское колесо: 0..36
	roulettePocketMax = 36
	// Линии слота
	slotMaxLines = 5
)

// Требуемое количество номеров по типам ставок. Ставки на цвет, чётность
// и половину поля номеров не принимают: их покрытие задаёт сам тип.
var rouletteBetSizes = map[model.RouletteBetType]int{
	model.RouletteStraight: 1,
	model.RouletteSplit:    2,
	model.RouletteStreet:   3,
	model.RouletteCorner:   4,
	model.RouletteLine:     6,
	model.RouletteColumn:   12,
	model.RouletteDozen:    12,
}

// validateBet полностью проверяет ставку до первого обращения к генератору
// случайности. Ошибочная ставка не тратит ни одного розыгрыша.
func validateBet(req model.BetRequest) error {
	if req.GameType == "" {
		return model.NewMissingField("game_type")
	}
	if req.Stake <= 0 {
		return model.NewOutOfRange("stake", "stake must be a positive integer")
	}

	switch req.GameType {
	case model.GameDice:
		if req.Roulette != nil || req.Slot != nil {
			return model.NewInvalidBet("params", "dice bet carries params of another game")
		}
		return validateDice(req.Dice)
	case model.GameRoulette:
		if req.Dice != nil || req.Slot != nil {
			return model.NewInvalidBet("params", "roulette bet carries params of another game")
		}
		return validateRoulette(req.Roulette)
	case model.GameSlot:
		if req.Dice != nil || req.Roulette != nil {
			return model.NewInvalidBet("params", "slot bet carries params of another game")
		}
		return validateSlot(req.Slot)
	default:
		return model.NewInvalidEnum("game_type", req.GameType)
	}
}

func validateDice(p *model.DiceParams) error {
	if p == nil {
		return model.NewMissingField("dice")
	}

	switch p.Prediction {
	case model.PredictionHigher, model.PredictionLower, model.PredictionExact:
	case "":
		return model.NewMissingField("dice.prediction")
	default:
		return model.NewInvalidEnum("dice.prediction", p.Prediction)
	}

	if p.Target < diceFaceMin || p.Target > diceFaceMax {
		return model.NewOutOfRange("dice.target",
			fmt.Sprintf("target must be between %d and %d", diceFaceMin, diceFaceMax))
	}
	return nil
}

func validateRoulette(p *model.RouletteParams) error {
	if p == nil {
		return model.NewMissingField("roulette")
	}
	if p.BetType == "" {
		return model.NewMissingField("roulette.bet_type")
	}
	if !knownRouletteBetType(p.BetType) {
		return model.NewInvalidEnum("roulette.bet_type", p.BetType)
	}

	want, positional := rouletteBetSizes[p.BetType]
	if !positional {
		if len(p.Numbers) != 0 {
			return model.NewInvalidBet("roulette.numbers",
				fmt.Sprintf("%s bet does not take numbers", p.BetType))
		}
		return nil
	}

	if len(p.Numbers) == 0 {
		return model.NewInvalidBet("roulette.numbers",
			fmt.Sprintf("%s bet requires %d numbers", p.BetType, want))
	}
	if len(p.Numbers) != want {
		return model.NewInvalidBet("roulette.numbers",
			fmt.Sprintf("%s bet requires exactly %d numbers, got %d", p.BetType, want, len(p.Numbers)))
	}

	// Зеро не входит ни в колонну, ни в дюжину
	min := 0
	if p.BetType == model.RouletteColumn || p.BetType == model.RouletteDozen {
		min = 1
	}

	seen := make(map[int]bool, len(p.Numbers))
	for _, n := range p.Numbers {
		if n < min || n > roulettePocketMax {
			return model.NewInvalidBet("roulette.numbers",
				fmt.Sprintf("number %d is outside [%d, %d]", n, min, roulettePocketMax))
		}
		if seen[n] {
			return model.NewInvalidBet("roulette.numbers",
				fmt.Sprintf("number %d listed twice", n))
		}
		seen[n] = true
	}
	return nil
}

func knownRouletteBetType(bt model.RouletteBetType) bool {
	for _, known := range model.RouletteBetTypes {
		if bt == known {
			return true
		}
	}
	return false
}

func validateSlot(p *model.SlotParams) error {
	if p == nil {
		return model.NewMissingField("slot")
	}
	if p.Lines < 1 || p.Lines > slotMaxLines {
		return model.NewOutOfRange("slot.lines",
			fmt.Sprintf("lines must be between 1 and %d", slotMaxLines))
	}
	return nil
}
