package config

import (
	"wager_backend/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// WagerConfig — таблица выплат движка. Загружается один раз на старте,
// после этого только читается.
type WagerConfig interface {
	DiceMultipliers() map[model.DicePrediction]decimal.Decimal
	RouletteMultipliers() map[model.RouletteBetType]int64
	SlotSymbols() []SlotSymbol
}

// SlotSymbol — символ барабана: множитель выплаты за линию и вес выпадения.
type SlotSymbol struct {
	Name   string
	Value  int64
	Weight int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}
