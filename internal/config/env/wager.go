package env

import (
	"errors"
	"fmt"
	"os"
	"wager_backend/internal/config"
	"wager_backend/internal/logger"
	"wager_backend/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Множители костей заданы строками, чтобы не терять точность ("1.8").
type wagerYAML struct {
	Wager struct {
		Dice struct {
			Multipliers map[string]string `yaml:"multipliers"`
		} `yaml:"dice"`
		Roulette struct {
			Multipliers map[string]int64 `yaml:"multipliers"`
		} `yaml:"roulette"`
		Slot struct {
			Symbols []slotSymbolYAML `yaml:"symbols"`
		} `yaml:"slot"`
	} `yaml:"wager"`
}

type slotSymbolYAML struct {
	Name   string `yaml:"name"`
	Value  int64  `yaml:"value"`
	Weight int    `yaml:"weight"`
}

type wagerConfig struct {
	diceMults     map[model.DicePrediction]decimal.Decimal
	rouletteMults map[model.RouletteBetType]int64
	slotSymbols   []config.SlotSymbol
}

// NewWagerConfigFromYAML читает таблицу выплат и проверяет её полноту.
// Неполная или противоречивая таблица валит сервис на старте, а не в
// момент первой ставки.
func NewWagerConfigFromYAML(path string) (config.WagerConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wager config: %w", err)
	}

	var doc wagerYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse wager config: %w", err)
	}

	cfg := &wagerConfig{
		diceMults:     make(map[model.DicePrediction]decimal.Decimal),
		rouletteMults: make(map[model.RouletteBetType]int64),
	}

	for _, p := range model.DicePredictions {
		s, ok := doc.Wager.Dice.Multipliers[string(p)]
		if !ok {
			return nil, fmt.Errorf("dice multiplier %q is missing", p)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("dice multiplier %q: %w", p, err)
		}
		if !d.IsPositive() {
			return nil, fmt.Errorf("dice multiplier %q must be positive", p)
		}
		cfg.diceMults[p] = d
	}

	for _, bt := range model.RouletteBetTypes {
		mult, ok := doc.Wager.Roulette.Multipliers[string(bt)]
		if !ok {
			return nil, fmt.Errorf("roulette multiplier %q is missing", bt)
		}
		if mult <= 0 {
			return nil, fmt.Errorf("roulette multiplier %q must be positive", bt)
		}
		cfg.rouletteMults[bt] = mult
	}

	if len(doc.Wager.Slot.Symbols) < 2 {
		return nil, errors.New("slot needs at least two symbols")
	}
	seen := make(map[string]bool, len(doc.Wager.Slot.Symbols))
	for _, s := range doc.Wager.Slot.Symbols {
		if s.Name == "" {
			return nil, errors.New("slot symbol without name")
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate slot symbol %q", s.Name)
		}
		seen[s.Name] = true
		if s.Value <= 0 {
			return nil, fmt.Errorf("slot symbol %q: value must be positive", s.Name)
		}
		if s.Weight <= 0 {
			return nil, fmt.Errorf("slot symbol %q: weight must be positive", s.Name)
		}
		cfg.slotSymbols = append(cfg.slotSymbols, config.SlotSymbol(s))
	}

	logger.Log.Info("wager config loaded",
		zap.String("path", path),
		zap.Int("slot_symbols", len(cfg.slotSymbols)))

	return cfg, nil
}

func (cfg *wagerConfig) DiceMultipliers() map[model.DicePrediction]decimal.Decimal {
	return cfg.diceMults
}

func (cfg *wagerConfig) RouletteMultipliers() map[model.RouletteBetType]int64 {
	return cfg.rouletteMults
}

func (cfg *wagerConfig) SlotSymbols() []config.SlotSymbol {
	return cfg.slotSymbols
}
