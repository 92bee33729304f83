package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type GameType string

const (
	GameDice     GameType = "dice"
	GameRoulette GameType = "roulette"
	GameSlot     GameType = "slot"
)

type DicePrediction string

const (
	PredictionHigher DicePrediction = "higher"
	PredictionLower  DicePrediction = "lower"
	PredictionExact  DicePrediction = "exact"
)

type RouletteBetType string

const (
	RouletteStraight RouletteBetType = "straight"
	RouletteSplit    RouletteBetType = "split"
	RouletteStreet   RouletteBetType = "street"
	RouletteCorner   RouletteBetType = "corner"
	RouletteLine     RouletteBetType = "line"
	RouletteColumn   RouletteBetType = "column"
	RouletteDozen    RouletteBetType = "dozen"
	RouletteRed      RouletteBetType = "red"
	RouletteBlack    RouletteBetType = "black"
	RouletteEven     RouletteBetType = "even"
	RouletteOdd      RouletteBetType = "odd"
	RouletteLow      RouletteBetType = "low"
	RouletteHigh     RouletteBetType = "high"
)

type RouletteColor string

const (
	ColorGreen RouletteColor = "green"
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
)

// Полные списки допустимых значений. Порядок фиксирован, по нему же
// проверяется полнота таблицы выплат на старте.
var (
	GameTypes = []GameType{GameDice, GameRoulette, GameSlot}

	DicePredictions = []DicePrediction{PredictionHigher, PredictionLower, PredictionExact}

	RouletteBetTypes = []RouletteBetType{
		RouletteStraight, RouletteSplit, RouletteStreet, RouletteCorner, RouletteLine,
		RouletteColumn, RouletteDozen,
		RouletteRed, RouletteBlack, RouletteEven, RouletteOdd, RouletteLow, RouletteHigh,
	}
)

// BetRequest — одна ставка. Заполняется ровно один блок параметров,
// соответствующий GameType.
type BetRequest struct {
	GameType GameType
	Stake    int64
	Dice     *DiceParams
	Roulette *RouletteParams
	Slot     *SlotParams
}

type DiceParams struct {
	Prediction DicePrediction
	Target     int
}

// RouletteParams. Numbers заполняется только для позиционных ставок
// (straight..line) и для column/dozen. Для red/black/even/odd/low/high
// покрытие определяется типом ставки.
type RouletteParams struct {
	BetType RouletteBetType
	Numbers []int
}

type SlotParams struct {
	Lines int
}

// Result — нормализованный исход раунда. Заполнен ровно один блок
// деталей, по типу игры. Сериализуется в jsonb как есть.
type Result struct {
	Win    bool  `json:"win"`
	Amount int64 `json:"amount"`

	Dice     *DiceDetails     `json:"dice,omitempty"`
	Roulette *RouletteDetails `json:"roulette,omitempty"`
	Slot     *SlotDetails     `json:"slot,omitempty"`
}

type DiceDetails struct {
	Prediction DicePrediction  `json:"prediction"`
	Target     int             `json:"target"`
	Roll       int             `json:"roll"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type RouletteDetails struct {
	BetType    RouletteBetType `json:"bet_type"`
	Numbers    []int           `json:"numbers,omitempty"`
	Pocket     int             `json:"pocket"`
	Color      RouletteColor   `json:"color"`
	Multiplier int64           `json:"multiplier"`
}

// SlotDetails. Grid хранится по барабанам: Grid[reel][row].
type SlotDetails struct {
	Lines    int           `json:"lines"`
	Grid     [3][3]string  `json:"grid"`
	LineWins []SlotLineWin `json:"line_wins"`
}

type SlotLineWin struct {
	Line   int    `json:"line"`
	Symbol string `json:"symbol"`
	Value  int64  `json:"value"`
}

// Round — разыгранный раунд вместе с исходом.
type Round struct {
	ID        string
	GameType  GameType
	Stake     int64
	Result    Result
	CreatedAt time.Time
}

type GameTotals struct {
	GameType GameType
	Rounds   int64
	Wagered  int64
	Paid     int64
	Wins     int64
}

// EngineStats — сводка для ручки статистики. Счётчики Total* и окно
// считаются с момента старта процесса, Games — накопительные итоги из базы.
type EngineStats struct {
	TotalRounds  int64
	TotalWagered int64
	TotalPaid    int64
	OverallRTP   float64
	WindowRTP    float64
	WindowSize   int
	Games        []GameTotals
}
