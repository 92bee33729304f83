package wager

import "time"

type ResolveRequest struct {
	GameType string          `json:"game_type"`
	Stake    int64           `json:"stake"`
	Dice     *DiceParams     `json:"dice,omitempty"`
	Roulette *RouletteParams `json:"roulette,omitempty"`
	Slot     *SlotParams     `json:"slot,omitempty"`
}

type DiceParams struct {
	Prediction string `json:"prediction"`
	Target     int    `json:"target"`
}

type RouletteParams struct {
	BetType string `json:"bet_type"`
	Numbers []int  `json:"numbers,omitempty"`
}

type SlotParams struct {
	Lines int `json:"lines"`
}

type RoundResponse struct {
	RoundID  string `json:"round_id"`
	GameType string `json:"game_type"`
	Stake    int64  `json:"stake"`
	Win      bool   `json:"win"`
	Amount   int64  `json:"amount"`

	Dice     *DiceDetails     `json:"dice,omitempty"`
	Roulette *RouletteDetails `json:"roulette,omitempty"`
	Slot     *SlotDetails     `json:"slot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Множитель отдаётся строкой, чтобы не терять "1.8" в json-числах.
type DiceDetails struct {
	Prediction string `json:"prediction"`
	Target     int    `json:"target"`
	Roll       int    `json:"roll"`
	Multiplier string `json:"multiplier"`
}

type RouletteDetails struct {
	BetType    string `json:"bet_type"`
	Numbers    []int  `json:"numbers,omitempty"`
	Pocket     int    `json:"pocket"`
	Color      string `json:"color"`
	Multiplier int64  `json:"multiplier"`
}

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

type StatsResponse struct {
	TotalRounds  int64        `json:"total_rounds"`
	TotalWagered int64        `json:"total_wagered"`
	TotalPaid    int64        `json:"total_paid"`
	OverallRTP   float64      `json:"overall_rtp"`
	WindowRTP    float64      `json:"window_rtp"`
	WindowSize   int          `json:"window_size"`
	Games        []GameTotals `json:"games"`
}

type GameTotals struct {
	GameType string `json:"game_type"`
	Rounds   int64  `json:"rounds"`
	Wagered  int64  `json:"wagered"`
	Paid     int64  `json:"paid"`
	Wins     int64  `json:"wins"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}
