package model

// EngineState — счётчики движка с момента старта процесса.
type EngineState struct {
	TotalRounds  int64
	TotalWagered int64
	TotalPaid    int64
	// RTP с момента старта, в процентах
	OverallRTP float64

	// Скользящее окно последних раундов
	RoundWindow []RoundStat
	WindowRTP   float64
	WindowSize  int
}

type RoundStat struct {
	Stake  int64
	Payout int64
}
