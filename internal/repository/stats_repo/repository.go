package stats_repo

import (
	"sync"
	repoModel "wager_backend/internal/repository/stats_repo/model"
)

const (
	// Размер скользящего окна в раундах
	defaultWindowSize = 500
)

// Реализация репозитория для хранения живой статистики движка
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.EngineState
}

// NewStatsRepository Конструктор репозитория с нулевым состоянием
func NewStatsRepository() *StateRepo {
	return &StateRepo{
		state: repoModel.EngineState{
			RoundWindow: make([]repoModel.RoundStat, 0, defaultWindowSize),
			WindowSize:  defaultWindowSize,
		},
	}
}

// Record Учесть раунд в счётчиках и скользящем окне
func (r *StateRepo) Record(stake, payout int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRounds++
	r.state.TotalWagered += stake
	r.state.TotalPaid += payout
	if r.state.TotalWagered > 0 {
		r.state.OverallRTP = float64(r.state.TotalPaid) / float64(r.state.TotalWagered) * 100
	}

	// Добавляем раунд в окно
	r.state.RoundWindow = append(r.state.RoundWindow, repoModel.RoundStat{
		Stake:  stake,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.state.RoundWindow) > r.state.WindowSize {
		r.state.RoundWindow = r.state.RoundWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowStake, windowPayout int64
	for _, rs := range r.state.RoundWindow {
		windowStake += rs.Stake
		windowPayout += rs.Payout
	}
	if windowStake > 0 {
		r.state.WindowRTP = float64(windowPayout) / float64(windowStake) * 100
	} else {
		r.state.WindowRTP = 0
	}
}

// State Снимок состояния. Окно копируется, снимок можно читать без гонок.
func (r *StateRepo) State() repoModel.EngineState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	snapshot := r.state
	snapshot.RoundWindow = append([]repoModel.RoundStat(nil), r.state.RoundWindow...)
	return snapshot
}
