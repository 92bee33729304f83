package wager

import (
	"context"
	"errors"
	"testing"
	"wager_backend/internal/config"
	"wager_backend/internal/model"
	"wager_backend/internal/repository/stats_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// seqSource выдаёт заранее заданные розыгрыши по порядку.
type seqSource struct {
	t     *testing.T
	draws []int
	next  int
}

func newSeqSource(t *testing.T, draws ...int) *seqSource {
	return &seqSource{t: t, draws: draws}
}

func (s *seqSource) IntN(min, max int) int {
	if s.next >= len(s.draws) {
		s.t.Fatalf("unexpected draw #%d: IntN(%d, %d)", s.next+1, min, max)
	}
	v := s.draws[s.next]
	s.next++
	if v < min || v > max {
		s.t.Fatalf("scripted draw %d is outside [%d, %d]", v, min, max)
	}
	return v
}

func (s *seqSource) used() int { return s.next }

// testConfig — таблица выплат с дефолтными значениями.
type testConfig struct{}

func (testConfig) DiceMultipliers() map[model.DicePrediction]decimal.Decimal {
	return map[model.DicePrediction]decimal.Decimal{
		model.PredictionHigher: decimal.RequireFromString("1.8"),
		model.PredictionLower:  decimal.RequireFromString("1.8"),
		model.PredictionExact:  decimal.NewFromInt(5),
	}
}

func (testConfig) RouletteMultipliers() map[model.RouletteBetType]int64 {
	return map[model.RouletteBetType]int64{
		model.RouletteStraight: 35,
		model.RouletteSplit:    17,
		model.RouletteStreet:   11,
		model.RouletteCorner:   8,
		model.RouletteLine:     5,
		model.RouletteColumn:   2,
		model.RouletteDozen:    2,
		model.RouletteRed:      1,
		model.RouletteBlack:    1,
		model.RouletteEven:     1,
		model.RouletteOdd:      1,
		model.RouletteLow:      1,
		model.RouletteHigh:     1,
	}
}

func (testConfig) SlotSymbols() []config.SlotSymbol {
	return []config.SlotSymbol{
		{Name: "cherry", Value: 2, Weight: 30},
		{Name: "lemon", Value: 3, Weight: 25},
		{Name: "orange", Value: 4, Weight: 20},
		{Name: "plum", Value: 6, Weight: 12},
		{Name: "bell", Value: 8, Weight: 8},
		{Name: "seven", Value: 15, Weight: 5},
	}
}

type fakeRoundRepo struct {
	saved   []*model.Round
	byID    map[string]*model.Round
	saveErr error
}

func (f *fakeRoundRepo) SaveRound(_ context.Context, round *model.Round) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.byID == nil {
		f.byID = make(map[string]*model.Round)
	}
	f.saved = append(f.saved, round)
	f.byID[round.ID] = round
	return nil
}

func (f *fakeRoundRepo) GetRoundByID(_ context.Context, roundID string) (*model.Round, error) {
	round, ok := f.byID[roundID]
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	return round, nil
}

type totalsAdd struct {
	gameType model.GameType
	stake    int64
	payout   int64
	win      bool
}

type fakeTotalsRepo struct {
	added  []totalsAdd
	totals []model.GameTotals
}

func (f *fakeTotalsRepo) AddRound(_ context.Context, gt model.GameType, stake, payout int64, win bool) error {
	f.added = append(f.added, totalsAdd{gameType: gt, stake: stake, payout: payout, win: win})
	return nil
}

func (f *fakeTotalsRepo) Totals(_ context.Context) ([]model.GameTotals, error) {
	return f.totals, nil
}

// nopTxManager выполняет функцию без настоящей транзакции.
type nopTxManager struct {
	calls int
}

func (m *nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func (m *nopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type testEnv struct {
	serv       *serv
	roundRepo  *fakeRoundRepo
	totalsRepo *fakeTotalsRepo
	statsRepo  *stats_repo.StateRepo
	txManager  *nopTxManager
}

func newTestEnv(src *seqSource) *testEnv {
	env := &testEnv{
		roundRepo:  &fakeRoundRepo{},
		totalsRepo: &fakeTotalsRepo{},
		statsRepo:  stats_repo.NewStatsRepository(),
		txManager:  &nopTxManager{},
	}
	env.serv = &serv{
		cfg:        testConfig{},
		roundRepo:  env.roundRepo,
		totalsRepo: env.totalsRepo,
		statsRepo:  env.statsRepo,
		txManager:  env.txManager,
		src:        src,
	}
	return env
}

func wantValidationError(t *testing.T, err error, code model.ErrorCode, field string) {
	t.Helper()
	var vErr *model.ValidationError
	if err == nil {
		t.Fatalf("expected validation error %s/%s, got nil", code, field)
	}
	if !errors.As(err, &vErr) {
		t.Fatalf("got error %v (%T), want *model.ValidationError", err, err)
	}
	if vErr.Code != code || vErr.Field != field {
		t.Fatalf("got %s on %q, want %s on %q", vErr.Code, vErr.Field, code, field)
	}
}
