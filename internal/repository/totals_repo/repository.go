package totals_repo

import (
	"context"
	"wager_backend/internal/model"
	"wager_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "wager_totals"
	gameType = "game_type"
	rounds   = "rounds"
	wagered  = "wagered"
	paid     = "paid"
	wins     = "wins"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTotalsRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.TotalsRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// AddRound - учёт раунда в накопительных итогах игры. Строка игры
// создаётся при первом раунде, дальше дополняется на месте.
func (r *repo) AddRound(ctx context.Context, gt model.GameType, stake, payout int64, win bool) error {
	winsInc := 0
	if win {
		winsInc = 1
	}

	// Формируем upsert
	query := sq.Insert(table).
		Columns(gameType, rounds, wagered, paid, wins).
		Values(string(gt), 1, stake, payout, winsInc).
		Suffix("ON CONFLICT (" + gameType + ") DO UPDATE SET " +
			rounds + " = " + table + "." + rounds + " + 1, " +
			wagered + " = " + table + "." + wagered + " + EXCLUDED." + wagered + ", " +
			paid + " = " + table + "." + paid + " + EXCLUDED." + paid + ", " +
			wins + " = " + table + "." + wins + " + EXCLUDED." + wins).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// Totals - накопительные итоги по всем играм.
func (r *repo) Totals(ctx context.Context) ([]model.GameTotals, error) {
	// Формируем запрос
	query := sq.Select(gameType, rounds, wagered, paid, wins).
		From(table).
		OrderBy(gameType).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []model.GameTotals
	for rows.Next() {
		var (
			t  model.GameTotals
			gt string
		)
		if err := rows.Scan(&gt, &t.Rounds, &t.Wagered, &t.Paid, &t.Wins); err != nil {
			return nil, err
		}
		t.GameType = model.GameType(gt)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
