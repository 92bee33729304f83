package round_repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"wager_backend/internal/model"
	"wager_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "wager_rounds"
	idCol     = "id"
	gameType  = "game_type"
	stake     = "stake"
	win       = "win"
	amount    = "amount"
	details   = "details"
	createdAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewRoundRepository. Запросы идут через getter, чтобы попадать в
// транзакцию txManager, когда она открыта.
func NewRoundRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// SaveRound - сохранение раунда. Детали исхода пишутся в jsonb как есть.
func (r *repo) SaveRound(ctx context.Context, round *model.Round) error {
	rawDetails, err := json.Marshal(round.Result)
	if err != nil {
		return fmt.Errorf("marshal round details: %w", err)
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(idCol, gameType, stake, win, amount, details, createdAt).
		Values(round.ID, string(round.GameType), round.Stake, round.Result.Win, round.Result.Amount, rawDetails, round.CreatedAt).
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

// GetRoundByID - получение раунда по идентификатору.
// Возвращает model.ErrRoundNotFound, если записи нет.
func (r *repo) GetRoundByID(ctx context.Context, roundID string) (*model.Round, error) {
	// Формируем запрос
	query := sq.Select(idCol, gameType, stake, details, createdAt).
		From(table).
		Where(sq.Eq{idCol: roundID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		round      model.Round
		gt         string
		rawDetails []byte
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&round.ID, &gt, &round.Stake, &rawDetails, &round.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRoundNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(rawDetails, &round.Result); err != nil {
		return nil, fmt.Errorf("unmarshal round details: %w", err)
	}
	round.GameType = model.GameType(gt)

	return &round, nil
}
