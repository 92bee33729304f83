package wager

import (
	"context"
	"wager_backend/internal/model"

	"github.com/google/uuid"
)

// Round возвращает сохранённый раунд по идентификатору.
func (s *serv) Round(ctx context.Context, roundID string) (*model.Round, error) {
	// Кривой идентификатор до базы не доходит
	if _, err := uuid.Parse(roundID); err != nil {
		return nil, model.ErrRoundNotFound
	}
	return s.roundRepo.GetRoundByID(ctx, roundID)
}
