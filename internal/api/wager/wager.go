package wager

import (
	"errors"
	"net/http"
	dto "wager_backend/internal/api/dto/wager"
	"wager_backend/internal/converter"
	"wager_backend/internal/logger"
	"wager_backend/internal/model"
	"wager_backend/internal/service"
	"wager_backend/pkg/req"
	"wager_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.WagerService
}

type Handler struct {
	serv service.WagerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Resolve принимает ставку, разыгрывает её и возвращает раунд.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ResolveRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	round, err := h.serv.Resolve(r.Context(), converter.ToBetRequest(payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Round отдаёт сохранённый раунд по идентификатору.
func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	round, err := h.serv.Round(r.Context(), chi.URLParam(r, "roundID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*round))
}

// Stats отдаёт живую статистику движка и накопительные итоги по играм.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

// writeServiceError раскладывает ошибки сервиса по статусам: отказ
// валидации 400, пропавший раунд 404, всё остальное 500 без деталей.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: vErr.Msg,
			Code:  string(vErr.Code),
			Field: vErr.Field,
		})
	case errors.Is(err, model.ErrRoundNotFound):
		resp.WriteJSONResponse(w, http.StatusNotFound, dto.ErrorResponse{Error: "round not found"})
	default:
		logger.Log.Error("wager request failed", zap.Error(err))
		resp.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
