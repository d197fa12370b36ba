package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/ballpark/internal/domain/game"
	"github.com/riskibarqy/ballpark/internal/domain/gamerecord"
	"github.com/riskibarqy/ballpark/internal/usecase"
)

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req createGameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse(gameDateLayout, req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid date: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.gameService.CreateGame(ctx, game.Fields{
		Date:       date,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Stadium:    req.Stadium,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(created))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.GetGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) ListGameRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameRecords")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.gameService.ListGameRecords(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "list game records failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(records, gameRecordToDTO))
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRecord")
	defer span.End()

	var req createRecordRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.gameService.CreateRecord(ctx, gamerecord.Fields{
		PlayerID: req.PlayerID,
		GameID:   req.GameID,
		Hits:     req.Hits,
		Runs:     req.Runs,
		Errors:   req.Errors,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create game record failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameRecordToDTO(created))
}

func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecord")
	defer span.End()

	recordID, err := pathID(r, "recordID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.GetRecord(ctx, recordID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game record failed", "record_id", recordID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameRecordToDTO(item))
}
