package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/service"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/limbo/rehab/pkg/httputil"
)

type AssignInjuryRequest struct {
	PlayerID        string `json:"player_id"`
	InjuryLibraryID int64  `json:"injury_library_id"`
	StartDate       string `json:"start_date,omitempty"`
}

func (s *Server) InjuriesByArea(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	bodyArea := chi.URLParam(r, "body_area")
	if bodyArea == "" {
		logger.Error("injury library error: empty body area")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "body area is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entries, err := s.injuryService.InjuriesByArea(ctx, bodyArea)
	if err != nil {
		logger.Error("injury library error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while reading injury library", nil)
		return
	}
	if entries == nil {
		entries = []entity.InjuryCatalogEntry{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("injury library provided", slog.String("body_area", bodyArea), slog.Int("count", len(entries)))
}

func (s *Server) CurrentInjury(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	playerID, ok := s.playerFromPath(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	injury, err := s.injuryService.CurrentInjury(ctx, playerID)
	if err != nil {
		logger.Error("current injury error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while searching for current injury", nil)
		return
	}
	if injury == nil {
		w.WriteHeader(http.StatusNoContent)
		logger.Info("player has no active injury")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, injury)
	logger.Info("current injury provided")
}

func (s *Server) ActiveInjuries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	injuries, err := s.injuryService.ListActive(ctx)
	if err != nil {
		logger.Error("active injuries error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing active injuries", nil)
		return
	}
	if injuries == nil {
		injuries = []*entity.ActiveInjury{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, injuries)
	logger.Info("active injuries provided")
}

func (s *Server) AssignInjury(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AssignInjuryRequest
	err := httputil.DecodeJSONBody(r, &req)
	if err != nil {
		logger.Error("assign injury error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	injury, err := s.injuryService.Assign(ctx, &service.AssignInjuryRequest{
		PlayerID:        req.PlayerID,
		InjuryLibraryID: req.InjuryLibraryID,
		StartDate:       req.StartDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrActivationConflict):
			logger.Error("assign injury error: player already has active injury")
			httputil.WriteErrorResponse(w, http.StatusConflict, "player already has an active injury", nil)
		case errors.Is(err, errorvalues.ErrCatalogEntryNotFound):
			logger.Error("assign injury error: unknown injury library entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "injury library entry not found", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("assign injury error: invalid request", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid assignment request", err)
		default:
			logger.Error("assign injury error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while assigning injury", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, injury)
	logger.Info("injury assigned", slog.Int64("injury_id", injury.ID))
}

func (s *Server) ResolveInjury(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Error("resolve injury error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid injury id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	injury, err := s.injuryService.ResolveInjury(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInjuryNotFound) {
			logger.Error("resolve injury error: not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "active injury not found", nil)
			return
		}
		logger.Error("resolve injury error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving injury", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, injury)
	logger.Info("injury resolved", slog.Int64("injury_id", id))
}

func (s *Server) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Error("update progress error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid injury id", nil)
		return
	}
	percent, err := strconv.Atoi(r.URL.Query().Get("percent"))
	if err != nil {
		logger.Error("update progress error: invalid percent")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "percent must be an integer", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	injury, err := s.injuryService.UpdateProgress(ctx, id, &service.ProgressRequest{Percent: percent})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidProgress):
			logger.Error("update progress error: percent out of range", slog.Int("percent", percent))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "percent must be between 0 and 100", nil)
		case errors.Is(err, errorvalues.ErrInjuryNotFound):
			logger.Error("update progress error: not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "injury not found", nil)
		default:
			logger.Error("update progress error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating progress", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, injury)
	logger.Info("progress updated", slog.Int64("injury_id", id), slog.Int("percent", percent))
}

// playerFromPath reads {player_id} and checks it against the authenticated player.
// On failure the response is already written.
func (s *Server) playerFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	playerID, err := uuid.Parse(chi.URLParam(r, "player_id"))
	if err != nil {
		logger.Error("invalid player id in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid player id", nil)
		return uuid.UUID{}, false
	}
	authorized, err := GetPlayerIDFromContext(r)
	if err != nil {
		logger.Error("player scoped request without authorization")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	if authorized != playerID {
		logger.Error("player scoped request for another player", slog.String("requested", playerID.String()))
		httputil.WriteErrorResponse(w, http.StatusForbidden, "access to another player's data is forbidden", errorvalues.ErrForbidden)
		return uuid.UUID{}, false
	}
	return playerID, true
}
