package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/limbo/rehab/pkg/httputil"
)

type ResolveProtocolRequest struct {
	Confirm bool `json:"confirm"`
}

func (s *Server) DailyHomework(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	playerID, ok := s.playerFromPath(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	hw, err := s.homeworkService.DailyHomework(ctx, playerID)
	if err != nil {
		logger.Error("daily homework error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while assembling daily homework", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, hw)
	logger.Info("daily homework provided", slog.String("status", string(hw.Status)))
}

func (s *Server) ProtocolToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	playerID, ok := s.playerFromPath(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	view, err := s.protocolService.Today(ctx, playerID)
	if err != nil {
		logger.Error("protocol view error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while evaluating protocol", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("protocol view provided")
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	playerID, ok := s.playerFromPath(w, r)
	if !ok {
		return
	}
	taskID := chi.URLParam(r, "task_id")
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.protocolService.Complete(ctx, playerID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNoActiveInjury):
			logger.Error("task completion error: no active injury")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "player has no active injury", nil)
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("task completion error: unknown task", slog.String("task_id", taskID))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "task is not prescribed for today", nil)
		default:
			logger.Error("task completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("task completed",
		slog.String("task_id", taskID),
		slog.Bool("day_complete", res.Progress.AllSatisfied),
		slog.Int("streak", res.Progress.Streak.Count),
	)
}

func (s *Server) ResolveProtocol(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	playerID, ok := s.playerFromPath(w, r)
	if !ok {
		return
	}
	var req ResolveProtocolRequest
	err := httputil.DecodeJSONBody(r, &req)
	if err != nil {
		logger.Error("protocol resolution error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	injury, err := s.protocolService.Resolve(ctx, playerID, func(*entity.ActiveInjury) bool {
		return req.Confirm
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrResolutionNotConfirmed):
			logger.Error("protocol resolution error: not confirmed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "resolution must be confirmed", nil)
		case errors.Is(err, errorvalues.ErrNoActiveInjury), errors.Is(err, errorvalues.ErrInjuryNotFound):
			logger.Error("protocol resolution error: no active injury")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "player has no active injury", nil)
		default:
			logger.Error("protocol resolution error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving injury", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, injury)
	logger.Info("protocol resolved", slog.Int64("injury_id", injury.ID))
}
