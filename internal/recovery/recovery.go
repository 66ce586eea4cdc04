// Package recovery ties the active-injury lookup, daily homework and compliance tracking together.
package recovery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/tracker"
	"github.com/limbo/rehab/pkg/entity"
)

type InjuryDirectory interface {
	// Returns nil without error when the player has no active injury
	CurrentInjury(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error)
	// Marks the assignment resolved
	ResolveInjury(ctx context.Context, injuryID int64) (*entity.ActiveInjury, error)
}

type HomeworkSource interface {
	DailyHomework(ctx context.Context, playerID uuid.UUID) (*entity.DailyHomework, error)
}

// Confirmer asks a human to approve resolving injury. Resolution is irreversible.
type Confirmer func(injury *entity.ActiveInjury) bool

type Service struct {
	injuries InjuryDirectory
	homework HomeworkSource
	tracker  *tracker.Tracker
	logger   *slog.Logger
}

func NewService(injuries InjuryDirectory, homework HomeworkSource, tr *tracker.Tracker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		injuries: injuries,
		homework: homework,
		tracker:  tr,
		logger:   logger,
	}
}

// Today returns the protocol view. Tasks are fetched only while an injury is active.
func (s *Service) Today(ctx context.Context, playerID uuid.UUID) (*entity.ProtocolView, error) {
	injury, err := s.injuries.CurrentInjury(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if injury == nil {
		return &entity.ProtocolView{}, nil
	}
	hw, err := s.homework.DailyHomework(ctx, playerID)
	if err != nil {
		return nil, err
	}
	progress, err := s.tracker.Evaluate(ctx, playerID, hw.Tasks)
	if err != nil {
		return nil, err
	}
	return &entity.ProtocolView{Injury: injury, Progress: progress}, nil
}

func (s *Service) Complete(ctx context.Context, playerID uuid.UUID, taskID string) (*entity.CompletionResult, error) {
	injury, err := s.injuries.CurrentInjury(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if injury == nil {
		return nil, errorvalues.ErrNoActiveInjury
	}
	hw, err := s.homework.DailyHomework(ctx, playerID)
	if err != nil {
		return nil, err
	}
	res, err := s.tracker.Complete(ctx, playerID, taskID, hw.Tasks)
	if err != nil {
		return nil, err
	}
	if res.StreakIncreased {
		s.logger.Info("protocol day complete",
			slog.String("player_id", playerID.String()),
			slog.Int("streak", res.Progress.Streak.Count),
		)
	}
	return res, nil
}

// Resolve closes the player's active injury. The id is taken from a fresh lookup, never from
// an earlier read. Without an active injury it returns ErrNoActiveInjury and changes nothing.
func (s *Service) Resolve(ctx context.Context, playerID uuid.UUID, confirm Confirmer) (*entity.ActiveInjury, error) {
	injury, err := s.injuries.CurrentInjury(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if injury == nil {
		return nil, errorvalues.ErrNoActiveInjury
	}
	if confirm == nil || !confirm(injury) {
		return nil, errorvalues.ErrResolutionNotConfirmed
	}
	resolved, err := s.injuries.ResolveInjury(ctx, injury.ID)
	if err != nil {
		return nil, err
	}
	current, err := s.injuries.CurrentInjury(ctx, playerID)
	if err != nil {
		s.logger.Warn("re-reading active injury after resolution failed", slog.String("error", err.Error()))
	} else if current != nil {
		s.logger.Warn("player still has an active injury after resolution", slog.Int64("injury_id", current.ID))
	}
	return resolved, nil
}
