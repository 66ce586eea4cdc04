package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/rehab/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AssignInjuryRequest struct {
	PlayerID        string `json:"player_id" validate:"required,uuid"`
	InjuryLibraryID int64  `json:"injury_library_id" validate:"required,gt=0"`
	// Defaults to today
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ProgressRequest struct {
	Percent int `validate:"min=0,max=100"`
}

type InjuryServiceI interface {
	// Lists catalog entries for a body area. Unknown area gives an empty slice
	InjuriesByArea(ctx context.Context, bodyArea string) ([]entity.InjuryCatalogEntry, error)
	// Validates request and activates the catalog entry for the player
	Assign(ctx context.Context, req *AssignInjuryRequest) (*entity.ActiveInjury, error)
	// Creates player's only Active injury, starting today
	Activate(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64) (*entity.ActiveInjury, error)
	// Returns player's Active injury or nil if there is none
	CurrentInjury(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error)
	// Marks injury healed today. Returns the resolved record
	ResolveInjury(ctx context.Context, injuryID int64) (*entity.ActiveInjury, error)
	ListActive(ctx context.Context) ([]*entity.ActiveInjury, error)
	UpdateProgress(ctx context.Context, injuryID int64, req *ProgressRequest) (*entity.ActiveInjury, error)
}

type HomeworkServiceI interface {
	// Locked recovery tasks while injured, standard plan otherwise
	DailyHomework(ctx context.Context, playerID uuid.UUID) (*entity.DailyHomework, error)
}
