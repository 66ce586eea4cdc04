package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/rehab/internal/repository"
	"github.com/limbo/rehab/pkg/entity"
)

const lockedTaskDescription = "Mandatory Recovery Protocol"

var standardVideoURL = "https://youtube.com/..."

// standardPlan is handed out to players without an active injury.
var standardPlan = []entity.Task{
	{ID: "daily_1", Title: "Nordic Hamstring Curls", Reps: "5", Sets: "3", VideoURL: &standardVideoURL},
	{ID: "daily_2", Title: "Copenhagen Planks", Reps: "30s", Sets: "3", VideoURL: &standardVideoURL},
}

type HomeworkService struct {
	catalog  repository.CatalogRepositoryI
	injuries repository.InjuriesRepositoryI
	loc      *time.Location
}

func NewHomeworkService(catalogRepo repository.CatalogRepositoryI, injuriesRepo repository.InjuriesRepositoryI, loc *time.Location) *HomeworkService {
	if catalogRepo == nil || injuriesRepo == nil {
		log.Fatal("provided nil repository for homework service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &HomeworkService{
		catalog:  catalogRepo,
		injuries: injuriesRepo,
		loc:      loc,
	}
}

func (hs *HomeworkService) DailyHomework(ctx context.Context, playerID uuid.UUID) (*entity.DailyHomework, error) {
	hw := &entity.DailyHomework{
		Date:   time.Now().In(hs.loc).Format(time.DateOnly),
		Status: entity.HomeworkStatusActive,
	}
	injury, err := hs.injuries.GetActiveByPlayer(ctx, playerID)
	if err != nil {
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	if injury == nil {
		hw.Tasks = make([]entity.Task, len(standardPlan))
		copy(hw.Tasks, standardPlan)
		return hw, nil
	}
	hw.Status = entity.HomeworkStatusInjured
	hw.Tasks = make([]entity.Task, 0)
	entry, err := hs.catalog.GetByID(ctx, injury.InjuryLibraryID)
	if err != nil {
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	for idx, ex := range entry.RecoveryExercises {
		title := ex.Name
		if title == "" {
			title = "Rehab Exercise"
		}
		hw.Tasks = append(hw.Tasks, entity.Task{
			ID:          fmt.Sprintf("locked_%d_%d", injury.ID, idx),
			Title:       title,
			Description: lockedTaskDescription,
			Reps:        ex.Reps,
			Sets:        ex.Sets,
			VideoURL:    entry.VideoURL,
			IsLocked:    true,
		})
	}
	return hw, nil
}
