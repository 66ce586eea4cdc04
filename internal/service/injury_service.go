package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/repository"
	"github.com/limbo/rehab/pkg/entity"
)

type InjuryService struct {
	catalog  repository.CatalogRepositoryI
	injuries repository.InjuriesRepositoryI
	loc      *time.Location
}

// NewInjuryService dates starts and resolutions in loc.
func NewInjuryService(catalogRepo repository.CatalogRepositoryI, injuriesRepo repository.InjuriesRepositoryI, loc *time.Location) *InjuryService {
	if catalogRepo == nil || injuriesRepo == nil {
		log.Fatal("provided nil repository for injury service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &InjuryService{
		catalog:  catalogRepo,
		injuries: injuriesRepo,
		loc:      loc,
	}
}

func (is *InjuryService) InjuriesByArea(ctx context.Context, bodyArea string) ([]entity.InjuryCatalogEntry, error) {
	entries, err := is.catalog.GetByBodyArea(ctx, bodyArea)
	if err != nil {
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	return entries, nil
}

func (is *InjuryService) Assign(ctx context.Context, req *AssignInjuryRequest) (*entity.ActiveInjury, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid player id", errorvalues.ErrValidation)
	}
	startDate := is.today()
	if req.StartDate != "" {
		startDate, err = time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date", errorvalues.ErrValidation)
		}
	}
	return is.activate(ctx, playerID, req.InjuryLibraryID, startDate)
}

func (is *InjuryService) Activate(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64) (*entity.ActiveInjury, error) {
	return is.activate(ctx, playerID, injuryLibraryID, is.today())
}

func (is *InjuryService) activate(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64, startDate time.Time) (*entity.ActiveInjury, error) {
	if _, err := is.catalog.GetByID(ctx, injuryLibraryID); err != nil {
		if errors.Is(err, errorvalues.ErrCatalogEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	id, err := is.injuries.Create(ctx, playerID, injuryLibraryID, startDate)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrActivationConflict),
			errors.Is(err, errorvalues.ErrCatalogEntryNotFound):
			return nil, err
		}
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	return is.getByID(ctx, id)
}

func (is *InjuryService) CurrentInjury(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error) {
	injury, err := is.injuries.GetActiveByPlayer(ctx, playerID)
	if err != nil {
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	return injury, nil
}

func (is *InjuryService) ResolveInjury(ctx context.Context, injuryID int64) (*entity.ActiveInjury, error) {
	if err := is.injuries.Resolve(ctx, injuryID, is.today()); err != nil {
		if errors.Is(err, errorvalues.ErrInjuryNotFound) {
			return nil, err
		}
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	return is.getByID(ctx, injuryID)
}

func (is *InjuryService) ListActive(ctx context.Context) ([]*entity.ActiveInjury, error) {
	injuries, err := is.injuries.ListActive(ctx)
	if err != nil {
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	return injuries, nil
}

func (is *InjuryService) UpdateProgress(ctx context.Context, injuryID int64, req *ProgressRequest) (*entity.ActiveInjury, error) {
	if err := validateStruct(*req); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidProgress, err)
	}
	if err := is.injuries.UpdateProgress(ctx, injuryID, req.Percent); err != nil {
		if errors.Is(err, errorvalues.ErrInjuryNotFound) {
			return nil, err
		}
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	return is.getByID(ctx, injuryID)
}

func (is *InjuryService) getByID(ctx context.Context, id int64) (*entity.ActiveInjury, error) {
	injury, err := is.injuries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInjuryNotFound) {
			return nil, err
		}
		return nil, errors.New("injuries repository error: " + err.Error())
	}
	return injury, nil
}

// today is the calendar date in the service location, as a UTC midnight for DATE columns.
func (is *InjuryService) today() time.Time {
	return calendarDate(time.Now().In(is.loc))
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
