package triage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
)

type Catalog interface {
	// Lists catalog entries for a body area. Empty result is not an error
	InjuriesByArea(ctx context.Context, bodyArea string) ([]entity.InjuryCatalogEntry, error)
}

type Activator interface {
	// Commits a catalog entry as the player's only active injury
	Activate(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64) (*entity.ActiveInjury, error)
}

// Controller drives one athlete's wizard. It is not safe for concurrent use.
type Controller struct {
	catalog   Catalog
	activator Activator
	state     State
	logger    *slog.Logger
}

func NewController(catalog Catalog, activator Activator, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		catalog:   catalog,
		activator: activator,
		state:     Idle{},
		logger:    logger,
	}
}

func (c *Controller) State() State {
	return c.state
}

// SelectRegion fetches candidates and restarts the wizard at SYMPTOM. A failed lookup
// leaves the current state untouched.
func (c *Controller) SelectRegion(ctx context.Context, region string) error {
	candidates, err := c.catalog.InjuriesByArea(ctx, region)
	if err != nil {
		c.logger.Error("catalog lookup failed", slog.String("region", region), slog.String("error", err.Error()))
		return err
	}
	if candidates == nil {
		candidates = []entity.InjuryCatalogEntry{}
	}
	return c.apply(RegionSelected{Region: region, Candidates: candidates})
}

func (c *Controller) Pick(entryID int64) error {
	return c.apply(CandidatePicked{EntryID: entryID})
}

func (c *Controller) AffirmSafety() error {
	return c.apply(SafetyAffirmed{})
}

// ReportSymptoms abandons the flow. The returned entry carries the red flags that require external care.
func (c *Controller) ReportSymptoms() (*entity.InjuryCatalogEntry, error) {
	if err := c.apply(SymptomsReported{}); err != nil {
		return nil, err
	}
	return c.state.(Idle).Referral, nil
}

func (c *Controller) Back() error {
	return c.apply(Back{})
}

func (c *Controller) Cancel() {
	c.state = Idle{}
}

// Activate submits the selected entry to the activation gate. On failure the wizard stays
// on MEDICAL_CARD so the athlete can retry or cancel.
func (c *Controller) Activate(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error) {
	card, ok := c.state.(MedicalCard)
	if !ok {
		return nil, errors.Join(errorvalues.ErrInvalidTransition, errors.New("activation requires the medical card step"))
	}
	injury, err := c.activator.Activate(ctx, playerID, card.Selected.ID)
	if err != nil {
		c.logger.Error("activation failed",
			slog.Int64("injury_library_id", card.Selected.ID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if err = c.apply(Activated{}); err != nil {
		return nil, err
	}
	c.logger.Info("protocol activated", slog.Int64("injury_id", injury.ID))
	return injury, nil
}

func (c *Controller) apply(ev Event) error {
	next, err := Transition(c.state, ev)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}
