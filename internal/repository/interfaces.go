package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/rehab/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CatalogRepositoryI interface {
	// Lists injury library entries for a body area (case-insensitive). Empty slice if none
	GetByBodyArea(ctx context.Context, bodyArea string) ([]entity.InjuryCatalogEntry, error)
	// Searches library entry by id
	GetByID(ctx context.Context, id int64) (*entity.InjuryCatalogEntry, error)
}

type InjuriesRepositoryI interface {
	// Creates an Active assignment. Fails with ErrActivationConflict if the player already has one
	Create(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64, startDate time.Time) (int64, error)
	// Searches assignment by id regardless of status
	GetByID(ctx context.Context, id int64) (*entity.ActiveInjury, error)
	// Returns player's Active assignment or nil if there is none
	GetActiveByPlayer(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error)
	// Lists all Active assignments
	ListActive(ctx context.Context) ([]*entity.ActiveInjury, error)
	// Moves an Active assignment to Resolved
	Resolve(ctx context.Context, id int64, healedDate time.Time) error
	// Sets rehab progress percent
	UpdateProgress(ctx context.Context, id int64, percent int) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
