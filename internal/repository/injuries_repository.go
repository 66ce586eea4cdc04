package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
)

const assignmentSelect = `SELECT a.id, a.player_id, a.injury_library_id, l.body_area, l.injury_type, a.start_date,
	a.healed_date, a.status, a.progress_percent, l.estimated_recovery_days
	FROM injury_assignments a JOIN injury_library l ON l.id = a.injury_library_id`

type InjuriesRepository struct {
	conn PgConnection
}

func NewInjuriesRepo(cfg DBConfig) *InjuriesRepository {
	return &InjuriesRepository{
		conn: NewPool(cfg),
	}
}

func NewInjuriesRepoWithConn(conn PgConnection) *InjuriesRepository {
	ping(conn, "injuriesRepo")
	return &InjuriesRepository{
		conn: conn,
	}
}

func (ir *InjuriesRepository) Create(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64, startDate time.Time) (int64, error) {
	var id int64
	row := ir.conn.QueryRow(
		ctx,
		`INSERT INTO injury_assignments (player_id, injury_library_id, status, start_date) VALUES ($1, $2, 'Active', $3) RETURNING id;`,
		playerID,
		injuryLibraryID,
		startDate,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation of the one-active-per-player index
			case "23505":
				return 0, errorvalues.ErrActivationConflict
			// FK violation
			case "23503":
				return 0, errorvalues.ErrCatalogEntryNotFound
			}
		}
		return 0, errors.New("creating injury assignment error: " + err.Error())
	}
	return id, nil
}

func (ir *InjuriesRepository) GetByID(ctx context.Context, id int64) (*entity.ActiveInjury, error) {
	row := ir.conn.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1;`, id)
	injury, err := scanInjury(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrInjuryNotFound
		}
		return nil, errors.New("getting injury assignment by id error: " + err.Error())
	}
	return injury, nil
}

func (ir *InjuriesRepository) GetActiveByPlayer(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error) {
	row := ir.conn.QueryRow(ctx, assignmentSelect+` WHERE a.player_id = $1 AND a.status = 'Active';`, playerID)
	injury, err := scanInjury(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting active injury error: " + err.Error())
	}
	return injury, nil
}

func (ir *InjuriesRepository) ListActive(ctx context.Context) ([]*entity.ActiveInjury, error) {
	rows, err := ir.conn.Query(ctx, assignmentSelect+` WHERE a.status = 'Active' ORDER BY a.id;`)
	if err != nil {
		return nil, errors.New("listing active injuries error: " + err.Error())
	}
	defer rows.Close()
	injuries := make([]*entity.ActiveInjury, 0)
	for rows.Next() {
		injury, err := scanInjury(rows)
		if err != nil {
			return nil, errors.New("injury assignment row parsing error: " + err.Error())
		}
		injuries = append(injuries, injury)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning injuries: " + err.Error())
	}
	return injuries, nil
}

func (ir *InjuriesRepository) Resolve(ctx context.Context, id int64, healedDate time.Time) error {
	ct, err := ir.conn.Exec(
		ctx,
		`UPDATE injury_assignments SET status = 'Resolved', healed_date = $2 WHERE id = $1 AND status = 'Active';`,
		id,
		healedDate,
	)
	if err != nil {
		return errors.New("resolving injury error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrInjuryNotFound
	}
	return nil
}

func (ir *InjuriesRepository) UpdateProgress(ctx context.Context, id int64, percent int) error {
	ct, err := ir.conn.Exec(ctx, `UPDATE injury_assignments SET progress_percent = $2 WHERE id = $1;`, id, percent)
	if err != nil {
		return errors.New("updating progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrInjuryNotFound
	}
	return nil
}

func scanInjury(row pgx.Row) (*entity.ActiveInjury, error) {
	var (
		injury entity.ActiveInjury
		status string
	)
	err := row.Scan(&injury.ID, &injury.PlayerID, &injury.InjuryLibraryID, &injury.BodyArea, &injury.InjuryType,
		&injury.StartDate, &injury.HealedDate, &status, &injury.ProgressPercent, &injury.EstimatedRecoveryDays)
	if err != nil {
		return nil, err
	}
	injury.Status = entity.InjuryStatus(status)
	return &injury, nil
}
