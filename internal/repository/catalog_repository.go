package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
)

const catalogColumns = `id, body_area, injury_type, immediate_action, recovery_exercises, video_url, red_flags, estimated_recovery_days`

type CatalogRepository struct {
	conn PgConnection
}

func NewCatalogRepo(cfg DBConfig) *CatalogRepository {
	return &CatalogRepository{
		conn: NewPool(cfg),
	}
}

func NewCatalogRepoWithConn(conn PgConnection) *CatalogRepository {
	ping(conn, "catalogRepo")
	return &CatalogRepository{
		conn: conn,
	}
}

func (cr *CatalogRepository) GetByBodyArea(ctx context.Context, bodyArea string) ([]entity.InjuryCatalogEntry, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+catalogColumns+` FROM injury_library WHERE lower(body_area) = lower($1) ORDER BY id;`, bodyArea)
	if err != nil {
		return nil, errors.New("getting injuries by body area error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.InjuryCatalogEntry, 0)
	for rows.Next() {
		entry, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning injuries: " + err.Error())
	}
	return entries, nil
}

func (cr *CatalogRepository) GetByID(ctx context.Context, id int64) (*entity.InjuryCatalogEntry, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+catalogColumns+` FROM injury_library WHERE id = $1;`, id)
	entry, err := scanCatalogEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func scanCatalogEntry(row pgx.Row) (*entity.InjuryCatalogEntry, error) {
	var (
		entry     entity.InjuryCatalogEntry
		exercises []byte
	)
	err := row.Scan(&entry.ID, &entry.BodyArea, &entry.InjuryType, &entry.ImmediateAction,
		&exercises, &entry.VideoURL, &entry.RedFlags, &entry.EstimatedRecoveryDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, errors.New("injury library row parsing error: " + err.Error())
	}
	entry.RecoveryExercises = make([]entity.Exercise, 0)
	if len(exercises) > 0 {
		if err = sonic.Unmarshal(exercises, &entry.RecoveryExercises); err != nil {
			return nil, errors.New("recovery exercises parsing error: " + err.Error())
		}
	}
	return &entry, nil
}
