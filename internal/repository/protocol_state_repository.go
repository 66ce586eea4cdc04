package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/limbo/rehab/pkg/kvstore"
)

// ProtocolStateRepository is a kvstore.Store over the protocol_state table.
type ProtocolStateRepository struct {
	conn PgConnection
}

func NewProtocolStateRepo(cfg DBConfig) *ProtocolStateRepository {
	return &ProtocolStateRepository{
		conn: NewPool(cfg),
	}
}

func NewProtocolStateRepoWithConn(conn PgConnection) *ProtocolStateRepository {
	ping(conn, "protocolStateRepo")
	return &ProtocolStateRepository{
		conn: conn,
	}
}

func (pr *ProtocolStateRepository) Get(ctx context.Context, key kvstore.Key) ([]byte, error) {
	var value []byte
	row := pr.conn.QueryRow(
		ctx,
		`SELECT value FROM protocol_state WHERE scope = $1 AND player_id = $2 AND item = $3;`,
		string(key.Scope),
		key.PlayerID,
		key.Item,
	)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, errors.New("getting protocol state error: " + err.Error())
	}
	return value, nil
}

func (pr *ProtocolStateRepository) Set(ctx context.Context, key kvstore.Key, value []byte) error {
	_, err := pr.conn.Exec(
		ctx,
		`INSERT INTO protocol_state (scope, player_id, item, value, updated_at) VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (scope, player_id, item) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`,
		string(key.Scope),
		key.PlayerID,
		key.Item,
		value,
	)
	if err != nil {
		return errors.New("setting protocol state error: " + err.Error())
	}
	return nil
}
