// Package kvstore holds per-player protocol state: task completion instants and streak state.
package kvstore

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrKeyNotFound = errors.New("key not found")

type Scope string

const (
	// Last completion instant of one task
	ScopeCompletion Scope = "rehab_log"
	// Streak count and last qualifying day marker
	ScopeStreak Scope = "rehab_streak"
)

// Key addresses one value. Item is empty for player-wide values such as the streak.
type Key struct {
	Scope    Scope
	PlayerID uuid.UUID
	Item     string
}

func CompletionKey(playerID uuid.UUID, taskID string) Key {
	return Key{Scope: ScopeCompletion, PlayerID: playerID, Item: taskID}
}

func StreakKey(playerID uuid.UUID) Key {
	return Key{Scope: ScopeStreak, PlayerID: playerID}
}

func (k Key) String() string {
	parts := []string{string(k.Scope), k.PlayerID.String()}
	if k.Item != "" {
		parts = append(parts, k.Item)
	}
	return strings.Join(parts, ":")
}

// Store is a last-value-wins key-value store. Get returns ErrKeyNotFound for absent keys.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	Set(ctx context.Context, key Key, value []byte) error
}
