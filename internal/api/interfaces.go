package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/rehab/internal/recovery"
	"github.com/limbo/rehab/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(playerID uuid.UUID) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	PlayerID string `json:"player_id"`
}

// ProtocolServiceI is the compliance view of a player's recovery protocol.
type ProtocolServiceI interface {
	Today(ctx context.Context, playerID uuid.UUID) (*entity.ProtocolView, error)
	Complete(ctx context.Context, playerID uuid.UUID, taskID string) (*entity.CompletionResult, error)
	Resolve(ctx context.Context, playerID uuid.UUID, confirm recovery.Confirmer) (*entity.ActiveInjury, error)
}
