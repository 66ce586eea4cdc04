package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/limbo/rehab/pkg/kvstore"
	"github.com/limbo/rehab/pkg/protocolday"
)

// StreakAccumulator counts protocol days on which every prescribed task was satisfied.
// The counter never decrements on a missed day.
type StreakAccumulator struct {
	store kvstore.Store
}

func NewStreakAccumulator(store kvstore.Store) *StreakAccumulator {
	return &StreakAccumulator{store: store}
}

type streakRecord struct {
	Count int `json:"count"`
	// RFC3339 instant of the qualifying day's threshold
	LastQualifyingDay string `json:"last_qualifying_day,omitempty"`
}

func (sa *StreakAccumulator) State(ctx context.Context, playerID uuid.UUID) (entity.StreakState, error) {
	raw, err := sa.store.Get(ctx, kvstore.StreakKey(playerID))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return entity.StreakState{}, nil
		}
		return entity.StreakState{}, errors.New("reading streak error: " + err.Error())
	}
	var rec streakRecord
	if err = sonic.Unmarshal(raw, &rec); err != nil {
		return entity.StreakState{}, errors.New("decoding streak error: " + err.Error())
	}
	state := entity.StreakState{Count: rec.Count}
	if rec.LastQualifyingDay != "" {
		day, err := time.Parse(time.RFC3339Nano, rec.LastQualifyingDay)
		if err != nil {
			return entity.StreakState{}, errors.New("decoding streak day marker error: " + err.Error())
		}
		state.LastQualifyingDay = &day
	}
	return state, nil
}

// Observe records that all tasks are satisfied at now. It increments the counter only when
// the protocol day marker differs from the stored one, so repeated observations within
// one protocol day are no-ops. The returned bool reports whether the counter moved.
func (sa *StreakAccumulator) Observe(ctx context.Context, playerID uuid.UUID, now time.Time) (entity.StreakState, bool, error) {
	state, err := sa.State(ctx, playerID)
	if err != nil {
		return entity.StreakState{}, false, err
	}
	marker := protocolday.Threshold(now)
	if state.LastQualifyingDay != nil && state.LastQualifyingDay.Equal(marker) {
		return state, false, nil
	}
	state.Count++
	state.LastQualifyingDay = &marker
	raw, err := sonic.Marshal(streakRecord{
		Count:             state.Count,
		LastQualifyingDay: marker.Format(time.RFC3339Nano),
	})
	if err != nil {
		return entity.StreakState{}, false, errors.New("encoding streak error: " + err.Error())
	}
	if err = sa.store.Set(ctx, kvstore.StreakKey(playerID), raw); err != nil {
		return entity.StreakState{}, false, errors.New("writing streak error: " + err.Error())
	}
	return state, true, nil
}
