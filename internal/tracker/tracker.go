// Package tracker evaluates daily task compliance for an active recovery protocol
// and feeds fully completed protocol days into the streak counter.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/limbo/rehab/pkg/kvstore"
	"github.com/limbo/rehab/pkg/protocolday"
)

type Tracker struct {
	store  kvstore.Store
	streak *StreakAccumulator
	now    func() time.Time
}

type Option func(*Tracker)

// WithClock replaces time.Now. The returned instants decide the protocol day,
// so the clock must report the athlete's local time.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(store kvstore.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		streak: NewStreakAccumulator(store),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Evaluate reports which tasks are satisfied in the current protocol day. It never writes.
func (t *Tracker) Evaluate(ctx context.Context, playerID uuid.UUID, tasks []entity.Task) (*entity.DailyProgress, error) {
	return t.evaluate(ctx, playerID, tasks, t.now())
}

// Complete stamps taskID with the current instant, overwriting any earlier completion,
// and re-evaluates the day. When every task is satisfied afterwards the streak is observed.
func (t *Tracker) Complete(ctx context.Context, playerID uuid.UUID, taskID string, tasks []entity.Task) (*entity.CompletionResult, error) {
	if !containsTask(tasks, taskID) {
		return nil, errorvalues.ErrTaskNotFound
	}
	now := t.now()
	stamp, err := now.MarshalText()
	if err != nil {
		return nil, errors.New("encoding completion time error: " + err.Error())
	}
	if err = t.store.Set(ctx, kvstore.CompletionKey(playerID, taskID), stamp); err != nil {
		return nil, errors.New("writing completion error: " + err.Error())
	}
	progress, err := t.evaluate(ctx, playerID, tasks, now)
	if err != nil {
		return nil, err
	}
	result := &entity.CompletionResult{
		TaskID:      taskID,
		CompletedAt: now,
	}
	if progress.AllSatisfied {
		streak, increased, err := t.streak.Observe(ctx, playerID, now)
		if err != nil {
			return nil, err
		}
		progress.Streak = streak
		result.StreakIncreased = increased
	}
	result.Progress = *progress
	return result, nil
}

func (t *Tracker) evaluate(ctx context.Context, playerID uuid.UUID, tasks []entity.Task, now time.Time) (*entity.DailyProgress, error) {
	progress := &entity.DailyProgress{
		WindowStart: protocolday.Threshold(now),
		WindowEnd:   protocolday.Next(now),
		Tasks:       make([]entity.TaskProgress, 0, len(tasks)),
		TotalTasks:  len(tasks),
	}
	for _, task := range tasks {
		last, err := t.lastCompletion(ctx, playerID, task.ID)
		if err != nil {
			return nil, err
		}
		tp := entity.TaskProgress{Task: task}
		if last != nil {
			tp.LastCompletedAt = last
			tp.Satisfied = protocolday.Satisfied(*last, now)
		}
		if tp.Satisfied {
			progress.SatisfiedCount++
		}
		progress.Tasks = append(progress.Tasks, tp)
	}
	if progress.TotalTasks > 0 {
		progress.Percent = float64(progress.SatisfiedCount) / float64(progress.TotalTasks) * 100
		progress.AllSatisfied = progress.SatisfiedCount == progress.TotalTasks
	}
	streak, err := t.streak.State(ctx, playerID)
	if err != nil {
		return nil, err
	}
	progress.Streak = streak
	return progress, nil
}

func (t *Tracker) lastCompletion(ctx context.Context, playerID uuid.UUID, taskID string) (*time.Time, error) {
	raw, err := t.store.Get(ctx, kvstore.CompletionKey(playerID, taskID))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, errors.New("reading completion error: " + err.Error())
	}
	var last time.Time
	if err = last.UnmarshalText(raw); err != nil {
		return nil, errors.New("decoding completion time error: " + err.Error())
	}
	return &last, nil
}

func containsTask(tasks []entity.Task, taskID string) bool {
	for _, task := range tasks {
		if task.ID == taskID {
			return true
		}
	}
	return false
}
