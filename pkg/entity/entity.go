package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type InjuryStatus string

const (
	InjuryStatusActive   InjuryStatus = "Active"
	InjuryStatusResolved InjuryStatus = "Resolved"
)

type HomeworkStatus string

const (
	// Player has no active injury and gets the standard training plan
	HomeworkStatusActive HomeworkStatus = "Active"
	// Player is locked into a recovery protocol
	HomeworkStatusInjured HomeworkStatus = "Injured"
)

type Exercise struct {
	Name string `json:"name"`
	Reps string `json:"reps"`
	Sets string `json:"sets,omitempty"`
}

// InjuryCatalogEntry is a read-only record of the injury library.
type InjuryCatalogEntry struct {
	ID                    int64      `json:"id"`
	BodyArea              string     `json:"body_area"`
	InjuryType            string     `json:"injury_type"`
	RedFlags              *string    `json:"red_flags"`
	ImmediateAction       string     `json:"immediate_action"`
	RecoveryExercises     []Exercise `json:"recovery_exercises"`
	VideoURL              *string    `json:"video_url,omitempty"`
	EstimatedRecoveryDays int        `json:"estimated_recovery_days"`
}

// HasRedFlags reports whether the entry requires a safety confirmation before activation.
func (e *InjuryCatalogEntry) HasRedFlags() bool {
	return e.RedFlags != nil && strings.TrimSpace(*e.RedFlags) != ""
}

type ActiveInjury struct {
	ID                    int64        `json:"id"`
	PlayerID              uuid.UUID    `json:"player_id"`
	InjuryLibraryID       int64        `json:"injury_library_id"`
	BodyArea              string       `json:"body_area"`
	InjuryType            string       `json:"injury_type"`
	StartDate             time.Time    `json:"start_date"`
	HealedDate            *time.Time   `json:"healed_date,omitempty"`
	Status                InjuryStatus `json:"status"`
	ProgressPercent       int          `json:"progress_percent"`
	EstimatedRecoveryDays int          `json:"estimated_recovery_days"`
}

type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Reps        string  `json:"reps"`
	Sets        string  `json:"sets,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	IsLocked    bool    `json:"is_locked"`
}

type DailyHomework struct {
	Date   string         `json:"date"`
	Status HomeworkStatus `json:"status"`
	Tasks  []Task         `json:"tasks"`
}

type StreakState struct {
	Count             int        `json:"count"`
	LastQualifyingDay *time.Time `json:"last_qualifying_day,omitempty"`
}

type TaskProgress struct {
	Task
	Satisfied       bool       `json:"satisfied"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

type DailyProgress struct {
	WindowStart    time.Time      `json:"window_start"`
	WindowEnd      time.Time      `json:"window_end"`
	Tasks          []TaskProgress `json:"tasks"`
	SatisfiedCount int            `json:"satisfied_count"`
	TotalTasks     int            `json:"total_tasks"`
	Percent        float64        `json:"percent"`
	AllSatisfied   bool           `json:"all_satisfied"`
	Streak         StreakState    `json:"streak"`
}

type CompletionResult struct {
	TaskID          string        `json:"task_id"`
	CompletedAt     time.Time     `json:"completed_at"`
	Progress        DailyProgress `json:"progress"`
	StreakIncreased bool          `json:"streak_increased"`
}

// ProtocolView is what the athlete sees: Injury is nil when the player is unlocked
// and no tasks were fetched.
type ProtocolView struct {
	Injury   *ActiveInjury  `json:"injury"`
	Progress *DailyProgress `json:"progress,omitempty"`
}
