package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/repository/mocks"
	"github.com/limbo/rehab/internal/service"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	playerID  = uuid.New()
	kneeEntry = entity.InjuryCatalogEntry{
		ID:                    5,
		BodyArea:              "Knee",
		InjuryType:            "ACL Sprain (Minor)",
		ImmediateAction:       "Rest and elevate.",
		RecoveryExercises:     []entity.Exercise{{Name: "Quad Sets", Reps: "3x20"}, {Name: "SLR", Reps: "3x10"}},
		EstimatedRecoveryDays: 28,
	}
	activeKnee = entity.ActiveInjury{
		ID:                    42,
		PlayerID:              playerID,
		InjuryLibraryID:       5,
		BodyArea:              "Knee",
		InjuryType:            "ACL Sprain (Minor)",
		StartDate:             time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Status:                entity.InjuryStatusActive,
		EstimatedRecoveryDays: 28,
	}
)

func TestActivate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&kneeEntry, nil)
				injuriesRepo.EXPECT().Create(gomock.Any(), playerID, int64(5), gomock.Any()).Return(int64(42), nil)
				injuriesRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&activeKnee, nil)
			},
		},
		{
			Desc:  "error unknown catalog entry",
			Error: errorvalues.ErrCatalogEntryNotFound,
			MockPrepFunc: func() {
				catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, errorvalues.ErrCatalogEntryNotFound)
			},
		},
		{
			Desc:  "error player already injured",
			Error: errorvalues.ErrActivationConflict,
			MockPrepFunc: func() {
				catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&kneeEntry, nil)
				injuriesRepo.EXPECT().Create(gomock.Any(), playerID, int64(5), gomock.Any()).Return(int64(0), errorvalues.ErrActivationConflict)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			injury, err := serv.Activate(ctx, playerID, 5)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, &activeKnee, injury)
			}
		})
	}
}

func TestActivateStartsToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)

	var startDate time.Time
	catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&kneeEntry, nil)
	injuriesRepo.EXPECT().Create(gomock.Any(), playerID, int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int64, d time.Time) (int64, error) {
			startDate = d
			return 42, nil
		})
	injuriesRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&activeKnee, nil)

	_, err := serv.Activate(context.Background(), playerID, 5)
	require.NoError(t, err)
	y, m, d := time.Now().UTC().Date()
	assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), startDate)
}

func TestAssign(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)
	ctx := context.Background()

	t.Run("invalid player id", func(t *testing.T) {
		_, err := serv.Assign(ctx, &service.AssignInjuryRequest{PlayerID: "p-1", InjuryLibraryID: 5})
		assert.Error(t, err)
	})
	t.Run("missing library id", func(t *testing.T) {
		_, err := serv.Assign(ctx, &service.AssignInjuryRequest{PlayerID: playerID.String()})
		assert.Error(t, err)
	})
	t.Run("success", func(t *testing.T) {
		catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&kneeEntry, nil)
		injuriesRepo.EXPECT().Create(gomock.Any(), playerID, int64(5), gomock.Any()).Return(int64(42), nil)
		injuriesRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&activeKnee, nil)
		injury, err := serv.Assign(ctx, &service.AssignInjuryRequest{PlayerID: playerID.String(), InjuryLibraryID: 5})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), injury.ID)
	})
	t.Run("explicit start date", func(t *testing.T) {
		startDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&kneeEntry, nil)
		injuriesRepo.EXPECT().Create(gomock.Any(), playerID, int64(5), startDate).Return(int64(42), nil)
		injuriesRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&activeKnee, nil)
		_, err := serv.Assign(ctx, &service.AssignInjuryRequest{
			PlayerID:        playerID.String(),
			InjuryLibraryID: 5,
			StartDate:       "2024-01-01",
		})
		assert.NoError(t, err)
	})
	t.Run("malformed start date", func(t *testing.T) {
		_, err := serv.Assign(ctx, &service.AssignInjuryRequest{
			PlayerID:        playerID.String(),
			InjuryLibraryID: 5,
			StartDate:       "01/01/2024",
		})
		assert.Error(t, err)
	})
}

func TestCurrentInjury(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)
	ctx := context.Background()

	injuriesRepo.EXPECT().GetActiveByPlayer(gomock.Any(), playerID).Return(nil, nil)
	injury, err := serv.CurrentInjury(ctx, playerID)
	assert.NoError(t, err)
	assert.Nil(t, injury)

	injuriesRepo.EXPECT().GetActiveByPlayer(gomock.Any(), playerID).Return(nil, errors.New("db error"))
	_, err = serv.CurrentInjury(ctx, playerID)
	assert.EqualError(t, err, "injuries repository error: db error")
}

func TestResolveInjury(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)
	healed := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	resolved := activeKnee
	resolved.Status = entity.InjuryStatusResolved
	resolved.HealedDate = &healed
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				injuriesRepo.EXPECT().Resolve(gomock.Any(), int64(42), gomock.Any()).Return(nil)
				injuriesRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&resolved, nil)
			},
		},
		{
			Desc:  "error not found",
			Error: errorvalues.ErrInjuryNotFound,
			MockPrepFunc: func() {
				injuriesRepo.EXPECT().Resolve(gomock.Any(), int64(42), gomock.Any()).Return(errorvalues.ErrInjuryNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			injury, err := serv.ResolveInjury(ctx, 42)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, entity.InjuryStatusResolved, injury.Status)
			}
		})
	}
}

func TestUpdateProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		Percent      int
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Percent: 60,
			MockPrepFunc: func() {
				injuriesRepo.EXPECT().UpdateProgress(gomock.Any(), int64(42), 60).Return(nil)
				injuriesRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&activeKnee, nil)
			},
		},
		{
			Desc:         "error above hundred",
			Error:        errorvalues.ErrInvalidProgress,
			Percent:      101,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error negative",
			Error:        errorvalues.ErrInvalidProgress,
			Percent:      -1,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "error not found",
			Error:   errorvalues.ErrInjuryNotFound,
			Percent: 100,
			MockPrepFunc: func() {
				injuriesRepo.EXPECT().UpdateProgress(gomock.Any(), int64(42), 100).Return(errorvalues.ErrInjuryNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.UpdateProgress(ctx, 42, &service.ProgressRequest{Percent: tc.Percent})
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestInjuriesByArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewInjuryService(catalogRepo, injuriesRepo, time.UTC)

	catalogRepo.EXPECT().GetByBodyArea(gomock.Any(), "Knee").Return([]entity.InjuryCatalogEntry{kneeEntry}, nil)
	entries, err := serv.InjuriesByArea(context.Background(), "Knee")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
