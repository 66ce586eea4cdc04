package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/rehab/internal/repository/mocks"
	"github.com/limbo/rehab/internal/service"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyHomework(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalogRepo := mocks.NewMockCatalogRepositoryI(ctrl)
	injuriesRepo := mocks.NewMockInjuriesRepositoryI(ctrl)
	serv := service.NewHomeworkService(catalogRepo, injuriesRepo, time.UTC)
	ctx := context.Background()

	t.Run("standard plan when healthy", func(t *testing.T) {
		injuriesRepo.EXPECT().GetActiveByPlayer(gomock.Any(), playerID).Return(nil, nil)
		hw, err := serv.DailyHomework(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, entity.HomeworkStatusActive, hw.Status)
		assert.Equal(t, time.Now().UTC().Format(time.DateOnly), hw.Date)
		require.Len(t, hw.Tasks, 2)
		assert.Equal(t, "daily_1", hw.Tasks[0].ID)
		assert.Equal(t, "Copenhagen Planks", hw.Tasks[1].Title)
		assert.False(t, hw.Tasks[0].IsLocked)
	})
	t.Run("locked protocol when injured", func(t *testing.T) {
		video := "https://www.youtube.com/watch?v=acl"
		entry := kneeEntry
		entry.VideoURL = &video
		injuriesRepo.EXPECT().GetActiveByPlayer(gomock.Any(), playerID).Return(&activeKnee, nil)
		catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&entry, nil)

		hw, err := serv.DailyHomework(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, entity.HomeworkStatusInjured, hw.Status)
		assert.Equal(t, []entity.Task{
			{ID: "locked_42_0", Title: "Quad Sets", Description: "Mandatory Recovery Protocol", Reps: "3x20", VideoURL: &video, IsLocked: true},
			{ID: "locked_42_1", Title: "SLR", Description: "Mandatory Recovery Protocol", Reps: "3x10", VideoURL: &video, IsLocked: true},
		}, hw.Tasks)
	})
	t.Run("injured with empty exercise list", func(t *testing.T) {
		entry := kneeEntry
		entry.RecoveryExercises = []entity.Exercise{}
		injuriesRepo.EXPECT().GetActiveByPlayer(gomock.Any(), playerID).Return(&activeKnee, nil)
		catalogRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&entry, nil)

		hw, err := serv.DailyHomework(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, entity.HomeworkStatusInjured, hw.Status)
		assert.Empty(t, hw.Tasks)
	})
	t.Run("repository failure", func(t *testing.T) {
		injuriesRepo.EXPECT().GetActiveByPlayer(gomock.Any(), playerID).Return(nil, errors.New("db error"))
		_, err := serv.DailyHomework(ctx, playerID)
		assert.EqualError(t, err, "injuries repository error: db error")
	})
}
