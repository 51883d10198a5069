package service

import (
	"context"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "fitlog/internal/errors"
	"fitlog/internal/model"
)

func sampleSetInput() SetInput {
	return SetInput{
		ExerciseID: 3,
		SetNumber:  1,
		Reps:       10,
		Weight:     decimal.RequireFromString("135.0"),
		RPE:        7,
	}
}

func TestSetService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockWorkouts.On("FindByIDAndUser", mock.Anything, uint(5), uint(2)).Return(&model.Workout{ID: 5, UserID: 2}, nil)
		mockSets.On("Create", mock.Anything, mock.AnythingOfType("*model.Set")).Return(nil)

		svc := NewSetService(mockSets, mockWorkouts)
		set, err := svc.Create(context.Background(), 2, 5, sampleSetInput())

		assert.NoError(t, err)
		assert.Equal(t, uint(5), set.WorkoutID)
		assert.Equal(t, uint(3), set.ExerciseID)
		mockSets.AssertExpectations(t)
	})

	t.Run("workout owned by another user", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		// The ownership-scoped lookup hides foreign workouts entirely.
		mockWorkouts.On("FindByIDAndUser", mock.Anything, uint(5), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewSetService(mockSets, mockWorkouts)
		_, err := svc.Create(context.Background(), 2, 5, sampleSetInput())

		assert.ErrorIs(t, err, apperrors.ErrWorkoutNotOwned)
		mockSets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rpe rejected by check constraint", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockWorkouts.On("FindByIDAndUser", mock.Anything, uint(5), uint(2)).Return(&model.Workout{ID: 5, UserID: 2}, nil)
		mockSets.On("Create", mock.Anything, mock.Anything).Return(&mysqldrv.MySQLError{Number: 3819, Message: "Check constraint 'chk_workout_sets_rpe' is violated."})

		svc := NewSetService(mockSets, mockWorkouts)
		_, err := svc.Create(context.Background(), 2, 5, sampleSetInput())

		assert.ErrorIs(t, err, apperrors.ErrInvalidRPE)
	})

	t.Run("unknown exercise id", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockWorkouts.On("FindByIDAndUser", mock.Anything, uint(5), uint(2)).Return(&model.Workout{ID: 5, UserID: 2}, nil)
		mockSets.On("Create", mock.Anything, mock.Anything).Return(&mysqldrv.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

		svc := NewSetService(mockSets, mockWorkouts)
		_, err := svc.Create(context.Background(), 2, 5, sampleSetInput())

		assert.ErrorIs(t, err, apperrors.ErrUnknownExercise)
	})
}

func TestSetService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		existing := &model.Set{ID: 9, WorkoutID: 5, ExerciseID: 1, SetNumber: 1, Reps: 8, RPE: 6}

		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockSets.On("FindOwned", mock.Anything, uint(9), uint(2)).Return(existing, nil)
		mockSets.On("Update", mock.Anything, mock.MatchedBy(func(s *model.Set) bool {
			return s.ID == 9 && s.ExerciseID == 3 && s.Reps == 10 && s.RPE == 7
		})).Return(nil)

		svc := NewSetService(mockSets, mockWorkouts)
		set, err := svc.Update(context.Background(), 2, 9, sampleSetInput())

		assert.NoError(t, err)
		assert.Equal(t, 10, set.Reps)
		mockSets.AssertExpectations(t)
	})

	t.Run("set under another user's workout", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockSets.On("FindOwned", mock.Anything, uint(9), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewSetService(mockSets, mockWorkouts)
		_, err := svc.Update(context.Background(), 2, 9, sampleSetInput())

		assert.ErrorIs(t, err, apperrors.ErrSetNotOwned)
		mockSets.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestSetService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockSets.On("FindOwned", mock.Anything, uint(9), uint(2)).Return(&model.Set{ID: 9, WorkoutID: 5}, nil)
		mockSets.On("Delete", mock.Anything, uint(9)).Return(nil)

		svc := NewSetService(mockSets, mockWorkouts)
		err := svc.Delete(context.Background(), 2, 9)

		assert.NoError(t, err)
		mockSets.AssertExpectations(t)
	})

	t.Run("not owned", func(t *testing.T) {
		mockSets := new(MockSetRepository)
		mockWorkouts := new(MockWorkoutRepository)
		mockSets.On("FindOwned", mock.Anything, uint(9), uint(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewSetService(mockSets, mockWorkouts)
		err := svc.Delete(context.Background(), 2, 9)

		assert.ErrorIs(t, err, apperrors.ErrSetNotOwned)
		mockSets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestSetService_ListByWorkout_RequiresOwnership(t *testing.T) {
	mockSets := new(MockSetRepository)
	mockWorkouts := new(MockWorkoutRepository)
	mockWorkouts.On("FindByIDAndUser", mock.Anything, uint(5), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSetService(mockSets, mockWorkouts)
	_, err := svc.ListByWorkout(context.Background(), 2, 5)

	assert.ErrorIs(t, err, apperrors.ErrWorkoutNotOwned)
	mockSets.AssertNotCalled(t, "ListByWorkout", mock.Anything, mock.Anything)
}
