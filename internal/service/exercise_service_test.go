package service

import (
	"context"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "fitlog/internal/errors"
	"fitlog/internal/model"
)

// Tests run without redis; the cache client treats a nil instance as a
// permanent miss, so every read falls through to the repository.

func TestExerciseService_List(t *testing.T) {
	mockRepo := new(MockExerciseRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Exercise{
		{ID: 1, Name: "Bench Press", MuscleGroup: "Chest"},
		{ID: 2, Name: "Squat", MuscleGroup: "Legs"},
	}, nil)

	svc := NewExerciseService(mockRepo, nil)
	exercises, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, exercises, 2)
	assert.Equal(t, "Bench Press", exercises[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestExerciseService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockExerciseRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewExerciseService(mockRepo, nil)
	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrExerciseNotFound)
}

func TestExerciseService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockExerciseRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Exercise) bool {
			return e.Name == "Face Pulls" && e.MuscleGroup == "Shoulders"
		})).Return(nil)

		svc := NewExerciseService(mockRepo, nil)
		exercise, err := svc.Create(context.Background(), "Face Pulls", "Shoulders")

		assert.NoError(t, err)
		assert.Equal(t, "Face Pulls", exercise.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo := new(MockExerciseRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewExerciseService(mockRepo, nil)
		_, err := svc.Create(context.Background(), "Bench Press", "Chest")

		assert.ErrorIs(t, err, apperrors.ErrDuplicateExercise)
	})

	t.Run("muscle group outside the allowed list", func(t *testing.T) {
		mockRepo := new(MockExerciseRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(&mysqldrv.MySQLError{Number: 3819, Message: "Check constraint 'chk_exercises_muscle_group' is violated."})

		svc := NewExerciseService(mockRepo, nil)
		_, err := svc.Create(context.Background(), "Bench Press", "Wings")

		assert.ErrorIs(t, err, apperrors.ErrInvalidMuscleGroup)
	})
}

func TestExerciseService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockExerciseRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewExerciseService(mockRepo, nil)
	_, err := svc.Update(context.Background(), 99, "Bench Press", "Chest")

	assert.ErrorIs(t, err, apperrors.ErrExerciseNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExerciseService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockExerciseRepository)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(true, nil)

		svc := NewExerciseService(mockRepo, nil)
		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockExerciseRepository)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(false, nil)

		svc := NewExerciseService(mockRepo, nil)
		err := svc.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrExerciseNotFound)
	})

	t.Run("still referenced by sets", func(t *testing.T) {
		mockRepo := new(MockExerciseRepository)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(false, &mysqldrv.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})

		svc := NewExerciseService(mockRepo, nil)
		err := svc.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, apperrors.ErrExerciseInUse)
	})
}
