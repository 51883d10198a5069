package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitlog/internal/db"
	apperrors "fitlog/internal/errors"
	"fitlog/internal/model"
	"fitlog/internal/repository"
)

// SetInput carries the mutable fields of a set.
type SetInput struct {
	ExerciseID uint
	SetNumber  int
	Reps       int
	Weight     decimal.Decimal
	RPE        int
}

// SetService handles per-workout set CRUD. Sets have no owner column, so
// every operation first resolves ownership through the parent workout.
type SetService interface {
	Create(ctx context.Context, userID, workoutID uint, input SetInput) (*model.Set, error)
	ListByWorkout(ctx context.Context, userID, workoutID uint) ([]repository.SetWithExercise, error)
	Update(ctx context.Context, userID, setID uint, input SetInput) (*model.Set, error)
	Delete(ctx context.Context, userID, setID uint) error
}

type setService struct {
	setRepo     repository.SetRepository
	workoutRepo repository.WorkoutRepository
}

// NewSetService creates a new set service.
func NewSetService(setRepo repository.SetRepository, workoutRepo repository.WorkoutRepository) SetService {
	return &setService{setRepo: setRepo, workoutRepo: workoutRepo}
}

// requireWorkout verifies that workoutID belongs to userID. Absent and
// foreign-owned workouts are deliberately indistinguishable.
func (s *setService) requireWorkout(ctx context.Context, userID, workoutID uint) error {
	_, err := s.workoutRepo.FindByIDAndUser(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkoutNotOwned
		}
		return fmt.Errorf("check workout ownership: %w", err)
	}
	return nil
}

func (s *setService) Create(ctx context.Context, userID, workoutID uint, input SetInput) (*model.Set, error) {
	if err := s.requireWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}

	set := &model.Set{
		WorkoutID:  workoutID,
		ExerciseID: input.ExerciseID,
		SetNumber:  input.SetNumber,
		Reps:       input.Reps,
		Weight:     input.Weight,
		RPE:        input.RPE,
	}
	if err := s.setRepo.Create(ctx, set); err != nil {
		return nil, translateSetWriteError(err)
	}
	return set, nil
}

func (s *setService) ListByWorkout(ctx context.Context, userID, workoutID uint) ([]repository.SetWithExercise, error) {
	if err := s.requireWorkout(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	sets, err := s.setRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return sets, nil
}

func (s *setService) Update(ctx context.Context, userID, setID uint, input SetInput) (*model.Set, error) {
	set, err := s.setRepo.FindOwned(ctx, setID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSetNotOwned
		}
		return nil, fmt.Errorf("check set ownership: %w", err)
	}

	set.ExerciseID = input.ExerciseID
	set.SetNumber = input.SetNumber
	set.Reps = input.Reps
	set.Weight = input.Weight
	set.RPE = input.RPE
	if err := s.setRepo.Update(ctx, set); err != nil {
		return nil, translateSetWriteError(err)
	}
	return set, nil
}

func (s *setService) Delete(ctx context.Context, userID, setID uint) error {
	set, err := s.setRepo.FindOwned(ctx, setID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSetNotOwned
		}
		return fmt.Errorf("check set ownership: %w", err)
	}
	if err := s.setRepo.Delete(ctx, set.ID); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	return nil
}

func translateSetWriteError(err error) error {
	switch db.Classify(err) {
	case db.ConstraintCheck:
		return apperrors.ErrInvalidRPE
	case db.ConstraintForeignKey:
		return apperrors.ErrUnknownExercise
	default:
		return fmt.Errorf("write set: %w", err)
	}
}
