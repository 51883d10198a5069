package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fitlog/internal/cache"
	"fitlog/internal/db"
	apperrors "fitlog/internal/errors"
	"fitlog/internal/model"
	"fitlog/internal/repository"
)

const (
	exerciseListCacheKey = "exercises:all"
	exerciseListCacheTTL = 5 * time.Minute
)

// ExerciseService manages the shared exercise catalog. The catalog is not
// ownership-scoped: writes require an authenticated caller, reads are public.
type ExerciseService interface {
	List(ctx context.Context) ([]model.Exercise, error)
	Get(ctx context.Context, id uint) (*model.Exercise, error)
	Create(ctx context.Context, name, muscleGroup string) (*model.Exercise, error)
	Update(ctx context.Context, id uint, name, muscleGroup string) (*model.Exercise, error)
	Delete(ctx context.Context, id uint) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	cache        *cache.Client
}

// NewExerciseService creates a new exercise service.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, cache *cache.Client) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo, cache: cache}
}

// List returns the catalog ordered by name, served from cache when possible.
func (s *exerciseService) List(ctx context.Context) ([]model.Exercise, error) {
	if data, _ := s.cache.Get(ctx, exerciseListCacheKey); data != nil {
		var cached []model.Exercise
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	if payload, err := json.Marshal(exercises); err == nil {
		_ = s.cache.Set(ctx, exerciseListCacheKey, payload, exerciseListCacheTTL)
	}
	return exercises, nil
}

func (s *exerciseService) Get(ctx context.Context, id uint) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	return exercise, nil
}

func (s *exerciseService) Create(ctx context.Context, name, muscleGroup string) (*model.Exercise, error) {
	exercise := &model.Exercise{Name: name, MuscleGroup: muscleGroup}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, translateCatalogWriteError(err)
	}
	_ = s.cache.Delete(ctx, exerciseListCacheKey)
	return exercise, nil
}

func (s *exerciseService) Update(ctx context.Context, id uint, name, muscleGroup string) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	exercise.Name = name
	exercise.MuscleGroup = muscleGroup
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, translateCatalogWriteError(err)
	}
	_ = s.cache.Delete(ctx, exerciseListCacheKey)
	return exercise, nil
}

// Delete removes a catalog entry unless any set still references it.
func (s *exerciseService) Delete(ctx context.Context, id uint) error {
	found, err := s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		if db.Classify(err) == db.ConstraintForeignKey {
			return apperrors.ErrExerciseInUse
		}
		return fmt.Errorf("delete exercise: %w", err)
	}
	if !found {
		return apperrors.ErrExerciseNotFound
	}
	_ = s.cache.Delete(ctx, exerciseListCacheKey)
	return nil
}

func translateCatalogWriteError(err error) error {
	switch db.Classify(err) {
	case db.ConstraintUnique:
		return apperrors.ErrDuplicateExercise
	case db.ConstraintCheck:
		return apperrors.ErrInvalidMuscleGroup
	default:
		return fmt.Errorf("write exercise: %w", err)
	}
}
