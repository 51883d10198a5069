package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitlog/internal/model"
)

// ExerciseRepository defines catalog persistence operations.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	Update(ctx context.Context, exercise *model.Exercise) error
	Delete(ctx context.Context, id uint) (found bool, err error)
	FindByID(ctx context.Context, id uint) (*model.Exercise, error)
	List(ctx context.Context) ([]model.Exercise, error)
	SeedDefaults(ctx context.Context, defaults []model.Exercise) (created int, err error)
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new exercise repository.
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) Update(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Save(exercise).Error
}

// Delete reports found=false when no row matched. A RESTRICT rejection from a
// referencing set comes back as the underlying constraint error.
func (r *exerciseRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Exercise{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *exerciseRepository) FindByID(ctx context.Context, id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// List returns the whole catalog ordered by name.
func (r *exerciseRepository) List(ctx context.Context) ([]model.Exercise, error) {
	var exercises []model.Exercise
	if err := r.db.WithContext(ctx).Order("name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// SeedDefaults inserts any catalog entries that are not present yet, matched
// by name. Safe to run repeatedly.
func (r *exerciseRepository) SeedDefaults(ctx context.Context, defaults []model.Exercise) (int, error) {
	created := 0
	for _, def := range defaults {
		var existing model.Exercise
		err := r.db.WithContext(ctx).Where("name = ?", def.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		entry := def
		if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
