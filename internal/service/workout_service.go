package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fitlog/internal/errors"
	"fitlog/internal/model"
	"fitlog/internal/repository"
)

// HistorySet is one logged set inside the history tree.
type HistorySet struct {
	ID        uint            `json:"id"`
	SetNumber int             `json:"set_number"`
	Reps      int             `json:"reps"`
	Weight    decimal.Decimal `json:"weight"`
	RPE       int             `json:"rpe"`
}

// HistoryExercise groups a workout's sets by exercise, in the order the
// exercise first appears under the query's name ordering.
type HistoryExercise struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	MuscleGroup string       `json:"muscle_group"`
	Sets        []HistorySet `json:"sets"`
}

// HistoryWorkout is one completed workout with its nested exercise/set tree.
type HistoryWorkout struct {
	ID          uint              `json:"id"`
	Date        time.Time         `json:"date"`
	Notes       string            `json:"notes"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at"`
	Exercises   []HistoryExercise `json:"exercises"`
}

// WorkoutStats summarizes a user's completed workouts.
type WorkoutStats struct {
	Total    int64 `json:"total"`
	ThisWeek int64 `json:"thisWeek"`
	Streak   int   `json:"streak"`
}

// WorkoutService handles ownership-scoped workout CRUD plus the history and
// stats read paths.
type WorkoutService interface {
	List(ctx context.Context, userID uint) ([]model.Workout, error)
	Get(ctx context.Context, userID, id uint) (*model.Workout, error)
	Create(ctx context.Context, userID uint, date time.Time, notes string) (*model.Workout, error)
	Update(ctx context.Context, userID, id uint, date time.Time, notes string, completedAt *time.Time) (*model.Workout, error)
	Delete(ctx context.Context, userID, id uint) error
	History(ctx context.Context, userID uint) ([]HistoryWorkout, error)
	Stats(ctx context.Context, userID uint) (*WorkoutStats, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

func (s *workoutService) List(ctx context.Context, userID uint) ([]model.Workout, error) {
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Get returns the workout only when it belongs to userID. An existing workout
// owned by someone else is reported exactly like a missing one.
func (s *workoutService) Get(ctx context.Context, userID, id uint) (*model.Workout, error) {
	workout, err := s.workoutRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}
	return workout, nil
}

func (s *workoutService) Create(ctx context.Context, userID uint, date time.Time, notes string) (*model.Workout, error) {
	workout := &model.Workout{
		UserID: userID,
		Date:   date,
		Notes:  notes,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return workout, nil
}

// Update replaces date, notes and completed_at. Setting completedAt to nil
// moves a workout back out of history.
func (s *workoutService) Update(ctx context.Context, userID, id uint, date time.Time, notes string, completedAt *time.Time) (*model.Workout, error) {
	workout, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	workout.Date = date
	workout.Notes = notes
	workout.CompletedAt = completedAt
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return workout, nil
}

func (s *workoutService) Delete(ctx context.Context, userID, id uint) error {
	found, err := s.workoutRepo.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if !found {
		return apperrors.ErrWorkoutNotFound
	}
	return nil
}

// History reshapes the flat completed-workout join into a
// workout→exercise→set tree. First-seen order under the query's ordering is
// preserved for both workouts and exercises; rows with null set columns come
// from completed workouts that have no sets yet.
func (s *workoutService) History(ctx context.Context, userID uint) ([]HistoryWorkout, error) {
	rows, err := s.workoutRepo.HistoryRows(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return buildHistory(rows), nil
}

func buildHistory(rows []repository.HistoryRow) []HistoryWorkout {
	type exerciseNode struct {
		exercise HistoryExercise
	}
	type workoutNode struct {
		workout       HistoryWorkout
		exerciseOrder []uint
		exercises     map[uint]*exerciseNode
	}

	workoutOrder := make([]uint, 0)
	workouts := make(map[uint]*workoutNode)

	for _, row := range rows {
		node, ok := workouts[row.WorkoutID]
		if !ok {
			node = &workoutNode{
				workout: HistoryWorkout{
					ID:          row.WorkoutID,
					Date:        row.Date,
					Notes:       row.Notes,
					CreatedAt:   row.CreatedAt,
					CompletedAt: row.CompletedAt,
				},
				exercises: make(map[uint]*exerciseNode),
			}
			workouts[row.WorkoutID] = node
			workoutOrder = append(workoutOrder, row.WorkoutID)
		}

		// Null set columns mean the outer join matched no sets.
		if row.SetID == nil || row.ExerciseID == nil {
			continue
		}

		ex, ok := node.exercises[*row.ExerciseID]
		if !ok {
			ex = &exerciseNode{exercise: HistoryExercise{ID: *row.ExerciseID}}
			if row.ExerciseName != nil {
				ex.exercise.Name = *row.ExerciseName
			}
			if row.MuscleGroup != nil {
				ex.exercise.MuscleGroup = *row.MuscleGroup
			}
			node.exercises[*row.ExerciseID] = ex
			node.exerciseOrder = append(node.exerciseOrder, *row.ExerciseID)
		}

		set := HistorySet{ID: *row.SetID}
		if row.SetNumber != nil {
			set.SetNumber = *row.SetNumber
		}
		if row.Reps != nil {
			set.Reps = *row.Reps
		}
		if row.Weight.Valid {
			set.Weight = row.Weight.Decimal
		}
		if row.RPE != nil {
			set.RPE = *row.RPE
		}
		ex.exercise.Sets = append(ex.exercise.Sets, set)
	}

	history := make([]HistoryWorkout, 0, len(workoutOrder))
	for _, workoutID := range workoutOrder {
		node := workouts[workoutID]
		node.workout.Exercises = make([]HistoryExercise, 0, len(node.exerciseOrder))
		for _, exerciseID := range node.exerciseOrder {
			node.workout.Exercises = append(node.workout.Exercises, node.exercises[exerciseID].exercise)
		}
		history = append(history, node.workout)
	}
	return history
}

// Stats returns total completed workouts, completions in the last 7 calendar
// days, and the current consecutive-day streak.
func (s *workoutService) Stats(ctx context.Context, userID uint) (*WorkoutStats, error) {
	today := utcDay(s.now())

	total, err := s.workoutRepo.CountCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}
	thisWeek, err := s.workoutRepo.CountCompletedSince(ctx, userID, today.AddDate(0, 0, -6))
	if err != nil {
		return nil, fmt.Errorf("count this week: %w", err)
	}
	days, err := s.workoutRepo.CompletedDays(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load completed days: %w", err)
	}

	return &WorkoutStats{
		Total:    total,
		ThisWeek: thisWeek,
		Streak:   calculateStreak(days, today),
	}, nil
}

// calculateStreak counts consecutive completed-workout days ending today.
// days must be distinct calendar days sorted most recent first; the day at
// index i must equal today-i or the run is over. A completion yesterday with
// none today therefore yields 0.
func calculateStreak(days []time.Time, today time.Time) int {
	today = utcDay(today)
	streak := 0
	for i, day := range days {
		expected := today.AddDate(0, 0, -i)
		if !utcDay(day).Equal(expected) {
			break
		}
		streak++
	}
	return streak
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
