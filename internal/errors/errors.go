package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when the authenticated user's row is gone.
	ErrUserNotFound = errors.New("user not found")
	// ErrExerciseNotFound is returned when a catalog entry does not exist.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrDuplicateExercise is returned on a case-insensitive name collision.
	ErrDuplicateExercise = errors.New("exercise with this name already exists")
	// ErrInvalidMuscleGroup is returned when the muscle group is not in the catalog enum.
	ErrInvalidMuscleGroup = errors.New("invalid muscle group")
	// ErrExerciseInUse is returned when deleting an exercise referenced by sets.
	ErrExerciseInUse = errors.New("cannot delete exercise - it is used in existing workouts")
	// ErrWorkoutNotFound covers both a missing workout and one owned by
	// someone else; callers can't tell the two apart.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrWorkoutNotOwned is the set-endpoint variant of the same ambiguity.
	ErrWorkoutNotOwned = errors.New("workout not found or unauthorized")
	// ErrSetNotOwned covers a missing set and one reached through another
	// user's workout.
	ErrSetNotOwned = errors.New("set not found or unauthorized")
	// ErrInvalidRPE is returned when a set's RPE falls outside 1..10.
	ErrInvalidRPE = errors.New("rpe must be between 1 and 10")
	// ErrUnknownExercise is returned when a set references a nonexistent exercise.
	ErrUnknownExercise = errors.New("exercise does not exist")
)

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError pairs a domain failure with its status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors degrade to
// a generic 500 so no internal detail leaks.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrWorkoutNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrWorkoutNotOwned),
		errors.Is(err, ErrSetNotOwned):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDuplicateExercise),
		errors.Is(err, ErrExerciseInUse):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidMuscleGroup),
		errors.Is(err, ErrInvalidRPE),
		errors.Is(err, ErrUnknownExercise):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "server error")
	}
}
