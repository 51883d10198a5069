package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fitlog/internal/auth"
	apperrors "fitlog/internal/errors"
	"fitlog/internal/service"
)

const workoutDateLayout = "2006-01-02"

// WorkoutHandler handles workout endpoints, including the history and stats
// read paths.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new workout handler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkoutRequest represents a workout creation request.
type CreateWorkoutRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes string `json:"notes"`
}

// UpdateWorkoutRequest represents a workout update request. A null
// completed_at marks the workout as in progress again.
type UpdateWorkoutRequest struct {
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completed_at"`
}

// List godoc
// @Summary List the caller's workouts
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	workouts, err := h.workoutService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "All workouts successfully retrieved",
		"workouts": workouts,
	})
}

// Get godoc
// @Summary Get one of the caller's workouts
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	workout, err := h.workoutService.Get(c.Request().Context(), claims.UserID, id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully retrieved workout",
		"workout": workout,
	})
}

// Create godoc
// @Summary Create a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateWorkoutRequest true "Workout data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	var req CreateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, _ := time.Parse(workoutDateLayout, req.Date)

	workout, err := h.workoutService.Create(c.Request().Context(), claims.UserID, date, req.Notes)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Successfully created workout",
		"workout": workout,
	})
}

// Update godoc
// @Summary Update one of the caller's workouts
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Param request body UpdateWorkoutRequest true "Workout data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) Update(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, _ := time.Parse(workoutDateLayout, req.Date)

	workout, err := h.workoutService.Update(c.Request().Context(), claims.UserID, id, date, req.Notes, req.CompletedAt)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Workout successfully updated.",
		"workout": workout,
	})
}

// Delete godoc
// @Summary Delete one of the caller's workouts
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.workoutService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Workout deleted successfully"})
}

// History godoc
// @Summary Completed workout history as a workout/exercise/set tree
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /workouts/history [get]
func (h *WorkoutHandler) History(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	history, err := h.workoutService.History(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Successfully retrieved workout history",
		"workouts": history,
	})
}

// Stats godoc
// @Summary Completed-workout totals and current streak
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /workouts/stats [get]
func (h *WorkoutHandler) Stats(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	stats, err := h.workoutService.Stats(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully retrieved workout stats",
		"stats":   stats,
	})
}
