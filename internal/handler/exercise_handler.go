package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "fitlog/internal/errors"
	"fitlog/internal/service"
)

// ExerciseHandler handles exercise catalog endpoints.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new exercise handler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ExerciseRequest represents a create/update catalog request.
type ExerciseRequest struct {
	Name        string `json:"name" validate:"required"`
	MuscleGroup string `json:"muscle_group" validate:"required"`
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// List godoc
// @Summary List all exercises
// @Tags exercises
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /exercises [get]
func (h *ExerciseHandler) List(c echo.Context) error {
	exercises, err := h.exerciseService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Successfully retrieved all exercises",
		"exercises": exercises,
	})
}

// Get godoc
// @Summary Get an exercise by ID
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	exercise, err := h.exerciseService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Successfully retrieved exercise",
		"exercise": exercise,
	})
}

// Create godoc
// @Summary Add an exercise to the catalog
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExerciseRequest true "Exercise data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /exercises [post]
func (h *ExerciseHandler) Create(c echo.Context) error {
	var req ExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exercise, err := h.exerciseService.Create(c.Request().Context(), req.Name, req.MuscleGroup)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Successfully created new exercise",
		"exercise": exercise,
	})
}

// Update godoc
// @Summary Update a catalog exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param request body ExerciseRequest true "Exercise data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /exercises/{id} [put]
func (h *ExerciseHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req ExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exercise, err := h.exerciseService.Update(c.Request().Context(), id, req.Name, req.MuscleGroup)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Successfully updated exercise",
		"exercise": exercise,
	})
}

// Delete godoc
// @Summary Delete a catalog exercise
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.exerciseService.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Exercise successfully deleted"})
}
