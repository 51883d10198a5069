package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fitlog/internal/auth"
	apperrors "fitlog/internal/errors"
	"fitlog/internal/service"
)

// SetHandler handles per-workout set endpoints.
type SetHandler struct {
	setService service.SetService
}

// NewSetHandler creates a new set handler.
func NewSetHandler(setService service.SetService) *SetHandler {
	return &SetHandler{setService: setService}
}

// SetRequest represents a set create/update request. RPE is validated here
// and again by the table check constraint.
type SetRequest struct {
	ExerciseID uint            `json:"exercise_id" validate:"required"`
	SetNumber  int             `json:"set_number" validate:"required,min=1"`
	Reps       int             `json:"reps" validate:"required,min=1"`
	Weight     decimal.Decimal `json:"weight" validate:"required"`
	RPE        int             `json:"rpe" validate:"required,min=1,max=10"`
}

func (r SetRequest) toInput() service.SetInput {
	return service.SetInput{
		ExerciseID: r.ExerciseID,
		SetNumber:  r.SetNumber,
		Reps:       r.Reps,
		Weight:     r.Weight,
		RPE:        r.RPE,
	}
}

// Create godoc
// @Summary Log a set in one of the caller's workouts
// @Tags sets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Param request body SetRequest true "Set data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /workouts/{id}/sets [post]
func (h *SetHandler) Create(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req SetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	set, err := h.setService.Create(c.Request().Context(), claims.UserID, workoutID, req.toInput())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Successfully created new set",
		"set":     set,
	})
}

// List godoc
// @Summary List the sets of one of the caller's workouts
// @Tags sets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Router /workouts/{id}/sets [get]
func (h *SetHandler) List(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	workoutID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	sets, err := h.setService.ListByWorkout(c.Request().Context(), claims.UserID, workoutID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully retrieved all sets",
		"sets":    sets,
	})
}

// Update godoc
// @Summary Update a set
// @Tags sets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Param request body SetRequest true "Set data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /workouts/sets/{id} [put]
func (h *SetHandler) Update(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	setID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req SetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	set, err := h.setService.Update(c.Request().Context(), claims.UserID, setID, req.toInput())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully updated set",
		"set":     set,
	})
}

// Delete godoc
// @Summary Delete a set
// @Tags sets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Set ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Router /workouts/sets/{id} [delete]
func (h *SetHandler) Delete(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	setID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.setService.Delete(c.Request().Context(), claims.UserID, setID); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully deleted set"})
}
