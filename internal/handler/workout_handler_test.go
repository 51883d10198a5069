package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitlog/internal/auth"
	apperrors "fitlog/internal/errors"
	"fitlog/internal/model"
	"fitlog/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// MockWorkoutService is a mock implementation of service.WorkoutService.
type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) List(ctx context.Context, userID uint) ([]model.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Get(ctx context.Context, userID, id uint) (*model.Workout, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Create(ctx context.Context, userID uint, date time.Time, notes string) (*model.Workout, error) {
	args := m.Called(ctx, userID, date, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Update(ctx context.Context, userID, id uint, date time.Time, notes string, completedAt *time.Time) (*model.Workout, error) {
	args := m.Called(ctx, userID, id, date, notes, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockWorkoutService) History(ctx context.Context, userID uint) ([]service.HistoryWorkout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.HistoryWorkout), args.Error(1)
}

func (m *MockWorkoutService) Stats(ctx context.Context, userID uint) (*service.WorkoutStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WorkoutStats), args.Error(1)
}

// newAuthedContext builds an echo context carrying the identity the JWT
// middleware would have attached.
func newAuthedContext(method, path, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &auth.Claims{UserID: userID, Email: "lifter@example.com"}})
	return c, rec
}

func TestWorkoutHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		mockSvc := new(MockWorkoutService)
		mockSvc.On("Create", mock.Anything, uint(2), date, "leg day").Return(&model.Workout{ID: 7, UserID: 2, Date: date, Notes: "leg day"}, nil)

		c, rec := newAuthedContext(http.MethodPost, "/workouts", `{"date":"2026-08-30","notes":"leg day"}`, 2)
		h := NewWorkoutHandler(mockSvc)

		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Successfully created workout", resp["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed date rejected before the service runs", func(t *testing.T) {
		mockSvc := new(MockWorkoutService)

		c, _ := newAuthedContext(http.MethodPost, "/workouts", `{"date":"30-08-2026"}`, 2)
		h := NewWorkoutHandler(mockSvc)

		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWorkoutHandler_Get_NotFound(t *testing.T) {
	mockSvc := new(MockWorkoutService)
	mockSvc.On("Get", mock.Anything, uint(2), uint(99)).Return(nil, apperrors.ErrWorkoutNotFound)

	c, _ := newAuthedContext(http.MethodGet, "/workouts/99", "", 2)
	c.SetParamNames("id")
	c.SetParamValues("99")
	h := NewWorkoutHandler(mockSvc)

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestWorkoutHandler_Get_BadID(t *testing.T) {
	mockSvc := new(MockWorkoutService)

	c, _ := newAuthedContext(http.MethodGet, "/workouts/abc", "", 2)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	h := NewWorkoutHandler(mockSvc)

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkoutHandler_Stats(t *testing.T) {
	mockSvc := new(MockWorkoutService)
	mockSvc.On("Stats", mock.Anything, uint(2)).Return(&service.WorkoutStats{Total: 12, ThisWeek: 4, Streak: 2}, nil)

	c, rec := newAuthedContext(http.MethodGet, "/workouts/stats", "", 2)
	h := NewWorkoutHandler(mockSvc)

	assert.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Stats struct {
			Total    int64 `json:"total"`
			ThisWeek int64 `json:"thisWeek"`
			Streak   int   `json:"streak"`
		} `json:"stats"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Stats.Total)
	assert.Equal(t, int64(4), resp.Stats.ThisWeek)
	assert.Equal(t, 2, resp.Stats.Streak)
}
