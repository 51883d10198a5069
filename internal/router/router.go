package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"fitlog/internal/auth"
	"fitlog/internal/config"
	"fitlog/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gormDB *gorm.DB,
	authHandler *handler.AuthHandler,
	exerciseHandler *handler.ExerciseHandler,
	workoutHandler *handler.WorkoutHandler,
	setHandler *handler.SetHandler,
) {
	e.Use(middleware.Recover())
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
			return c.String(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		},
	})

	// Registration and login are throttled: 5 registrations/hour and
	// 10 logins/15min per client.
	registerLimiter := rateLimiter(5, time.Hour)
	loginLimiter := rateLimiter(10, 15*time.Minute)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", authHandler.Register, registerLimiter)
	authGroup.POST("/login", authHandler.Login, loginLimiter)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, requireAuth)
	authGroup.DELETE("/me", authHandler.DeleteMe, requireAuth)

	// Catalog reads are public; writes need a logged-in user.
	exercises := e.Group("/exercises")
	exercises.GET("", exerciseHandler.List)
	exercises.GET("/:id", exerciseHandler.Get)
	exercises.POST("", exerciseHandler.Create, requireAuth)
	exercises.PUT("/:id", exerciseHandler.Update, requireAuth)
	exercises.DELETE("/:id", exerciseHandler.Delete, requireAuth)

	workouts := e.Group("/workouts", requireAuth)
	workouts.GET("", workoutHandler.List)
	workouts.POST("", workoutHandler.Create)
	workouts.GET("/history", workoutHandler.History)
	workouts.GET("/stats", workoutHandler.Stats)
	workouts.GET("/:id", workoutHandler.Get)
	workouts.PUT("/:id", workoutHandler.Update)
	workouts.DELETE("/:id", workoutHandler.Delete)
	workouts.POST("/:id/sets", setHandler.Create)
	workouts.GET("/:id/sets", setHandler.List)
	workouts.PUT("/sets/:id", setHandler.Update)
	workouts.DELETE("/sets/:id", setHandler.Delete)
}

func rateLimiter(requests int, window time.Duration) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(window / time.Duration(requests)),
			Burst:     requests,
			ExpiresIn: window,
		}),
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
