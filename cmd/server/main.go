package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fitlog/docs"
	"fitlog/internal/auth"
	"fitlog/internal/cache"
	"fitlog/internal/config"
	"fitlog/internal/db"
	"fitlog/internal/handler"
	"fitlog/internal/logging"
	"fitlog/internal/model"
	"fitlog/internal/repository"
	"fitlog/internal/router"
	"fitlog/internal/service"
)

// @title Fitlog API
// @version 1.0
// @description Workout tracking API: accounts, exercise catalog, workouts, sets, history and streaks.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Exercise{},
		&model.Workout{},
		&model.Set{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	exerciseRepo := repository.NewExerciseRepository(gormDB)
	created, err := exerciseRepo.SeedDefaults(context.Background(), model.DefaultExercises)
	if err != nil {
		log.Fatal().Err(err).Msg("seed exercise catalog")
	}
	if created > 0 {
		log.Info().Int("created", created).Msg("seeded exercise catalog")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	workoutRepo := repository.NewWorkoutRepository(gormDB)
	setRepo := repository.NewSetRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	exerciseService := service.NewExerciseService(exerciseRepo, cacheClient)
	workoutService := service.NewWorkoutService(workoutRepo)
	setService := service.NewSetService(setRepo, workoutRepo)

	authHandler := handler.NewAuthHandler(authService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	setHandler := handler.NewSetHandler(setService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(log))

	router.Register(e, cfg, gormDB, authHandler, exerciseHandler, workoutHandler, setHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
