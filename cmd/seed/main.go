package main

import (
	"context"

	"fitlog/internal/config"
	"fitlog/internal/db"
	"fitlog/internal/logging"
	"fitlog/internal/model"
	"fitlog/internal/repository"
)

// Seeds the built-in exercise catalog. Safe to run against a live database:
// entries are matched by name and only missing ones are inserted.
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := gormDB.AutoMigrate(&model.Exercise{}); err != nil {
		log.Fatal().Err(err).Msg("migrate exercises table")
	}

	exerciseRepo := repository.NewExerciseRepository(gormDB)
	created, err := exerciseRepo.SeedDefaults(context.Background(), model.DefaultExercises)
	if err != nil {
		log.Fatal().Err(err).Msg("seed exercise catalog")
	}

	log.Info().
		Int("created", created).
		Int("total", len(model.DefaultExercises)).
		Msg("exercise catalog seeded")
}
