package main

import (
	"context"
	"flag"
	"os"

	"taxiservice/internal/auth"
	"taxiservice/internal/config"
	"taxiservice/internal/db"
	"taxiservice/internal/logger"
	"taxiservice/internal/repository"
	"taxiservice/internal/seed"
)

func main() {
	source := flag.String("fixture", "taxi_service_db_data.json", "fixture file path or http(s) URL")
	adminUsername := flag.String("admin-username", "", "also create this driver")
	adminPassword := flag.String("admin-password", "", "password for -admin-username")
	adminLicense := flag.String("admin-license", "ADM00001", "license number for -admin-username")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.ServiceName+"-seed", cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	log.Info("starting seed script")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		fatal(log, "failed to connect to database", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		fatal(log, "failed to run migrations", err)
	}

	ctx := context.Background()
	fixture, err := seed.Load(ctx, *source)
	if err != nil {
		fatal(log, "failed to load fixture", err)
	}
	if *adminUsername != "" {
		fixture.Drivers = append(fixture.Drivers, seed.DriverData{
			Username:      *adminUsername,
			Password:      *adminPassword,
			LicenseNumber: *adminLicense,
		})
	}
	log.Info("fixture loaded",
		logger.String("source", *source),
		logger.Int("manufacturers", len(fixture.Manufacturers)),
		logger.Int("drivers", len(fixture.Drivers)),
		logger.Int("cars", len(fixture.Cars)),
	)

	seeder := seed.NewSeeder(
		repository.NewManufacturerRepository(gormDB),
		repository.NewCarRepository(gormDB),
		repository.NewDriverRepository(gormDB),
		auth.NewPasswordHasher(cfg.BcryptCost),
		log,
	)
	res, err := seeder.Run(ctx, fixture)
	if err != nil {
		fatal(log, "failed to seed", err)
	}

	log.Info("seed completed",
		logger.Int("created", res.Created),
		logger.Int("updated", res.Updated),
	)
}

func fatal(log logger.ILogger, msg string, err error) {
	log.Error(msg, logger.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
