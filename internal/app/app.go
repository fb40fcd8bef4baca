// Package app builds the repositories and use cases for the configured
// storage driver. Both the HTTP server and the CLI start from here.
package app

import (
	"context"
	"fmt"

	"house_calculator/internal/adapter/persistence/repository"
	"house_calculator/internal/config"
	"house_calculator/internal/infrastructure/database"
	"house_calculator/internal/infrastructure/logging"
	"house_calculator/internal/usecase"
	"house_calculator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type App struct {
	Config       config.Config
	Log          *zap.Logger
	Calculations usecase.ICalculationUseCase
	Materials    usecase.IMaterialUseCase

	closers []func() error
}

// New connects to the configured store and wires the use cases.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	calcRepo, matRepo, err := a.repositories(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	if cfg.CatalogCacheTTL > 0 {
		matRepo = repository.NewCachedMaterialRepository(matRepo, cfg.CatalogCacheTTL)
	}

	a.Calculations = usecase.NewCalculationUseCase(calcRepo, matRepo, log.Named("calculations"))
	a.Materials = usecase.NewMaterialUseCase(matRepo, log.Named("materials"))
	return a, nil
}

func (a *App) repositories(ctx context.Context) (interfaces.ICalculationRepository, interfaces.IMaterialRepository, error) {
	switch a.Config.StorageDriver {
	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, a.Config.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, db.Close)

		calcRepo := repository.NewCalculationPostgresRepository(db)
		if err := calcRepo.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		matRepo := repository.NewMaterialPostgresRepository(db)
		if err := matRepo.EnsureSchema(ctx); err != nil {
			return nil, nil, err
		}
		a.Log.Info("[app] using postgres storage")
		return calcRepo, matRepo, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, a.Config)
		if err != nil {
			return nil, nil, err
		}
		a.Log.Info("[app] using dynamodb storage",
			zap.String("region", a.Config.AWSRegion),
			zap.String("calculations_table", a.Config.CalculationsTable),
			zap.String("materials_table", a.Config.MaterialsTable),
		)
		return repository.NewCalculationDynamoRepository(ddb, a.Config.CalculationsTable),
			repository.NewMaterialDynamoRepository(ddb, a.Config.MaterialsTable),
			nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", a.Config.StorageDriver)
	}
}

// SeedCatalog loads the default catalog when SEED_CATALOG is enabled.
// Failures are logged and do not stop startup.
func (a *App) SeedCatalog(ctx context.Context) {
	if !a.Config.SeedCatalog {
		return
	}
	if _, err := a.Materials.Seed(ctx); err != nil {
		a.Log.Warn("[app] catalog seeding failed", zap.Error(err))
	}
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// Bootstrap loads the configuration, builds the logger and wires the App.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: cfg.LogFormat == "console",
		Service:     "house-calculator",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a, err := New(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	a.closers = append([]func() error{log.Sync}, a.closers...)
	return a, nil
}
