package routes

import (
	"context"
	"database/sql"
	"fmt"

	"cctv_estimator/config"
	"cctv_estimator/internal/adapter/http/handlers"
	"cctv_estimator/internal/adapter/http/middleware"
	"cctv_estimator/internal/adapter/persistence/repository"
	"cctv_estimator/internal/domain/estimate"
	"cctv_estimator/internal/infrastructure/auth"
	"cctv_estimator/internal/infrastructure/database"
	"cctv_estimator/internal/infrastructure/messaging"
	"cctv_estimator/internal/usecase"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"
	"cctv_estimator/pkg/retry"

	"go.uber.org/zap"
)

type dependencies struct {
	sessions         *middleware.SessionManager
	estimatorHandler *handlers.EstimatorHandler
	pricingHandler   *handlers.PricingHandler
	inquiryHandler   *handlers.InquiryHandler
	adminHandler     *handlers.AdminHandler

	db *sql.DB
}

func (d *dependencies) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}
}

// buildDependencies wires repositories for the configured storage mode.
// Background work of shared mode (legacy migration, stream watching) is
// bound to ctx.
func buildDependencies(ctx context.Context, cfg *config.Config, log logger.Logger) (*dependencies, error) {
	db, err := database.ConnectSQLite(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}
	kv := repository.NewKVStore(db)

	var (
		priceRepo   interfaces.IPriceTableRepository
		inquiryRepo interfaces.IInquiryRepository
	)
	switch cfg.Storage.Mode {
	case config.StorageModeShared:
		priceRepo, inquiryRepo, err = buildSharedStorage(ctx, cfg, kv, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	default:
		log.Info("[routes] using local storage", zap.String("path", cfg.Storage.SQLitePath))
		priceRepo = repository.NewPriceTableKVRepository(kv, log)
		inquiryRepo = repository.NewInquiryKVRepository(kv, log)
	}

	authenticator, err := auth.NewStaticAuthenticator(cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("admin authenticator: %w", err)
	}
	channel := messaging.NewWhatsAppChannel(cfg.Business.WhatsAppNumber)

	pricingUseCase := usecase.NewPricingUseCase(priceRepo, log)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, channel, log)
	estimatorUseCase := usecase.NewEstimatorUseCase(pricingUseCase, usecase.SessionDeps{
		Inquiries: inquiryRepo,
		Channel:   channel,
		Business: estimate.Business{
			Name:  cfg.Business.Name,
			Phone: cfg.Business.Phone,
			Email: cfg.Business.Email,
		},
		SubmitTimeout: cfg.Estimator.SubmitTimeout,
		Logger:        log,
	})
	adminUseCase := usecase.NewAdminAuthUseCase(authenticator, log)

	sessions := middleware.NewSessionManager(cfg.Admin.SessionSecret, !cfg.IsDevelopment())

	return &dependencies{
		sessions:         sessions,
		estimatorHandler: handlers.NewEstimatorHandler(estimatorUseCase),
		pricingHandler:   handlers.NewPricingHandler(pricingUseCase),
		inquiryHandler:   handlers.NewInquiryHandler(inquiryUseCase),
		adminHandler:     handlers.NewAdminHandler(adminUseCase, sessions),
		db:               db,
	}, nil
}

// buildSharedStorage connects DynamoDB, moves local inquiries into it once
// and starts following the inquiry table's stream.
func buildSharedStorage(ctx context.Context, cfg *config.Config, kv *repository.KVStore, log logger.Logger) (interfaces.IPriceTableRepository, interfaces.IInquiryRepository, error) {
	ddb, streams, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, nil, err
	}
	log.Info("[routes] using shared storage",
		zap.String("inquiries_table", cfg.DynamoDB.InquiriesTable),
		zap.String("settings_table", cfg.DynamoDB.SettingsTable),
	)

	priceRepo := repository.NewPriceTableDynamoRepository(ddb, cfg.DynamoDB.SettingsTable, log)
	inquiryRepo := repository.NewInquiryDynamoRepository(ddb, cfg.DynamoDB.InquiriesTable, log)

	migration := usecase.NewMigrationUseCase(
		repository.NewInquiryKVRepository(kv, log),
		repository.NewKVMigrationMarker(kv),
		inquiryRepo,
		retry.Config{MaxAttempts: cfg.Migration.MaxAttempts, BaseDelay: cfg.Migration.BaseDelay},
		log,
	)
	if err := migration.MigrateOnce(ctx); err != nil {
		// Local records stay in place and the next start tries again.
		log.Error("[routes] legacy inquiry migration failed", zap.Error(err))
	}

	if cfg.DynamoDB.WatchStream {
		watcher := repository.NewInquiryStreamWatcher(ddb, streams, cfg.DynamoDB.InquiriesTable, cfg.DynamoDB.StreamPoll, inquiryRepo.Refresh, log)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("[routes] inquiry stream watcher stopped", zap.Error(err))
			}
		}()
	}

	return priceRepo, inquiryRepo, nil
}
