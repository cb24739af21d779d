package usecase

import (
	"context"
	"fmt"

	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"
	"cctv_estimator/pkg/retry"

	"go.uber.org/zap"
)

// MigrationUseCase moves inquiries from the local-only store into shared
// storage exactly once.
type MigrationUseCase struct {
	legacy   interfaces.ILegacyInquiryStore
	marker   interfaces.IMigrationMarker
	importer interfaces.IInquiryImporter
	retry    retry.Config
	logger   logger.Logger
}

func NewMigrationUseCase(
	legacy interfaces.ILegacyInquiryStore,
	marker interfaces.IMigrationMarker,
	importer interfaces.IInquiryImporter,
	retryCfg retry.Config,
	log logger.Logger,
) *MigrationUseCase {
	if retryCfg.Logger == nil {
		retryCfg.Logger = log
	}
	return &MigrationUseCase{legacy: legacy, marker: marker, importer: importer, retry: retryCfg, logger: log}
}

// MigrateOnce is safe to call on every start. A failed batch leaves both the
// legacy records and the marker untouched so the next call retries it whole.
func (u *MigrationUseCase) MigrateOnce(ctx context.Context) error {
	done, err := u.marker.IsMigrated(ctx)
	if err != nil {
		return fmt.Errorf("read migration marker: %w", err)
	}
	if done {
		return nil
	}

	legacy, err := u.legacy.LoadLegacy(ctx)
	if err != nil {
		return fmt.Errorf("load legacy inquiries: %w", err)
	}
	if len(legacy) == 0 {
		u.logger.Info("[migration][usecase] no legacy inquiries")
		return u.marker.MarkMigrated(ctx)
	}

	u.logger.Info("[migration][usecase] importing legacy inquiries", zap.Int("count", len(legacy)))
	err = u.retry.Do(ctx, "import legacy inquiries", func(ctx context.Context) error {
		return u.importer.ImportBatch(ctx, legacy)
	})
	if err != nil {
		u.logger.Error("[migration][usecase] import failed; will retry on next start", zap.Error(err))
		return err
	}

	if err := u.legacy.ClearLegacy(ctx); err != nil {
		return fmt.Errorf("clear legacy inquiries: %w", err)
	}
	if err := u.marker.MarkMigrated(ctx); err != nil {
		return fmt.Errorf("set migration marker: %w", err)
	}
	u.logger.Info("[migration][usecase] legacy inquiries migrated", zap.Int("count", len(legacy)))
	return nil
}
