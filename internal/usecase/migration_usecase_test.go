package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cctv_estimator/internal/domain/entities"
	mock_interfaces "cctv_estimator/internal/usecase/interfaces/mocks"
	"cctv_estimator/pkg/logger"
	"cctv_estimator/pkg/retry"

	"go.uber.org/mock/gomock"
)

type migrationMocks struct {
	legacy   *mock_interfaces.MockILegacyInquiryStore
	marker   *mock_interfaces.MockIMigrationMarker
	importer *mock_interfaces.MockIInquiryImporter
}

func newMigrationForTest(ctrl *gomock.Controller, attempts int) (*MigrationUseCase, migrationMocks) {
	m := migrationMocks{
		legacy:   mock_interfaces.NewMockILegacyInquiryStore(ctrl),
		marker:   mock_interfaces.NewMockIMigrationMarker(ctrl),
		importer: mock_interfaces.NewMockIInquiryImporter(ctrl),
	}
	uc := NewMigrationUseCase(m.legacy, m.marker, m.importer, retry.Config{MaxAttempts: attempts, BaseDelay: time.Millisecond}, logger.NewNop())
	return uc, m
}

func TestMigrationUseCase_MigrateOnce(t *testing.T) {
	legacy := []entities.Inquiry{
		{ID: "a", Type: entities.InquiryTypeContact, Status: entities.InquiryStatusPending},
		{ID: "b", Type: entities.InquiryTypeEstimate, Status: entities.InquiryStatusComplete},
	}

	t.Run("already migrated is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMigrationForTest(ctrl, 1)

		m.marker.EXPECT().IsMigrated(gomock.Any()).Return(true, nil)

		if err := uc.MigrateOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty legacy store only sets the marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMigrationForTest(ctrl, 1)

		m.marker.EXPECT().IsMigrated(gomock.Any()).Return(false, nil)
		m.legacy.EXPECT().LoadLegacy(gomock.Any()).Return(nil, nil)
		m.marker.EXPECT().MarkMigrated(gomock.Any()).Return(nil)

		if err := uc.MigrateOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("imports, clears and marks in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMigrationForTest(ctrl, 1)

		gomock.InOrder(
			m.marker.EXPECT().IsMigrated(gomock.Any()).Return(false, nil),
			m.legacy.EXPECT().LoadLegacy(gomock.Any()).Return(legacy, nil),
			m.importer.EXPECT().ImportBatch(gomock.Any(), legacy).Return(nil),
			m.legacy.EXPECT().ClearLegacy(gomock.Any()).Return(nil),
			m.marker.EXPECT().MarkMigrated(gomock.Any()).Return(nil),
		)

		if err := uc.MigrateOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed batch leaves source and marker untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMigrationForTest(ctrl, 3)

		m.marker.EXPECT().IsMigrated(gomock.Any()).Return(false, nil)
		m.legacy.EXPECT().LoadLegacy(gomock.Any()).Return(legacy, nil)
		m.importer.EXPECT().ImportBatch(gomock.Any(), legacy).Return(errors.New("throttled")).Times(3)
		// ClearLegacy and MarkMigrated must not be called.

		if err := uc.MigrateOnce(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMigrationForTest(ctrl, 3)

		m.marker.EXPECT().IsMigrated(gomock.Any()).Return(false, nil)
		m.legacy.EXPECT().LoadLegacy(gomock.Any()).Return(legacy, nil)
		gomock.InOrder(
			m.importer.EXPECT().ImportBatch(gomock.Any(), legacy).Return(errors.New("throttled")),
			m.importer.EXPECT().ImportBatch(gomock.Any(), legacy).Return(nil),
		)
		m.legacy.EXPECT().ClearLegacy(gomock.Any()).Return(nil)
		m.marker.EXPECT().MarkMigrated(gomock.Any()).Return(nil)

		if err := uc.MigrateOnce(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("marker read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMigrationForTest(ctrl, 1)

		m.marker.EXPECT().IsMigrated(gomock.Any()).Return(false, errors.New("io"))

		if err := uc.MigrateOnce(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
