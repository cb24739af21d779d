package interfaces

import (
	"context"

	"cctv_estimator/internal/domain/entities"
)

// ILegacyInquiryStore is the local-only inquiry list that predates shared
// storage.

type ILegacyInquiryStore interface {
	LoadLegacy(ctx context.Context) ([]entities.Inquiry, error)
	ClearLegacy(ctx context.Context) error
}

// IMigrationMarker records that the legacy store has been migrated.

type IMigrationMarker interface {
	IsMigrated(ctx context.Context) (bool, error)
	MarkMigrated(ctx context.Context) error
}
