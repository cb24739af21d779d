package interfaces

import (
	"context"

	"cctv_estimator/internal/domain/entities"
)

// IPriceTableRepository persists the singleton price table.
//
// Load returns the built-in defaults when nothing is stored or the stored
// record cannot be parsed; an error is only returned for I/O failures.
// Save overwrites the whole table in a single write.

type IPriceTableRepository interface {
	Load(ctx context.Context) (entities.PriceTable, error)
	Save(ctx context.Context, table entities.PriceTable) error
}
