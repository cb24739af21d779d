package usecase

import (
	"context"
	"errors"
	"fmt"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/pricing"
	"cctv_estimator/internal/usecase/interfaces"
	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

var ErrInvalidPriceTable = errors.New("invalid price table")

// IPricingUseCase exposes the price table to the storefront and the admin
// editor.
//
// Reads never fail: storage problems degrade to the built-in defaults.
// Writes are blind overwrites (last write wins).

type IPricingUseCase interface {
	GetPriceTable(ctx context.Context) entities.PriceTable
	SavePriceTable(ctx context.Context, table entities.PriceTable) (entities.PriceTable, error)
	GetPriceFields(ctx context.Context) map[string]int64
	SavePriceFields(ctx context.Context, flat map[string]any) (entities.PriceTable, error)
	ResetPriceTable(ctx context.Context) (entities.PriceTable, error)
}

type PricingUseCase struct {
	repo   interfaces.IPriceTableRepository
	logger logger.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPriceTableRepository, log logger.Logger) *PricingUseCase {
	return &PricingUseCase{repo: repo, logger: log}
}

func (u *PricingUseCase) GetPriceTable(ctx context.Context) entities.PriceTable {
	table, err := u.repo.Load(ctx)
	if err != nil {
		u.logger.Warn("[pricing][usecase] load failed, using defaults", zap.Error(err))
		return entities.DefaultPriceTable()
	}
	return table
}

func (u *PricingUseCase) SavePriceTable(ctx context.Context, table entities.PriceTable) (entities.PriceTable, error) {
	if err := pricing.Validate(table); err != nil {
		return entities.PriceTable{}, fmt.Errorf("%w: %v", ErrInvalidPriceTable, err)
	}
	if err := u.repo.Save(ctx, table); err != nil {
		u.logger.Error("[pricing][usecase] save failed", zap.Error(err))
		return entities.PriceTable{}, err
	}
	u.logger.Info("[pricing][usecase] price table saved")
	return table, nil
}

func (u *PricingUseCase) GetPriceFields(ctx context.Context) map[string]int64 {
	return pricing.Flatten(u.GetPriceTable(ctx))
}

// SavePriceFields rebuilds the table from individually edited fields. Any
// field missing from flat, or not a number, keeps its default value; a
// negative number is rejected.
func (u *PricingUseCase) SavePriceFields(ctx context.Context, flat map[string]any) (entities.PriceTable, error) {
	if err := pricing.ValidateFields(flat); err != nil {
		return entities.PriceTable{}, fmt.Errorf("%w: %v", ErrInvalidPriceTable, err)
	}
	return u.SavePriceTable(ctx, pricing.Rebuild(flat))
}

func (u *PricingUseCase) ResetPriceTable(ctx context.Context) (entities.PriceTable, error) {
	return u.SavePriceTable(ctx, entities.DefaultPriceTable())
}
