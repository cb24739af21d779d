package usecase

import (
	"context"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/estimate"
	"cctv_estimator/internal/domain/pricing"
	"cctv_estimator/pkg/logger"

	"go.uber.org/zap"
)

// IEstimatorUseCase serves stateless estimator requests. Each request runs
// as a short-lived EstimatorSession against the current price table.

type IEstimatorUseCase interface {
	Calculate(ctx context.Context, sel entities.SelectionSet) entities.EstimateBreakdown
	Submit(ctx context.Context, sel entities.SelectionSet) (SubmitResult, error)
	Export(ctx context.Context, sel entities.SelectionSet) string
}

type EstimatorUseCase struct {
	pricing IPricingUseCase
	deps    SessionDeps
	logger  logger.Logger
}

var _ IEstimatorUseCase = (*EstimatorUseCase)(nil)

func NewEstimatorUseCase(pricingUC IPricingUseCase, deps SessionDeps) *EstimatorUseCase {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	uc := &EstimatorUseCase{pricing: pricingUC, deps: deps, logger: deps.Logger}
	if uc.deps.OnNotice == nil {
		uc.deps.OnNotice = uc.logNotice
	}
	return uc
}

func (u *EstimatorUseCase) Calculate(ctx context.Context, sel entities.SelectionSet) entities.EstimateBreakdown {
	return pricing.Compute(sel, u.pricing.GetPriceTable(ctx))
}

func (u *EstimatorUseCase) Submit(ctx context.Context, sel entities.SelectionSet) (SubmitResult, error) {
	// Reject before touching storage or the messaging channel.
	if _, _, err := ValidateCustomer(sel.CustomerName, sel.CustomerPhone); err != nil {
		return SubmitResult{}, err
	}
	session := NewEstimatorSession(u.pricing.GetPriceTable(ctx), u.deps)
	session.Change(sel)
	return session.Submit(ctx)
}

func (u *EstimatorUseCase) Export(ctx context.Context, sel entities.SelectionSet) string {
	return estimate.Export(u.deps.Business, u.Calculate(ctx, sel))
}

func (u *EstimatorUseCase) logNotice(n Notice) {
	switch n.Kind {
	case NoticeSaved:
		u.logger.Debug("[estimator][usecase] estimate persisted", zap.String("inquiry_id", n.Inquiry.ID))
	case NoticeSaveFailed:
		u.logger.Error("[estimator][usecase] estimate could not be saved", zap.Error(n.Err))
	case NoticeSlow:
		u.logger.Warn("[estimator][usecase] estimate save is taking longer than expected")
	}
}
