package usecase

import (
	"context"
	"errors"
	"testing"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/pricing"
	mock_interfaces "cctv_estimator/internal/usecase/interfaces/mocks"
	"cctv_estimator/pkg/logger"

	"go.uber.org/mock/gomock"
)

func TestPricingUseCase_GetPriceTable(t *testing.T) {
	t.Run("returns stored table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		stored := entities.DefaultPriceTable()
		stored.Cameras.Bullet = 1950
		repo.EXPECT().Load(gomock.Any()).Return(stored, nil)

		got := uc.GetPriceTable(context.Background())
		if got.Cameras.Bullet != 1950 {
			t.Fatalf("expected stored bullet price, got %d", got.Cameras.Bullet)
		}
	})

	t.Run("falls back to defaults on error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		repo.EXPECT().Load(gomock.Any()).Return(entities.PriceTable{}, errors.New("disk"))

		got := uc.GetPriceTable(context.Background())
		if got != entities.DefaultPriceTable() {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})
}

func TestPricingUseCase_SavePriceTable(t *testing.T) {
	t.Run("rejects negative prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		table := entities.DefaultPriceTable()
		table.Labor.Cam8 = -1

		_, err := uc.SavePriceTable(context.Background(), table)
		if !errors.Is(err, ErrInvalidPriceTable) {
			t.Fatalf("expected ErrInvalidPriceTable, got %v", err)
		}
	})

	t.Run("persists valid table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		table := entities.DefaultPriceTable()
		table.Distance.Km50 = 650
		repo.EXPECT().Save(gomock.Any(), table).Return(nil)

		got, err := uc.SavePriceTable(context.Background(), table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != table {
			t.Fatalf("unexpected table: %+v", got)
		}
	})

	t.Run("propagates storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		if _, err := uc.SavePriceTable(context.Background(), entities.DefaultPriceTable()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPricingUseCase_Fields(t *testing.T) {
	t.Run("get flattens current table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		repo.EXPECT().Load(gomock.Any()).Return(entities.DefaultPriceTable(), nil)

		fields := uc.GetPriceFields(context.Background())
		if len(fields) != len(pricing.FieldNames()) {
			t.Fatalf("expected %d fields, got %d", len(pricing.FieldNames()), len(fields))
		}
		if fields["dvr.ch4"] != 4500 {
			t.Fatalf("unexpected dvr.ch4: %d", fields["dvr.ch4"])
		}
	})

	t.Run("save keeps defaults for missing and invalid fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, table entities.PriceTable) error {
				if table.Cameras.Dome != 2100 {
					t.Fatalf("expected edited dome price, got %d", table.Cameras.Dome)
				}
				if table.Cameras.Bullet != entities.DefaultPriceTable().Cameras.Bullet {
					t.Fatalf("expected default bullet price, got %d", table.Cameras.Bullet)
				}
				return nil
			},
		)

		_, err := uc.SavePriceFields(context.Background(), map[string]any{
			"cameras.dome":   2100,
			"cameras.bullet": "abc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save rejects negative fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		_, err := uc.SavePriceFields(context.Background(), map[string]any{"distance.km20": -300.0})
		if !errors.Is(err, ErrInvalidPriceTable) {
			t.Fatalf("expected ErrInvalidPriceTable, got %v", err)
		}
	})

	t.Run("reset writes defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
		uc := NewPricingUseCase(repo, logger.NewNop())

		repo.EXPECT().Save(gomock.Any(), entities.DefaultPriceTable()).Return(nil)

		if _, err := uc.ResetPriceTable(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
