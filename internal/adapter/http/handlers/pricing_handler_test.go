package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cctv_estimator/internal/adapter/http/handlers/mocks"
	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(h *PricingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/pricing", h.GetPriceTable)
	r.PUT("/v1/admin/pricing", h.PutPriceTable)
	r.GET("/v1/admin/pricing/fields", h.GetPriceFields)
	r.PUT("/v1/admin/pricing/fields", h.PutPriceFields)
	r.POST("/v1/admin/pricing/reset", h.ResetPriceTable)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPricingHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingUseCase(ctrl)
	r := newPricingRouter(NewPricingHandler(uc))

	uc.EXPECT().GetPriceTable(gomock.Any()).Return(entities.DefaultPriceTable())
	w := doJSON(r, http.MethodGet, "/v1/pricing", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var table entities.PriceTable
	if err := json.Unmarshal(w.Body.Bytes(), &table); err != nil || table != entities.DefaultPriceTable() {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	uc.EXPECT().GetPriceFields(gomock.Any()).Return(map[string]int64{"cameras.bullet": 1800})
	w = doJSON(r, http.MethodGet, "/v1/admin/pricing/fields", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"cameras.bullet":1800`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestPricingHandler_Put(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nested table is flattened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().SavePriceFields(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, flat map[string]any) (entities.PriceTable, error) {
				if flat["cameras.bullet"] != float64(1900) {
					t.Fatalf("unexpected flat fields: %v", flat)
				}
				return entities.DefaultPriceTable(), nil
			},
		)

		w := doJSON(r, http.MethodPut, "/v1/admin/pricing", `{"cameras":{"bullet":1900}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		w := doJSON(r, http.MethodPut, "/v1/admin/pricing", `[1,2]`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().SavePriceFields(gomock.Any(), gomock.Any()).Return(entities.PriceTable{}, fmt.Errorf("%w: labor.cam2", usecase.ErrInvalidPriceTable))

		w := doJSON(r, http.MethodPut, "/v1/admin/pricing/fields", `{"labor.cam2":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().ResetPriceTable(gomock.Any()).Return(entities.DefaultPriceTable(), nil)

		w := doJSON(r, http.MethodPost, "/v1/admin/pricing/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
