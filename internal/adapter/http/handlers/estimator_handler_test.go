package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cctv_estimator/internal/adapter/http/handlers/mocks"
	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimatorRouter(h *EstimatorHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/estimates/calculate", h.Calculate)
	r.POST("/v1/estimates/submit", h.Submit)
	r.POST("/v1/estimates/export", h.Export)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimatorHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := newEstimatorRouter(NewEstimatorHandler(uc))

		w := postJSON(r, "/v1/estimates/calculate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quantity above limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := newEstimatorRouter(NewEstimatorHandler(uc))

		w := postJSON(r, "/v1/estimates/calculate", `{"bullet_cameras":6000000000000000}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "INVALID_ESTIMATE_INPUT") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}

		w = postJSON(r, "/v1/estimates/submit", `{"wire_meters":100001,"customer_name":"Ravi","customer_phone":"9876543210"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := newEstimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sel entities.SelectionSet) entities.EstimateBreakdown {
				if sel.BulletCameras != 2 || sel.DVRChannel != "4ch" {
					t.Fatalf("unexpected selection: %+v", sel)
				}
				return entities.EstimateBreakdown{
					Items:          []entities.EstimateLineItem{{Name: "Bullet Camera (CP Plus)", Quantity: 2, UnitPrice: 1800, Total: 3600}},
					MaterialTotal:  3600,
					LaborCharge:    500,
					DistanceCharge: 300,
					GrandTotal:     4400,
				}
			},
		)

		w := postJSON(r, "/v1/estimates/calculate", `{"bullet_cameras":2,"dvr_channel":"4ch"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["grand_total"] != float64(4400) || body["grand_total_formatted"] != "₹4,400" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEstimatorHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
		want string
	}{
		{name: "phone required", err: usecase.ErrPhoneRequired, code: http.StatusBadRequest, want: "PHONE_REQUIRED"},
		{name: "name required", err: usecase.ErrNameRequired, code: http.StatusBadRequest, want: "NAME_REQUIRED"},
		{name: "invalid phone", err: usecase.ErrInvalidPhone, code: http.StatusBadRequest, want: "INVALID_PHONE"},
		{name: "in progress", err: usecase.ErrSubmissionInProgress, code: http.StatusConflict, want: "SUBMISSION_IN_PROGRESS"},
		{name: "internal", err: errors.New("boom"), code: http.StatusInternalServerError, want: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIEstimatorUseCase(ctrl)
			r := newEstimatorRouter(NewEstimatorHandler(uc))

			uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{}, tc.err)

			w := postJSON(r, "/v1/estimates/submit", `{"customer_name":"Ravi"}`)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Fatalf("expected code %s in %s", tc.want, w.Body.String())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := newEstimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{
			HandOffURL: "https://wa.me/919422115003?text=hi",
			TimedOut:   true,
		}, nil)

		w := postJSON(r, "/v1/estimates/submit", `{"customer_name":"Ravi","customer_phone":"9876543210"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["wa_url"] != "https://wa.me/919422115003?text=hi" || body["timed_out"] != true || body["saved"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEstimatorHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	r := newEstimatorRouter(NewEstimatorHandler(uc))

	uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return("CCTV ESTIMATE - SHOP")

	w := postJSON(r, "/v1/estimates/export", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "cctv-estimate.txt") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != "CCTV ESTIMATE - SHOP" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
