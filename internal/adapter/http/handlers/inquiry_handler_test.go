package handlers

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cctv_estimator/internal/adapter/http/handlers/mocks"
	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase"
	"cctv_estimator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInquiryRouter(h *InquiryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/contact", h.SubmitContact)
	r.GET("/v1/admin/inquiries", h.ListInquiries)
	r.GET("/v1/admin/inquiries/stream", h.StreamInquiries)
	r.PATCH("/v1/admin/inquiries/:id/status", h.UpdateStatus)
	r.DELETE("/v1/admin/inquiries/:id", h.DeleteInquiry)
	return r
}

func TestInquiryHandler_SubmitContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("message required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().SubmitContact(gomock.Any(), usecase.ContactRequest{Name: "Ravi", Phone: "9876543210"}).
			Return(usecase.ContactResult{}, usecase.ErrMessageRequired)

		w := doJSON(r, http.MethodPost, "/v1/contact", `{"name":"Ravi","phone":"9876543210"}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "MESSAGE_REQUIRED") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return(usecase.ContactResult{
			HandOffURL: "https://wa.me/919422115003?text=hello",
			Saved:      true,
			Inquiry:    entities.Inquiry{ID: "inq-1", Type: entities.InquiryTypeContact, Status: entities.InquiryStatusPending},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/contact", `{"name":"Ravi","phone":"9876543210","message":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"id":"inq-1"`) || !strings.Contains(w.Body.String(), `"saved":true`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInquiryHandler_AdminOperations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().ListInquiries(gomock.Any()).Return([]entities.Inquiry{{ID: "b"}, {ID: "a"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/admin/inquiries", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Index(w.Body.String(), `"b"`) > strings.Index(w.Body.String(), `"a"`) {
			t.Fatalf("expected order to be kept: %s", w.Body.String())
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().ListInquiries(gomock.Any()).Return(nil, errors.New("db down"))

		w := doJSON(r, http.MethodGet, "/v1/admin/inquiries", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("update status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "inq-1", entities.InquiryStatusComplete).Return(nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/inquiries/inq-1/status", `{"status":" Complete "}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("update status missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		w := doJSON(r, http.MethodPatch, "/v1/admin/inquiries/inq-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update status invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "inq-1", entities.InquiryStatus("archived")).Return(usecase.ErrInvalidInquiryStatus)

		w := doJSON(r, http.MethodPatch, "/v1/admin/inquiries/inq-1/status", `{"status":"archived"}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "INVALID_REQUEST") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		r := newInquiryRouter(NewInquiryHandler(uc))

		uc.EXPECT().DeleteInquiry(gomock.Any(), "inq-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/admin/inquiries/inq-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestInquiryHandler_StreamInquiries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInquiryUseCase(ctrl)

	var cancelled atomic.Bool
	uc.EXPECT().SubscribeInquiries(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, listener interfaces.InquiryListener) (func(), error) {
			listener([]entities.Inquiry{{ID: "inq-1", Type: entities.InquiryTypeContact, Status: entities.InquiryStatusPending}})
			return func() { cancelled.Store(true) }, nil
		},
	)

	srv := httptest.NewServer(newInquiryRouter(NewInquiryHandler(uc)))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/admin/inquiries/stream", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}

	var event, data string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimPrefix(line, "data:")
		}
		if data != "" {
			break
		}
	}
	if event != "inquiries" || !strings.Contains(data, `"id":"inq-1"`) {
		t.Fatalf("unexpected event %q data %q", event, data)
	}

	cancel()
	deadline := time.Now().Add(2 * time.Second)
	for !cancelled.Load() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !cancelled.Load() {
		t.Fatalf("expected subscription to be cancelled after disconnect")
	}
}
