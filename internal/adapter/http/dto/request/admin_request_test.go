package request

import (
	"testing"

	"cctv_estimator/internal/domain/entities"
)

func TestPriceTableRequest_ToFields(t *testing.T) {
	r := PriceTableRequest{
		"cameras": {"bullet": 1900.0, "dome": "2100"},
		"labor":   {"cam2": 600.0},
	}
	got := r.ToFields()
	if len(got) != 3 || got["cameras.bullet"] != 1900.0 || got["cameras.dome"] != "2100" || got["labor.cam2"] != 600.0 {
		t.Fatalf("unexpected fields: %v", got)
	}
}

func TestInquiryStatusRequest_ResolveStatus(t *testing.T) {
	if got := (InquiryStatusRequest{Status: " In_Progress "}).ResolveStatus(); got != entities.InquiryStatusInProgress {
		t.Fatalf("unexpected status %q", got)
	}
}
