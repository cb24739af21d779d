package response

import (
	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/domain/estimate"
	"cctv_estimator/internal/usecase"
)

type LineItemResponse struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

type BreakdownResponse struct {
	Items               []LineItemResponse `json:"items"`
	MaterialTotal       int64              `json:"material_total"`
	LaborCharge         int64              `json:"labor_charge"`
	DistanceCharge      int64              `json:"distance_charge"`
	GrandTotal          int64              `json:"grand_total"`
	GrandTotalFormatted string             `json:"grand_total_formatted"`
}

func FromBreakdown(b entities.EstimateBreakdown) BreakdownResponse {
	items := make([]LineItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, LineItemResponse{
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			Total:          it.Total,
			TotalFormatted: estimate.FormatINR(it.Total),
		})
	}
	return BreakdownResponse{
		Items:               items,
		MaterialTotal:       b.MaterialTotal,
		LaborCharge:         b.LaborCharge,
		DistanceCharge:      b.DistanceCharge,
		GrandTotal:          b.GrandTotal,
		GrandTotalFormatted: estimate.FormatINR(b.GrandTotal),
	}
}

// SubmitEstimateResponse is returned once validation passed. The hand-off
// link is valid even when saving failed or is still running (timed_out).
type SubmitEstimateResponse struct {
	WAURL     string            `json:"wa_url"`
	Breakdown BreakdownResponse `json:"breakdown"`
	Saved     bool              `json:"saved"`
	TimedOut  bool              `json:"timed_out"`
	Cancelled bool              `json:"cancelled,omitempty"`
	SaveError string            `json:"save_error,omitempty"`
	Inquiry   *InquiryResponse  `json:"inquiry,omitempty"`
}

func FromSubmitResult(res usecase.SubmitResult) SubmitEstimateResponse {
	out := SubmitEstimateResponse{
		WAURL:     res.HandOffURL,
		Breakdown: FromBreakdown(res.Breakdown),
		Saved:     res.Saved,
		TimedOut:  res.TimedOut,
		Cancelled: res.Cancelled,
	}
	if res.SaveErr != nil {
		out.SaveError = "Could not save your estimate. Please contact us directly."
	}
	if res.Saved {
		inq := FromInquiry(res.Inquiry)
		out.Inquiry = &inq
	}
	return out
}
