package response

import (
	"time"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase"
)

type InquiryResponse struct {
	ID              string             `json:"id"`
	Type            string             `json:"type"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	CustomerName    string             `json:"customer_name,omitempty"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	Message         string             `json:"message,omitempty"`
	SelectedProduct string             `json:"selected_product,omitempty"`
	EstimateDetails *BreakdownResponse `json:"estimate_details,omitempty"`
}

func FromInquiry(in entities.Inquiry) InquiryResponse {
	out := InquiryResponse{
		ID:              in.ID,
		Type:            string(in.Type),
		Status:          string(in.Status),
		CreatedAt:       in.CreatedAt,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Message:         in.Message,
		SelectedProduct: in.SelectedProduct,
	}
	if in.EstimateDetails != nil {
		b := FromBreakdown(*in.EstimateDetails)
		out.EstimateDetails = &b
	}
	return out
}

func FromInquiries(list []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(list))
	for _, in := range list {
		out = append(out, FromInquiry(in))
	}
	return out
}

type ContactResponse struct {
	WAURL     string           `json:"wa_url"`
	Saved     bool             `json:"saved"`
	SaveError string           `json:"save_error,omitempty"`
	Inquiry   *InquiryResponse `json:"inquiry,omitempty"`
}

func FromContactResult(res usecase.ContactResult) ContactResponse {
	out := ContactResponse{WAURL: res.HandOffURL, Saved: res.Saved}
	if res.SaveErr != nil {
		out.SaveError = "Could not save your inquiry. Please contact us directly."
	}
	if res.Saved {
		inq := FromInquiry(res.Inquiry)
		out.Inquiry = &inq
	}
	return out
}
