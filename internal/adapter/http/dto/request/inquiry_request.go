package request

import (
	"strings"

	"cctv_estimator/internal/domain/entities"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}

func (r InquiryStatusRequest) ResolveStatus() entities.InquiryStatus {
	return entities.InquiryStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
