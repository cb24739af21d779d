package entities

import "time"

type InquiryType string

const (
	InquiryTypeEstimate InquiryType = "estimate"
	InquiryTypeContact  InquiryType = "contact"
)

// InquiryStatus is operator controlled. Any status may follow any other.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusComplete   InquiryStatus = "complete"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusInProgress, InquiryStatusComplete:
		return true
	}
	return false
}

func (t InquiryType) Valid() bool {
	return t == InquiryTypeEstimate || t == InquiryTypeContact
}

// Inquiry is a customer request that needs operator follow-up.
//
// EstimateDetails is a frozen copy of the breakdown computed at submission
// time and is only set for estimate inquiries. Later price changes never
// touch it.
type Inquiry struct {
	ID              string             `json:"id"`
	Type            InquiryType        `json:"type"`
	Status          InquiryStatus      `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	CustomerName    string             `json:"customerName,omitempty"`
	CustomerPhone   string             `json:"customerPhone,omitempty"`
	Message         string             `json:"message,omitempty"`
	SelectedProduct string             `json:"selectedProduct,omitempty"`
	EstimateDetails *EstimateBreakdown `json:"estimateDetails,omitempty"`
}

// NewInquiry is the caller-supplied part of an inquiry. The repository
// assigns ID, CreatedAt and Status.
type NewInquiry struct {
	Type            InquiryType
	CustomerName    string
	CustomerPhone   string
	Message         string
	SelectedProduct string
	EstimateDetails *EstimateBreakdown
}
