package response

import (
	"time"

	"cctv_estimator/internal/domain/entities"
)

type AdminSessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Email         string     `json:"email,omitempty"`
	LoggedInAt    *time.Time `json:"logged_in_at,omitempty"`
}

func FromAdminSession(s entities.AdminSession) AdminSessionResponse {
	out := AdminSessionResponse{Authenticated: s.Authenticated, Email: s.Email}
	if !s.LoggedInAt.IsZero() {
		t := s.LoggedInAt
		out.LoggedInAt = &t
	}
	return out
}

type PriceFieldsResponse struct {
	Fields map[string]int64 `json:"fields"`
}
