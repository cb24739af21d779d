package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDoc_AdminInquiryRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid json: %v", err)
	}

	cases := []struct {
		path   string
		method string
	}{
		{"/admin/inquiries", "get"},
		{"/admin/inquiries/stream", "get"},
		{"/admin/inquiries/{id}/status", "patch"},
		{"/admin/inquiries/{id}", "delete"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			if _, ok := doc.Paths[tc.path][tc.method]; !ok {
				t.Fatalf("expected %s %s to be documented", tc.method, tc.path)
			}
		})
	}

	if _, ok := doc.Definitions["request.InquiryStatusRequest"]; !ok {
		t.Fatalf("expected request.InquiryStatusRequest definition")
	}
}
