// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "bharatmultiservicesnagpur@gmail.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pricing": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pricing"],
                "summary": "Current price table",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.PriceTable"}}}
            }
        },
        "/estimates/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["estimates"],
                "summary": "Calculate an estimate",
                "parameters": [{"description": "Selections", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.EstimateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.BreakdownResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/estimates/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["estimates"],
                "summary": "Submit an estimate",
                "description": "Validates the customer, returns the WhatsApp hand-off link and saves the estimate as an inquiry.",
                "parameters": [{"description": "Selections and customer", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.EstimateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.SubmitEstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/estimates/export": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["estimates"],
                "summary": "Download an estimate as text",
                "parameters": [{"description": "Selections", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.EstimateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Send a contact inquiry",
                "parameters": [{"description": "Contact form", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ContactRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ContactResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin login",
                "parameters": [{"description": "Credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.AdminLoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AdminSessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/inquiries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List inquiries, newest first",
                "security": [{"AdminSession": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.InquiryResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/inquiries/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["admin"],
                "summary": "Stream the inquiry list",
                "description": "Pushes the full inquiry list as a server-sent \"inquiries\" event on subscribe and after every change, until the client disconnects.",
                "security": [{"AdminSession": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.InquiryResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/inquiries/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "tags": ["admin"],
                "summary": "Change an inquiry's status",
                "security": [{"AdminSession": []}],
                "parameters": [
                    {"type": "string", "description": "Inquiry ID", "name": "id", "in": "path", "required": true},
                    {"description": "pending, in_progress or complete", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.InquiryStatusRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/inquiries/{id}": {
            "delete": {
                "tags": ["admin"],
                "summary": "Delete an inquiry",
                "security": [{"AdminSession": []}],
                "parameters": [{"type": "string", "description": "Inquiry ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "entities.PriceTable": {"type": "object"},
        "request.EstimateRequest": {
            "type": "object",
            "properties": {
                "bullet_cameras": {"type": "integer"},
                "dome_cameras": {"type": "integer"},
                "other_cameras": {"type": "integer"},
                "dvr_channel": {"type": "string", "example": "4ch"},
                "hard_disk": {"type": "string", "example": "1tb"},
                "power_supply": {"type": "string", "example": "4ch"},
                "distance": {"type": "string", "example": "20km"},
                "wire_meters": {"type": "integer"},
                "bnc_connectors": {"type": "integer"},
                "dc_connectors": {"type": "integer"},
                "pvc_boxes": {"type": "integer"},
                "hdmi_cable": {"type": "boolean"},
                "vga_cable": {"type": "boolean"},
                "monitor": {"type": "boolean"},
                "rack": {"type": "boolean"},
                "customer_name": {"type": "string"},
                "customer_phone": {"type": "string"}
            }
        },
        "request.ContactRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "phone": {"type": "string"}, "message": {"type": "string"}}
        },
        "request.InquiryStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "example": "in_progress"}}
        },
        "request.AdminLoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "response.BreakdownResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "material_total": {"type": "integer"},
                "labor_charge": {"type": "integer"},
                "distance_charge": {"type": "integer"},
                "grand_total": {"type": "integer"},
                "grand_total_formatted": {"type": "string"}
            }
        },
        "response.SubmitEstimateResponse": {
            "type": "object",
            "properties": {
                "wa_url": {"type": "string"},
                "breakdown": {"$ref": "#/definitions/response.BreakdownResponse"},
                "saved": {"type": "boolean"},
                "timed_out": {"type": "boolean"},
                "save_error": {"type": "string"}
            }
        },
        "response.ContactResponse": {
            "type": "object",
            "properties": {"wa_url": {"type": "string"}, "saved": {"type": "boolean"}, "save_error": {"type": "string"}}
        },
        "response.InquiryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "customer_name": {"type": "string"},
                "customer_phone": {"type": "string"},
                "message": {"type": "string"},
                "selected_product": {"type": "string"}
            }
        },
        "response.AdminSessionResponse": {
            "type": "object",
            "properties": {"authenticated": {"type": "boolean"}, "email": {"type": "string"}, "logged_in_at": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "AdminSession": {"type": "apiKey", "name": "bms_admin", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "CCTV Estimator API",
	Description:      "Installation estimates, contact inquiries and the admin price table for a CCTV shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
