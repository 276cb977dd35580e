// Package docs registers the OpenAPI document served under /swagger.
// It follows the swag template layout and is kept in step with the handler annotations by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Overview"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List documents",
                "parameters": [
                    {"type": "string", "description": "Match against filename or summary", "name": "search", "in": "query"},
                    {"type": "string", "description": "date (default) or name", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DocumentListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Get document",
                "parameters": [
                    {"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DocumentDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["documents"],
                "summary": "Delete document",
                "parameters": [
                    {"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Backend readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List risk reports",
                "parameters": [
                    {"type": "string", "description": "all, High, Medium or Low", "name": "severity", "in": "query"},
                    {"type": "string", "description": "all, Open, Reviewing or Resolved", "name": "status", "in": "query"},
                    {"type": "string", "description": "Match against title, document name or description", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RiskListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/reports/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Get risk report",
                "parameters": [
                    {"type": "string", "description": "Risk report ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RiskItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/reports/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Update risk status",
                "parameters": [
                    {"type": "string", "description": "Risk report ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.StatusUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RiskItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Replace settings",
                "parameters": [
                    {"description": "Settings bag", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "additionalProperties": true}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Upload a document for analysis",
                "parameters": [
                    {"type": "file", "description": "PDF, DOCX, TXT, CSV, XLS or XLSX, at most 10 MB", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.UploadOutcome"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.DashboardStats": {
            "type": "object",
            "properties": {
                "averageProcessingTime": {"type": "string"},
                "documentsProcessed": {"type": "string"},
                "riskyDocuments": {"type": "string"}
            }
        },
        "model.DocumentRef": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "model.StatusUpdate": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["Open", "Reviewing", "Resolved"]}
            }
        },
        "service.DocumentDetail": {
            "type": "object",
            "properties": {
                "blob_url": {"type": "string"},
                "created_at": {"type": "string"},
                "filename": {"type": "string"},
                "has_risks": {"type": "boolean"},
                "id": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true},
                "risk_lines": {"type": "array", "items": {"type": "string"}},
                "risks": {"type": "string"},
                "summary": {"type": "string"}
            }
        },
        "service.DocumentItem": {
            "type": "object",
            "properties": {
                "blob_url": {"type": "string"},
                "created_at": {"type": "string"},
                "filename": {"type": "string"},
                "has_risks": {"type": "boolean"},
                "id": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true},
                "risks": {"type": "string"},
                "summary": {"type": "string"}
            }
        },
        "service.DocumentListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/service.DocumentItem"}},
                "total": {"type": "integer"}
            }
        },
        "service.Overview": {
            "type": "object",
            "properties": {
                "recent_documents": {"type": "array", "items": {"$ref": "#/definitions/service.DocumentItem"}},
                "recent_risks": {"type": "array", "items": {"$ref": "#/definitions/service.RiskItem"}},
                "stats": {"$ref": "#/definitions/model.DashboardStats"}
            }
        },
        "service.RiskItem": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "detectedAt": {"type": "string"},
                "document": {"$ref": "#/definitions/model.DocumentRef"},
                "id": {"type": "string"},
                "next_actions": {"type": "array", "items": {"type": "string"}},
                "severity": {"type": "string", "enum": ["High", "Medium", "Low"]},
                "status": {"type": "string", "enum": ["Open", "Reviewing", "Resolved"]},
                "title": {"type": "string"}
            }
        },
        "service.RiskListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/service.RiskItem"}},
                "summary": {"$ref": "#/definitions/service.RiskSummary"}
            }
        },
        "service.RiskSummary": {
            "type": "object",
            "properties": {
                "documents": {"type": "integer"},
                "high": {"type": "integer"},
                "low": {"type": "integer"},
                "medium": {"type": "integer"},
                "open": {"type": "integer"},
                "resolved": {"type": "integer"},
                "reviewing": {"type": "integer"},
                "total": {"type": "integer"},
                "unresolved": {"type": "integer"}
            }
        },
        "service.UploadOutcome": {
            "type": "object",
            "properties": {
                "document": {"$ref": "#/definitions/service.DocumentItem"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DocuAgent Dashboard API",
	Description:      "Dashboard backend-for-frontend over the DocuAgent document analysis API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
