// Package clients holds the Swagger document served at /swagger/.
// Regenerate with: swag init -g internal/api/http/router.go -o api/clients
package clients

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/clientdesk"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/clients/createClient": {
            "post": {
                "description": "Creates a client. A taken shared key answers 400 with respondeCode 01.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "Create Client",
                "parameters": [
                    {
                        "description": "Client record",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/clientsdk.Client"}
                    }
                ],
                "responses": {
                    "201": {"description": "respondeCode 00", "schema": {"$ref": "#/definitions/clientsdk.CreateClientResponse"}},
                    "400": {"description": "respondeCode 01 (duplicate) or 02 (invalid)", "schema": {"$ref": "#/definitions/clientsdk.ErrorResponse"}},
                    "429": {"description": "respondeCode 04", "schema": {"$ref": "#/definitions/clientsdk.ErrorResponse"}},
                    "500": {"description": "respondeCode 99", "schema": {"$ref": "#/definitions/clientsdk.ErrorResponse"}}
                }
            }
        },
        "/api/clients/getClients": {
            "get": {
                "description": "Returns every client in creation order. There is no pagination.",
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "List Clients",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/clientsdk.Client"}}},
                    "500": {"description": "respondeCode 99", "schema": {"$ref": "#/definitions/clientsdk.ErrorResponse"}}
                }
            }
        },
        "/api/clients/searchClient/{sharedKey}": {
            "get": {
                "description": "Exact, case-sensitive lookup by shared key.",
                "produces": ["application/json"],
                "tags": ["Clients"],
                "summary": "Find Client",
                "parameters": [
                    {"type": "string", "description": "Shared key", "name": "sharedKey", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/clientsdk.Client"}},
                    "404": {"description": "respondeCode 03", "schema": {"$ref": "#/definitions/clientsdk.ErrorResponse"}},
                    "500": {"description": "respondeCode 99", "schema": {"$ref": "#/definitions/clientsdk.ErrorResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "description": "Liveness probe; always 200 while the process is serving",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/clientsdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe; checks the database connection",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/clientsdk.HealthResponse"}},
                    "503": {"description": "database unavailable", "schema": {"$ref": "#/definitions/clientsdk.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "clientsdk.Client": {
            "type": "object",
            "properties": {
                "sharedKey": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"}
            }
        },
        "clientsdk.ResponseData": {
            "type": "object",
            "properties": {
                "respondeCode": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "clientsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/clientsdk.ResponseData"}
            }
        },
        "clientsdk.CreateClientResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/clientsdk.ResponseData"}
            }
        },
        "clientsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        },
        "clientsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/clientsdk.HealthChecks"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8001",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Clients API",
	Description:      "Client records keyed by a business-unique shared key.\nFailures carry {\"data\":{\"respondeCode\",\"message\"}}; 01 marks a duplicate shared key.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
