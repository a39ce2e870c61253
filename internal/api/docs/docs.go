// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o internal/api/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/v1/accounts": {
            "post": {"tags": ["accounts"], "summary": "Register an account", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/v1/sessions": {
            "post": {"tags": ["sessions"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/v1/sessions/current": {
            "get": {"tags": ["sessions"], "summary": "Current session", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["sessions"], "summary": "Logout", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/reservations": {
            "get": {"tags": ["reservations"], "summary": "List reservations in creation order", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reservations"], "summary": "Create a reservation", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/reservations/{id}": {
            "patch": {"tags": ["reservations"], "summary": "Update a reservation", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["reservations"], "summary": "Delete a reservation", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Reservation API",
	Description:      "Accounts, sessions and the shared reservation list.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
