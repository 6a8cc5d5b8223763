// Package docs registers the GrubDash API document with swag. It is served by
// echo-swagger under /swagger/.
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
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"type": "string"}}
                }
            }
        },
        "/dishes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "List dishes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DishListResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "Create a dish",
                "parameters": [
                    {"description": "New dish", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.DishRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.DishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/dishes/{dishId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "Read a dish",
                "parameters": [
                    {"type": "string", "description": "Dish id", "name": "dishId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DishResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "Replace a dish",
                "parameters": [
                    {"type": "string", "description": "Dish id", "name": "dishId", "in": "path", "required": true},
                    {"description": "Replacement dish", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.DishRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderListResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "New order; status defaults to pending", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.OrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Read an order",
                "parameters": [
                    {"type": "string", "description": "Order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Replace an order",
                "parameters": [
                    {"type": "string", "description": "Order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "Replacement order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.OrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["orders"],
                "summary": "Cancel a pending order",
                "parameters": [
                    {"type": "string", "description": "Order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.Dish": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "1"},
                "name": {"type": "string", "example": "Dolcelatte and chickpea spaghetti"},
                "description": {"type": "string", "example": "Spaghetti topped with dolcelatte and chickpeas"},
                "price": {"type": "integer", "example": 19},
                "image_url": {"type": "string", "example": "https://images.example.com/spaghetti.jpg"}
            }
        },
        "http.LineItem": {
            "type": "object",
            "properties": {
                "dishId": {"type": "string", "example": "1"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "http.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "1"},
                "deliverTo": {"type": "string", "example": "308 Negra Arroyo Lane, Albuquerque, NM"},
                "mobileNumber": {"type": "string", "example": "(505) 143-3369"},
                "status": {"type": "string", "enum": ["pending", "preparing", "out-for-delivery", "delivered"], "example": "pending"},
                "dishes": {"type": "array", "items": {"$ref": "#/definitions/http.LineItem"}}
            }
        },
        "http.DishRequest": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/http.Dish"}}
        },
        "http.DishResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/http.Dish"}}
        },
        "http.DishListResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/http.Dish"}}}
        },
        "http.OrderRequest": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/http.Order"}}
        },
        "http.OrderResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/http.Order"}}
        },
        "http.OrderListResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/http.Order"}}}
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "Dish must include a name"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GrubDash API",
	Description:      "Dishes and delivery orders for the GrubDash kitchen.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
