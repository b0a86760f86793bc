// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "cookieAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "Cookie"
        }
    },
    "paths": {
        "/jwt": {
            "post": {
                "tags": ["Auth"],
                "summary": "Issue session cookie",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/gateway.tokenRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gateway.errorBody"}}}
            }
        },
        "/logout": {
            "get": {
                "tags": ["Auth"],
                "summary": "Clear session cookie",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{email}": {
            "post": {
                "tags": ["Users"],
                "summary": "Create user if absent",
                "parameters": [
                    {"type": "string", "in": "path", "name": "email", "required": true},
                    {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/models.UserProfile"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}
            },
            "patch": {
                "tags": ["Users"],
                "summary": "Request the seller role",
                "security": [{"cookieAuth": []}],
                "parameters": [{"type": "string", "in": "path", "name": "email", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WriteResult"}}}
            }
        },
        "/users/role/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get a user's role",
                "parameters": [{"type": "string", "in": "path", "name": "email", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorBody"}}}
            },
            "patch": {
                "tags": ["Users"],
                "summary": "Assign a role",
                "security": [{"cookieAuth": []}],
                "parameters": [
                    {"type": "string", "in": "path", "name": "email", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/gateway.roleRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WriteResult"}}}
            }
        },
        "/sellers/{email}": {
            "post": {
                "tags": ["Sellers"],
                "summary": "Apply to become a seller",
                "security": [{"cookieAuth": []}],
                "parameters": [
                    {"type": "string", "in": "path", "name": "email", "required": true},
                    {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/models.SellerProfile"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/products": {
            "get": {
                "tags": ["Products"],
                "summary": "List products",
                "parameters": [
                    {"type": "string", "in": "query", "name": "category"},
                    {"type": "string", "in": "query", "name": "search"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Products"],
                "summary": "Create a listing",
                "security": [{"cookieAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProductInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.WriteResult"}}}
            }
        },
        "/product/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get a product",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gateway.errorBody"}}}
            }
        },
        "/products/quantity/{id}": {
            "patch": {
                "tags": ["Products"],
                "summary": "Adjust stock",
                "security": [{"cookieAuth": []}],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/gateway.quantityRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WriteResult"}}}
            }
        },
        "/orders": {
            "post": {
                "tags": ["Orders"],
                "summary": "Place an order",
                "security": [{"cookieAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/models.OrderInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.WriteResult"}}}
            }
        },
        "/orders/{id}": {
            "delete": {
                "tags": ["Orders"],
                "summary": "Cancel an order",
                "security": [{"cookieAuth": []}],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/gateway.errorBody"}}}
            }
        },
        "/update-order-status/{id}": {
            "patch": {
                "tags": ["Orders"],
                "summary": "Change order status",
                "security": [{"cookieAuth": []}],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/gateway.statusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/gateway.errorBody"}}}
            }
        },
        "/reviews": {
            "post": {
                "tags": ["Reviews"],
                "summary": "Review a product",
                "security": [{"cookieAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/models.ReviewInput"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/admin-stat": {
            "get": {
                "tags": ["Stats"],
                "summary": "Platform totals",
                "security": [{"cookieAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AdminStats"}}}
            }
        },
        "/seller-statistics": {
            "get": {
                "tags": ["Stats"],
                "summary": "Totals for the calling seller",
                "security": [{"cookieAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SellerStats"}}}
            }
        },
        "/audit-logs/{entityId}": {
            "get": {
                "tags": ["Audit"],
                "summary": "Audit trail of an entity",
                "security": [{"cookieAuth": []}],
                "parameters": [
                    {"type": "string", "in": "path", "name": "entityId", "required": true},
                    {"type": "integer", "default": 50, "in": "query", "name": "limit"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "gateway.errorBody": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
                }
            }
        },
        "gateway.tokenRequest": {"type": "object", "properties": {"email": {"type": "string"}}},
        "gateway.roleRequest": {"type": "object", "properties": {"role": {"type": "string", "enum": ["customer", "seller", "admin"]}}},
        "gateway.statusRequest": {"type": "object", "properties": {"status": {"type": "string", "enum": ["Pending", "Processing", "Shipped", "Delivered"]}}},
        "gateway.quantityRequest": {"type": "object", "properties": {"quantityToUpdate": {"type": "integer"}, "status": {"type": "string"}}},
        "models.UserProfile": {"type": "object", "properties": {"name": {"type": "string"}, "photo": {"type": "string"}}},
        "models.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"},
                "photo": {"type": "string"}, "role": {"type": "string"}, "status": {"type": "string"},
                "timestamp": {"type": "integer"}
            }
        },
        "models.SellerProfile": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "shopName": {"type": "string"}, "phone": {"type": "string"},
                "address": {"type": "string"}, "description": {"type": "string"}
            }
        },
        "models.ProductInput": {
            "type": "object",
            "required": ["productName"],
            "properties": {
                "productName": {"type": "string"}, "description": {"type": "string"}, "image": {"type": "string"},
                "price": {"type": "number"}, "discountedPrice": {"type": "number"}, "quantity": {"type": "integer"},
                "category": {"type": "string"}, "sizes": {"type": "array", "items": {"type": "string"}},
                "deliveryPrice": {"type": "number"}
            }
        },
        "models.OrderInput": {
            "type": "object",
            "required": ["seller", "productId"],
            "properties": {
                "seller": {"type": "string"}, "productId": {"type": "string"}, "price": {"type": "number"},
                "quantity": {"type": "integer", "minimum": 1}, "size": {"type": "string"}
            }
        },
        "models.ReviewInput": {
            "type": "object",
            "required": ["productId", "review"],
            "properties": {
                "productId": {"type": "string"}, "name": {"type": "string"}, "review": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "models.WriteResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"}, "insertedId": {"type": "string"},
                "matchedCount": {"type": "integer"}, "modifiedCount": {"type": "integer"}, "deletedCount": {"type": "integer"}
            }
        },
        "models.AdminStats": {
            "type": "object",
            "properties": {
                "totalUsers": {"type": "integer"}, "totalSellers": {"type": "integer"}, "totalProducts": {"type": "integer"},
                "totalOrders": {"type": "integer"}, "totalRevenue": {"type": "number"}
            }
        },
        "models.SellerStats": {
            "type": "object",
            "properties": {
                "totalProducts": {"type": "integer"}, "totalOrders": {"type": "integer"}, "totalRevenue": {"type": "number"},
                "ordersByStatus": {"type": "object", "additionalProperties": {"type": "integer"}}
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
	Title:            "QuickCart API",
	Description:      "Marketplace backend for customers, sellers and admins.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
