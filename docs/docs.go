// Package docs holds the swagger document of the console API, in the layout
// swag init generates.
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
        "/api/v1/console/sessions": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Open a console session",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.sessionResp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/entities": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "List managed entities",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.entitiesResp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Get a page",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pageResp"
                        }
                    },
                    "404": {
                        "description": "Unknown entity or session",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/load": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Load a page",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/console.QueryParams"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pageResp"
                        }
                    },
                    "400": {
                        "description": "Invalid params",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "502": {
                        "description": "Backend query failed",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/selection": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Replace the selection",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.selectionReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pageResp"
                        }
                    },
                    "404": {
                        "description": "Row not on the current page",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/modals/{modal}/open": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Open a modal",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "modal",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "create",
                            "update",
                            "detail"
                        ]
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/http.openModalReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pageResp"
                        }
                    },
                    "409": {
                        "description": "Create and update cannot be open together",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/modals/{modal}/close": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Close a modal",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "modal",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "create",
                            "update",
                            "detail"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pageResp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/create": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Submit the create form",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.mutationResp"
                        }
                    },
                    "409": {
                        "description": "Another action is in progress",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/update": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Submit the update form",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.mutationResp"
                        }
                    },
                    "409": {
                        "description": "Another action is in progress",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/removals": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Ask to delete rows",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.removalReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.confirmationResp"
                        }
                    },
                    "400": {
                        "description": "Nothing selected",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/removals/{token}/confirm": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Confirm a delete",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Confirmation token"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.mutationResp"
                        }
                    },
                    "404": {
                        "description": "Unknown confirmation",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/removals/{token}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Cancel a delete",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    },
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Confirmation token"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.pageResp"
                        }
                    },
                    "404": {
                        "description": "Unknown confirmation",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/console/pages/{entity}/notices": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Console"
                ],
                "summary": "Live notices",
                "parameters": [
                    {
                        "name": "X-Console-Session",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Session id"
                    },
                    {
                        "name": "entity",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Entity name"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.noticesResp"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Healthy check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Ready check",
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/live": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Alive check",
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {},
                "errors": {}
            }
        },
        "console.QueryParams": {
            "type": "object",
            "properties": {
                "pageSize": {
                    "type": "integer"
                },
                "current": {
                    "type": "integer"
                },
                "filter": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {}
                    }
                },
                "sorter": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string",
                        "enum": [
                            "ascend",
                            "descend"
                        ]
                    }
                },
                "extra": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "console.Confirmation": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "ids": {
                    "type": "array",
                    "items": {
                        "type": "integer",
                        "format": "int64"
                    }
                },
                "batch": {
                    "type": "boolean"
                }
            }
        },
        "console.Snapshot": {
            "type": "object",
            "properties": {
                "entity": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "columns": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "pagination": {
                    "type": "object",
                    "properties": {
                        "total": {
                            "type": "integer"
                        },
                        "pageSize": {
                            "type": "integer"
                        },
                        "current": {
                            "type": "integer"
                        }
                    }
                },
                "params": {
                    "$ref": "#/definitions/console.QueryParams"
                },
                "selected": {
                    "type": "array",
                    "items": {
                        "type": "integer",
                        "format": "int64"
                    }
                },
                "ui": {
                    "type": "object",
                    "properties": {
                        "createVisible": {
                            "type": "boolean"
                        },
                        "updateVisible": {
                            "type": "boolean"
                        },
                        "detailVisible": {
                            "type": "boolean"
                        },
                        "currentId": {
                            "type": "integer",
                            "format": "int64"
                        }
                    }
                },
                "current": {
                    "type": "object"
                },
                "detail": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "pending": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/console.Confirmation"
                    }
                },
                "busy": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "notice.Notice": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "level": {
                    "type": "string",
                    "enum": [
                        "loading",
                        "success",
                        "error"
                    ]
                },
                "message": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "http.sessionResp": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "string"
                }
            }
        },
        "http.entitiesResp": {
            "type": "object",
            "properties": {
                "entities": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        },
        "http.pageResp": {
            "type": "object",
            "properties": {
                "page": {
                    "$ref": "#/definitions/console.Snapshot"
                },
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/notice.Notice"
                    }
                }
            }
        },
        "http.mutationResp": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "page": {
                    "$ref": "#/definitions/console.Snapshot"
                },
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/notice.Notice"
                    }
                }
            }
        },
        "http.confirmationResp": {
            "type": "object",
            "properties": {
                "confirmation": {
                    "$ref": "#/definitions/console.Confirmation"
                }
            }
        },
        "http.noticesResp": {
            "type": "object",
            "properties": {
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/notice.Notice"
                    }
                }
            }
        },
        "http.selectionReq": {
            "type": "object",
            "properties": {
                "ids": {
                    "type": "array",
                    "items": {
                        "type": "integer",
                        "format": "int64"
                    }
                }
            }
        },
        "http.openModalReq": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "format": "int64"
                }
            }
        },
        "http.removalReq": {
            "type": "object",
            "properties": {
                "ids": {
                    "type": "array",
                    "items": {
                        "type": "integer",
                        "format": "int64"
                    }
                },
                "selection": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Admin Console API",
	Description:      "Backend-for-frontend of the mall admin console: list, create, update and delete pages for categories, login logs, recommended subjects and return reasons.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
