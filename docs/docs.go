// Package docs registers the swagger spec served at /api/docs.
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
        "/api/health": {
            "get": {
                "description": "Reports process uptime and the reachability of postgres and redis",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.HealthOutput"}}
                }
            }
        },
        "/api/version": {
            "get": {
                "description": "Returns the running build's version information",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Get TaskAPI Version",
                "responses": {
                    "200": {"description": "Version information", "schema": {"$ref": "#/definitions/version.Info"}}
                }
            }
        },
        "/api/users": {
            "post": {
                "description": "Creates a user and returns it with its API key. The key is only shown once.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User data", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.WithAPIKey"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/tasks": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Lists the authenticated user's tasks, newest first",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Page size (1-100)", "name": "limit", "in": "query"},
                    {"type": "boolean", "description": "Filter by completion", "name": "done", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/task.Page"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/response.Error"}},
                    "401": {"description": "Missing or invalid API key", "schema": {"$ref": "#/definitions/response.Error"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Creates a task owned by the authenticated user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"description": "Task data", "name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/task.Task"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "401": {"description": "Missing or invalid API key", "schema": {"$ref": "#/definitions/response.Error"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/tasks/{id}": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Partially updates a task owned by the authenticated user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.UpdateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/task.Task"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Removes a task owned by the authenticated user",
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Task deleted successfully"},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/tasks/{id}/complete": {
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Marks a task owned by the authenticated user as done",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Complete a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/task.Task"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        }
    },
    "definitions": {
        "request.CreateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "request.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "done": {"type": "boolean"}
            }
        },
        "request.CreateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "response.Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.HealthOutput": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "number"},
                "timestamp": {"type": "string"},
                "dependencies": {
                    "type": "object",
                    "properties": {
                        "database": {"type": "string"},
                        "redis": {"type": "string"}
                    }
                }
            }
        },
        "task.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "done": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "task.Page": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/task.Task"}},
                "meta": {
                    "type": "object",
                    "properties": {
                        "page": {"type": "integer"},
                        "limit": {"type": "integer"},
                        "total": {"type": "integer"},
                        "total_pages": {"type": "integer"},
                        "has_next_page": {"type": "boolean"},
                        "has_prev_page": {"type": "boolean"}
                    }
                }
            }
        },
        "user.WithAPIKey": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "api_key": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "version.Info": {
            "type": "object",
            "properties": {
                "app_name": {"type": "string"},
                "version": {"type": "string"},
                "build_date": {"type": "string"},
                "go_version": {"type": "string"},
                "platform": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "x-api-key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TaskAPI",
	Description:      "Task management API with per-key rate limiting and cached listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
