// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/admin/user": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create user",
                "description": "Creates an account with a generated password and emails it to the user",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "New user",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateUserReq"
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.User"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get user",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "required": true,
                        "description": "User ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Update user",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "User fields",
                        "schema": {
                            "$ref": "#/definitions/handler.UpdateUserReq"
                        }
                    }
                ]
            }
        },
        "/api/admin/users": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.User"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List users",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches email or name",
                        "type": "string"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "required": false,
                        "description": "Sort column",
                        "type": "string"
                    },
                    {
                        "name": "desc",
                        "in": "query",
                        "required": false,
                        "description": "desc for descending",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/admin/logs": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.UserLog"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List audit log",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "user_id",
                        "in": "query",
                        "required": false,
                        "description": "Only entries by this user",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches the log text",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.LoginOutput"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.Message"
                        }
                    }
                },
                "summary": "Log in",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Credentials",
                        "schema": {
                            "$ref": "#/definitions/handler.LoginReq"
                        }
                    }
                ]
            }
        },
        "/api/auth/new-pass": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Set own password",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "New password",
                        "schema": {
                            "$ref": "#/definitions/handler.PasswordReq"
                        }
                    }
                ]
            }
        },
        "/api/auth/recover": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Start password recovery",
                "description": "Always answers ok, whether or not the address is known",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Account email",
                        "schema": {
                            "$ref": "#/definitions/handler.EmailReq"
                        }
                    }
                ]
            }
        },
        "/api/auth/recover_verify": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ResetTokenResp"
                        }
                    }
                },
                "summary": "Exchange a recovery code for a reset token",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Email and code",
                        "schema": {
                            "$ref": "#/definitions/handler.RecoverVerifyReq"
                        }
                    }
                ]
            }
        },
        "/api/auth/recover_password": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Reset the password with a reset token",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Reset token and new password",
                        "schema": {
                            "$ref": "#/definitions/handler.RecoverPasswordReq"
                        }
                    }
                ]
            }
        },
        "/api/auth/resend_verification_email": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Re-send the pending recovery code",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Account email",
                        "schema": {
                            "$ref": "#/definitions/handler.EmailReq"
                        }
                    }
                ]
            }
        },
        "/api/centros/areas": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Area"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List areas",
                "description": "all=true returns every active area as {id,nombre} without paging",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches nombre",
                        "type": "string"
                    },
                    {
                        "name": "all",
                        "in": "query",
                        "required": false,
                        "description": "Options projection",
                        "type": "boolean"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create area",
                "tags": [
                    "centros"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Nombre",
                        "schema": {
                            "$ref": "#/definitions/handler.AreaReq"
                        }
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Rename area",
                "tags": [
                    "centros"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "ID and nombre",
                        "schema": {
                            "$ref": "#/definitions/handler.AreaReq"
                        }
                    }
                ]
            }
        },
        "/api/centros/areas/{id}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Deactivate area",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Area ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/centros/departamentos": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.CatalogItem"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List departamentos",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/centros/municipios": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Municipio"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List municipios",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "departamento_id",
                        "in": "query",
                        "required": false,
                        "description": "Only municipios of this departamento",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/centros/niveles-escolaridad": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.CatalogItem"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List niveles de escolaridad",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/centros/centros": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Centro"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List centros",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches nombre, siglas or codigo",
                        "type": "string"
                    },
                    {
                        "name": "estatus",
                        "in": "query",
                        "required": false,
                        "description": "0 lists inactive centros",
                        "type": "integer"
                    },
                    {
                        "name": "all",
                        "in": "query",
                        "required": false,
                        "description": "Options projection",
                        "type": "boolean"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create centro",
                "tags": [
                    "centros"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Centro",
                        "schema": {
                            "$ref": "#/definitions/service.CentroInput"
                        }
                    }
                ]
            }
        },
        "/api/centros/centros/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.Centro"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get centro",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Centro ID",
                        "type": "integer"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Update centro",
                "tags": [
                    "centros"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Centro ID",
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Centro",
                        "schema": {
                            "$ref": "#/definitions/service.CentroInput"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Deactivate centro",
                "tags": [
                    "centros"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Centro ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/download/{file}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.Message"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.Message"
                        }
                    }
                },
                "summary": "Download a stored file by its relative path",
                "description": "Paths containing .. or starting with / are rejected",
                "tags": [
                    "files"
                ],
                "produces": [
                    "application/octet-stream"
                ],
                "parameters": [
                    {
                        "name": "file",
                        "in": "path",
                        "required": true,
                        "description": "Relative path, e.g. projects/<id>/plan.pdf",
                        "type": "string"
                    }
                ]
            }
        },
        "/files/{file}": {
            "get": {
                "responses": {
                    "302": {
                        "description": "Found"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.Message"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.Message"
                        }
                    }
                },
                "summary": "Redirect to a short-lived direct link for a stored file",
                "tags": [
                    "files"
                ],
                "parameters": [
                    {
                        "name": "file",
                        "in": "path",
                        "required": true,
                        "description": "Relative path",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/financing-source": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create financing source",
                "tags": [
                    "financing-source"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Name and description",
                        "schema": {
                            "$ref": "#/definitions/handler.FinancingSourceReq"
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.FinancingSource"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get financing source",
                "tags": [
                    "financing-source"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "required": true,
                        "description": "Financing source ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Update financing source",
                "tags": [
                    "financing-source"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "ID, name and description",
                        "schema": {
                            "$ref": "#/definitions/handler.FinancingSourceReq"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Delete financing source",
                "description": "Refused while any project still references the source",
                "tags": [
                    "financing-source"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "ID",
                        "schema": {
                            "$ref": "#/definitions/handler.FinancingSourceReq"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/financing-sources": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.FinancingSource"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List financing sources",
                "description": "all=true returns every source as {id,name} ordered by name, without paging",
                "tags": [
                    "financing-source"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches name or description",
                        "type": "string"
                    },
                    {
                        "name": "all",
                        "in": "query",
                        "required": false,
                        "description": "Options projection",
                        "type": "boolean"
                    }
                ]
            }
        },
        "/api/centros/instructores": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Instructor"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List instructores",
                "tags": [
                    "instructores"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "centro_id",
                        "in": "query",
                        "required": false,
                        "description": "Only this centro",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches nombre, apellido or identidad",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create instructor",
                "tags": [
                    "instructores"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Instructor",
                        "schema": {
                            "$ref": "#/definitions/service.InstructorInput"
                        }
                    }
                ]
            }
        },
        "/api/centros/instructores/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.Instructor"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get instructor",
                "tags": [
                    "instructores"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Instructor ID",
                        "type": "integer"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Update instructor",
                "tags": [
                    "instructores"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Instructor ID",
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Instructor",
                        "schema": {
                            "$ref": "#/definitions/service.InstructorInput"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Deactivate instructor",
                "tags": [
                    "instructores"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Instructor ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/centros/instructores/{id}/cv": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.CVResp"
                        }
                    }
                },
                "summary": "Upload or replace an instructor's CV",
                "tags": [
                    "instructores"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Instructor ID",
                        "type": "integer"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "CV",
                        "type": "file"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Remove an instructor's CV",
                "tags": [
                    "instructores"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Instructor ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/centros/estudiantes": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Estudiante"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List estudiantes",
                "tags": [
                    "estudiantes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "centro_id",
                        "in": "query",
                        "required": false,
                        "description": "Only this centro",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches nombre, apellido or identidad",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create estudiante",
                "description": "identidad is unique per centro",
                "tags": [
                    "estudiantes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Estudiante",
                        "schema": {
                            "$ref": "#/definitions/service.EstudianteInput"
                        }
                    }
                ]
            }
        },
        "/api/centros/estudiantes/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.Estudiante"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get estudiante",
                "tags": [
                    "estudiantes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Estudiante ID",
                        "type": "integer"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Update estudiante",
                "tags": [
                    "estudiantes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Estudiante ID",
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Estudiante",
                        "schema": {
                            "$ref": "#/definitions/service.EstudianteInput"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Deactivate estudiante",
                "tags": [
                    "estudiantes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Estudiante ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/centros/estudiantes/{id}/cv": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.CVResp"
                        }
                    }
                },
                "summary": "Upload or replace an estudiante's CV",
                "tags": [
                    "estudiantes"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Estudiante ID",
                        "type": "integer"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "CV",
                        "type": "file"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Remove an estudiante's CV",
                "tags": [
                    "estudiantes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Estudiante ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/centros/cursos": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Curso"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List cursos",
                "tags": [
                    "cursos"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "centro_id",
                        "in": "query",
                        "required": false,
                        "description": "Only this centro",
                        "type": "integer"
                    },
                    {
                        "name": "area_id",
                        "in": "query",
                        "required": false,
                        "description": "Only this area",
                        "type": "integer"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches nombre or codigo",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Create curso",
                "tags": [
                    "cursos"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Curso",
                        "schema": {
                            "$ref": "#/definitions/service.CursoInput"
                        }
                    }
                ]
            }
        },
        "/api/centros/cursos/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.Curso"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get curso",
                "tags": [
                    "cursos"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Curso ID",
                        "type": "integer"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Update curso",
                "tags": [
                    "cursos"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Curso ID",
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Curso",
                        "schema": {
                            "$ref": "#/definitions/service.CursoInput"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Deactivate curso",
                "tags": [
                    "cursos"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Curso ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/supervisor/projects": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.Project"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List projects",
                "description": "Rows carry financed_amount and total_expenses in cents",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "ACTIVE (default) or ARCHIVED",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Matches name or description",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/projects/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.Project"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Get project",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Delete project",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/projects/{id}/archive": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Archive project",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/projects/{id}/accomplishments": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Replace project accomplishments",
                "tags": [
                    "project"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Accomplishments",
                        "schema": {
                            "$ref": "#/definitions/handler.AccomplishmentsReq"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/projects/{id}/agents": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.UserOption"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List agents assigned to a project",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Replace agents assigned to a project",
                "tags": [
                    "project"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "USER ids",
                        "schema": {
                            "$ref": "#/definitions/handler.AgentsReq"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/projects/{id}/logs": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.ListResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.ProjectLog"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List a project's audit trail",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": true,
                        "description": "Page size, 1-100",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/supervisor/agents": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.UserOption"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List USER accounts that can be assigned to projects",
                "tags": [
                    "project"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/supervisor/project/wizard/step1": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Step1Resp"
                        }
                    }
                },
                "summary": "Create or update a project's core data",
                "description": "Updates when project_id is set, creates otherwise",
                "tags": [
                    "wizard"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Project core data",
                        "schema": {
                            "$ref": "#/definitions/handler.Step1Req"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/wizard/step2/{projectId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.ProjectFinancingSource"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List a project's financing sources",
                "tags": [
                    "wizard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Replace a project's financing sources",
                "description": "The whole batch is validated before anything is written",
                "tags": [
                    "wizard"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Items",
                        "schema": {
                            "$ref": "#/definitions/handler.FinancingItemsReq"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/wizard/step3/{projectId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.ProjectDonation"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List a project's donations",
                "tags": [
                    "wizard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Replace a project's donations",
                "tags": [
                    "wizard"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Items",
                        "schema": {
                            "$ref": "#/definitions/handler.DonationItemsReq"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/wizard/step4/{projectId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.ProjectExpense"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List a project's expenses",
                "tags": [
                    "wizard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Replace a project's expenses",
                "tags": [
                    "wizard"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Items",
                        "schema": {
                            "$ref": "#/definitions/handler.ExpenseItemsReq"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/wizard/step5/{projectId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/serializer.DataResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.ProjectFile"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "List a project's files",
                "tags": [
                    "wizard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.UploadResp"
                        }
                    }
                },
                "summary": "Upload one project file",
                "description": "Allowed extensions: pdf, docx, xlsx, jpg, jpeg, png",
                "tags": [
                    "wizard"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "File",
                        "type": "file"
                    },
                    {
                        "name": "filename",
                        "in": "formData",
                        "required": false,
                        "description": "Stored name, without extension",
                        "type": "string"
                    },
                    {
                        "name": "description",
                        "in": "formData",
                        "required": false,
                        "description": "Description",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/project/wizard/step5/{projectId}/{fileId}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Delete one project file",
                "tags": [
                    "wizard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "fileId",
                        "in": "path",
                        "required": true,
                        "description": "File ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/file/{fileId}/download": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "summary": "Download a project file as an attachment",
                "tags": [
                    "wizard"
                ],
                "produces": [
                    "application/octet-stream"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "fileId",
                        "in": "path",
                        "required": true,
                        "description": "File ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/financing-source": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Add one financing source to a project",
                "tags": [
                    "project-detail"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Item",
                        "schema": {
                            "$ref": "#/definitions/service.FinancingItemInput"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/financing-source/{id}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Remove one financing source from a project",
                "tags": [
                    "project-detail"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Row ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/donation": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Add one donation to a project",
                "tags": [
                    "project-detail"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Item",
                        "schema": {
                            "$ref": "#/definitions/service.DonationItemInput"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/donation/{id}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Remove one donation from a project",
                "tags": [
                    "project-detail"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Row ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/expense": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Add one expense to a project",
                "tags": [
                    "project-detail"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Item",
                        "schema": {
                            "$ref": "#/definitions/service.ExpenseItemInput"
                        }
                    }
                ]
            }
        },
        "/api/supervisor/project/{projectId}/expense/{id}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.OKResponse"
                        }
                    }
                },
                "summary": "Remove one expense from a project",
                "tags": [
                    "project-detail"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "projectId",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Row ID",
                        "type": "string"
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.AccomplishmentsReq": {
            "type": "object",
            "properties": {
                "accomplishments": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                }
            }
        },
        "handler.AgentsReq": {
            "type": "object",
            "properties": {
                "user_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.AreaReq": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                }
            }
        },
        "handler.CVResp": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "file": {
                    "type": "string"
                }
            }
        },
        "handler.CreateUserReq": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "handler.DonationItemsReq": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.DonationItemInput"
                    }
                }
            }
        },
        "handler.EmailReq": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "handler.ExpenseItemsReq": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.ExpenseItemInput"
                    }
                }
            }
        },
        "handler.FinancingItemsReq": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.FinancingItemInput"
                    }
                }
            }
        },
        "handler.FinancingSourceReq": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handler.LoginReq": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.PasswordReq": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.RecoverPasswordReq": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.RecoverVerifyReq": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                }
            }
        },
        "handler.ResetTokenResp": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                }
            }
        },
        "handler.Step1Req": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "objectives": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "accomplishments": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "project_category": {
                    "type": "string"
                },
                "assigned_agent_id": {
                    "type": "string"
                }
            }
        },
        "handler.Step1Resp": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "handler.UpdateUserReq": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "disabled": {
                    "type": "string"
                }
            }
        },
        "handler.UploadResp": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "file_id": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "model.Area": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "estatus": {
                    "type": "object"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.CatalogItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                }
            }
        },
        "model.Centro": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "siglas": {
                    "type": "string"
                },
                "codigo": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "municipio_id": {
                    "type": "integer"
                },
                "direccion": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "nombre_director": {
                    "type": "string"
                },
                "estatus": {
                    "type": "object"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "departamento_nombre": {
                    "type": "string"
                },
                "municipio_nombre": {
                    "type": "string"
                }
            }
        },
        "model.Curso": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "centro_id": {
                    "type": "integer"
                },
                "area_id": {
                    "type": "integer"
                },
                "codigo": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "duracion_horas": {
                    "type": "integer"
                },
                "estatus": {
                    "type": "object"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "centro_nombre": {
                    "type": "string"
                },
                "area_nombre": {
                    "type": "string"
                }
            }
        },
        "model.Estudiante": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "centro_id": {
                    "type": "integer"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "municipio_id": {
                    "type": "integer"
                },
                "identidad": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "apellido": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string",
                    "format": "date-time"
                },
                "telefono": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "archivo": {
                    "type": "string"
                },
                "estatus": {
                    "type": "object"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "centro_nombre": {
                    "type": "string"
                },
                "nivel_escolaridad_id": {
                    "type": "integer"
                }
            }
        },
        "model.FinancingSource": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.Instructor": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "centro_id": {
                    "type": "integer"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "municipio_id": {
                    "type": "integer"
                },
                "identidad": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "apellido": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string",
                    "format": "date-time"
                },
                "telefono": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "archivo": {
                    "type": "string"
                },
                "estatus": {
                    "type": "object"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "centro_nombre": {
                    "type": "string"
                },
                "especialidad": {
                    "type": "string"
                }
            }
        },
        "model.Municipio": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "codigo": {
                    "type": "string"
                }
            }
        },
        "model.Project": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "objectives": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "accomplishments": {
                    "type": "object"
                },
                "project_status": {
                    "type": "string"
                },
                "project_category": {
                    "type": "string"
                },
                "assigned_agent_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                },
                "financed_amount": {
                    "type": "integer"
                },
                "total_expenses": {
                    "type": "integer"
                }
            }
        },
        "model.ProjectDonation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "amount": {
                    "type": "integer"
                },
                "donation_type": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.ProjectExpense": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "amount": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.ProjectFile": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "file": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.ProjectFinancingSource": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "financing_source_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "amount": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                },
                "financing_source_name": {
                    "type": "string"
                }
            }
        },
        "model.ProjectLog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "user_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "log": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_name": {
                    "type": "string"
                }
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "disabled": {
                    "type": "boolean"
                },
                "first_login": {
                    "type": "boolean"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.UserLog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "user_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "log": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "entity_type": {
                    "type": "string"
                },
                "entity_id": {
                    "type": "string"
                },
                "details": {
                    "type": "object"
                },
                "created_dt": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_name": {
                    "type": "string"
                }
            }
        },
        "model.UserOption": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "serializer.DataResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                }
            }
        },
        "serializer.ListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "serializer.Message": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "serializer.OKResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "id": {
                    "type": "object"
                }
            }
        },
        "service.CentroInput": {
            "type": "object",
            "properties": {
                "siglas": {
                    "type": "string"
                },
                "codigo": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "municipio_id": {
                    "type": "integer"
                },
                "direccion": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "nombre_director": {
                    "type": "string"
                }
            }
        },
        "service.CursoInput": {
            "type": "object",
            "properties": {
                "centro_id": {
                    "type": "integer"
                },
                "area_id": {
                    "type": "integer"
                },
                "codigo": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "duracion_horas": {
                    "type": "integer"
                }
            }
        },
        "service.DonationItemInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer",
                    "description": "cents"
                },
                "donation_type": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "service.EstudianteInput": {
            "type": "object",
            "properties": {
                "centro_id": {
                    "type": "integer"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "municipio_id": {
                    "type": "integer"
                },
                "identidad": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "apellido": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "nivel_escolaridad_id": {
                    "type": "integer"
                }
            }
        },
        "service.ExpenseItemInput": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer",
                    "description": "cents"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "service.FinancingItemInput": {
            "type": "object",
            "properties": {
                "financing_source_id": {
                    "type": "string"
                },
                "amount": {
                    "type": "integer",
                    "description": "cents"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "service.InstructorInput": {
            "type": "object",
            "properties": {
                "centro_id": {
                    "type": "integer"
                },
                "departamento_id": {
                    "type": "integer"
                },
                "municipio_id": {
                    "type": "integer"
                },
                "identidad": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "apellido": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "especialidad": {
                    "type": "string"
                }
            }
        },
        "service.LoginOutput": {
            "type": "object",
            "properties": {
                "session": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "first_login": {
                    "type": "boolean"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token, e.g. \"Bearer eyJ...\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CADERH API",
	Description:      "Administrative API for CADERH projects, financing and training centres.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
