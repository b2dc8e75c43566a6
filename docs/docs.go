// Package docs holds the Swagger 2.0 document served under /swagger. It is
// kept by hand in swag's template layout; update it with the @Router
// annotations on the handlers.
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
        "/api/auth/callback": {
            "get": {
                "tags": ["auth"],
                "summary": "Google OAuth callback",
                "parameters": [
                    {"type": "string", "description": "authorization code", "name": "code", "in": "query"},
                    {"type": "string", "description": "anti-forgery state", "name": "state", "in": "query"}
                ],
                "responses": {
                    "302": {"description": "Found"}
                }
            }
        },
        "/api/auth/forgot-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Email a password reset link",
                "parameters": [
                    {"description": "email", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ForgotPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessString"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/auth/google": {
            "get": {
                "tags": ["auth"],
                "summary": "Start Google sign-in",
                "parameters": [
                    {"type": "string", "description": "page to open after sign-in", "name": "next", "in": "query"}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserLogin"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessSession"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessString"}}
                }
            }
        },
        "/api/auth/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Change the signed-in user's password",
                "parameters": [
                    {"description": "new password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdatePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessString"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/auth/reset-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Set a new password with a reset token",
                "parameters": [
                    {"description": "token and new password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ResetPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessString"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current session user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrentUser"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up with email and password",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UserSignup"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APISuccessSession"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Signed-in home: profile summary plus events, jobs and people",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessDashboard"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.APIOnboardingRequired"}}
                }
            }
        },
        "/api/directory": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Public, approved profiles filtered by free text and exact year/degree/branch.\nA failed load still answers 200 with an empty list and a message.",
                "produces": ["application/json"],
                "tags": ["directory"],
                "summary": "Search the alumni directory",
                "parameters": [
                    {"type": "string", "description": "free text", "name": "q", "in": "query"},
                    {"type": "integer", "description": "graduation year", "name": "year", "in": "query"},
                    {"type": "string", "description": "degree", "name": "degree", "in": "query"},
                    {"type": "string", "description": "branch", "name": "branch", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessDirectory"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.APIOnboardingRequired"}}
                }
            }
        },
        "/api/profile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces every editable field. approval is never changed here.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Save the onboarding / edit-profile form",
                "parameters": [
                    {"description": "profile", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.OnboardingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessProfile"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.APIValidationError"}}
                }
            }
        },
        "/api/profile/avatar": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Upload a profile picture",
                "parameters": [
                    {"type": "file", "description": "jpg/jpeg/png/webp, max 5MB", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessAvatar"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/api/profile/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Own profile with completeness and approval status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APISuccessProfile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        },
        "/ws/directory": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Client frames carry type search, year, degree or branch with a string value.\nServer frames: loading, results (a directory page plus input and filters), error.",
                "tags": ["directory"],
                "summary": "Live directory view over a websocket",
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.APIOnboardingRequired"}},
                    "426": {"description": "Upgrade Required", "schema": {"$ref": "#/definitions/dto.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIError": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "invalid input"}}
        },
        "dto.APIOnboardingRequired": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "onboarding required"},
                "redirect": {"type": "string", "example": "/onboarding"}
            }
        },
        "dto.APISuccessAvatar": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/dto.AvatarResponse"}}
        },
        "dto.APISuccessDashboard": {
            "type": "object",
            "properties": {"data": {"type": "object"}}
        },
        "dto.APISuccessDirectory": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/dto.DirectoryResponse"}}
        },
        "dto.APISuccessProfile": {
            "type": "object",
            "properties": {"data": {"type": "object"}}
        },
        "dto.APISuccessSession": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/dto.SessionResponse"}}
        },
        "dto.APISuccessString": {
            "type": "object",
            "properties": {"data": {"type": "string", "example": "ok"}}
        },
        "dto.APIValidationError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation failed"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.AvatarResponse": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "dto.CurrentUser": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}}
        },
        "dto.DirectoryProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "avatar_url": {"type": "string"},
                "graduation_year": {"type": "integer"},
                "degree": {"type": "string"},
                "branch": {"type": "string"},
                "employment_type": {"type": "string"},
                "company": {"type": "string"},
                "designation": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"}
            }
        },
        "dto.DirectoryResponse": {
            "type": "object",
            "properties": {
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/dto.DirectoryProfile"}},
                "total": {"type": "integer"},
                "years": {"type": "array", "items": {"type": "integer"}},
                "message": {"type": "string"},
                "empty_state": {"type": "string"}
            }
        },
        "dto.ForgotPasswordRequest": {
            "type": "object",
            "properties": {"email": {"type": "string", "example": "asha@example.com"}}
        },
        "dto.OnboardingRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string", "example": "Asha Rao"},
                "phone_e164": {"type": "string", "example": "+919800000000"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "avatar_url": {"type": "string"},
                "graduation_year": {"type": "integer", "example": 2018},
                "degree": {"type": "string", "example": "B.Tech"},
                "branch": {"type": "string", "example": "CSE"},
                "employment_type": {"type": "string", "example": "Employed"},
                "company": {"type": "string"},
                "designation": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "is_public": {"type": "boolean"},
                "can_contact": {"type": "boolean"},
                "has_consented_terms": {"type": "boolean"},
                "has_consented_privacy": {"type": "boolean"}
            }
        },
        "dto.ResetPasswordRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "new_password": {"type": "string"}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.CurrentUser"},
                "redirect": {"type": "string"}
            }
        },
        "dto.UpdatePasswordRequest": {
            "type": "object",
            "properties": {"new_password": {"type": "string"}}
        },
        "dto.UserLogin": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "asha@example.com"},
                "password": {"type": "string", "example": "correct-horse"}
            }
        },
        "dto.UserSignup": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "asha@example.com"},
                "password": {"type": "string", "example": "correct-horse"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer <JWT>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Alumni Network API",
	Description:      "Auth, onboarding, directory and dashboard endpoints for the alumni network.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
