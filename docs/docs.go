// Package docs holds the OpenAPI 2.0 document served at /api/v1/swagger.
// The document is maintained by hand alongside the handler annotations.
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
        "/check-roll": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Roster"],
                "summary": "Check a roll number",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/roster.CheckRollRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Student"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/participants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "Get participants",
                "parameters": [
                    {"type": "string", "name": "uid", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Participant"}}},
                    "404": {"description": "Not Found"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "Register a participant",
                "parameters": [
                    {"name": "participant", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Participant"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Participant"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Participant"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Ping the API",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stats"],
                "summary": "Get registration statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.StatsResponse"}}
                }
            }
        },
        "/teams": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Get teams",
                "parameters": [
                    {"type": "integer", "name": "team_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Team"}}},
                    "404": {"description": "Not Found"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Create a team",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/teams.CreateTeamRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Team"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/teams/{team_id}/evaluations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Submit a judge evaluation",
                "parameters": [
                    {"type": "integer", "name": "team_id", "in": "path", "required": true},
                    {"type": "string", "name": "level", "in": "query", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/teams.EvaluationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Team"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/teams/{team_id}/qualify": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Update team qualification",
                "parameters": [
                    {"type": "integer", "name": "team_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/teams.QualificationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Team"}},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "models.CategoryScore": {
            "type": "object",
            "properties": {
                "subcriteria": {"type": "object", "additionalProperties": {"type": "number"}},
                "total": {"type": "number"}
            }
        },
        "models.Evaluation": {
            "type": "object",
            "properties": {
                "judge_id": {"type": "string"},
                "rubric_scores": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.CategoryScore"}},
                "total_score": {"type": "number"},
                "feedback": {"type": "string"}
            }
        },
        "models.Participant": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "firebase_uid": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "college": {"type": "string"},
                "branch": {"type": "string"},
                "year": {"type": "integer"},
                "rollnumber": {"type": "string"},
                "is_kiet": {"type": "boolean"},
                "course": {"type": "string"},
                "status": {"type": "string"},
                "team_id": {"type": "integer"},
                "role_in_team": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "team_id": {"type": "integer"},
                "team_name": {"type": "string"},
                "leader": {"$ref": "#/definitions/models.TeamMember"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/models.TeamMember"}},
                "team_size": {"type": "integer"},
                "category_id": {"type": "integer"},
                "category_name": {"type": "string"},
                "problem_statement": {"type": "string"},
                "department": {"type": "string"},
                "qualified_for_institute": {"type": "boolean"},
                "departmental_scores": {"type": "array", "items": {"$ref": "#/definitions/models.Evaluation"}},
                "departmental_final_score": {"type": "number"},
                "college_scores": {"type": "array", "items": {"$ref": "#/definitions/models.Evaluation"}},
                "college_final_score": {"type": "number"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.TeamMember": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "name": {"type": "string"},
                "rollnumber": {"type": "string"},
                "branch": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "roster.CheckRollRequest": {
            "type": "object",
            "required": ["rollnumber"],
            "properties": {
                "rollnumber": {"type": "string"}
            }
        },
        "services.Student": {
            "type": "object",
            "properties": {
                "rollnumber": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "branch": {"type": "string"},
                "course": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "teams.CreateTeamRequest": {
            "type": "object",
            "properties": {
                "team_name": {"type": "string"},
                "leader": {"$ref": "#/definitions/teams.MemberPayload"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/teams.MemberPayload"}},
                "team_size": {"type": "integer"},
                "category_id": {"type": "integer"},
                "category_name": {"type": "string"},
                "problem_statement": {"type": "string"},
                "department": {"type": "string"}
            }
        },
        "teams.EvaluationRequest": {
            "type": "object",
            "required": ["judge_id"],
            "properties": {
                "judge_id": {"type": "string"},
                "rubric_scores": {
                    "type": "object",
                    "additionalProperties": {"type": "object", "additionalProperties": {"type": "number"}}
                },
                "feedback": {"type": "string"}
            }
        },
        "teams.MemberPayload": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "name": {"type": "string"},
                "rollnumber": {"type": "string"},
                "branch": {"type": "string"}
            }
        },
        "teams.QualificationRequest": {
            "type": "object",
            "properties": {
                "qualified_for_institute": {"type": "boolean"}
            }
        },
        "v1.StatsResponse": {
            "type": "object",
            "properties": {
                "total_teams": {"type": "integer"},
                "total_participants": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Innotech Hackathon API",
	Description:      "Registration and team formation API for the Innotech hackathon",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
