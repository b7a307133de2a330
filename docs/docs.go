// Package docs registers the OpenAPI description served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"summary": "Liveness check", "responses": {"200": {"description": "OK"}}}},
        "/auth/register": {"post": {"summary": "Create a candidate or manager account", "responses": {"201": {"description": "Created"}, "409": {"description": "Email taken"}}}},
        "/auth/login": {"post": {"summary": "Sign in and receive a JWT", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}},
        "/auth/logout": {"post": {"summary": "Clear the session cookie", "responses": {"200": {"description": "OK"}}}},
        "/users/me": {"get": {"summary": "Current profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/catalog/{source}/categories": {"get": {"summary": "List quiz categories of a source", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/catalog/{source}/categories/{categoryID}/domains": {"get": {"summary": "List domains of a category", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/ai-quiz": {"post": {"summary": "Generate a quiz for a topic", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "429": {"description": "Rate limited"}, "502": {"description": "Malformed model output"}}}},
        "/ai-quiz/feedback": {"post": {"summary": "Generate feedback for a score", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/ai-quiz/status": {"get": {"summary": "Whether an LLM provider is configured", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/quiz-sessions": {"post": {"summary": "Start a quiz session", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/quiz-sessions/{id}": {"get": {"summary": "Get a quiz session", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/quiz-sessions/{id}/category": {"post": {"summary": "Select a category", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Invalid transition"}}}},
        "/quiz-sessions/{id}/domain": {"post": {"summary": "Select a domain and load its questions", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Generation in progress"}}}},
        "/quiz-sessions/{id}/answers": {"post": {"summary": "Answer the current question", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/quiz-sessions/{id}/back": {"post": {"summary": "Go back one step", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/quiz-sessions/{id}/retake": {"post": {"summary": "Retake the same quiz", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/quiz-results": {"get": {"summary": "List own quiz results", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/quiz-results/{id}": {"get": {"summary": "Get a quiz result", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/candidates": {"get": {"summary": "Search candidates", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/candidates/me": {
            "get": {"summary": "Own candidate details", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"summary": "Save candidate details", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "422": {"description": "Step incomplete"}}}
        },
        "/candidates/me/progress": {"get": {"summary": "Profile completion steps", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/candidates/me/accessibility": {
            "get": {"summary": "Accessibility preferences", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"summary": "Update accessibility preferences", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/candidates/{candidateID}": {"get": {"summary": "Get a candidate", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/candidates/{candidateID}/remark": {"put": {"summary": "Rate a candidate", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/candidates/{candidateID}/remarks": {"get": {"summary": "List remarks on a candidate", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/reports": {"get": {"summary": "List candidate reports", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/reports/summary": {"get": {"summary": "Report summary", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/reports/export.csv": {"get": {"summary": "Export reports as CSV", "produces": ["text/csv"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/reports/{candidateID}/share": {"post": {"summary": "Share a report to a platform", "security": [{"BearerAuth": []}], "responses": {"202": {"description": "Accepted"}}}},
        "/analytics/dashboard": {"get": {"summary": "Manager dashboard", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/resumes/me": {
            "get": {"summary": "Stored resume", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not generated"}}},
            "post": {"summary": "Generate the resume", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "422": {"description": "Profile incomplete"}}}
        },
        "/resumes/me/download": {"get": {"summary": "Download the resume as HTML", "produces": ["text/html"], "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/ws/notifications": {"get": {"summary": "Notification websocket", "security": [{"BearerAuth": []}], "responses": {"101": {"description": "Switching protocols"}}}},
        "/assistant/welcome": {"get": {"summary": "Assistant welcome message for the caller's role", "responses": {"200": {"description": "OK"}}}},
        "/assistant/messages": {"post": {"summary": "Ask the help assistant a question", "responses": {"200": {"description": "OK"}, "400": {"description": "Blank message"}}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NeuroBridge API",
	Description:      "Adaptive assessment and candidate management API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
