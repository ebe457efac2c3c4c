package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "APS Console API",
        "description": "Session-scoped console for the APS production scheduling backend",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Session",
            "description": "Console session lifecycle and confirmations"
        },
        {
            "name": "Calendar",
            "description": "Calendar navigation"
        },
        {
            "name": "Panels",
            "description": "Equipment checklist and product legend"
        },
        {
            "name": "Events",
            "description": "Calendar events and the detail popup"
        },
        {
            "name": "Upload",
            "description": "Sales plan upload"
        },
        {
            "name": "Schedule",
            "description": "Schedule generation, export and print"
        },
        {
            "name": "Downloads",
            "description": "Generated files"
        },
        {
            "name": "Observability",
            "description": "Health and metrics"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/downloads/{token}": {
            "get": {
                "tags": [
                    "Downloads"
                ],
                "summary": "Download an exported file",
                "produces": [
                    "application/octet-stream"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Signed download token"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/session": {
            "post": {
                "tags": [
                    "Session"
                ],
                "summary": "Open a console session",
                "description": "Loads equipment, products and the schedule.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Session"
                ],
                "summary": "Close the console session",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/state": {
            "get": {
                "tags": [
                    "Session"
                ],
                "summary": "Current session state",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/confirmations/{token}": {
            "post": {
                "tags": [
                    "Session"
                ],
                "summary": "Answer a pending confirmation",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Confirmation token"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ResolveConfirmationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "202": {
                        "description": "Confirmation pending",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/calendar/options": {
            "get": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Calendar widget configuration",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/view": {
            "post": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Switch between day, week and month",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ChangeViewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/calendar/prev": {
            "post": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Move the calendar back",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/calendar/next": {
            "post": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Move the calendar forward",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/calendar/today": {
            "post": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Jump to today",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/equipment/all": {
            "post": {
                "tags": [
                    "Panels"
                ],
                "summary": "Check or uncheck every equipment",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CheckedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/equipment/{id}": {
            "post": {
                "tags": [
                    "Panels"
                ],
                "summary": "Check or uncheck one equipment",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Equipment ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CheckedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/products/search": {
            "post": {
                "tags": [
                    "Panels"
                ],
                "summary": "Filter the product legend",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SearchProductsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/events": {
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Select a time slot",
                "description": "Adds a local, unsaved event to the calendar.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateEventRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/events/selected/delete": {
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Delete the event shown in the popup",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Confirmation pending",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/events/selected/edit": {
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Edit the event shown in the popup",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/events/{id}/click": {
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Open the detail popup of an event",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Event ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/events/{id}": {
            "patch": {
                "tags": [
                    "Events"
                ],
                "summary": "Drag or resize an event",
                "description": "The backend decides whether the change sticks.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Event ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/MoveEventRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Events"
                ],
                "summary": "Request deletion of an event",
                "description": "The batch is deleted once the confirmation is accepted.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Event ID"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Confirmation pending",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/popup/close": {
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Close the detail popup",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/clicks": {
            "post": {
                "tags": [
                    "Events"
                ],
                "summary": "Report a page click",
                "description": "Closes the popup when the click landed outside it.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GlobalClickRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/upload/modal": {
            "post": {
                "tags": [
                    "Upload"
                ],
                "summary": "Open the upload modal",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Upload"
                ],
                "summary": "Close the upload modal and drop the staged file",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/upload/dragover": {
            "post": {
                "tags": [
                    "Upload"
                ],
                "summary": "Highlight the drop zone",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/upload/file": {
            "post": {
                "tags": [
                    "Upload"
                ],
                "summary": "Stage a sales plan",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "type": "file",
                        "required": true,
                        "description": "Sales plan (.xlsx or .xls)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Upload"
                ],
                "summary": "Drop the staged file",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/upload": {
            "post": {
                "tags": [
                    "Upload"
                ],
                "summary": "Upload the staged sales plan",
                "description": "On success a confirmation asks whether to generate a schedule now.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Confirmation pending",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Backend error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/schedule/generate": {
            "post": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Generate a schedule from the uploaded sales plan",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Backend error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/schedule/reload": {
            "post": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Reload the schedule from the backend",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Backend error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/schedule/export": {
            "post": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Export the schedule",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "enum": [
                            "excel",
                            "csv"
                        ],
                        "description": "Export format, excel by default"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Backend error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/ui/schedule/print": {
            "post": {
                "tags": [
                    "Schedule"
                ],
                "summary": "Render a printable schedule",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-Session-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "Session ID (or aps_session cookie)"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "enum": [
                            "pdf",
                            "csv"
                        ],
                        "description": "Print format, pdf by default"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "ChangeViewRequest": {
            "type": "object",
            "required": [
                "view"
            ],
            "properties": {
                "view": {
                    "type": "string",
                    "enum": [
                        "day",
                        "week",
                        "month"
                    ]
                }
            }
        },
        "CheckedRequest": {
            "type": "object",
            "required": [
                "checked"
            ],
            "properties": {
                "checked": {
                    "type": "boolean"
                }
            }
        },
        "SearchProductsRequest": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string"
                }
            }
        },
        "CreateEventRequest": {
            "type": "object",
            "required": [
                "calendarId",
                "start",
                "end"
            ],
            "properties": {
                "calendarId": {
                    "type": "string"
                },
                "start": {
                    "type": "string",
                    "format": "date-time"
                },
                "end": {
                    "type": "string",
                    "format": "date-time"
                },
                "isAllday": {
                    "type": "boolean"
                }
            }
        },
        "MoveEventRequest": {
            "type": "object",
            "properties": {
                "calendarId": {
                    "type": "string"
                },
                "start": {
                    "type": "string",
                    "format": "date-time"
                },
                "end": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "GlobalClickRequest": {
            "type": "object",
            "properties": {
                "insidePopup": {
                    "type": "boolean"
                }
            }
        },
        "ResolveConfirmationRequest": {
            "type": "object",
            "required": [
                "accept"
            ],
            "properties": {
                "accept": {
                    "type": "boolean"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
