package models

// Response shapes used by the swagger annotations.

type MessageResponse struct {
	Message string `json:"message" example:"Deleted successfully"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User  User   `json:"user"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"unexpected end of JSON input"`
}

type FieldError struct {
	Field string `json:"field" example:"title"`
	Tag   string `json:"tag" example:"required"`
	Msg   string `json:"message" example:"Field 'title' is required."`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Missing or invalid token"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Access denied. Admin role required"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Record not found"`
}
