package dto

// Error kinds carried in ErrorResponse.Kind.
const (
	KindValidation         = "ValidationError"
	KindConflict           = "Conflict"
	KindInvalidCredentials = "InvalidCredentials"
	KindUnauthorized       = "Unauthorized"
	KindNotFound           = "NotFound"
	KindRateLimited        = "RateLimited"
	KindInternal           = "InternalError"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Driver    string `json:"driver"`
}
