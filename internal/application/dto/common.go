package dto

// APIResponse envelope padrão de sucesso: {status: true, data, message}.
type APIResponse struct {
	Status  bool   `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse corpo de erro HTTP: {status: false, message}.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// OK monta uma resposta de sucesso.
func OK(data any, message string) APIResponse {
	return APIResponse{Status: true, Data: data, Message: message}
}

// Fail monta uma resposta de erro.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Status: false, Message: message}
}
