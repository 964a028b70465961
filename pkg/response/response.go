package response

// ErrorResponse is the envelope rendered for failed requests.
type ErrorResponse struct {
	Status  string      `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(code, message string, data interface{}) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Data:    data,
	}
}
