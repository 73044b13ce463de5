package dto

// APIResponse sobre estándar de la API: {status, message, data|error}.
type APIResponse struct {
	Status  string      `json:"status"` // "success" | "error"
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody detalle de error con información suficiente para corregir y reenviar.
type ErrorBody struct {
	Code   string      `json:"code"`
	Detail interface{} `json:"detail,omitempty"`
}

// Success construye la envolvente de éxito.
func Success(message string, data interface{}) APIResponse {
	return APIResponse{Status: "success", Message: message, Data: data}
}

// Fail construye la envolvente de error.
func Fail(code, message string, detail interface{}) APIResponse {
	return APIResponse{Status: "error", Message: message, Error: &ErrorBody{Code: code, Detail: detail}}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 500 {
		p.Limit = 500
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
