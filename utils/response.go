package utils

// APIResponse adalah format standar JSON untuk Frontend.
// Contoh sukses : { "status": true,  "message": "Login berhasil", "data": { ... } }
// Contoh gagal  : { "status": false, "message": "Gagal login",    "errors": "invalid credentials" }
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"` // bisa string / map / array tergantung kebutuhan
}

// BuildResponseSuccess digunakan saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed digunakan saat terjadi error (HTTP 400, 401, 403, dll).
// err berisi detail teknis, data tambahan biasanya nil.
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}
