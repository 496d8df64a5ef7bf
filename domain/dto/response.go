package dto

// Res is the result-with-message envelope every UI-facing operation returns.
type Res struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Warning string      `json:"warning,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
