package models

// Envelope wraps every JSON response.
type Envelope struct {
	Data   interface{}            `json:"data"`
	Meta   map[string]interface{} `json:"meta"`
	Errors []ErrorDetail          `json:"errors"`
}

// ErrorDetail describes one failure in an Envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
