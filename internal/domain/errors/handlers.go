package errors

// ErrorResponse is the JSON body of every failed API call.
// The top-level "error" key carries the user-facing message.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
