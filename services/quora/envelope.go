package quora

// Result is the uniform return value of every endpoint function.
// Exactly one of Data or Message+Details is populated, gated by Success.
// Local failures (before the network round trip) use the same shape with
// a 500 status instead of a second error type.
type Result struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// DecodeErrorDetails is the Details payload attached when the upstream
// body could not be parsed as JSON.
type DecodeErrorDetails struct {
	Error   string `json:"error"`
	RawData string `json:"raw_data"`
}

func successResult(status int, data any) Result {
	return Result{
		Success: true,
		Status:  status,
		Data:    data,
	}
}

func errorResult(status int, message string, details any) Result {
	return Result{
		Success: false,
		Status:  status,
		Message: message,
		Details: details,
	}
}
