package dto

// StatusEnvelope is the JSON shape returned by every handler:
// {status, message, data?}. Clients treat a call as successful only when the
// HTTP status is 2xx and Status is true.
type StatusEnvelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success builds a success envelope carrying data
func Success(data interface{}) StatusEnvelope {
	return StatusEnvelope{Status: true, Data: data}
}

// SuccessMessage builds a success envelope carrying only a message
func SuccessMessage(message string) StatusEnvelope {
	return StatusEnvelope{Status: true, Message: message}
}

// Failure builds a failure envelope with a user-facing message
func Failure(message string) StatusEnvelope {
	return StatusEnvelope{Status: false, Message: message}
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
