package response

// Fixed envelope messages.
const (
	MessageNotFound       = "Resource not found"
	MessageServerError    = "Internal server error"
	MessageHistoryCleared = "Chat history cleared"
)
