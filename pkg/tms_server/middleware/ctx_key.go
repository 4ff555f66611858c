package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	REQUESTER = MiddleWareContextKey("requester") // The context value is a string holding the subject of the bearer token.
)
