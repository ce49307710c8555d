package contextkeys

// ContextKey is the type used for values placed into request contexts.
// A dedicated type avoids collisions with keys set by other packages.
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
)
