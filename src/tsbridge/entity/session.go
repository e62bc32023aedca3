package entity

type contextKey string

// SessionContextKey is the context key under which the active session's UUID
// is stored for the duration of a request.
const SessionContextKey = contextKey("session-uuid")
