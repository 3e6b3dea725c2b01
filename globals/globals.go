package globals

// Context keys
type ContextKey string

// EmailKey carries the verified subject email through the request context.
const EmailKey ContextKey = "email"

// CookieName is the credential cookie set by POST /session.
const CookieName = "token"
