package constants

// Message categories, used as CSS classes on result pages
const (
	CategorySuccess = "success"
	CategoryInfo    = "info"
	CategoryError   = "error"
)

// Session keys
const (
	SessionName        = "attendance_session"
	SessionKeyLoggedIn = "logged_in"
	SessionKeyUsername = "username"
)

// Context keys
const (
	ContextKeyRequestID = "requestId"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "03:04:05 PM"
)

// Store drivers
const (
	StoreSheets   = "sheets"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)
