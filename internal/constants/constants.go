package constants

// DateLayout is the wire format for violation dates.
const DateLayout = "2006-01-02"

// Pagination bounds for list endpoints.
const (
	MinPage         = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)
