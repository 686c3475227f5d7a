package clientsdk

// ============================================================================
// Client Record
// ============================================================================

// Client is a client record as exchanged with the remote API.
// SharedKey is the only identity; the remote system enforces its uniqueness.
type Client struct {
	// SharedKey is the business-unique identifier of the client
	SharedKey string `json:"sharedKey"`

	// Name is the display name of the client
	Name string `json:"name"`

	// Email must look like local@domain.tld
	Email string `json:"email"`

	// Phone is optional
	Phone string `json:"phone"`

	// StartDate is the service start date, kept as the string the user entered
	StartDate string `json:"startDate"`

	// EndDate is the service end date, kept as the string the user entered
	EndDate string `json:"endDate"`
}

// ============================================================================
// Response Envelope
// ============================================================================

// Response codes carried in ResponseData.RespondeCode. Only CodeAlreadyExists
// is interpreted by the SDK; the rest are informational.
const (
	CodeOK              = "00"
	CodeAlreadyExists   = "01"
	CodeInvalidRequest  = "02"
	CodeNotFound        = "03"
	CodeTooManyRequests = "04"
	CodeServerError     = "99"
)

// ResponseData is the application-level status block the API nests under "data".
// The field name keeps the API's spelling.
type ResponseData struct {
	RespondeCode string `json:"respondeCode"`
	Message      string `json:"message,omitempty"`
}

// ErrorResponse is the body of a failed API call.
// This is used internally for parsing HTTP error responses.
type ErrorResponse struct {
	Data *ResponseData `json:"data"`
}

// CreateClientResponse is the acknowledgement returned by POST /createClient.
// Callers should treat it as opaque.
type CreateClientResponse struct {
	Message string        `json:"message,omitempty"`
	Data    *ResponseData `json:"data,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of individual dependencies (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
