package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidQuery       = "INVALID_QUERY"
	ErrCodeInvalidRange       = "INVALID_RANGE"
	ErrCodeEmptyPopulation    = "EMPTY_POPULATION"
	ErrCodeEmptyReferenceList = "EMPTY_REFERENCE_LIST"
	ErrCodeCustomerNotFound   = "CUSTOMER_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeSeedingDisabled    = "SEEDING_DISABLED"
	ErrCodeExportFailed       = "EXPORT_FAILED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidRange       = NewDomainError(ErrCodeInvalidRange, "Range lower bound exceeds upper bound")
	ErrEmptyPopulation    = NewDomainError(ErrCodeEmptyPopulation, "Cannot generate orders without customers")
	ErrEmptyReferenceList = NewDomainError(ErrCodeEmptyReferenceList, "Reference list is empty")
	ErrCustomerNotFound   = NewDomainError(ErrCodeCustomerNotFound, "Customer not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrSeedingDisabled    = NewDomainError(ErrCodeSeedingDisabled, "Database seeding is not configured")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrInvalidToken       = NewDomainError(ErrCodeUnauthorised, "Invalid or expired token")
	ErrUnknownMetric      = NewDomainError(ErrCodeInvalidQuery, "Metric must be users, orders or revenue")
	ErrUnknownRanking     = NewDomainError(ErrCodeInvalidQuery, "Ranking must be spend or loyalty")
)
