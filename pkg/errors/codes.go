package errors

// Error codes shared by every service in the repository.
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"
	ErrNotImplemented  = "NOT_IMPLEMENTED"

	// Payment flow
	ErrInvalidState = "INVALID_STATE"
	ErrGateway      = "GATEWAY_ERROR"
	ErrPersistence  = "PERSISTENCE_ERROR"
)
