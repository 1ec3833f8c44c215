package room

// ValidationError indicates a missing or invalid caller-supplied field
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

// NotFoundError indicates a room or participant ID that does not resolve
type NotFoundError string

// Error implements the error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// AuthorizationError indicates an action that requires the host role
type AuthorizationError string

// Error implements the error interface
func (e AuthorizationError) Error() string {
	return string(e)
}

// ExhaustedError indicates that no numbers remain to draw
type ExhaustedError string

// Error implements the error interface
func (e ExhaustedError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrHostNameRequired        ValidationError    = "host name is required"
	ErrParticipantNameRequired ValidationError    = "participant name is required"
	ErrCardSizeInvalid         ValidationError    = "card size is invalid"
	ErrNumberNotOnCard         ValidationError    = "number is not on your card"
	ErrRoomNotFound            NotFoundError      = "room not found"
	ErrParticipantNotFound     NotFoundError      = "participant not found"
	ErrHostRequired            AuthorizationError = "only the host can do that"
	ErrNumbersExhausted        ExhaustedError     = "all numbers have been drawn"
)
