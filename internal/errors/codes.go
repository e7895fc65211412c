package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeCanceled        Code = "CANCELED"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeAborted         Code = "ABORTED"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Retryable reports whether a fresh attempt with a different seed can succeed
func (c Code) Retryable() bool {
	return c == CodeAborted
}
