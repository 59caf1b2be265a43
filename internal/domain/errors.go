package domain

type ErrorCode string

const (
	ErrorCodeInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrorCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrorCodeUsernameTaken ErrorCode = "USERNAME_TAKEN"
)

// DomainError is an expected failure that carries a code the HTTP layer maps to a status.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code ErrorCode, msg string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: msg,
	}
}
