package errors

import "fmt"

type ErrorCode int

const (
	ErrorCodeInvalidInput ErrorCode = iota + 1
	ErrorCodeOutOfRange
	ErrorCodeEncodingTooLong
	ErrorCodeInvalidEncoding
	ErrorCodeInvalidToken
	ErrorCodeValidation
	ErrorCodeInternal
)

var codeNames = map[ErrorCode]string{
	ErrorCodeInvalidInput:    "INVALID_INPUT",
	ErrorCodeOutOfRange:      "OUT_OF_RANGE",
	ErrorCodeEncodingTooLong: "ENCODING_TOO_LONG",
	ErrorCodeInvalidEncoding: "INVALID_ENCODING",
	ErrorCodeInvalidToken:    "INVALID_TOKEN",
	ErrorCodeValidation:      "VALIDATION_FAILED",
	ErrorCodeInternal:        "INTERNAL",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrInvalidInput    = &ServiceError{Code: ErrorCodeInvalidInput}
	ErrOutOfRange      = &ServiceError{Code: ErrorCodeOutOfRange}
	ErrEncodingTooLong = &ServiceError{Code: ErrorCodeEncodingTooLong}
	ErrInvalidEncoding = &ServiceError{Code: ErrorCodeInvalidEncoding}
	ErrInvalidToken    = &ServiceError{Code: ErrorCodeInvalidToken}
	ErrValidation      = &ServiceError{Code: ErrorCodeValidation}
)

type ServiceError struct {
	Op      string
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of the outermost ServiceError in err's chain, or zero.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if se, ok := err.(*ServiceError); ok {
			return se.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

func newError(code ErrorCode, op, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidInputError(op, message string) *ServiceError {
	return newError(ErrorCodeInvalidInput, op, message, nil)
}

func NewOutOfRangeError(op, message string) *ServiceError {
	return newError(ErrorCodeOutOfRange, op, message, nil)
}

func NewEncodingTooLongError(op, message string) *ServiceError {
	return newError(ErrorCodeEncodingTooLong, op, message, nil)
}

func NewInvalidEncodingError(op, message string, err error) *ServiceError {
	return newError(ErrorCodeInvalidEncoding, op, message, err)
}

func NewInvalidTokenError(op, message string, err error) *ServiceError {
	return newError(ErrorCodeInvalidToken, op, message, err)
}

func NewValidationError(op, message string, err error) *ServiceError {
	return newError(ErrorCodeValidation, op, message, err)
}

func NewInternalError(op, message string, err error) *ServiceError {
	return newError(ErrorCodeInternal, op, message, err)
}
