package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrAlreadyExists  = errors.New("resource already exists")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidAddress = errors.New("invalid wallet address")
	ErrCooldownActive = errors.New("faucet claim on cooldown")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// CooldownError signals the faucet rate limit is still active.
// TimeLeft carries the remaining wait rendered as whole hours and minutes.
type CooldownError struct {
	TimeLeft string
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("faucet claim on cooldown, %s remaining", e.TimeLeft)
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldownActive
}

// Cooldown creates a cooldown error with the rendered time left
func Cooldown(timeLeft string) *CooldownError {
	return &CooldownError{TimeLeft: timeLeft}
}
