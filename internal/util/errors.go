package util

import (
	"errors"
	"net/http"
)

// ErrorKind 错误分类，决定 HTTP 状态码
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInternal
)

// AppError 可直接展示给客户端的业务错误
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

var (
	ErrBoothNotFound     = NewNotFoundError("Booth not found")
	ErrAttendeeNotFound  = NewNotFoundError("Attendee not found")
	ErrVisitNotFound     = NewNotFoundError("Visit not found")
	ErrAnswersRequired   = NewValidationError("Answers are required for this booth")
	ErrInvalidRating     = NewValidationError("Rating must be between 1 and 5")
	ErrCommentTooLong    = NewValidationError("Comment must be at most 500 characters")
	ErrVisitNotCompleted = NewValidationError("Cannot rate a visit that is not completed")
	ErrEmailRegistered   = NewConflictError("Attendee with this email already exists")
	ErrInvalidCredential = &AppError{Kind: KindUnauthorized, Message: "Invalid credentials"}
	ErrSessionExpired    = &AppError{Kind: KindUnauthorized, Message: "Session expired"}
)

// StatusOf 返回错误对应的 HTTP 状态码；非 AppError 一律视为内部错误
func StatusOf(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
