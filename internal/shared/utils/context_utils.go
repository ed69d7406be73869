package utils

import (
	"context"
	"errors"

	"ecoshopper-backend/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrRequestIDNotFound  = errors.New("requestID not found in context")
	ErrRequestIDNotString = errors.New("requestID in context is not a string")
	ErrSubjectNotFound    = errors.New("subject not found in context")
	ErrSubjectNotString   = errors.New("subject in context is not a string")
)

// GetRequestIDFromContext retrieves the request ID from the context.
// It returns the request ID and an error if the request ID is not found or is not a string.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}

// GetSubjectFromContext retrieves the verified session subject from the context.
func GetSubjectFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.SubjectKey)
	if val == nil {
		return "", ErrSubjectNotFound
	}
	subject, ok := val.(string)
	if !ok {
		return "", ErrSubjectNotString
	}
	return subject, nil
}

// WithRequestID returns a new context carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// WithSubject returns a new context carrying the verified session subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, contextkeys.SubjectKey, subject)
}
