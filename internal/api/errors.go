package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorBuilder helps construct structured errors with context.
type ErrorBuilder struct {
	errType   string
	message   string
	context   map[string]interface{}
	requestID string
}

// NewError creates a new error builder.
func NewError(errType, message string) *ErrorBuilder {
	return &ErrorBuilder{
		errType: errType,
		message: message,
		context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error.
func (eb *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	eb.context[key] = value
	return eb
}

// WithRequestID adds request ID to the error.
func (eb *ErrorBuilder) WithRequestID(requestID string) *ErrorBuilder {
	eb.requestID = requestID
	return eb
}

// WithCause adds the underlying cause error.
func (eb *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	if err != nil {
		eb.context["cause"] = err.Error()
	}
	return eb
}

// Build creates the final EngineError.
func (eb *ErrorBuilder) Build() EngineError {
	return EngineError{
		Type:      eb.errType,
		Message:   eb.message,
		Context:   eb.context,
		RequestID: eb.requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// ErrorHandler provides centralized error handling with logging.
type ErrorHandler struct {
	logger *log.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleError processes an error and writes the appropriate response.
func (eh *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error, status int) {
	requestID := middleware.GetReqID(r.Context())

	engineErr, ok := err.(EngineError)
	if !ok {
		engineErr = NewError(ErrTypeInternal, err.Error()).
			WithRequestID(requestID).
			WithContext("path", r.URL.Path).
			WithContext("method", r.Method).
			Build()
	}

	eh.logger.Printf("error type=%s status=%d path=%s request_id=%s message=%q",
		engineErr.Type, status, r.URL.Path, requestID, engineErr.Message)
	writeJSON(w, status, engineErr)
}

// HandleValidationError handles validation-specific errors.
func (eh *ErrorHandler) HandleValidationError(w http.ResponseWriter, r *http.Request, field, message string) {
	requestID := middleware.GetReqID(r.Context())

	engineErr := NewError(ErrTypeValidation, fmt.Sprintf("Validation failed: %s", message)).
		WithRequestID(requestID).
		WithContext("field", field).
		WithContext("path", r.URL.Path).
		Build()

	eh.logger.Printf("validation_failure field=%s path=%s request_id=%s message=%q",
		field, r.URL.Path, requestID, message)
	writeJSON(w, http.StatusBadRequest, engineErr)
}

// RecoveryHandler converts panics into structured 500 responses.
func (eh *ErrorHandler) RecoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := middleware.GetReqID(r.Context())
				eh.logger.Printf("panic_recovered path=%s request_id=%s panic=%v",
					r.URL.Path, requestID, rec)

				engineErr := NewError(ErrTypeInternal, "Internal server error").
					WithRequestID(requestID).
					Build()
				writeJSON(w, http.StatusInternalServerError, engineErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
