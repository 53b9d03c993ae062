package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/common/validation"
	"creon-backend/internal/domain"
)

const requestIDKey = "request_id"

// bindingError marks errors produced by ShouldBind* so the error handler can
// answer with a per-field list.
type bindingError struct{ err error }

func (e *bindingError) Error() string { return e.err.Error() }
func (e *bindingError) Unwrap() error { return e.err }

// BindingError wraps err returned from gin binding.
func BindingError(err error) error { return &bindingError{err: err} }

// Recovery middleware для обработки паник
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error")
		sendErrorResponse(c, appErr)
	})
}

// ErrorHandler turns errors attached with c.Error into JSON responses.
// Handlers return right after c.Error; nothing is written before this runs.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var be *bindingError
		if stderrors.As(err, &be) {
			SendValidationErrors(c, validation.FromBindingError(be.err))
			return
		}

		sendErrorResponse(c, ToAppError(err))
	}
}

// ToAppError maps domain and storage errors onto the public taxonomy.
func ToAppError(err error) *errors.AppError {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	var ve *domain.ValidationError
	if stderrors.As(err, &ve) {
		return errors.NewValidationError(ve.Field, ve.Reason)
	}

	if ue, ok := domain.AsUniqueViolation(err); ok {
		return errors.NewConflictError("user", ue.Field)
	}

	var re *domain.ReferenceError
	if stderrors.As(err, &re) {
		return errors.NewValidationError(re.Field, fmt.Sprintf("%d does not exist", re.ID)).
			WithDetail("id", re.ID)
	}

	return errors.NewDatabaseError("request", err)
}

// RequestID middleware для добавления ID запроса
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
	Path      string           `json:"path,omitempty"`
	Method    string           `json:"method,omitempty"`
}

func sendErrorResponse(c *gin.Context, appErr *errors.AppError) {
	requestID := GetRequestID(c)

	appErr.WithRequestID(requestID)
	statusCode := HTTPStatus(appErr)

	// Internal failures keep their cause in the log only.
	if statusCode >= http.StatusInternalServerError {
		appErr.Details = nil
	}

	response := ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: requestID,
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	}

	logError(appErr, c)

	c.AbortWithStatusJSON(statusCode, response)
}

// HTTPStatus возвращает HTTP статус код для ошибки
func HTTPStatus(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeInvalidWallet:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case errors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	case errors.ErrCodeChainOracle:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func logError(appErr *errors.AppError, c *gin.Context) {
	var event *zerolog.Event
	switch {
	case appErr.IsInternal():
		event = logger.Error().Strs("stack", appErr.Stack)
	case appErr.IsValidation(), appErr.IsNotFound():
		event = logger.Info()
	default:
		event = logger.Warn()
	}

	event = event.
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message)
	if len(appErr.Details) > 0 {
		event = event.Interface("details", appErr.Details)
	}
	if appErr.Cause != nil {
		event = event.Err(appErr.Cause)
	}
	event.Msg("Request failed")
}

// GetRequestID получает ID запроса из контекста
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}

// ValidationErrorResponse представляет ответ с ошибками валидации
type ValidationErrorResponse struct {
	Success   bool               `json:"success"`
	Errors    []*errors.AppError `json:"errors"`
	Timestamp time.Time          `json:"timestamp"`
	RequestID string             `json:"request_id"`
}

// SendValidationErrors отправляет множественные ошибки валидации
func SendValidationErrors(c *gin.Context, validationErrors []*errors.AppError) {
	requestID := GetRequestID(c)

	for _, e := range validationErrors {
		e.WithRequestID(requestID)
	}

	logger.Info().
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("error_count", len(validationErrors)).
		Msg("Validation errors")

	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse{
		Success:   false,
		Errors:    validationErrors,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}
