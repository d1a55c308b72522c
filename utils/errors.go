package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds, used by callers that need to branch on the failure class.
const (
	KindValidation            = "validation"
	KindNotFound              = "not_found"
	KindDuplicateName         = "duplicate_name"
	KindDuplicateEmail        = "duplicate_email"
	KindParticipationExceeded = "participation_exceeded"
	KindNonZeroBalance        = "non_zero_balance"
	KindEmptySelection        = "empty_selection"
	KindNoPartners            = "no_partners"
	KindPaidPaymentsExist     = "paid_payments_exist"
	KindInternal              = "internal"
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// Domain error constructors for the settlement ledger
func NewDuplicateNameError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateName,
		Message: ErrDuplicateName,
	}
}

func NewDuplicateEmailError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateEmail,
		Message: ErrDuplicateEmail,
	}
}

func NewParticipationExceededError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindParticipationExceeded,
		Message: ErrParticipationExceeded,
	}
}

func NewNonZeroBalanceError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindNonZeroBalance,
		Message: ErrNonZeroBalance,
	}
}

func NewEmptySelectionError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindEmptySelection,
		Message: ErrEmptySelection,
	}
}

func NewNoPartnersError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindNoPartners,
		Message: ErrNoPartners,
	}
}

func NewPaidPaymentsExistError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindPaidPaymentsExist,
		Message: ErrPaidPaymentsExist,
	}
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	// Default to internal server error
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
