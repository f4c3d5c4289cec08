package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeTotalMismatch     = "TOTAL_MISMATCH"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeMedicineNotFound  = "MEDICINE_NOT_FOUND"
	ErrCodeStoreNotFound     = "STORE_NOT_FOUND"
	ErrCodeInventoryNotFound = "INVENTORY_NOT_FOUND"
	ErrCodeCartItemNotFound  = "CART_ITEM_NOT_FOUND"
	ErrCodeDoctorNotFound    = "DOCTOR_NOT_FOUND"
	ErrCodeConsultNotFound   = "CONSULTATION_NOT_FOUND"
	ErrCodeDuplicate         = "DUPLICATE_ENTRY"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a client-safe message so
// handlers can map business failures to HTTP statuses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrTotalMismatch     = NewDomainError(ErrCodeTotalMismatch, "Order total does not match the sum of line items")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrMedicineNotFound  = NewDomainError(ErrCodeMedicineNotFound, "Medicine not found")
	ErrStoreNotFound     = NewDomainError(ErrCodeStoreNotFound, "Store not found")
	ErrInventoryNotFound = NewDomainError(ErrCodeInventoryNotFound, "Inventory record not found")
	ErrCartItemNotFound  = NewDomainError(ErrCodeCartItemNotFound, "Cart item not found")
	ErrDoctorNotFound    = NewDomainError(ErrCodeDoctorNotFound, "Doctor not found")
	ErrConsultNotFound   = NewDomainError(ErrCodeConsultNotFound, "Consultation not found")
)
