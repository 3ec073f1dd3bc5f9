package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// Clients map these codes to their own messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // malformed request
	ValidationRequired      = "VALIDATION_REQUIRED"       // required field missing
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // wrong field format

	// ==================== Orders (ORDER_) ====================
	OrderEmptyCart      = "ORDER_EMPTY_CART"      // no items submitted
	OrderInvalidPayload = "ORDER_INVALID_PAYLOAD" // payload fails intake checks

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // unknown product or route

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // unexpected server failure
)
