package errors

// Error code constants returned in the `error` field of failure
// responses. The client maps messages from the `detail` field.
const (
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"

	OrderNoItems     = "ORDER_NO_ITEMS"
	OrderInvalidItem = "ORDER_INVALID_ITEM"
	OrderNotFound    = "ORDER_NOT_FOUND"

	ReceiptUnavailable = "RECEIPT_UNAVAILABLE"

	InternalServerError = "INTERNAL_SERVER_ERROR"
)
