package constants

// Status values
const (
	STATUS_PENDING   = "pending"
	STATUS_CONFIRMED = "confirmed"
	STATUS_COMPLETED = "completed"
	STATUS_CANCELLED = "cancelled"
)

var RSVP_STATUSES = []string{STATUS_PENDING, STATUS_CONFIRMED, STATUS_CANCELLED}
var RESERVATION_STATUSES = []string{STATUS_PENDING, STATUS_CONFIRMED, STATUS_CANCELLED}
var TRANSACTION_STATUSES = []string{STATUS_PENDING, STATUS_COMPLETED, STATUS_CANCELLED}

// Messages
const (
	ERROR_INTERNAL_ERROR     = "internal server error"
	ERROR_INPUT              = "invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "invalid ID provided"
	VALIDATION_FAILED        = "validation failed"

	MISSING_LOGIN_INPUT   = "email and password are required"
	INVALID_CREDENTIALS   = "invalid credentials"
	INVALID_TOKEN         = "invalid token"
	AUTH_REQUIRED         = "authentication required"
	EMAIL_ALREADY_EXISTS  = "email already registered"
	CAN_NOT_HASH_PASSWORD = "could not hash password"

	MENU_ITEM_NOT_FOUND = "menu item not found"
	EVENT_NOT_FOUND     = "event not found"
	RSVP_NOT_FOUND      = "RSVP not found"
	EVENT_AT_CAPACITY   = "event is at capacity"

	PROMOTION_NOT_FOUND      = "promotion not found"
	PROMOTION_INVALID        = "invalid or expired promotion code"
	PROMOTION_CODE_EXISTS    = "promotion code already exists"
	INVALID_DISCOUNT_AMOUNT  = "invalid discount amount"
	ERROR_VALIDATE_PROMOTION = "error validating promotion"

	RESERVATION_NOT_FOUND = "reservation not found"
	DATE_REQUIRED         = "date parameter is required"
	INVALID_DATE          = "invalid date, expected YYYY-MM-DD"
	INVALID_TIME_SLOT     = "time is not a bookable slot"
	SLOT_ALREADY_BOOKED   = "time slot is already booked"

	TRANSACTION_NOT_FOUND = "transaction not found"
	INVALID_PRICE_VALUES  = "invalid price values"

	INVALID_STATUS = "invalid status"
	INVALID_IMAGE  = "invalid image upload"
	UPLOAD_FAILED  = "could not store image"
)
