package enums

const (
	LEAD_CREATED       = "Lead registered successfully"
	LEAD_UPDATED       = "Lead updated successfully"
	LEAD_DELETED       = "Lead deleted successfully"
	LEAD_NOT_FOUND     = "Lead not found"
	EMAIL_REGISTERED   = "Email is already registered"
	EMAIL_INVALID      = "Invalid email"
	PAYLOAD_INVALID    = "Request body must be a JSON object"
	FIELD_REQUIRED     = "Field %s is required"
	STORE_UNAVAILABLE  = "Service temporarily unavailable"
	SERVER_ERROR       = "Internal server error"
	HEALTH_OK          = "ok"
	HEALTH_UNAVAILABLE = "unavailable"
)
