package constants

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input from locals"
	ERROR_INPUT                = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"

	MISSING_LOGIN_INPUT = "Email and password are required"
	INVALID_EMAIL       = "Email does not exist"
	INVALID_PASSWORD    = "Password does not match"
	EMAIL_ALREADY_USED  = "Email is already registered"

	ROLE_ADMIN    = "ADMIN"
	ROLE_CUSTOMER = "CUSTOMER"
)
