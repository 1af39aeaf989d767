package constants

const (
	ROLE_CUSTOMER = "customer"
	ROLE_MECHANIC = "mechanic"
)

const (
	ERROR_INTERNAL_ERROR = "Internal server error."
	ERROR_INPUT          = "Invalid input."
	ERROR_CREATE         = "Could not create record."
	ERROR_EDIT           = "Could not update record."
	ERROR_DELETE         = "Could not delete record."
	ERROR_PARSE_LOCALS   = "Could not read validated input."

	DATA_INPUT_IS_NOT_NUMBER = "Id must be a number."

	NOT_FOUND_CUSTOMER  = "Customer not found."
	NOT_FOUND_MECHANIC  = "Mechanic not found."
	NOT_FOUND_TICKET    = "Ticket not found."
	NOT_FOUND_PART      = "Part not found."
	EMAIL_EXISTS        = "Email already associated with an account."
	INVALID_CREDENTIALS = "Invalid email or password."
	MISSING_LOGIN_INPUT = "Email and password are required."
	MISSING_TOKEN       = "Token is missing."
	INVALID_TOKEN       = "Invalid token."
	EXPIRED_TOKEN       = "Token has expired."
	WRONG_ROLE          = "You do not have permission to perform this action."
	NOT_OWN_RECORD      = "You can only modify your own record."
	NO_FIELDS_TO_UPDATE = "No valid fields provided for update."
	RATE_LIMIT_EXCEEDED = "Rate limit exceeded."

	CUSTOMER_HAS_TICKETS = "Customer still has service tickets and cannot be deleted."
)
