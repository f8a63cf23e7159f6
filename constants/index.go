package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_WAITER  = "WAITER"
	ROLE_KITCHEN = "KITCHEN"
)

var ROLE = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_WAITER, ROLE_KITCHEN}

// Redis keys shared by the kitchen queue protocol and the live display.
const (
	KITCHEN_QUEUE_KEY     = "kitchen:queue"
	KITCHEN_UPDATES_TOPIC = "kitchen:updates"
)

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot parse request data"
	ERROR_CREATE               = "Cannot create record"
	ERROR_UPDATE               = "Cannot update record"
	NOT_FOUND_RECORDS          = "Records not found"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE         = "Account is not active"
	ACCOUNT_NOT_PERMISSION     = "Account does not have permission"
	CAN_NOT_HASH_PASSWORD      = "Cannot hash password"
	DATA_INPUT_IS_NOT_NUMBER   = "Input is not a number"
)
