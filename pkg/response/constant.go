package response

// Shared response messages and error codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)
