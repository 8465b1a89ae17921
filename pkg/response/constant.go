package response

const (
	MessageSuccess         = "Success"
	MessageTooManyRequests = "Too many requests, slow down"
	DefaultErrorMessage    = "Something went wrong"

	InternalServerErrorCode = 500
	ForbiddenCode           = 403
	TooManyRequestsCode     = 429
	UnavailableCode         = 503
)
