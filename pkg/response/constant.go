package response

const (
	// MessageSuccess is the default message on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when the real error must not leak.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks unexpected server-side failures.
	InternalServerErrorCode = 500
)

// Wire formats for Date and DateTime payload fields.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
