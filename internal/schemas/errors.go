package schemas

// Named error payloads written by utils.WriteAndLogError. The wording is
// part of the API contract; the credentials and token messages are
// deliberately uniform so responses never reveal which check failed.
var (
	// InvalidCredentials covers both an unknown username and a wrong password.
	InvalidCredentials = &ErrorListDTO{Errors: []FieldError{{Msg: "Invalid credentials"}}}

	// UsernameTaken and EmailTaken reject duplicate registrations.
	UsernameTaken = &ErrorListDTO{Errors: []FieldError{{Msg: "That username is already taken"}}}
	EmailTaken    = &ErrorListDTO{Errors: []FieldError{{Msg: "That email address is already registered"}}}

	// NoToken and InvalidToken are the two auth gate rejections. InvalidToken
	// covers malformed, tampered and expired tokens alike.
	NoToken      = &MessageDTO{Msg: "Not token, authorization denied"}
	InvalidToken = &MessageDTO{Msg: "Token is not valid"}

	UserNotFound     = &MessageDTO{Msg: "User not found"}
	ProfileNotFound  = &MessageDTO{Msg: "Profile not found"}
	NoProfileForUser = &MessageDTO{Msg: "There is no profile for this user"}
	PostNotFound     = &MessageDTO{Msg: "Post not found"}
	BlogPostNotFound = &MessageDTO{Msg: "Blog post not found"}

	// NotAuthorized rejects mutations by authenticated non-owners.
	NotAuthorized = &MessageDTO{Msg: "User not authorized"}

	// AlreadyLiked and NotYetLiked guard the like toggle.
	AlreadyLiked = &MessageDTO{Msg: "Post already liked"}
	NotYetLiked  = &MessageDTO{Msg: "Post hasn't been liked"}

	NoGithubProfile = &MessageDTO{Msg: "No Github profile found"}

	// InternalServerError is the generic 500 body; detail stays in the logs.
	InternalServerError = &MessageDTO{Msg: "Internal server error"}
)

// UntrimmedFieldDTO rejects registration fields with leading or trailing
// whitespace, preserving the original 422 response shape.
type UntrimmedFieldDTO struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// NewUntrimmedFieldError builds the 422 payload for the given field.
func NewUntrimmedFieldError(field string) *UntrimmedFieldDTO {
	return &UntrimmedFieldDTO{
		Code:     422,
		Reason:   "ValidationError",
		Message:  "Cannot start or end with whitespace",
		Location: field,
	}
}
