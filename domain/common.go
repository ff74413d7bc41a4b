package domain

import (
	"errors"
)

const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalLoggedIn = "logged_in"

	SessionCookie = "session"
	FlashCookie   = "flash"

	NoCategory = "None"
)

var (
	MessageFailedBodyRequest    = "failed to read the submitted form"
	MessageFailedProcessRequest = "An error occured."
	MessageLoginRequired        = "Please log in first."
	MessagePageNotFound         = "The page you are looking for does not exist."

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
