package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "Registration success"
	MessageFailedRegister  = "There is an error during registration."
	MessageUsernameTaken   = "That username is already taken."
	MessageFailedLogin     = "Incorrect username or password."
	MessageErrorLogin      = "There is an error during login."

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `form:"username" validate:"required,min=3,max=50"`
		Password string `form:"password" validate:"required,max=72"`
		Profile  string `form:"user_profile" validate:"max=2000"`
		Email    string `form:"email" validate:"omitempty,email"`
	}

	LoginRequest struct {
		Username string `form:"username" validate:"required"`
		Password string `form:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID   string
		Username string
		Token    string
	}

	// Dashboard is everything rendered on the logged-in home page.
	Dashboard struct {
		Username        string
		Profile         string
		MembershipLevel string
		Categories      []Category
		Recipes         []Recipe
	}
)
