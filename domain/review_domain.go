package domain

import (
	"errors"
	"time"
)

const (
	ReviewLiked = "1"
)

var (
	MessageSuccessAddReview = "Review added."
	MessageAlreadyReviewed  = "You have made a review before."
	MessageFailedAddReview  = "Please fill in the review."

	ErrAlreadyReviewed = errors.New("recipe already reviewed by user")
)

type (
	AddReviewRequest struct {
		Content string `form:"content" validate:"required,max=5000"`
		Like    string `form:"like" validate:"omitempty,oneof=0 1"`
	}

	Review struct {
		Username  string
		Text      string
		Likes     bool
		CreatedAt time.Time
	}

	RecipeReviews struct {
		RecipeID   string
		RecipeName string
		Reviews    []Review
	}
)
