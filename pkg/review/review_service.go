package review

import (
	"context"
	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/metrics"
	"recipebox/pkg/recipe"

	"github.com/google/uuid"
)

type (
	ReviewService interface {
		AddReview(ctx context.Context, req domain.AddReviewRequest, recipeID string, userID string) error
		GetRecipeReviews(ctx context.Context, recipeID string) (domain.RecipeReviews, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *reviewService) AddReview(ctx context.Context, req domain.AddReviewRequest, recipeID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID); err != nil {
		return err
	}

	created, err := s.reviewRepository.CreateReview(ctx, &entities.Review{
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Text:     req.Content,
		Likes:    req.Like == domain.ReviewLiked,
	})
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrAlreadyReviewed
	}

	metrics.ReviewsCreated.Inc()
	return nil
}

func (s *reviewService) GetRecipeReviews(ctx context.Context, recipeID string) (domain.RecipeReviews, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeReviews{}, domain.ErrRecipeNotFound
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeReviews{}, err
	}

	reviews, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeReviews{}, err
	}

	result := domain.RecipeReviews{
		RecipeID:   rec.ID.String(),
		RecipeName: rec.Name,
		Reviews:    make([]domain.Review, 0, len(reviews)),
	}
	for _, r := range reviews {
		item := domain.Review{
			Text:      r.Text,
			Likes:     r.Likes,
			CreatedAt: r.CreatedAt,
		}
		if r.User != nil {
			item.Username = r.User.Username
		}
		result.Reviews = append(result.Reviews, item)
	}
	return result, nil
}
