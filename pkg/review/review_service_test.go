package review_test

import (
	"context"
	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/testutil"
	"recipebox/pkg/recipe"
	"recipebox/pkg/review"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviews(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	recipeRepository := recipe.NewRecipeRepository(db)
	recipes := recipe.NewRecipeService(recipeRepository, nil, zap.NewNop())
	reviews := review.NewReviewService(review.NewReviewRepository(db), recipeRepository)

	alice := testutil.CreateUser(t, db, "alice", "pw")
	bob := testutil.CreateUser(t, db, "bob", "pw")
	soup, err := recipes.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Name:         "Soup",
		Instructions: "Boil.",
		Servings:     4,
		Ingredients:  []domain.IngredientInput{{Name: "water", Amount: "1", Unit: "l"}},
	}, "")
	require.NoError(t, err)

	t.Run("adds a liked review", func(t *testing.T) {
		err := reviews.AddReview(ctx, domain.AddReviewRequest{Content: "Tasty", Like: "1"}, soup.ID, alice.ID.String())
		require.NoError(t, err)
	})

	t.Run("second review by the same user is rejected", func(t *testing.T) {
		err := reviews.AddReview(ctx, domain.AddReviewRequest{Content: "Still tasty"}, soup.ID, alice.ID.String())
		require.ErrorIs(t, err, domain.ErrAlreadyReviewed)

		var n int64
		require.NoError(t, db.Model(&entities.Review{}).Where("user_id = ?", alice.ID).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		err := reviews.AddReview(ctx, domain.AddReviewRequest{Content: "?"}, "0d5a4c39-8f0c-4b1e-b1f2-7d0a6e3c9b44", bob.ID.String())
		require.ErrorIs(t, err, domain.ErrRecipeNotFound)

		_, err = reviews.GetRecipeReviews(ctx, "not-a-uuid")
		require.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("lists newest first", func(t *testing.T) {
		time.Sleep(2 * time.Millisecond)
		require.NoError(t, reviews.AddReview(ctx, domain.AddReviewRequest{Content: "Bland", Like: "0"}, soup.ID, bob.ID.String()))

		listed, err := reviews.GetRecipeReviews(ctx, soup.ID)
		require.NoError(t, err)
		assert.Equal(t, "Soup", listed.RecipeName)
		require.Len(t, listed.Reviews, 2)

		assert.Equal(t, "bob", listed.Reviews[0].Username)
		assert.False(t, listed.Reviews[0].Likes)
		assert.Equal(t, "alice", listed.Reviews[1].Username)
		assert.True(t, listed.Reviews[1].Likes)
	})
}
