package user_test

import (
	"context"
	"errors"
	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/testutil"
	"recipebox/pkg/jwt"
	"recipebox/pkg/recipe"
	"recipebox/pkg/user"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return m.err
}

type fixture struct {
	db      *gorm.DB
	users   user.UserService
	recipes recipe.RecipeService
	jwt     jwt.JWTService
	mailer  *fakeMailer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	logger := zap.NewNop()
	recipes := recipe.NewRecipeService(recipe.NewRecipeRepository(db), nil, logger)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	mailer := &fakeMailer{}
	return fixture{
		db:      db,
		users:   user.NewUserService(user.NewUserRepository(db), recipes, jwtService, mailer, logger),
		recipes: recipes,
		jwt:     jwtService,
		mailer:  mailer,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.users.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "hunter2", Profile: "I bake."})
	require.NoError(t, err)

	var stored entities.User
	require.NoError(t, f.db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "hunter2", stored.Password)

	res, err := f.users.Login(ctx, domain.LoginRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, stored.ID.String(), res.UserID)

	userID, username, err := f.jwt.GetSessionByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), userID)
	assert.Equal(t, "alice", username)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "one"}))
	err := f.users.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "two"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	var n int64
	require.NoError(t, f.db.Model(&entities.User{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	// the first password still works
	_, err = f.users.Login(ctx, domain.LoginRequest{Username: "alice", Password: "one"})
	require.NoError(t, err)
}

func TestRegister_WelcomeMail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, domain.RegisterRequest{Username: "bob", Password: "pw"}))
	assert.Empty(t, f.mailer.sent)

	f.mailer.err = errors.New("smtp down")
	err := f.users.Register(ctx, domain.RegisterRequest{Username: "carol", Password: "pw", Email: "carol@example.com"})
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "carol@example.com", f.mailer.sent[0].to)
	assert.Contains(t, f.mailer.sent[0].body, "carol")
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.CreateUser(t, f.db, "alice", "right")

	_, wrongPassword := f.users.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	_, unknownUser := f.users.Login(ctx, domain.LoginRequest{Username: "mallory", Password: "right"})

	require.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestGetDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, f.db, "alice", "pw")

	dashboard, err := f.users.GetDashboard(ctx, alice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", dashboard.Username)
	assert.Empty(t, dashboard.MembershipLevel)
	assert.Len(t, dashboard.Categories, 6)
	assert.Empty(t, dashboard.Recipes)

	require.NoError(t, f.db.Create(&entities.Membership{UserID: alice.ID, PaymentPlan: "Gold"}).Error)
	_, err = f.recipes.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Name:         "Toast",
		Instructions: "Toast the bread.",
		Servings:     1,
		Ingredients:  []domain.IngredientInput{{Name: "bread", Amount: "2", Unit: "slices"}},
	}, alice.ID.String())
	require.NoError(t, err)

	dashboard, err = f.users.GetDashboard(ctx, alice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Gold", dashboard.MembershipLevel)
	require.Len(t, dashboard.Recipes, 1)
	assert.Equal(t, "Bread: 2 slices", dashboard.Recipes[0].Ingredients)
}

func TestGetDashboard_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.GetDashboard(context.Background(), "6b1f1e8a-4c52-4df5-8a3a-0f7c9f3e2d11")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.users.GetDashboard(context.Background(), "garbage")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}
