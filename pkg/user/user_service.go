package user

import (
	"context"
	"errors"
	"fmt"
	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/metrics"
	"recipebox/internal/utils/mailing"
	"recipebox/pkg/jwt"
	"recipebox/pkg/recipe"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetDashboard(ctx context.Context, userID string) (domain.Dashboard, error)
	}

	userService struct {
		userRepository UserRepository
		recipeService  recipe.RecipeService
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		logger         *zap.Logger
	}
)

// dummyHash is compared against when the username is unknown so that a
// failed lookup costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("recipebox-dummy-password"), bcrypt.DefaultCost)

func NewUserService(
	userRepository UserRepository,
	recipeService recipe.RecipeService,
	jwtService jwt.JWTService,
	mailer mailing.Mailer,
	logger *zap.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		recipeService:  recipeService,
		jwtService:     jwtService,
		mailer:         mailer,
		logger:         logger,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Username: strings.TrimSpace(req.Username),
		Password: string(hash),
		Profile:  req.Profile,
		Email:    strings.TrimSpace(req.Email),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrUsernameTaken
	}

	if user.Email != "" && s.mailer != nil {
		if err := s.mailer.Send(user.Email, "Welcome to recipebox", mailing.WelcomeBody(user.Username)); err != nil {
			s.logger.Warn("failed to send welcome mail",
				zap.String("username", user.Username), zap.Error(err))
		}
	}
	return nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return domain.LoginResponse{}, err
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		metrics.LoginAttempts.WithLabelValues(metrics.ResultFailure).Inc()
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.ResultFailure).Inc()
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID.String(), user.Username)
	if err != nil {
		return domain.LoginResponse{}, fmt.Errorf("generate session token: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
	return domain.LoginResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Token:    token,
	}, nil
}

func (s *userService) GetDashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Dashboard{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userUUID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	categories, err := s.recipeService.GetCategories(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	recipes, err := s.recipeService.GetUserRecipes(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	dashboard := domain.Dashboard{
		Username:   user.Username,
		Profile:    user.Profile,
		Categories: categories,
		Recipes:    recipes,
	}
	if user.Membership != nil {
		dashboard.MembershipLevel = user.Membership.PaymentPlan
	}
	return dashboard, nil
}
