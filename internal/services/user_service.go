package services

import (
	"context"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/auth"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/logger"
	"github.com/vladimiradmaev/dietlog/internal/nutrition"
)

type UserService struct {
	users  domain.UserRepository
	tokens *auth.TokenIssuer
	clock  datekey.Clock
	newID  IDFunc
}

func NewUserService(users domain.UserRepository, tokens *auth.TokenIssuer, opts Options) *UserService {
	return &UserService{users: users, tokens: tokens, clock: opts.clock(), newID: opts.newID()}
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.NewConflictError("Email already registered")
	case !apperrors.IsNotFound(err):
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		ID:             s.newID(),
		Name:           in.Name,
		Email:          email,
		PasswordHash:   hash,
		ActivityLevel:  domain.DefaultActivityLevel,
		WeightLossRate: domain.DefaultWeightLossRate,
		Units:          domain.DefaultUnits,
		CalorieTarget:  domain.DefaultCalorieTarget,
		ProteinTarget:  domain.DefaultProteinTarget,
		CarbsTarget:    domain.DefaultCarbsTarget,
		FatTarget:      domain.DefaultFatTarget,
		WaterGoal:      domain.DefaultWaterGoal,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).Info("User registered", "user_id", user.ID)

	return s.authResult(user)
}

func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if apperrors.IsNotFound(err) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}
	return s.authResult(user)
}

func (s *UserService) authResult(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Authenticate resolves a bearer token to its user.
func (s *UserService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.NewUnauthorizedError("User not found")
	}
	return user, err
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.users.GetByTelegramID(ctx, telegramID)
}

// ProfileUpdate is a partial profile. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name                *string  `json:"name"`
	Age                 *int     `json:"age"`
	Gender              *string  `json:"gender"`
	HeightCM            *float64 `json:"height_cm"`
	CurrentWeight       *float64 `json:"current_weight"`
	GoalWeight          *float64 `json:"goal_weight"`
	ActivityLevel       *string  `json:"activity_level"`
	WeightLossRate      *float64 `json:"weight_loss_rate"`
	Units               *string  `json:"units"`
	CalorieTarget       *int     `json:"calorie_target"`
	ProteinTarget       *int     `json:"protein_target"`
	CarbsTarget         *int     `json:"carbs_target"`
	FatTarget           *int     `json:"fat_target"`
	WaterGoal           *int     `json:"water_goal"`
	OnboardingCompleted *bool    `json:"onboarding_completed"`
	TelegramID          *int64   `json:"telegram_id"`
}

// UpdateProfile merges update onto the stored profile. Once the merged profile
// has every biometric field, targets are recomputed and override any targets
// sent in update; otherwise the previous targets stay.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyUpdate(user, update)

	if user.HasBiometrics() {
		t := nutrition.Calculate(nutrition.Profile{
			Gender:         *user.Gender,
			WeightKG:       *user.CurrentWeight,
			HeightCM:       *user.HeightCM,
			Age:            *user.Age,
			ActivityLevel:  user.ActivityLevel,
			WeightLossRate: user.WeightLossRate,
		})
		bmr, tdee := int(t.BMR), int(t.TDEE)
		user.CalorieTarget = t.CalorieTarget
		user.ProteinTarget = t.ProteinTarget
		user.CarbsTarget = t.CarbsTarget
		user.FatTarget = t.FatTarget
		user.BMR = &bmr
		user.TDEE = &tdee
		logger.WithContext(ctx).Debug("Targets recomputed", "user_id", userID, "calorie_target", t.CalorieTarget)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func applyUpdate(u *domain.User, p ProfileUpdate) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Age != nil {
		u.Age = p.Age
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.HeightCM != nil {
		u.HeightCM = p.HeightCM
	}
	if p.CurrentWeight != nil {
		u.CurrentWeight = p.CurrentWeight
	}
	if p.GoalWeight != nil {
		u.GoalWeight = p.GoalWeight
	}
	if p.ActivityLevel != nil {
		u.ActivityLevel = *p.ActivityLevel
	}
	if p.WeightLossRate != nil {
		u.WeightLossRate = *p.WeightLossRate
	}
	if p.Units != nil {
		u.Units = *p.Units
	}
	if p.CalorieTarget != nil {
		u.CalorieTarget = *p.CalorieTarget
	}
	if p.ProteinTarget != nil {
		u.ProteinTarget = *p.ProteinTarget
	}
	if p.CarbsTarget != nil {
		u.CarbsTarget = *p.CarbsTarget
	}
	if p.FatTarget != nil {
		u.FatTarget = *p.FatTarget
	}
	if p.WaterGoal != nil {
		u.WaterGoal = *p.WaterGoal
	}
	if p.OnboardingCompleted != nil {
		u.OnboardingCompleted = *p.OnboardingCompleted
	}
	if p.TelegramID != nil {
		u.TelegramID = p.TelegramID
	}
}
