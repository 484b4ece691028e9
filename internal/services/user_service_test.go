package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
)

func TestRegisterDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.users.Register(ctx, RegisterInput{Name: "Ann", Email: " Ann@Example.com ", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	u := res.User
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, domain.DefaultActivityLevel, u.ActivityLevel)
	assert.Equal(t, 1.0, u.WeightLossRate)
	assert.Equal(t, "imperial", u.Units)
	assert.Equal(t, []int{2000, 150, 200, 67, 2000},
		[]int{u.CalorieTarget, u.ProteinTarget, u.CarbsTarget, u.FatTarget, u.WaterGoal})
	assert.False(t, u.OnboardingCompleted)
	assert.Nil(t, u.Age)
	assert.Equal(t, now, u.CreatedAt)

	_, err = env.users.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "x"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	_, err = env.users.Register(ctx, RegisterInput{Email: "", Password: "x"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestLoginAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "bob@example.com")

	res, err := env.users.Login(ctx, "BOB@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	got, err := env.users.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	for _, tc := range []struct{ email, password string }{
		{"bob@example.com", "wrong"},
		{"nobody@example.com", "pw"},
	} {
		_, err := env.users.Login(ctx, tc.email, tc.password)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypePermission))
		assert.Equal(t, "Invalid email or password", err.(*apperrors.AppError).Message)
	}

	_, err = env.users.Authenticate(ctx, "garbage")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypePermission))
}

func TestUpdateProfileRecomputesTargets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "carl@example.com")

	updated, err := env.users.UpdateProfile(ctx, user.ID, ProfileUpdate{
		Age:           ptr(30),
		Gender:        ptr("male"),
		HeightCM:      ptr(180.0),
		CurrentWeight: ptr(80.0),
		CalorieTarget: ptr(3000),
	})
	require.NoError(t, err)

	assert.Equal(t, 2259, updated.CalorieTarget, "computed target overrides the explicit one")
	assert.Equal(t, 169, updated.ProteinTarget)
	assert.Equal(t, 225, updated.CarbsTarget)
	assert.Equal(t, 75, updated.FatTarget)
	require.NotNil(t, updated.BMR)
	assert.Equal(t, 1780, *updated.BMR)
	assert.Equal(t, 2759, *updated.TDEE)

	stored, err := env.users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.CalorieTarget, stored.CalorieTarget)
	assert.Equal(t, 30, *stored.Age)
}

func TestUpdateProfileWithoutBiometricsKeepsTargets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "dana@example.com")

	updated, err := env.users.UpdateProfile(ctx, user.ID, ProfileUpdate{
		Age:        ptr(40),
		Gender:     ptr("female"),
		Name:       ptr("Dana"),
		FatTarget:  ptr(70),
		TelegramID: ptr(int64(555)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana", updated.Name)
	assert.Equal(t, domain.DefaultCalorieTarget, updated.CalorieTarget)
	assert.Equal(t, 70, updated.FatTarget, "explicit target applies when nothing is recomputed")
	assert.Nil(t, updated.BMR)

	byTG, err := env.users.GetByTelegramID(ctx, 555)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byTG.ID)

	// A zero height does not count as known.
	updated, err = env.users.UpdateProfile(ctx, user.ID, ProfileUpdate{HeightCM: ptr(0.0), CurrentWeight: ptr(60.0)})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalorieTarget, updated.CalorieTarget)

	_, err = env.users.UpdateProfile(ctx, "missing", ProfileUpdate{})
	assert.True(t, apperrors.IsNotFound(err))
}
