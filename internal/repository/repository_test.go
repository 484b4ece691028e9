package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/datekey"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
)

var base = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestStores(t *testing.T) *domain.Stores {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "diet.db"))
	require.NoError(t, err)
	stores := NewStores(db)
	t.Cleanup(func() { _ = stores.Close(context.Background()) })
	return stores
}

func newUser(id, email string) *domain.User {
	return &domain.User{
		ID:             id,
		Name:           "Test",
		Email:          email,
		PasswordHash:   "hash",
		ActivityLevel:  domain.DefaultActivityLevel,
		WeightLossRate: domain.DefaultWeightLossRate,
		Units:          domain.DefaultUnits,
		CalorieTarget:  domain.DefaultCalorieTarget,
		WaterGoal:      domain.DefaultWaterGoal,
		CreatedAt:      base,
	}
}

func foodLog(id, userID string, at time.Time, name string, calories float64, meal domain.MealType) *domain.FoodLog {
	return &domain.FoodLog{
		ID:        id,
		UserID:    userID,
		FoodName:  name,
		Calories:  calories,
		Quantity:  1,
		MealType:  meal,
		LoggedAt:  at,
		Date:      datekey.FromTime(at),
		CreatedAt: at,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)

	require.NoError(t, stores.Users.Create(ctx, newUser("u1", "ann@example.com")))

	err := stores.Users.Create(ctx, newUser("u2", "ann@example.com"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict), "got %v", err)

	got, err := stores.Users.GetByEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Nil(t, got.Age)

	age, tg := 31, int64(4242)
	got.Age = &age
	got.TelegramID = &tg
	got.CalorieTarget = 1800
	require.NoError(t, stores.Users.Update(ctx, got))

	byTG, err := stores.Users.GetByTelegramID(ctx, tg)
	require.NoError(t, err)
	assert.Equal(t, 31, *byTG.Age)
	assert.Equal(t, 1800, byTG.CalorieTarget)

	require.NoError(t, stores.Users.SetCurrentWeight(ctx, "u1", 72.5))
	byID, err := stores.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 72.5, *byID.CurrentWeight)

	_, err = stores.Users.GetByID(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))

	err = stores.Users.Update(ctx, newUser("missing", "nobody@example.com"))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepositoryTelegramIDTaken(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)

	tg := int64(42)
	ann, bob := newUser("u1", "ann@example.com"), newUser("u2", "bob@example.com")
	require.NoError(t, stores.Users.Create(ctx, ann))
	require.NoError(t, stores.Users.Create(ctx, bob))

	ann.TelegramID = &tg
	require.NoError(t, stores.Users.Update(ctx, ann))

	bob.TelegramID = &tg
	err := stores.Users.Update(ctx, bob)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict), "got %v", err)
	assert.Equal(t, "Telegram account already linked", apperrors.PublicMessage(err))

	got, err := stores.Users.GetByTelegramID(ctx, tg)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestFoodLogRepository(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	repo := stores.FoodLogs

	require.NoError(t, repo.Create(ctx, foodLog("late", "u1", base.Add(4*time.Hour), "Rice", 200, domain.MealLunch)))
	require.NoError(t, repo.Create(ctx, foodLog("early", "u1", base, "Eggs", 140, domain.MealBreakfast)))
	require.NoError(t, repo.Create(ctx, foodLog("other-user", "u2", base, "Eggs", 140, domain.MealBreakfast)))
	require.NoError(t, repo.Create(ctx, foodLog("next-day", "u1", base.Add(24*time.Hour), "Eggs", 140, domain.MealBreakfast)))

	logs, err := repo.ListByDate(ctx, "u1", "2024-06-01", 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "early", logs[0].ID)
	assert.Equal(t, "late", logs[1].ID)
	assert.Equal(t, domain.MealLunch, logs[1].MealType)
	assert.True(t, logs[1].LoggedAt.Equal(base.Add(4*time.Hour)))

	limited, err := repo.ListByDate(ctx, "u1", "2024-06-01", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	count, err := repo.CountByDate(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	err = repo.Delete(ctx, "u1", "other-user")
	assert.True(t, apperrors.IsNotFound(err), "deleting another user's log must fail")

	require.NoError(t, repo.Delete(ctx, "u1", "early"))
	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, "u1", "early")))
}

func TestFoodLogRecentFoods(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	repo := stores.FoodLogs

	require.NoError(t, repo.Create(ctx, foodLog("a", "u1", base, "Oatmeal", 220, domain.MealBreakfast)))
	require.NoError(t, repo.Create(ctx, foodLog("b", "u1", base.Add(time.Hour), "Banana", 105, domain.MealSnack)))
	newer := foodLog("c", "u1", base.Add(2*time.Hour), "Oatmeal", 440, domain.MealBreakfast)
	newer.Quantity = 2
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, foodLog("d", "u2", base.Add(3*time.Hour), "Pizza", 285, domain.MealDinner)))

	recent, err := repo.RecentFoods(ctx, "u1", 20)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Oatmeal", recent[0].FoodName)
	assert.Equal(t, 440.0, recent[0].Calories)
	assert.Equal(t, 2.0, recent[0].Quantity)
	assert.Equal(t, "Banana", recent[1].FoodName)

	one, err := repo.RecentFoods(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	for _, limit := range []int{0, -1} {
		all, err := repo.RecentFoods(ctx, "u1", limit)
		require.NoError(t, err)
		assert.Len(t, all, 2, "limit %d means no limit", limit)
	}
}

func TestWeightLogRepository(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	repo := stores.WeightLogs

	for i, w := range []float64{80, 79.5, 79} {
		at := base.Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, repo.Create(ctx, &domain.WeightLog{
			ID: string(rune('a' + i)), UserID: "u1", Weight: w, LoggedAt: at, Date: datekey.FromTime(at), CreatedAt: at,
		}))
	}

	logs, err := repo.ListRecent(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 79.0, logs[0].Weight)
	assert.Equal(t, 79.5, logs[1].Weight)

	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, "u2", "a")))
	require.NoError(t, repo.Delete(ctx, "u1", "a"))

	all, err := repo.ListRecent(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestWaterLogRepository(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	repo := stores.WaterLogs

	absent, err := repo.Get(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	assert.Nil(t, absent)

	log := domain.NewWaterLog("w1", "u1", "2024-06-01", base)
	require.NoError(t, log.Add(domain.WaterEntry{ID: "e1", AmountML: 500, Time: base}))
	require.NoError(t, repo.Save(ctx, log))

	require.NoError(t, log.Add(domain.WaterEntry{ID: "e2", AmountML: 300, Time: base.Add(time.Hour)}))
	require.NoError(t, repo.Save(ctx, log))

	got, err := repo.Get(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "w1", got.ID)
	assert.Equal(t, 800, got.TotalML)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "e1", got.Entries[0].ID)
	assert.Equal(t, 300, got.Entries[1].AmountML)

	_, err = got.UndoLast()
	require.NoError(t, err)
	_, err = got.UndoLast()
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, got))

	emptied, err := repo.Get(ctx, "u1", "2024-06-01")
	require.NoError(t, err)
	require.NotNil(t, emptied)
	assert.Zero(t, emptied.TotalML)
	assert.Empty(t, emptied.Entries)
	assert.NotNil(t, emptied.Entries)
}

func TestFoodItemRepository(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t)
	repo := stores.FoodItems

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateBatch(ctx, []domain.FoodItem{
		{ID: "1", Name: "Brown Rice", Popularity: 90, Source: domain.SourceSeed, CreatedAt: base},
		{ID: "2", Name: "White Rice", Popularity: 95, Source: domain.SourceSeed, CreatedAt: base},
		{ID: "3", Name: "100% Juice", Popularity: 10, Source: domain.SourceSeed, CreatedAt: base},
	}))
	require.NoError(t, repo.Create(ctx, &domain.FoodItem{
		ID: "4", Name: "rice cake", Popularity: 1, Source: domain.SourceUser, CreatedBy: "u1", CreatedAt: base,
	}))

	rice, err := repo.Search(ctx, "RICE", 20)
	require.NoError(t, err)
	require.Len(t, rice, 3)
	assert.Equal(t, "White Rice", rice[0].Name)
	assert.Equal(t, "Brown Rice", rice[1].Name)
	assert.Equal(t, "u1", rice[2].CreatedBy)

	pct, err := repo.Search(ctx, "%", 20)
	require.NoError(t, err)
	require.Len(t, pct, 1)
	assert.Equal(t, "100% Juice", pct[0].Name)

	top, err := repo.Search(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
