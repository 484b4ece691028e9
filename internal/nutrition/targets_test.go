package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMRMifflinStJeor(t *testing.T) {
	assert.InDelta(t, 1780.0, BMR("male", 80, 180, 30), 1e-9)
	assert.InDelta(t, 1614.0, BMR("female", 80, 180, 30), 1e-9)
	assert.InDelta(t, 1614.0, BMR("other", 80, 180, 30), 1e-9)
	assert.InDelta(t, 1614.0, BMR("", 80, 180, 30), 1e-9)
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level string
		want  float64
	}{
		{"sedentary", 1.2},
		{"light", 1.375},
		{"moderate", 1.55},
		{"active", 1.725},
		{"very_active", 1.9},
		{"couch", 1.55},
		{"", 1.55},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityMultiplier(tt.level))
		})
	}
}

func TestCalculate(t *testing.T) {
	got := Calculate(Profile{
		Gender:         "male",
		WeightKG:       80,
		HeightCM:       180,
		Age:            30,
		ActivityLevel:  "moderate",
		WeightLossRate: 1,
	})

	assert.InDelta(t, 1780.0, got.BMR, 1e-9)
	assert.InDelta(t, 2759.0, got.TDEE, 1e-6)
	assert.Equal(t, 2259, got.CalorieTarget)
	assert.Equal(t, 169, got.ProteinTarget)
	assert.Equal(t, 225, got.CarbsTarget)
	assert.Equal(t, 75, got.FatTarget)
}

func TestCalculateRoundsCalorieTarget(t *testing.T) {
	got := Calculate(Profile{
		Gender:         "female",
		WeightKG:       80,
		HeightCM:       180,
		Age:            30,
		ActivityLevel:  "moderate",
		WeightLossRate: 1,
	})

	// 1614 * 1.55 - 500 = 2001.7
	assert.Equal(t, 2002, got.CalorieTarget)
	assert.Equal(t, 150, got.ProteinTarget)
	assert.Equal(t, 200, got.CarbsTarget)
	assert.Equal(t, 66, got.FatTarget)
}

func TestCalculateUnknownActivityUsesModerate(t *testing.T) {
	p := Profile{Gender: "male", WeightKG: 80, HeightCM: 180, Age: 30, WeightLossRate: 1}
	withDefault := Calculate(p)
	p.ActivityLevel = "moderate"

	assert.Equal(t, Calculate(p), withDefault)
}

func TestCalculateNeverBelowFloor(t *testing.T) {
	for _, rate := range []float64{2, 5, 10, 100, 1e6} {
		got := Calculate(Profile{
			Gender:         "female",
			WeightKG:       45,
			HeightCM:       150,
			Age:            70,
			ActivityLevel:  "sedentary",
			WeightLossRate: rate,
		})
		assert.Equal(t, MinCalorieTarget, got.CalorieTarget, "rate %v", rate)
		assert.Equal(t, 90, got.ProteinTarget)
		assert.Equal(t, 120, got.CarbsTarget)
		assert.Equal(t, 40, got.FatTarget)
	}
}

func TestMacroCaloriesTrackTarget(t *testing.T) {
	// Each macro truncates independently, so the macro kcal can fall short of the
	// target by less than one gram of each macro.
	maxDrift := ProteinShare.KcalPerGram + CarbsShare.KcalPerGram + FatShare.KcalPerGram
	for calories := MinCalorieTarget; calories <= 5000; calories++ {
		sum := ProteinShare.Grams(calories)*4 + CarbsShare.Grams(calories)*4 + FatShare.Grams(calories)*9
		drift := calories - sum
		if drift < 0 || drift >= maxDrift {
			t.Fatalf("calories %d: macro kcal %d drift %d", calories, sum, drift)
		}
	}
}

func TestMacroSharesAreIndependent(t *testing.T) {
	assert.Equal(t, 2000*30/400, ProteinShare.Grams(2000))
	assert.Equal(t, 200, CarbsShare.Grams(2000))
	assert.Equal(t, 66, FatShare.Grams(2000))
}
