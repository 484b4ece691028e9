// Package nutrition derives daily calorie and macro targets from a biometric profile.
package nutrition

import "math"

// MinCalorieTarget is the floor applied to every computed calorie target.
const MinCalorieTarget = 1200

// DeficitPerRateUnit is the daily kcal deficit per unit of weekly weight-loss rate.
const DeficitPerRateUnit = 500

// DefaultActivityMultiplier applies to unknown or missing activity levels.
const DefaultActivityMultiplier = 1.55

// ActivityMultipliers maps an activity level to its TDEE factor.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// MacroShare describes one macro's slice of the calorie target.
type MacroShare struct {
	Percent     int
	KcalPerGram int
}

// Grams returns the truncated gram target for a calorie budget.
func (m MacroShare) Grams(calories int) int {
	return calories * m.Percent / (100 * m.KcalPerGram)
}

// Fixed macro split.
var (
	ProteinShare = MacroShare{Percent: 30, KcalPerGram: 4}
	CarbsShare   = MacroShare{Percent: 40, KcalPerGram: 4}
	FatShare     = MacroShare{Percent: 30, KcalPerGram: 9}
)

// Profile holds the inputs of the target calculation. Weight is kg, height cm.
type Profile struct {
	Gender         string
	WeightKG       float64
	HeightCM       float64
	Age            int
	ActivityLevel  string
	WeightLossRate float64
}

// Targets is the calculator output.
type Targets struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	CalorieTarget int     `json:"calorie_target"`
	ProteinTarget int     `json:"protein_target"`
	CarbsTarget   int     `json:"carbs_target"`
	FatTarget     int     `json:"fat_target"`
}

// BMR computes the Mifflin-St Jeor basal metabolic rate. Any gender other than
// "male" uses the female constant.
func BMR(gender string, weightKG, heightCM float64, age int) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

// ActivityMultiplier looks up the TDEE factor for level.
func ActivityMultiplier(level string) float64 {
	if m, ok := ActivityMultipliers[level]; ok {
		return m
	}
	return DefaultActivityMultiplier
}

// Calculate turns a complete profile into targets. Callers must only invoke it
// once age, gender, height and weight are known.
func Calculate(p Profile) Targets {
	bmr := BMR(p.Gender, p.WeightKG, p.HeightCM, p.Age)
	tdee := bmr * ActivityMultiplier(p.ActivityLevel)
	deficit := p.WeightLossRate * DeficitPerRateUnit

	calories := int(math.Round(tdee - deficit))
	if calories < MinCalorieTarget {
		calories = MinCalorieTarget
	}

	return Targets{
		BMR:           bmr,
		TDEE:          tdee,
		CalorieTarget: calories,
		ProteinTarget: ProteinShare.Grams(calories),
		CarbsTarget:   CarbsShare.Grams(calories),
		FatTarget:     FatShare.Grams(calories),
	}
}
