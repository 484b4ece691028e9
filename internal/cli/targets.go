package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/nutrition"
)

var (
	targetsGender   string
	targetsAge      int
	targetsHeight   float64
	targetsWeight   float64
	targetsActivity string
	targetsRate     float64
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Print daily targets for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if targetsAge <= 0 || targetsHeight <= 0 || targetsWeight <= 0 {
			return fmt.Errorf("age, height and weight must be positive")
		}
		t := nutrition.Calculate(nutrition.Profile{
			Gender:         targetsGender,
			WeightKG:       targetsWeight,
			HeightCM:       targetsHeight,
			Age:            targetsAge,
			ActivityLevel:  targetsActivity,
			WeightLossRate: targetsRate,
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BMR:      %d kcal\n", int(t.BMR))
		fmt.Fprintf(out, "TDEE:     %d kcal\n", int(t.TDEE))
		fmt.Fprintf(out, "Calories: %d kcal\n", t.CalorieTarget)
		fmt.Fprintf(out, "Protein:  %d g\n", t.ProteinTarget)
		fmt.Fprintf(out, "Carbs:    %d g\n", t.CarbsTarget)
		fmt.Fprintf(out, "Fat:      %d g\n", t.FatTarget)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.Flags().StringVar(&targetsGender, "gender", "male", "male or female")
	targetsCmd.Flags().IntVar(&targetsAge, "age", 0, "Age in years")
	targetsCmd.Flags().Float64Var(&targetsHeight, "height", 0, "Height in cm")
	targetsCmd.Flags().Float64Var(&targetsWeight, "weight", 0, "Weight in kg")
	targetsCmd.Flags().StringVar(&targetsActivity, "activity", domain.DefaultActivityLevel, "sedentary, light, moderate, active or very_active")
	targetsCmd.Flags().Float64Var(&targetsRate, "rate", domain.DefaultWeightLossRate, "Weekly weight loss in lb")
	for _, name := range []string{"age", "height", "weight"} {
		_ = targetsCmd.MarkFlagRequired(name)
	}
}
