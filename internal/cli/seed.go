package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vladimiradmaev/dietlog/internal/seed"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := loadFoods(seedFile)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stores, err := openStores(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer stores.Close(cmd.Context())

		n, err := services.NewFoodService(stores.FoodItems, services.Options{}).Seed(cmd.Context(), foods)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Food catalog is not empty, nothing seeded")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d foods\n", n)
		return nil
	},
}

func loadFoods(path string) ([]seed.Food, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open food file: %w", err)
	}
	defer f.Close()
	return seed.Load(f)
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML food list (defaults to the built-in catalog)")
}
