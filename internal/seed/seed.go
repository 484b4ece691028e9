// Package seed holds the starter food catalog.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/vladimiradmaev/dietlog/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed foods.yaml
var defaultFoods []byte

// Food is one catalog entry as written in a seed file.
type Food struct {
	Name     string  `yaml:"name"`
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
	Fiber    float64 `yaml:"fiber"`
	Serving  string  `yaml:"serving"`
	Category string  `yaml:"category"`
}

type file struct {
	Foods []Food `yaml:"foods"`
}

// Default returns the embedded catalog.
func Default() ([]Food, error) {
	return parse(defaultFoods)
}

// Load reads a catalog in the same format as the embedded one.
func Load(r io.Reader) ([]Food, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Food, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, food := range f.Foods {
		if food.Name == "" {
			return nil, fmt.Errorf("seed food %d has no name", i)
		}
	}
	return f.Foods, nil
}

// Items turns foods into catalog items. Earlier foods rank higher:
// popularity is 100 minus the position.
func Items(foods []Food, now time.Time, newID func() string) []domain.FoodItem {
	items := make([]domain.FoodItem, 0, len(foods))
	for i, f := range foods {
		items = append(items, domain.FoodItem{
			ID:         newID(),
			Name:       f.Name,
			Calories:   f.Calories,
			Protein:    f.Protein,
			Carbs:      f.Carbs,
			Fat:        f.Fat,
			Fiber:      f.Fiber,
			Serving:    f.Serving,
			Category:   f.Category,
			Source:     domain.SourceSeed,
			Popularity: 100 - i,
			CreatedAt:  now,
		})
	}
	return items
}
