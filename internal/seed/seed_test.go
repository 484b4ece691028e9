package seed

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/dietlog/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	foods, err := Default()
	require.NoError(t, err)
	require.Len(t, foods, 78)

	assert.Equal(t, Food{
		Name: "Scrambled Eggs", Calories: 140, Protein: 12, Carbs: 2, Fat: 10,
		Serving: "2 large eggs", Category: "protein",
	}, foods[0])
	assert.Equal(t, "Flaxseed", foods[77].Name)

	names := make(map[string]bool, len(foods))
	for _, f := range foods {
		assert.False(t, names[f.Name], "duplicate %s", f.Name)
		names[f.Name] = true
		assert.NotEmpty(t, f.Serving, f.Name)
		assert.NotEmpty(t, f.Category, f.Name)
	}
	assert.Equal(t, "1 oz (23 almonds)", foods[21].Serving)
}

func TestItemsPopularity(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	items := Items([]Food{{Name: "A"}, {Name: "B"}, {Name: "C"}}, now, func() string {
		n++
		return "id-" + strconv.Itoa(n)
	})

	require.Len(t, items, 3)
	assert.Equal(t, []int{100, 99, 98}, []int{items[0].Popularity, items[1].Popularity, items[2].Popularity})
	assert.Equal(t, "id-3", items[2].ID)
	assert.Equal(t, domain.SourceSeed, items[1].Source)
	assert.Equal(t, now, items[0].CreatedAt)
}

func TestLoadRejectsNamelessFood(t *testing.T) {
	_, err := Load(strings.NewReader("foods:\n  - calories: 10\n"))
	assert.Error(t, err)

	foods, err := Load(strings.NewReader("foods:\n  - name: Kefir\n    calories: 110\n"))
	require.NoError(t, err)
	assert.Equal(t, []Food{{Name: "Kefir", Calories: 110}}, foods)
}
