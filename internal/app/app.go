// Package app wires stores into the service set the surfaces share.
package app

import (
	"github.com/vladimiradmaev/dietlog/internal/auth"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/interfaces"
	"github.com/vladimiradmaev/dietlog/internal/keylock"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

// NewServices builds every service over stores. A nil locker serializes
// water updates in process only.
func NewServices(stores *domain.Stores, tokens *auth.TokenIssuer, locker keylock.Locker, opts services.Options) interfaces.Services {
	return interfaces.Services{
		Users:     services.NewUserService(stores.Users, tokens, opts),
		Foods:     services.NewFoodService(stores.FoodItems, opts),
		FoodLogs:  services.NewFoodLogService(stores.FoodLogs, opts),
		Weights:   services.NewWeightService(stores.WeightLogs, stores.Users, opts),
		Water:     services.NewWaterService(stores.WaterLogs, locker, opts),
		Dashboard: services.NewDashboardService(stores.FoodLogs, stores.WaterLogs, opts),
		Stats:     services.NewStatsService(stores.FoodLogs, stores.WaterLogs, stores.WeightLogs, opts),
	}
}
