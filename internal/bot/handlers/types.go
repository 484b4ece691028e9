package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/dietlog/internal/bot/menus"
	"github.com/vladimiradmaev/dietlog/internal/interfaces"
)

// API is the part of the Telegram client the handlers use. *tgbotapi.BotAPI satisfies it.
type API interface {
	menus.Sender
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserService      interfaces.UserServiceInterface
	WaterService     interfaces.WaterServiceInterface
	WeightService    interfaces.WeightServiceInterface
	DashboardService interfaces.DashboardServiceInterface
	StatsService     interfaces.StatsServiceInterface
}

// NewDependencies picks the services the bot talks to.
func NewDependencies(s interfaces.Services) Dependencies {
	return Dependencies{
		UserService:      s.Users,
		WaterService:     s.Water,
		WeightService:    s.Weights,
		DashboardService: s.Dashboard,
		StatsService:     s.Stats,
	}
}
