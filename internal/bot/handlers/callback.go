package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/dietlog/internal/bot/keyboards"
	"github.com/vladimiradmaev/dietlog/internal/bot/menus"
	"github.com/vladimiradmaev/dietlog/internal/bot/state"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/logger"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	actions
	stateManager state.StateManager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api API, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		actions:      actions{api: api, deps: deps},
		stateManager: stateManager,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *domain.User) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}
	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID

	switch query.Data {
	case keyboards.CallbackWater250:
		return h.addWater(ctx, chatID, user, 250)
	case keyboards.CallbackWater500:
		return h.addWater(ctx, chatID, user, 500)
	case keyboards.CallbackWaterCustom:
		h.stateManager.SetUserState(ctx, chatID, state.WaitingForWater)
		return menus.SendPrompt(h.api, chatID, "💧 How much water did you drink? Send the amount in ml, for example 300.")
	case keyboards.CallbackWeight:
		h.stateManager.SetUserState(ctx, chatID, state.WaitingForWeight)
		return menus.SendPrompt(h.api, chatID, "⚖️ Send your current weight in kg, for example 72.4.")
	case keyboards.CallbackUndo:
		return h.undoWater(ctx, chatID, user)
	case keyboards.CallbackToday:
		return h.today(ctx, chatID, user)
	case keyboards.CallbackWeek:
		return h.week(ctx, chatID, user)
	case keyboards.CallbackMainMenu:
		h.stateManager.ClearUserState(ctx, chatID)
		return menus.SendMainMenu(h.api, chatID)
	default:
		logger.Warn("Unknown callback", "data", query.Data, "user_id", user.ID)
		return menus.SendMainMenu(h.api, chatID)
	}
}
