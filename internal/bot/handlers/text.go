package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/dietlog/internal/bot/menus"
	"github.com/vladimiradmaev/dietlog/internal/bot/state"
	"github.com/vladimiradmaev/dietlog/internal/domain"
)

// TextHandler answers pending prompts with plain text messages
type TextHandler struct {
	actions
	stateManager state.StateManager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api API, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		actions:      actions{api: api, deps: deps},
		stateManager: stateManager,
	}
}

// Handle processes a text message. Unparseable answers leave the prompt open.
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.User) error {
	chatID := message.Chat.ID

	switch h.stateManager.GetUserState(ctx, chatID) {
	case state.WaitingForWater:
		amount, ok := parseWaterAmount(message.Text)
		if !ok {
			return menus.SendPrompt(h.api, chatID, "Please send a positive whole number of ml, for example 300.")
		}
		h.stateManager.ClearUserState(ctx, chatID)
		return h.addWater(ctx, chatID, user, amount)

	case state.WaitingForWeight:
		kg, ok := parseWeight(message.Text)
		if !ok {
			return menus.SendPrompt(h.api, chatID, "Please send a positive number of kg, for example 72.4.")
		}
		h.stateManager.ClearUserState(ctx, chatID)
		return h.logWeight(ctx, chatID, user, kg)

	default:
		return menus.SendMainMenu(h.api, chatID)
	}
}
