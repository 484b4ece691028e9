package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/dietlog/internal/bot/menus"
	"github.com/vladimiradmaev/dietlog/internal/bot/state"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	actions
	stateManager state.StateManager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api API, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		actions:      actions{api: api, deps: deps},
		stateManager: stateManager,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.User) error {
	logger.Debug("Handling command", "command", message.Command(), "user_id", user.ID)
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		h.stateManager.ClearUserState(ctx, chatID)
		return menus.SendMainMenu(h.api, chatID)
	case "help":
		return menus.SendHelp(h.api, chatID)
	case "today":
		return h.today(ctx, chatID, user)
	case "week":
		return h.week(ctx, chatID, user)
	case "water":
		amount, ok := parseWaterAmount(message.CommandArguments())
		if !ok {
			return h.reply(chatID, "Usage: /water <ml>, for example /water 300")
		}
		return h.addWater(ctx, chatID, user, amount)
	case "undo":
		return h.undoWater(ctx, chatID, user)
	case "weight":
		kg, ok := parseWeight(message.CommandArguments())
		if !ok {
			return h.reply(chatID, "Usage: /weight <kg>, for example /weight 72.4")
		}
		return h.logWeight(ctx, chatID, user, kg)
	default:
		return h.reply(chatID, "Unknown command. Use /help to see the available commands.")
	}
}
