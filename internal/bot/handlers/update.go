package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/dietlog/internal/bot/menus"
	"github.com/vladimiradmaev/dietlog/internal/bot/state"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/interfaces"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	api             API
	userService     interfaces.UserServiceInterface
	callbackHandler *CallbackHandler
	commandHandler  *CommandHandler
	textHandler     *TextHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api API, deps Dependencies, stateManager state.StateManager) *UpdateHandler {
	return &UpdateHandler{
		api:             api,
		userService:     deps.UserService,
		callbackHandler: NewCallbackHandler(api, deps, stateManager),
		commandHandler:  NewCommandHandler(api, deps, stateManager),
		textHandler:     NewTextHandler(api, deps, stateManager),
	}
}

// Handle processes a telegram update
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	var from *tgbotapi.User
	var chatID int64

	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		from = update.CallbackQuery.From
		chatID = update.CallbackQuery.Message.Chat.ID
	case update.Message != nil && update.Message.Chat != nil:
		from = update.Message.From
		chatID = update.Message.Chat.ID
	}
	if from == nil {
		return nil
	}

	user, err := h.userService.GetByTelegramID(ctx, from.ID)
	if apperrors.IsNotFound(err) {
		if update.CallbackQuery != nil {
			_, _ = h.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, ""))
		}
		return menus.SendLinkHint(h.api, chatID, from.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve telegram user %d: %w", from.ID, err)
	}

	// Handle different update types
	if update.CallbackQuery != nil {
		return h.callbackHandler.Handle(ctx, update.CallbackQuery, user)
	}
	if update.Message.IsCommand() {
		return h.commandHandler.Handle(ctx, update.Message, user)
	}
	if update.Message.Text != "" {
		return h.textHandler.Handle(ctx, update.Message, user)
	}
	return nil
}
