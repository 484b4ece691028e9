package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data sent by the inline buttons.
const (
	CallbackWater250    = "water_250"
	CallbackWater500    = "water_500"
	CallbackWaterCustom = "water_custom"
	CallbackWeight      = "weight"
	CallbackUndo        = "undo"
	CallbackToday       = "today"
	CallbackWeek        = "week"
	CallbackMainMenu    = "main_menu"
)

// MainMenu creates the quick action keyboard
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💧 +250 ml", CallbackWater250),
			tgbotapi.NewInlineKeyboardButtonData("💧 +500 ml", CallbackWater500),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Custom water", CallbackWaterCustom),
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Log weight", CallbackWeight),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩️ Undo water", CallbackUndo),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Today", CallbackToday),
			tgbotapi.NewInlineKeyboardButtonData("📊 Week", CallbackWeek),
		),
	)
}

// CancelMenu is attached to prompts waiting for a typed answer
func CancelMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", CallbackMainMenu),
		),
	)
}
