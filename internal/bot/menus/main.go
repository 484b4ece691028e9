package menus

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/dietlog/internal/bot/keyboards"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

// Sender delivers outgoing messages. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

const mainMenuText = `🥗 *Diet Log*

Track water and weight, and check how today and the last week went.

Choose an action:`

const helpText = `Available commands:
/start - Show the main menu
/help - Show this message
/today - Today's calories, macros and water
/week - Summary of the last 7 days
/water <ml> - Add water, for example /water 300
/undo - Remove the last water entry
/weight <kg> - Log your weight, for example /weight 72.4`

const linkHintText = `This Telegram account is not linked to a Diet Log profile yet.

Set "telegram_id" to %d in your profile settings, then send /start again.`

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api Sender, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, mainMenuText)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendHelp lists the available commands
func SendHelp(api Sender, chatID int64) error {
	_, err := api.Send(tgbotapi.NewMessage(chatID, helpText))
	return err
}

// SendLinkHint tells an unknown Telegram user how to link their account
func SendLinkHint(api Sender, chatID, telegramID int64) error {
	_, err := api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(linkHintText, telegramID)))
	return err
}

// SendPrompt asks for a typed answer and offers a way back
func SendPrompt(api Sender, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.CancelMenu()
	_, err := api.Send(msg)
	return err
}

// SendWithMenu sends text followed by the quick action keyboard
func SendWithMenu(api Sender, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// FormatDashboard renders the daily view as plain text.
func FormatDashboard(d *domain.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s", d.Date)
	if d.Streak > 0 {
		fmt.Fprintf(&b, " (streak: %s)", plural(d.Streak, "day"))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "🔥 Calories: %s / %d kcal\n", number(d.Calories.Consumed), d.Calories.Target)
	fmt.Fprintf(&b, "🥩 Protein: %s / %d g\n", number(d.Protein.Consumed), d.Protein.Target)
	fmt.Fprintf(&b, "🍞 Carbs: %s / %d g\n", number(d.Carbs.Consumed), d.Carbs.Target)
	fmt.Fprintf(&b, "🧈 Fat: %s / %d g\n", number(d.Fat.Consumed), d.Fat.Target)
	fmt.Fprintf(&b, "💧 Water: %d / %d ml\n", d.Water.ConsumedML, d.Water.GoalML)

	if len(d.FoodLogs) == 0 {
		b.WriteString("\nNothing logged yet.")
		return b.String()
	}

	b.WriteString("\n")
	for _, meal := range []struct {
		label string
		logs  []domain.FoodLog
	}{
		{"🍳 Breakfast", d.Meals.Breakfast},
		{"🥪 Lunch", d.Meals.Lunch},
		{"🍝 Dinner", d.Meals.Dinner},
		{"🍎 Snack", d.Meals.Snack},
	} {
		if len(meal.logs) == 0 {
			continue
		}
		var kcal float64
		for _, l := range meal.logs {
			kcal += l.Calories
		}
		fmt.Fprintf(&b, "%s: %s, %s kcal\n", meal.label, plural(len(meal.logs), "item"), number(kcal))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWeekly renders the weekly summary, marking days within calorieTarget.
func FormatWeekly(s *domain.WeeklyStats, calorieTarget int) string {
	var b strings.Builder
	b.WriteString("📊 Last 7 days\n\n")
	for _, day := range s.DailyStats {
		mark := ""
		if services.OnTrack(day.Calories, calorieTarget) {
			mark = " ✅"
		}
		fmt.Fprintf(&b, "%s %s: %s kcal, %d ml%s\n", day.Day, day.Date, number(day.Calories), day.WaterML, mark)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Average: %s kcal/day\n", number(s.AvgDailyCalories))
	fmt.Fprintf(&b, "Total: %s kcal\n", number(s.TotalCalories))
	fmt.Fprintf(&b, "Days on track: %d/%d\n", s.DaysOnTrack, len(s.DailyStats))
	fmt.Fprintf(&b, "Weight change: %s kg", signed(s.WeightChange))
	return b.String()
}

// FormatWater renders a water ledger, noting the removed entry after an undo.
func FormatWater(v *domain.WaterView) string {
	var b strings.Builder
	if v.RemovedEntry != nil {
		fmt.Fprintf(&b, "↩️ Removed %d ml\n", v.RemovedEntry.AmountML)
	}
	fmt.Fprintf(&b, "💧 Water %s: %d / %d ml", v.Date, v.TotalML, v.GoalML)
	if v.GoalML > 0 {
		fmt.Fprintf(&b, " (%d%%)", v.TotalML*100/v.GoalML)
	}
	return b.String()
}

// FormatWeight confirms a stored measurement.
func FormatWeight(w *domain.WeightLog) string {
	return fmt.Sprintf("⚖️ Weight %s kg saved for %s", number(w.Weight), w.Date)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func signed(v float64) string {
	if v > 0 {
		return "+" + number(v)
	}
	return number(v)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
