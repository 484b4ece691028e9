package handlers

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/vladimiradmaev/dietlog/internal/bot/menus"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/logger"
	"github.com/vladimiradmaev/dietlog/internal/services"
)

// actions are the operations reachable from commands, buttons and prompts alike.
type actions struct {
	api  API
	deps Dependencies
}

func (a actions) addWater(ctx context.Context, chatID int64, user *domain.User, amountML int) error {
	view, err := a.deps.WaterService.Add(ctx, user, amountML, "")
	if err != nil {
		return a.replyError(ctx, chatID, err)
	}
	return menus.SendWithMenu(a.api, chatID, menus.FormatWater(view))
}

func (a actions) undoWater(ctx context.Context, chatID int64, user *domain.User) error {
	view, err := a.deps.WaterService.UndoLast(ctx, user, "")
	if err != nil {
		return a.replyError(ctx, chatID, err)
	}
	return menus.SendWithMenu(a.api, chatID, menus.FormatWater(view))
}

func (a actions) logWeight(ctx context.Context, chatID int64, user *domain.User, kg float64) error {
	log, err := a.deps.WeightService.Create(ctx, user.ID, services.WeightInput{Weight: kg})
	if err != nil {
		return a.replyError(ctx, chatID, err)
	}
	return menus.SendWithMenu(a.api, chatID, menus.FormatWeight(log))
}

func (a actions) today(ctx context.Context, chatID int64, user *domain.User) error {
	dashboard, err := a.deps.DashboardService.Daily(ctx, user, "")
	if err != nil {
		return a.replyError(ctx, chatID, err)
	}
	return menus.SendWithMenu(a.api, chatID, menus.FormatDashboard(dashboard))
}

func (a actions) week(ctx context.Context, chatID int64, user *domain.User) error {
	stats, err := a.deps.StatsService.Weekly(ctx, user)
	if err != nil {
		return a.replyError(ctx, chatID, err)
	}
	return menus.SendWithMenu(a.api, chatID, menus.FormatWeekly(stats, user.CalorieTarget))
}

// replyError tells the user what went wrong. Rejected input is not an update
// failure, so only store and internal errors are returned.
func (a actions) replyError(ctx context.Context, chatID int64, err error) error {
	if sendErr := a.reply(chatID, "⚠️ "+apperrors.PublicMessage(err)); sendErr != nil {
		return sendErr
	}
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeNotFound:
		apperrors.NewHandler(logger.GetLogger()).Handle(ctx, err)
		return nil
	}
	return err
}

func (a actions) reply(chatID int64, text string) error {
	return menus.SendWithMenu(a.api, chatID, text)
}

// parseWaterAmount accepts "300" or "300 ml".
func parseWaterAmount(text string) (int, bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(text)), "ml"))
	v, err := strconv.Atoi(text)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// parseWeight accepts "72.4", "72,4" or "72.4 kg".
func parseWeight(text string) (float64, bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(text)), "kg"))
	v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
