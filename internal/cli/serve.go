package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vladimiradmaev/dietlog/internal/api"
	"github.com/vladimiradmaev/dietlog/internal/app"
	"github.com/vladimiradmaev/dietlog/internal/auth"
	"github.com/vladimiradmaev/dietlog/internal/bot"
	"github.com/vladimiradmaev/dietlog/internal/bot/state"
	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/keylock"
	"github.com/vladimiradmaev/dietlog/internal/logger"
	"github.com/vladimiradmaev/dietlog/internal/seed"
	"github.com/vladimiradmaev/dietlog/internal/services"
	"golang.org/x/sync/errgroup"
)

const (
	waterLockTTL    = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the Telegram bot",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("Starting dietlog", "driver", cfg.Store.Driver, "addr", cfg.HTTP.Addr)
	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the development secret")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()

	var locker keylock.Locker
	var stateManager state.StateManager
	if cfg.Redis.Enabled() {
		client, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		locker = keylock.NewRedisLocker(client, waterLockTTL)
		stateManager = state.NewRedisManager(client)
	}

	opts := services.Options{}
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)
	svc := app.NewServices(stores, tokens, locker, opts)

	if foods, err := seed.Default(); err != nil {
		logger.Warn("Failed to load embedded food catalog", "error", err)
	} else if _, err := services.NewFoodService(stores.FoodItems, opts).Seed(ctx, foods); err != nil {
		logger.Warn("Failed to seed food catalog", "error", err)
	}

	var telegramBot *bot.Bot
	if cfg.Telegram.Enabled() {
		telegramBot, err = bot.NewBot(cfg.Telegram.Token, svc, stateManager)
		if err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(svc, cfg.HTTP).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if telegramBot != nil {
		g.Go(func() error {
			if err := telegramBot.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	logger.Info("dietlog stopped")
	return err
}
