package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/leaguedash/internal/api/dashdata"
	"github.com/omarshaarawi/leaguedash/internal/api/fantasy"
	"github.com/omarshaarawi/leaguedash/internal/bot"
	"github.com/omarshaarawi/leaguedash/internal/config"
	"github.com/omarshaarawi/leaguedash/internal/repository/memory"
	"github.com/omarshaarawi/leaguedash/internal/scheduler"
	"github.com/omarshaarawi/leaguedash/internal/server"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataClient := dashdata.NewClient(cfg.DataSource)
	dataAPI := dashdata.NewAPI(dataClient)
	fantasyAPI := fantasy.NewAPI(dataAPI)

	store := memory.NewStore(fantasyAPI, cfg.DataSource.LoadConcurrency)
	dashboard := service.NewDashboardService(fantasyAPI, store)

	if err := dashboard.Init(ctx); err != nil {
		return err
	}

	var sendMessage func(string) error
	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, dashboard)
		if err != nil {
			return err
		}
		sendMessage = telegramBot.SendMessage

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("Telegram bot disabled, TELEGRAM_TOKEN not set")
	}

	sched, err := scheduler.NewScheduler(dashboard, sendMessage, cfg.Scheduler)
	if err != nil {
		return err
	}

	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.New(dashboard).Routes(cfg.HTTP),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
	}

	return nil
}
