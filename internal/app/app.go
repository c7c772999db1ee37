// Package app wires configuration, logging, adapters, and services together
// and runs the bot.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/guidecr/placebot/internal/adapter/drive"
	"github.com/guidecr/placebot/internal/adapter/maps"
	"github.com/guidecr/placebot/internal/adapter/postgres"
	"github.com/guidecr/placebot/internal/adapter/postgres/place"
	"github.com/guidecr/placebot/internal/adapter/sheets"
	"github.com/guidecr/placebot/internal/adapter/telegram"
	"github.com/guidecr/placebot/internal/config"
	"github.com/guidecr/placebot/internal/service/editor"
	"github.com/guidecr/placebot/internal/service/notifier"
	"github.com/guidecr/placebot/internal/session"
)

// Run is the application entry point. It loads configuration, builds the
// adapter stack and services, and blocks on the update loop until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting placebot",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("operators", len(cfg.Bot.Operators)),
		slog.Int("recipients", len(cfg.Bot.Recipients)),
		slog.Bool("mirror", cfg.Database.Enabled()),
	)

	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("telegram api: %w", err)
	}
	api.Debug = cfg.Bot.Debug

	creds := option.WithCredentialsFile(cfg.Google.CredentialsFile)

	sheetsSvc, err := gsheets.NewService(ctx, creds, option.WithScopes(gsheets.SpreadsheetsScope))
	if err != nil {
		return fmt.Errorf("sheets service: %w", err)
	}
	driveSvc, err := gdrive.NewService(ctx, creds, option.WithScopes(gdrive.DriveScope))
	if err != nil {
		return fmt.Errorf("drive service: %w", err)
	}

	records := sheets.NewStore(logger, sheetsSvc, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName)
	blobs := drive.NewStore(logger, driveSvc, cfg.Drive.ParentFolderID)
	notify := notifier.NewService(logger, telegram.NewSender(api), cfg.Bot.Recipients)
	sessions := session.NewRegistry()

	var editorSvc *editor.Service
	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("mirror database: %w", err)
		}
		defer pool.Close()

		editorSvc = editor.NewService(logger, sessions, records, blobs, notify,
			place.New(pool), maps.NewResolver(logger), cfg.Bot.Operators)
	} else {
		editorSvc = editor.NewService(logger, sessions, records, blobs, notify,
			nil, nil, cfg.Bot.Operators)
	}

	bot := telegram.NewBot(logger, api, editorSvc)

	logger.Info("bot authorized", slog.String("username", api.Self.UserName))

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("update loop: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
