// Command bot runs the place-card data-entry Telegram bot.
//
// Configuration comes from CONFIG_PATH (fallback ./config.yaml) plus
// environment overrides; see internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/guidecr/placebot/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
