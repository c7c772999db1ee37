package config

import (
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot.token must be set")
	}
	if len(c.Bot.Operators) == 0 {
		return fmt.Errorf("bot.operators must list at least one operator ID")
	}
	for _, id := range c.Bot.Operators {
		if id <= 0 {
			return fmt.Errorf("bot.operators: invalid ID %d", id)
		}
	}
	for _, id := range c.Bot.Recipients {
		if id == 0 {
			return fmt.Errorf("bot.recipients: invalid ID %d", id)
		}
	}

	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("sheets.spreadsheet_id must be set")
	}
	if c.Drive.ParentFolderID == "" {
		return fmt.Errorf("drive.parent_folder_id must be set")
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}
