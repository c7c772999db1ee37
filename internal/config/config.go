package config

import "time"

// Config is the root application configuration.
type Config struct {
	Bot      BotConfig      `yaml:"bot"`
	Google   GoogleConfig   `yaml:"google"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	Drive    DriveConfig    `yaml:"drive"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// BotConfig holds the Telegram bot token and the two static ID lists: the
// operator allow-list and the notification distribution list.
type BotConfig struct {
	Token      string  `yaml:"token"      env:"BOT_TOKEN" env-required:"true"`
	Operators  []int64 `yaml:"operators"  env:"BOT_OPERATORS"  env-separator:","`
	Recipients []int64 `yaml:"recipients" env:"BOT_RECIPIENTS" env-separator:","`
	Debug      bool    `yaml:"debug"      env:"BOT_DEBUG" env-default:"false"`
}

// GoogleConfig holds the shared service-account credentials used by the
// Sheets and Drive adapters.
type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_CREDENTIALS_FILE" env-default:"./credentials.json"`
}

// SheetsConfig holds the record-store spreadsheet settings.
type SheetsConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id" env:"SHEETS_SPREADSHEET_ID" env-required:"true"`
	SheetName     string `yaml:"sheet_name"     env:"SHEETS_SHEET_NAME" env-default:"Sheet1"`
}

// DriveConfig holds the photo-folder settings.
type DriveConfig struct {
	ParentFolderID string `yaml:"parent_folder_id" env:"DRIVE_PARENT_FOLDER_ID" env-required:"true"`
}

// DatabaseConfig holds PostgreSQL mirror settings. An empty DSN disables
// the mirror and with it the unfilled-places lookup.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether the mirror database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
