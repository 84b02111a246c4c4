package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DataSource  DataSource
	HTTP        HTTP
	TelegramBot TelegramBot
	Scheduler   Scheduler
}

type DataSource struct {
	BaseURL         string        `envconfig:"DATA_BASE_URL" required:"true"`
	FetchTimeout    time.Duration `envconfig:"DATA_FETCH_TIMEOUT" default:"10s"`
	LoadConcurrency int           `envconfig:"LOAD_CONCURRENCY" default:"4"`
}

type HTTP struct {
	Addr           string   `envconfig:"HTTP_ADDR" default:":8080"`
	AllowedOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// TelegramBot is optional; the bot is disabled when Token is empty.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type Scheduler struct {
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"30m"`
	Timezone        string        `envconfig:"SCHEDULE_TIMEZONE" default:"America/Chicago"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
