package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":3000"`

	// Browser game client the join redirect points at.
	GameURL string `env:"GAME_URL" envDefault:"http://localhost:8081"`
	// Degraded experience when a session cannot be created.
	UnavailableURL string `env:"UNAVAILABLE_URL" envDefault:"https://http.cat/images/503.jpg"`

	// Telegram bot token; scoreboard writes are skipped when empty.
	BotToken string `env:"BOT_TOKEN"`

	// Finished sessions are archived here when set.
	PostgresDSN string `env:"POSTGRES_DSN"`

	SessionMax        int `env:"SESSION_MAX" envDefault:"100"`
	SessionExpiryDays int `env:"SESSION_EXPIRY_DAYS" envDefault:"2"`

	BoardPoolSize     int `env:"BOARD_POOL_SIZE" envDefault:"10"`
	BoardMinSolutions int `env:"BOARD_MIN_SOLUTIONS" envDefault:"30"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
