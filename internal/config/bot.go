package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`
	// Public base URL of the game server; join links are built from it.
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:3000"`
	// Short name the game was registered under with BotFather.
	GameShortName string `env:"GAME_SHORT_NAME" envDefault:"WordHunt"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
