package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// YoutubeApiKey is read from COVERSCOPE_YOUTUBE_API_KEY.
	YoutubeApiKey string `required:"true" split_words:"true"`
	Port          int    `default:"8080"`
}

func ProvideConfig() Config {
	// A local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("coverscope", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
