package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	LLM struct {
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
		BaseURL string `mapstructure:"base_url"` // Optional OpenAI-compatible endpoint
	} `mapstructure:"llm"`

	Pipeline struct {
		RawPath       string `mapstructure:"raw_path"`
		ProcessedPath string `mapstructure:"processed_path"`
	} `mapstructure:"pipeline"`

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("pipeline.raw_path", "data/raw_posts.json")
	viper.SetDefault("pipeline.processed_path", "data/processed_posts.json")
	viper.SetDefault("logging.level", "info")

	// Allow Viper to read environment variables
	viper.AutomaticEnv()
	// Explicitly bind the OPENAI_API_KEY environment variable to the config
	// field so the key can be set without a config file.
	viper.BindEnv("llm.api_key", "OPENAI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults and env vars carry the run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
