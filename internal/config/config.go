package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort             int           `mapstructure:"APP_PORT"`
	BackendURL          string        `mapstructure:"BACKEND_URL"`
	UserID              string        `mapstructure:"USER_ID"`
	APIToken            string        `mapstructure:"API_TOKEN"`
	RequestTimeout      time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	JournalPath         string        `mapstructure:"JOURNAL_PATH"`
	ConversationFencing bool          `mapstructure:"CONVERSATION_FENCING"`
	AutoSelectUploads   bool          `mapstructure:"AUTO_SELECT_UPLOADS"`
}

func LoadConfig() (*Config, error) {
	v := viper.GetViper()

	v.SetDefault("APP_PORT", 8010)
	v.SetDefault("BACKEND_URL", "http://127.0.0.1:8007")
	v.SetDefault("USER_ID", "")
	v.SetDefault("API_TOKEN", "")
	// Zero disables the client timeout; answers can take minutes.
	v.SetDefault("REQUEST_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("JOURNAL_PATH", "")
	v.SetDefault("CONVERSATION_FENCING", true)
	v.SetDefault("AUTO_SELECT_UPLOADS", false)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./client")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return &cfg, nil
}
