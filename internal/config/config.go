package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Backend *BackendConfig `mapstructure:"backend"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// BackendConfig targets the upstream TalentBinder API. Retries apply to GET
// requests only and default to zero; the timeout bounds every upstream call.
type BackendConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Retries       uint64        `mapstructure:"retries"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// Load reads the YAML file and layers TB_-prefixed environment variables on
// top (TB_BACKEND_BASE_URL overrides backend.base_url). The file is watched so
// an edited config is picked up on the next read.
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvPrefix("TB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return &conf, nil
}
